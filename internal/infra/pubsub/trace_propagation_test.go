package pubsub_test

import (
	"context"
	"finance-tracker/internal/infra/pubsub"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var _ = ginkgo.Describe("Trace propagation", func() {
	var (
		tp   *trace.TracerProvider
		ctx  context.Context
		span oteltrace.Span
	)

	ginkgo.BeforeEach(func() {
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(tracetest.NewSpanRecorder()))
		otel.SetTracerProvider(tp)
		ctx, span = tp.Tracer("test").Start(context.Background(), "test.span")
	})

	ginkgo.AfterEach(func() {
		span.End()
		_ = tp.Shutdown(context.Background())
	})

	ginkgo.It("should carry the trace id into a fresh context", func() {
		headers := pubsub.ExtractTraceFromContext(ctx)
		gomega.Expect(headers.TraceID).NotTo(gomega.BeEmpty())
		gomega.Expect(headers.SpanID).NotTo(gomega.BeEmpty())

		newCtx := pubsub.InjectTraceIntoContext(context.Background(), headers)
		newSpan := oteltrace.SpanFromContext(newCtx)
		gomega.Expect(newSpan.SpanContext().TraceID()).To(gomega.Equal(span.SpanContext().TraceID()))
		gomega.Expect(newSpan.SpanContext().IsRemote()).To(gomega.BeTrue())
	})

	ginkgo.It("should return empty headers without a span", func() {
		gomega.Expect(pubsub.ExtractTraceFromContext(context.Background())).To(gomega.Equal(pubsub.TraceHeaders{}))
	})

	ginkgo.It("should ignore malformed headers", func() {
		newCtx := pubsub.InjectTraceIntoContext(context.Background(), pubsub.TraceHeaders{
			TraceID: "invalid-trace-id",
			SpanID:  "invalid-span-id",
		})
		gomega.Expect(oteltrace.SpanFromContext(newCtx).SpanContext().HasSpanID()).To(gomega.BeFalse())
	})

	ginkgo.It("should open child spans under the injected trace", func() {
		remote := pubsub.InjectTraceIntoContext(context.Background(), pubsub.ExtractTraceFromContext(ctx))
		_, child := pubsub.CreateChildSpan(remote, "consume field_definitions")
		defer child.End()

		gomega.Expect(child.SpanContext().TraceID()).To(gomega.Equal(span.SpanContext().TraceID()))
		gomega.Expect(child.SpanContext().SpanID()).NotTo(gomega.Equal(span.SpanContext().SpanID()))
	})
})
