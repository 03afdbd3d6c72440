package httpserver

import (
	"context"
	"errors"
	"finance-tracker/internal/infra/cache"
	"finance-tracker/internal/infra/node"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	_ "net/http/pprof"
)

const (
	OwnerHeader         = "X-User-ID"
	ownerQueryParam     = "user_id"
	missingOwnerMessage = "missing X-User-ID header"
)

type Server interface {
	Run()
	Shutdown()
}

type ServerConfig struct {
	Port            int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

var _ Server = &StandardServer{}

type StandardServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

func (s *StandardServer) Run() {
	slog.Info("http server listening", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *StandardServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("shutting down http server", slog.String("error", err.Error()))
	}
}

func (s *StandardServer) Handler() http.Handler {
	return s.server.Handler
}

func NewServer(config ServerConfig, controllers ...Controller) *StandardServer {
	router := http.NewServeMux()

	c := cors.New(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
			OwnerHeader,
		},
		ExposedHeaders: []string{
			"Link",
		},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	tracingMiddleware := createTracingMiddleware()
	ownerMiddleware := createOwnerMiddleware()
	cacheScopeMiddleware := createCacheScopeMiddleware()
	metricsMiddleware := MetricsMiddleware()

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	server := &StandardServer{
		server: &http.Server{
			Addr: fmt.Sprintf(":%d", config.Port),
			Handler: c.Handler(
				metricsMiddleware(
					tracingMiddleware(
						ownerMiddleware(
							cacheScopeMiddleware(router),
						),
					),
				),
			),
		},
		shutdownTimeout: shutdownTimeout,
	}

	router.Handle("GET /healthz", getHealthz())
	router.Handle("GET /metrics", promhttp.Handler())

	for _, controller := range controllers {
		controller.AddRoutes(router)
	}

	return server
}

type ownerContextKey struct{}

// OwnerFromRequest returns the owner resolved by the owner middleware.
func OwnerFromRequest(r *http.Request) string {
	owner, _ := r.Context().Value(ownerContextKey{}).(string)
	return owner
}

// WithOwner attaches owner to the request the way the owner middleware does.
func WithOwner(r *http.Request, owner string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ownerContextKey{}, owner))
}

func requiresOwner(path string) bool {
	return strings.HasPrefix(path, "/v1/") || strings.HasPrefix(path, "/ws/")
}

// createOwnerMiddleware rejects owner-scoped requests without an owner. Browsers
// cannot set headers on websocket upgrades, so /ws/ also accepts a query param.
func createOwnerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner := strings.TrimSpace(r.Header.Get(OwnerHeader))
			if owner == "" && strings.HasPrefix(r.URL.Path, "/ws/") {
				owner = strings.TrimSpace(r.URL.Query().Get(ownerQueryParam))
			}

			if owner == "" {
				if requiresOwner(r.URL.Path) && r.Method != http.MethodOptions {
					ReplyWithError(w, http.StatusUnauthorized, missingOwnerMessage)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			GetSpanFromContext(r).SetAttributes(attribute.String("user.id", owner))
			next.ServeHTTP(w, WithOwner(r, owner))
		})
	}
}

// createCacheScopeMiddleware bounds request caches to the request that filled them.
func createCacheScopeMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(cache.WithRequestScope(r.Context())))
		})
	}
}

// createTracingMiddleware creates a middleware that adds OpenTelemetry tracing to all requests
func createTracingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			propagator := b3.New()
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			tracer := otel.Tracer("finance-tracker")
			ctx, span := tracer.Start(ctx, "http.request",
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
					attribute.String("http.user_agent", r.UserAgent()),
					attribute.String("http.remote_addr", r.RemoteAddr),
					attribute.String("span.kind", "server"),
					attribute.String("component", "http-server"),
				),
			)
			defer span.End()

			r = r.WithContext(ctx)

			propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			span.SetAttributes(attribute.Int("http.status_code", wrapped.statusCode))
		})
	}
}

func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}

func getHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		span := GetSpanFromContext(r)
		span.SetAttributes(attribute.String("endpoint", "healthz"))

		info := node.GetNodeInfo()
		output := map[string]string{
			"status":      "success",
			"node_id":     info.ID,
			"version":     info.Version,
			"commit_hash": info.CommitHash,
		}
		ReplyJSONResponse(w, http.StatusOK, output)
	}
}
