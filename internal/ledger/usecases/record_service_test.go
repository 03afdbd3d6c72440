package usecases_test

import (
	"context"
	"errors"
	"finance-tracker/internal/infra/async"
	"finance-tracker/internal/ledger/domain"
	"finance-tracker/internal/ledger/usecases"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RecordService", func() {
	var (
		service    usecases.RecordService
		repository *mockRecordRepository
		periods    *mockActivePeriodResolver
		broker     *async.LocalBroker
		ctx        context.Context
		owner      shareddomain.OwnerID
	)

	BeforeEach(func() {
		repository = newMockRecordRepository()
		periods = &mockActivePeriodResolver{start: "2026-03-01", end: "2026-03-31"}
		broker = async.NewLocalBroker()
		DeferCleanup(broker.Stop)
		service = usecases.NewRecordService(repository, periods, broker, time.UTC)
		ctx = context.Background()
		owner = "owner-1"
	})

	Context("CreateRecord", func() {
		It("should compose and store the submission", func() {
			record, err := service.CreateRecord(ctx, owner, schemadomain.ContextExpense, map[string]any{
				"amount":      "12.5",
				"description": "Pan",
				"date":        "2026-03-02",
				"notas_1":     "integral",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(record.Amount.String()).To(Equal("12.5"))
			Expect(*record.Category).To(Equal(domain.FallbackCategoryName))

			stored, err := repository.GetByID(ctx, owner, schemadomain.ContextExpense, record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Attributes).To(Equal(domain.Attributes{"notas_1": "integral"}))
		})

		It("should default the date to today in the configured zone", func() {
			record, err := service.CreateRecord(ctx, owner, schemadomain.ContextIncome, map[string]any{"amount": 10.0})

			Expect(err).NotTo(HaveOccurred())
			Expect(record.OccurredOn).To(Equal(time.Now().UTC().Format("2006-01-02")))
		})

		DescribeTable("should reject a bad amount before storing anything",
			func(amount any) {
				_, err := service.CreateRecord(ctx, owner, schemadomain.ContextExpense, map[string]any{"amount": amount})

				validationErr, ok := shareddomain.IsValidationError(err)
				Expect(ok).To(BeTrue())
				Expect(validationErr.Field).To(Equal("amount"))
				Expect(repository.records).To(BeEmpty())
			},
			Entry("zero", 0.0),
			Entry("text", "abc"),
			Entry("missing", nil),
		)

		It("should wrap storage failures", func() {
			repository.createError = errors.New("disk full")

			_, err := service.CreateRecord(ctx, owner, schemadomain.ContextIncome, map[string]any{"amount": 1.0})
			Expect(shareddomain.IsStorageError(err)).To(BeTrue())
		})

		It("should notify subscribers of the ledger topic", func() {
			subscription, err := broker.Subscribe(usecases.LedgerTopic)
			Expect(err).NotTo(HaveOccurred())

			record, err := service.CreateRecord(ctx, owner, schemadomain.ContextIncome, map[string]any{"amount": 1.0})
			Expect(err).NotTo(HaveOccurred())

			var message async.BrokerMessage
			Eventually(subscription.Receiver).Should(Receive(&message))
			Expect(message.Event).To(Equal(usecases.EventRecordCreated))
			change := message.Value.(usecases.RecordChange)
			Expect(change.ID).To(Equal(record.ID))
			Expect(change.Owner).To(Equal(owner))
		})
	})

	Context("UpdateRecord", func() {
		var record domain.Record

		BeforeEach(func() {
			var err error
			record, err = service.CreateRecord(ctx, owner, schemadomain.ContextExpense, map[string]any{
				"amount":   10.0,
				"notas_1":  "a",
				"cuotas_2": 3.0,
				"date":     "2026-03-05",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should replace the attribute bag instead of merging it", func() {
			updated, err := service.UpdateRecord(ctx, owner, schemadomain.ContextExpense, record.ID, map[string]any{
				"amount":  20.0,
				"notas_1": "b",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Attributes).To(Equal(domain.Attributes{"notas_1": "b"}))

			stored, err := repository.GetByID(ctx, owner, schemadomain.ContextExpense, record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Attributes).NotTo(HaveKey("cuotas_2"))
			Expect(stored.Amount.String()).To(Equal("20"))
			Expect(stored.CreatedAt).To(Equal(record.CreatedAt))
		})

		It("should enforce a positive amount on update", func() {
			_, err := service.UpdateRecord(ctx, owner, schemadomain.ContextExpense, record.ID, map[string]any{"amount": -1.0})

			_, ok := shareddomain.IsValidationError(err)
			Expect(ok).To(BeTrue())

			stored, err := repository.GetByID(ctx, owner, schemadomain.ContextExpense, record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Amount.String()).To(Equal("10"))
		})

		It("should not let another owner update the record", func() {
			_, err := service.UpdateRecord(ctx, "owner-2", schemadomain.ContextExpense, record.ID, map[string]any{"amount": 1.0})

			Expect(err).To(MatchError(usecases.ErrRecordNotFound))
		})

		It("should not find the record under the other context", func() {
			_, err := service.UpdateRecord(ctx, owner, schemadomain.ContextIncome, record.ID, map[string]any{"amount": 1.0})

			Expect(errors.Is(err, shareddomain.ErrNotFound)).To(BeTrue())
		})
	})

	Context("ListRecords", func() {
		BeforeEach(func() {
			for _, date := range []string{"2026-02-27", "2026-03-10", "2026-03-01", "2026-04-01"} {
				_, err := service.CreateRecord(ctx, owner, schemadomain.ContextExpense, map[string]any{"amount": 1.0, "date": date})
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := service.CreateRecord(ctx, "owner-2", schemadomain.ContextExpense, map[string]any{"amount": 1.0, "date": "2026-03-02"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should list the owner's records newest first", func() {
			records, total, err := service.ListRecords(ctx, owner, schemadomain.ContextExpense, usecases.RecordQuery{})

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(4))
			Expect(records[0].OccurredOn).To(Equal("2026-04-01"))
			Expect(records[3].OccurredOn).To(Equal("2026-02-27"))
		})

		It("should filter by the active budget period", func() {
			records, _, err := service.ListRecordsInActivePeriod(ctx, owner, schemadomain.ContextExpense)

			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(repository.lastQuery.Range).To(Equal(&domain.DateRange{Start: "2026-03-01", End: "2026-03-31"}))
		})

		It("should resolve the active period inside a paged query", func() {
			_, total, err := service.ListRecords(ctx, owner, schemadomain.ContextExpense, usecases.RecordQuery{
				ActivePeriod: true,
				Limit:        1,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(2))
			Expect(repository.lastQuery.Range).To(Equal(&domain.DateRange{Start: "2026-03-01", End: "2026-03-31"}))
			Expect(repository.lastQuery.ActivePeriod).To(BeFalse())
			Expect(repository.lastQuery.Limit).To(Equal(1))
		})

		It("should surface period resolution failures", func() {
			periods.err = shareddomain.NewStorageError("reading active period", errors.New("timeout"))

			_, _, err := service.ListRecordsInActivePeriod(ctx, owner, schemadomain.ContextExpense)
			Expect(shareddomain.IsStorageError(err)).To(BeTrue())
		})

		It("should wrap storage failures", func() {
			repository.findError = errors.New("timeout")

			_, _, err := service.ListRecords(ctx, owner, schemadomain.ContextExpense, usecases.RecordQuery{})
			Expect(shareddomain.IsStorageError(err)).To(BeTrue())
		})
	})

	Context("DeleteRecord", func() {
		It("should delete only the owner's record", func() {
			record, err := service.CreateRecord(ctx, owner, schemadomain.ContextIncome, map[string]any{"amount": 1.0})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteRecord(ctx, "owner-2", schemadomain.ContextIncome, record.ID)).To(MatchError(usecases.ErrRecordNotFound))
			Expect(service.DeleteRecord(ctx, owner, schemadomain.ContextIncome, record.ID)).To(Succeed())
			Expect(service.DeleteRecord(ctx, owner, schemadomain.ContextIncome, record.ID)).To(MatchError(usecases.ErrRecordNotFound))
		})
	})
})
