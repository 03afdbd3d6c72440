package persistence_test

import (
	"context"
	"finance-tracker/internal/infra/pubsub"
	"finance-tracker/internal/infra/sql"
	"finance-tracker/internal/ledger/domain"
	"finance-tracker/internal/ledger/persistence"
	"finance-tracker/internal/ledger/usecases"
	schemadomain "finance-tracker/internal/schema/domain"
	"finance-tracker/internal/shared_kernel/avro"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"sync"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

const today = "2026-03-15"

var _ = ginkgo.Describe("RecordRepository", func() {
	var (
		repo      *persistence.SimpleRecordRepository
		ctx       context.Context
		owner     shareddomain.OwnerID
		mu        sync.Mutex
		published []*avro.AvroLedgerRecord
	)

	newRecord := func(o shareddomain.OwnerID, c schemadomain.Context, submission map[string]any) domain.Record {
		composition, err := domain.Encode(c, submission, today)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		record, err := domain.NewRecordBuilder().WithOwner(o).WithContext(c).WithComposition(composition).Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(repo.Create(ctx, record)).To(gomega.Succeed())
		return record
	}

	ginkgo.BeforeEach(func() {
		orm, err := sql.NewMemoryORM("migrations")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		published = nil
		broker := pubsub.NewMemoryBroker()
		broker.Subscribe("ledger_records", "test", func(_ context.Context, _ pubsub.Key, message pubsub.Prototype) error {
			mu.Lock()
			defer mu.Unlock()
			published = append(published, message.(*avro.AvroLedgerRecord))
			return nil
		})

		repo, err = persistence.NewRecordRepository(pubsub.NewMemoryPublisherFactoryWithBroker(broker), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
		owner = "owner-1"
	})

	ginkgo.It("should store the attribute bag and the decimal amount", func() {
		record := newRecord(owner, schemadomain.ContextExpense, map[string]any{
			"amount":   "12.5",
			"notas_1":  "integral",
			"cuotas_2": 3.0,
			"urgente":  true,
		})

		stored, err := repo.GetByID(ctx, owner, schemadomain.ContextExpense, record.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.Amount.Equal(record.Amount)).To(gomega.BeTrue())
		gomega.Expect(*stored.Category).To(gomega.Equal(domain.FallbackCategoryName))
		gomega.Expect(stored.OccurredOn).To(gomega.Equal(today))
		gomega.Expect(stored.Attributes).To(gomega.Equal(domain.Attributes{
			"notas_1":  "integral",
			"cuotas_2": 3.0,
			"urgente":  true,
		}))
	})

	ginkgo.It("should publish the change with the encoded attributes", func() {
		record := newRecord(owner, schemadomain.ContextIncome, map[string]any{"amount": 100.0, "fuente_1": "sueldo"})

		gomega.Expect(published).To(gomega.HaveLen(1))
		gomega.Expect(published[0].ID).To(gomega.Equal(record.ID.String()))
		gomega.Expect(published[0].Amount).To(gomega.Equal("100"))
		gomega.Expect(published[0].Attributes).To(gomega.Equal(`{"fuente_1":"sueldo"}`))
		gomega.Expect(published[0].Category).To(gomega.BeNil())
	})

	ginkgo.It("should scope reads by owner and context", func() {
		record := newRecord(owner, schemadomain.ContextExpense, map[string]any{"amount": 1.0})

		_, err := repo.GetByID(ctx, "owner-2", schemadomain.ContextExpense, record.ID)
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))

		_, err = repo.GetByID(ctx, owner, schemadomain.ContextIncome, record.ID)
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("should replace every composed value", func() {
			record := newRecord(owner, schemadomain.ContextExpense, map[string]any{
				"amount": 10.0, "category": "Comida", "notas_1": "a", "cuotas_2": 2.0,
			})

			composition, err := domain.Encode(schemadomain.ContextExpense, map[string]any{
				"amount": 20.0, "notas_1": "b", "date": "2026-03-20",
			}, today)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			record.Replace(composition)
			gomega.Expect(repo.Update(ctx, record)).To(gomega.Succeed())

			stored, err := repo.GetByID(ctx, owner, schemadomain.ContextExpense, record.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(stored.Amount.String()).To(gomega.Equal("20"))
			gomega.Expect(*stored.Category).To(gomega.Equal(domain.FallbackCategoryName))
			gomega.Expect(stored.OccurredOn).To(gomega.Equal("2026-03-20"))
			gomega.Expect(stored.Attributes).To(gomega.Equal(domain.Attributes{"notas_1": "b"}))
		})

		ginkgo.It("should not touch another owner's record", func() {
			record := newRecord(owner, schemadomain.ContextExpense, map[string]any{"amount": 10.0})
			record.Owner = "owner-2"

			gomega.Expect(repo.Update(ctx, record)).To(gomega.MatchError(usecases.ErrRecordNotFound))
		})
	})

	ginkgo.Context("FindByContext", func() {
		ginkgo.BeforeEach(func() {
			for _, date := range []string{"2026-02-28", "2026-03-01", "2026-03-10", "2026-03-31", "2026-04-01"} {
				newRecord(owner, schemadomain.ContextExpense, map[string]any{"amount": 1.0, "date": date})
			}
			newRecord(owner, schemadomain.ContextIncome, map[string]any{"amount": 1.0, "date": "2026-03-05"})
			newRecord("owner-2", schemadomain.ContextExpense, map[string]any{"amount": 1.0, "date": "2026-03-05"})
		})

		ginkgo.It("should include both range bounds and sort newest first", func() {
			dateRange, err := domain.NewDateRange("2026-03-01", "2026-03-31")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			records, total, err := repo.FindByContext(ctx, owner, schemadomain.ContextExpense, usecases.RecordQuery{Range: &dateRange})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(3))

			dates := []string{}
			for _, record := range records {
				dates = append(dates, record.OccurredOn)
			}
			gomega.Expect(dates).To(gomega.Equal([]string{"2026-03-31", "2026-03-10", "2026-03-01"}))
		})

		ginkgo.It("should page while reporting the full total", func() {
			records, total, err := repo.FindByContext(ctx, owner, schemadomain.ContextExpense, usecases.RecordQuery{Limit: 2, Offset: 2})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(5))
			gomega.Expect(records).To(gomega.HaveLen(2))
			gomega.Expect(records[0].OccurredOn).To(gomega.Equal("2026-03-10"))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should delete and publish a tombstone", func() {
			record := newRecord(owner, schemadomain.ContextExpense, map[string]any{"amount": 1.0})

			gomega.Expect(repo.Delete(ctx, owner, schemadomain.ContextExpense, record.ID)).To(gomega.Succeed())
			gomega.Expect(published).To(gomega.HaveLen(2))
			gomega.Expect(published[1].Operation).To(gomega.Equal(avro.OperationDelete))

			_, err := repo.GetByID(ctx, owner, schemadomain.ContextExpense, record.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))
		})

		ginkgo.It("should report a foreign record as not found", func() {
			record := newRecord(owner, schemadomain.ContextExpense, map[string]any{"amount": 1.0})

			err := repo.Delete(ctx, "owner-2", schemadomain.ContextExpense, record.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))
		})
	})
})
