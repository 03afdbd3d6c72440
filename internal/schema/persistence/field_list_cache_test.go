package persistence_test

import (
	"context"
	"finance-tracker/internal/infra/cache"
	"finance-tracker/internal/infra/pubsub"
	"finance-tracker/internal/infra/sql"
	"finance-tracker/internal/schema/domain"
	"finance-tracker/internal/schema/persistence"
	"finance-tracker/internal/schema/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"sync"
	"sync/atomic"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func newTestCache() cache.Cache {
	store, err := cache.New(nil)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	ginkgo.DeferCleanup(store.Close)
	return store
}

var _ = ginkgo.Describe("CachedFieldList", func() {
	var (
		fieldCache *persistence.CachedFieldList
		fields     []domain.FieldDefinition
		loads      atomic.Int32
		load       func(context.Context) ([]domain.FieldDefinition, error)
	)

	ginkgo.BeforeEach(func() {
		fieldCache = persistence.NewFieldListCache(newTestCache(), time.Minute)

		var err error
		fields, err = domain.DefaultFields("owner-1", domain.ContextExpense)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		loads.Store(0)
		load = func(context.Context) ([]domain.FieldDefinition, error) {
			loads.Add(1)
			return fields, nil
		}
	})

	ginkgo.It("should read through without a request scope", func() {
		ctx := context.Background()
		for range 3 {
			_, err := fieldCache.Load(ctx, "owner-1", domain.ContextExpense, load)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		}
		gomega.Expect(loads.Load()).To(gomega.Equal(int32(3)))
	})

	ginkgo.It("should round-trip a field list within one request", func() {
		ctx := cache.WithRequestScope(context.Background())

		_, err := fieldCache.Load(ctx, "owner-1", domain.ContextExpense, load)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		cached, err := fieldCache.Load(ctx, "owner-1", domain.ContextExpense, load)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(loads.Load()).To(gomega.Equal(int32(1)))
		gomega.Expect(cached).To(gomega.HaveLen(3))
		for i := range fields {
			gomega.Expect(cached[i].ID).To(gomega.Equal(fields[i].ID))
			gomega.Expect(cached[i].Key).To(gomega.Equal(fields[i].Key))
			gomega.Expect(cached[i].Label).To(gomega.Equal(fields[i].Label))
			gomega.Expect(cached[i].Order).To(gomega.Equal(fields[i].Order))
			gomega.Expect(cached[i].CreatedAt.Equal(fields[i].CreatedAt.Time)).To(gomega.BeTrue())
		}
	})

	ginkgo.It("should not share lists between requests", func() {
		for range 2 {
			ctx := cache.WithRequestScope(context.Background())
			_, err := fieldCache.Load(ctx, "owner-1", domain.ContextExpense, load)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		}
		gomega.Expect(loads.Load()).To(gomega.Equal(int32(2)))
	})

	ginkgo.It("should keep contexts and owners apart", func() {
		ctx := cache.WithRequestScope(context.Background())

		_, err := fieldCache.Load(ctx, "owner-1", domain.ContextExpense, load)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		_, err = fieldCache.Load(ctx, "owner-1", domain.ContextIncome, load)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		_, err = fieldCache.Load(ctx, "owner-2", domain.ContextExpense, load)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(loads.Load()).To(gomega.Equal(int32(3)))
	})

	ginkgo.It("should forget an invalidated list", func() {
		ctx := cache.WithRequestScope(context.Background())

		_, err := fieldCache.Load(ctx, "owner-1", domain.ContextExpense, load)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		fieldCache.Invalidate(ctx, "owner-1", domain.ContextExpense)
		_, err = fieldCache.Load(ctx, "owner-1", domain.ContextExpense, load)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(loads.Load()).To(gomega.Equal(int32(2)))
	})

	ginkgo.It("should collapse concurrent misses of one request into a single load", func() {
		ctx := cache.WithRequestScope(context.Background())
		slow := func(ctx context.Context) ([]domain.FieldDefinition, error) {
			time.Sleep(20 * time.Millisecond)
			return load(ctx)
		}

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer ginkgo.GinkgoRecover()
				listed, err := fieldCache.Load(ctx, "owner-1", domain.ContextExpense, slow)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(listed).To(gomega.HaveLen(3))
			}()
		}
		wg.Wait()

		gomega.Expect(loads.Load()).To(gomega.Equal(int32(1)))
	})

	ginkgo.Context("with two catalog services on one database", func() {
		var (
			first  usecases.FieldCatalogService
			second usecases.FieldCatalogService
			owner  shareddomain.OwnerID
		)

		keysOf := func(fields []domain.FieldDefinition) []domain.Key {
			keys := make([]domain.Key, len(fields))
			for i, f := range fields {
				keys[i] = f.Key
			}
			return keys
		}

		ginkgo.BeforeEach(func() {
			orm, err := sql.NewMemoryORM("migrations")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			repo, err := persistence.NewFieldDefinitionRepository(pubsub.NewMemoryPublisherFactoryWithBroker(pubsub.NewMemoryBroker()), orm)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			first = usecases.NewFieldCatalogService(repo, persistence.NewFieldListCache(newTestCache(), time.Minute))
			second = usecases.NewFieldCatalogService(repo, persistence.NewFieldListCache(newTestCache(), time.Minute))
			owner = "owner-1"
		})

		ginkgo.It("should list the order written through the other service", func() {
			listed, err := first.ListFields(cache.WithRequestScope(context.Background()), owner, domain.ContextExpense)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(keysOf(listed)).To(gomega.Equal([]domain.Key{domain.KeyDescription, domain.KeyAmount, domain.KeyCategory}))

			reordered := []shareddomain.ID{listed[2].ID, listed[0].ID, listed[1].ID}
			gomega.Expect(second.ReorderFields(cache.WithRequestScope(context.Background()), owner, domain.ContextExpense, reordered)).To(gomega.Succeed())

			listed, err = first.ListFields(cache.WithRequestScope(context.Background()), owner, domain.ContextExpense)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(keysOf(listed)).To(gomega.Equal([]domain.Key{domain.KeyCategory, domain.KeyDescription, domain.KeyAmount}))
		})
	})
})
