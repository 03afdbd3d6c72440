package usecases_test

import (
	"context"
	"errors"
	"finance-tracker/internal/schema/domain"
	"finance-tracker/internal/schema/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FieldCatalogService", func() {
	var (
		service    usecases.FieldCatalogService
		repository *mockFieldDefinitionRepository
		cache      *mockFieldListCache
		ctx        context.Context
		owner      shareddomain.OwnerID
	)

	keysOf := func(fields []domain.FieldDefinition) []domain.Key {
		keys := make([]domain.Key, len(fields))
		for i, f := range fields {
			keys[i] = f.Key
		}
		return keys
	}

	BeforeEach(func() {
		repository = newMockFieldDefinitionRepository()
		cache = newMockFieldListCache()
		service = usecases.NewFieldCatalogService(repository, cache)
		ctx = context.Background()
		owner = "owner-1"
	})

	Context("EnsureDefaults", func() {
		It("should seed the expense defaults once", func() {
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextExpense)).To(Succeed())
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextExpense)).To(Succeed())

			fields, err := service.ListAllFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(keysOf(fields)).To(Equal([]domain.Key{domain.KeyDescription, domain.KeyAmount, domain.KeyCategory}))
			Expect(repository.createAllCalls).To(Equal(1))
		})

		It("should seed incomes independently from expenses", func() {
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextExpense)).To(Succeed())
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextIncome)).To(Succeed())

			fields, err := service.ListFields(ctx, owner, domain.ContextIncome)
			Expect(err).NotTo(HaveOccurred())
			Expect(keysOf(fields)).To(Equal([]domain.Key{domain.KeyDescription, domain.KeyAmount}))
		})

		It("should yield exactly one default set under concurrent first calls", func() {
			var wg sync.WaitGroup
			for range 20 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					Expect(service.EnsureDefaults(ctx, owner, domain.ContextExpense)).To(Succeed())
				}()
			}
			wg.Wait()

			count, err := repository.CountByContext(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))
		})

		It("should surface storage failures as StorageError", func() {
			repository.countError = errors.New("connection reset")

			err := service.EnsureDefaults(ctx, owner, domain.ContextExpense)
			Expect(shareddomain.IsStorageError(err)).To(BeTrue())
		})

		It("should reject unknown contexts", func() {
			_, ok := shareddomain.IsValidationError(service.EnsureDefaults(ctx, owner, "transfer"))
			Expect(ok).To(BeTrue())
		})
	})

	Context("ListFields", func() {
		It("should serve the second read from the cache", func() {
			first, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())

			repository.findError = errors.New("should not be called")
			second, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should hide disabled fields but keep them in ListAllFields", func() {
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextExpense)).To(Succeed())
			description := repository.byKey(owner, domain.ContextExpense, domain.KeyDescription)
			Expect(service.RetireField(ctx, owner, description.ID)).To(Succeed())

			enabled, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(keysOf(enabled)).To(Equal([]domain.Key{domain.KeyAmount, domain.KeyCategory}))

			all, err := service.ListAllFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(keysOf(all)).To(ContainElement(domain.KeyDescription))
		})
	})

	Context("CreateField", func() {
		It("should append a custom field after the current maximum order", func() {
			field, err := service.CreateField(ctx, owner, domain.ContextExpense, "Método de pago", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(field.Order).To(Equal(3))
			Expect(field.IsCore).To(BeFalse())
			Expect(field.IsEnabled).To(BeTrue())
			Expect(field.Kind).To(Equal(domain.KindText))

			fields, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(fields[len(fields)-1].ID).To(Equal(field.ID))
		})

		It("should seed the defaults before the first custom field", func() {
			_, err := service.CreateField(ctx, owner, domain.ContextIncome, "Fuente", domain.KindText)
			Expect(err).NotTo(HaveOccurred())

			fields, err := service.ListFields(ctx, owner, domain.ContextIncome)
			Expect(err).NotTo(HaveOccurred())
			Expect(fields).To(HaveLen(3))
			Expect(fields[0].Key).To(Equal(domain.KeyDescription))
		})

		It("should generate distinct keys for the same label", func() {
			first, err := service.CreateField(ctx, owner, domain.ContextExpense, "Notas", domain.KindText)
			Expect(err).NotTo(HaveOccurred())
			second, err := service.CreateField(ctx, owner, domain.ContextExpense, "Notas", domain.KindText)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Key).NotTo(Equal(second.Key))
		})

		It("should reject an empty label", func() {
			_, err := service.CreateField(ctx, owner, domain.ContextExpense, "  ", domain.KindText)
			validationErr, ok := shareddomain.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(validationErr.Field).To(Equal("label"))
		})

		It("should reject unknown kinds", func() {
			_, err := service.CreateField(ctx, owner, domain.ContextExpense, "Fecha", "date")
			validationErr, ok := shareddomain.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(validationErr.Field).To(Equal("kind"))
		})

		It("should turn a storage conflict into a label validation error", func() {
			repository.createError = usecases.ErrFieldDuplicated

			_, err := service.CreateField(ctx, owner, domain.ContextExpense, "Notas", domain.KindText)
			validationErr, ok := shareddomain.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(validationErr.Field).To(Equal("label"))
		})

		It("should invalidate the cached list", func() {
			_, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateField(ctx, owner, domain.ContextExpense, "Notas", domain.KindText)
			Expect(err).NotTo(HaveOccurred())

			fields, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(fields).To(HaveLen(4))
		})
	})

	Context("ReorderFields", func() {
		It("should produce exactly the requested order", func() {
			custom, err := service.CreateField(ctx, owner, domain.ContextExpense, "Notas", domain.KindText)
			Expect(err).NotTo(HaveOccurred())
			fields, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())

			requested := []shareddomain.ID{custom.ID, fields[2].ID, fields[0].ID, fields[1].ID}
			Expect(service.ReorderFields(ctx, owner, domain.ContextExpense, requested)).To(Succeed())

			reordered, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			ids := make([]shareddomain.ID, len(reordered))
			for i, f := range reordered {
				ids[i] = f.ID
				Expect(f.Order).To(Equal(i))
			}
			Expect(ids).To(Equal(requested))
		})

		It("should ignore ids of other owners", func() {
			other, err := service.ListFields(ctx, "owner-2", domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			mine, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())

			requested := []shareddomain.ID{other[1].ID, mine[2].ID, other[0].ID, mine[1].ID, mine[0].ID}
			Expect(service.ReorderFields(ctx, owner, domain.ContextExpense, requested)).To(Succeed())

			untouched, err := service.ListFields(ctx, "owner-2", domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(untouched).To(Equal(other))

			reordered, err := service.ListFields(ctx, owner, domain.ContextExpense)
			Expect(err).NotTo(HaveOccurred())
			Expect(keysOf(reordered)).To(Equal([]domain.Key{domain.KeyCategory, domain.KeyAmount, domain.KeyDescription}))
		})

		It("should surface storage failures", func() {
			repository.updateError = errors.New("deadlock detected")

			err := service.ReorderFields(ctx, owner, domain.ContextExpense, nil)
			Expect(shareddomain.IsStorageError(err)).To(BeTrue())
		})
	})

	Context("RelabelField", func() {
		It("should relabel the amount field", func() {
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextExpense)).To(Succeed())
			amount := repository.byKey(owner, domain.ContextExpense, domain.KeyAmount)

			relabeled, err := service.RelabelField(ctx, owner, amount.ID, "Importe")
			Expect(err).NotTo(HaveOccurred())
			Expect(relabeled.Label).To(Equal(shareddomain.DisplayName("Importe")))
			Expect(relabeled.Key).To(Equal(domain.KeyAmount))
		})

		It("should not find fields of other owners", func() {
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextExpense)).To(Succeed())
			amount := repository.byKey(owner, domain.ContextExpense, domain.KeyAmount)

			_, err := service.RelabelField(ctx, "owner-2", amount.ID, "Importe")
			Expect(errors.Is(err, shareddomain.ErrNotFound)).To(BeTrue())
		})
	})

	Context("RetireField", func() {
		BeforeEach(func() {
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextExpense)).To(Succeed())
			Expect(service.EnsureDefaults(ctx, owner, domain.ContextIncome)).To(Succeed())
		})

		DescribeTable("should never retire the amount field",
			func(fieldContext domain.Context) {
				amount := repository.byKey(owner, fieldContext, domain.KeyAmount)

				err := service.RetireField(ctx, owner, amount.ID)
				Expect(err).To(MatchError(domain.ErrAmountFieldProtected))
				Expect(errors.Is(err, shareddomain.ErrProtected)).To(BeTrue())

				stillThere := repository.byKey(owner, fieldContext, domain.KeyAmount)
				Expect(stillThere.IsEnabled).To(BeTrue())
			},
			Entry("expense", domain.ContextExpense),
			Entry("income", domain.ContextIncome),
		)

		It("should disable other core fields", func() {
			category := repository.byKey(owner, domain.ContextExpense, domain.KeyCategory)

			Expect(service.RetireField(ctx, owner, category.ID)).To(Succeed())

			Expect(repository.byKey(owner, domain.ContextExpense, domain.KeyCategory).IsEnabled).To(BeFalse())
		})

		It("should hard-delete custom fields", func() {
			custom, err := service.CreateField(ctx, owner, domain.ContextExpense, "Notas", domain.KindText)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.RetireField(ctx, owner, custom.ID)).To(Succeed())

			_, err = repository.GetByID(ctx, owner, custom.ID)
			Expect(err).To(MatchError(usecases.ErrFieldNotFound))
		})

		It("should report unknown ids as not found", func() {
			err := service.RetireField(ctx, owner, "missing")
			Expect(errors.Is(err, shareddomain.ErrNotFound)).To(BeTrue())
		})

		It("should report foreign ids as not found", func() {
			category := repository.byKey(owner, domain.ContextExpense, domain.KeyCategory)
			err := service.RetireField(ctx, "owner-2", category.ID)
			Expect(err).To(MatchError(usecases.ErrFieldNotFound))
		})

		It("should invalidate the cached list of the field's context", func() {
			category := repository.byKey(owner, domain.ContextExpense, domain.KeyCategory)
			Expect(service.RetireField(ctx, owner, category.ID)).To(Succeed())
			Expect(cache.invalidated).To(ContainElement("owner-1:expense"))
		})
	})
})
