package usecases_test

import (
	"context"
	"errors"
	"finance-tracker/internal/ledger/domain"
	"finance-tracker/internal/ledger/usecases"
	shareddomain "finance-tracker/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CategoryService", func() {
	var (
		service    usecases.CategoryService
		repository *mockCategoryRepository
		ctx        context.Context
	)

	BeforeEach(func() {
		repository = &mockCategoryRepository{}
		service = usecases.NewCategoryService(repository)
		ctx = context.Background()
	})

	It("should fall back to Varios for an owner without categories", func() {
		categories, err := service.ListCategories(ctx, "owner-1")

		Expect(err).NotTo(HaveOccurred())
		Expect(categories).To(HaveLen(1))
		Expect(categories[0].Name).To(Equal(shareddomain.Name(domain.FallbackCategoryName)))
		Expect(categories[0].IsFallback()).To(BeTrue())
	})

	It("should list only stored categories once one exists", func() {
		_, err := service.CreateCategory(ctx, "owner-1", "Comida")
		Expect(err).NotTo(HaveOccurred())

		categories, err := service.ListCategories(ctx, "owner-1")
		Expect(err).NotTo(HaveOccurred())
		Expect(categories).To(HaveLen(1))
		Expect(categories[0].Name).To(Equal(shareddomain.Name("Comida")))
	})

	It("should turn a duplicate name into a validation error", func() {
		_, err := service.CreateCategory(ctx, "owner-1", "Comida")
		Expect(err).NotTo(HaveOccurred())

		_, err = service.CreateCategory(ctx, "owner-1", " Comida ")
		validationErr, ok := shareddomain.IsValidationError(err)
		Expect(ok).To(BeTrue())
		Expect(validationErr.Field).To(Equal("name"))
	})

	It("should allow the same name for another owner", func() {
		_, err := service.CreateCategory(ctx, "owner-1", "Comida")
		Expect(err).NotTo(HaveOccurred())

		_, err = service.CreateCategory(ctx, "owner-2", "Comida")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should report unknown categories on delete", func() {
		err := service.DeleteCategory(ctx, "owner-1", "missing")
		Expect(err).To(MatchError(usecases.ErrCategoryNotFound))
	})

	It("should wrap storage failures", func() {
		repository.findError = errors.New("connection reset")

		_, err := service.ListCategories(ctx, "owner-1")
		Expect(shareddomain.IsStorageError(err)).To(BeTrue())
	})
})
