package domain_test

import (
	"finance-tracker/internal/ledger/domain"
	schemadomain "finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Record", func() {
	It("should require an owner", func() {
		_, err := domain.NewRecordBuilder().
			WithContext(schemadomain.ContextExpense).
			WithComposition(domain.Composition{Amount: decimal.NewFromInt(1), OccurredOn: today}).
			Build()
		Expect(err).To(MatchError(domain.ErrOwnerRequired))
	})

	It("should refuse a non-positive amount", func() {
		_, err := domain.NewRecordBuilder().
			WithOwner("owner-1").
			WithContext(schemadomain.ContextIncome).
			WithComposition(domain.Composition{Amount: decimal.Zero, OccurredOn: today}).
			Build()
		_, ok := shareddomain.IsValidationError(err)
		Expect(ok).To(BeTrue())
	})

	It("should replace the whole attribute bag", func() {
		record := composeRecord(schemadomain.ContextExpense, map[string]any{"amount": 10.0, "notas_1": "a", "cuotas_2": 2.0})
		createdAt := record.CreatedAt

		composition, err := domain.Encode(schemadomain.ContextExpense, map[string]any{"amount": 20.0, "notas_1": "b"}, today)
		Expect(err).NotTo(HaveOccurred())
		record.Replace(composition)

		Expect(record.Attributes).To(Equal(domain.Attributes{"notas_1": "b"}))
		Expect(record.Amount.String()).To(Equal("20"))
		Expect(record.CreatedAt).To(Equal(createdAt))
	})
})

var _ = Describe("DateRange", func() {
	It("should accept an inclusive range", func() {
		dateRange, err := domain.NewDateRange("2026-03-01", "2026-03-31")
		Expect(err).NotTo(HaveOccurred())
		Expect(dateRange.Contains("2026-03-01")).To(BeTrue())
		Expect(dateRange.Contains("2026-03-31")).To(BeTrue())
		Expect(dateRange.Contains("2026-04-01")).To(BeFalse())
	})

	DescribeTable("should reject invalid bounds",
		func(start, end, field string) {
			_, err := domain.NewDateRange(start, end)
			validationErr, ok := shareddomain.IsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(validationErr.Field).To(Equal(field))
		},
		Entry("non canonical start", "2026-3-1", "2026-03-31", "start"),
		Entry("invalid end", "2026-03-01", "2026-02-30", "end"),
		Entry("reversed", "2026-03-31", "2026-03-01", "end"),
	)
})

var _ = Describe("Category", func() {
	It("should trim the name", func() {
		category, err := domain.NewCategory("owner-1", "  Comida ")
		Expect(err).NotTo(HaveOccurred())
		Expect(category.Name).To(Equal(shareddomain.Name("Comida")))
		Expect(category.IsFallback()).To(BeFalse())
	})

	It("should reject an empty name", func() {
		_, err := domain.NewCategory("owner-1", " ")
		validationErr, ok := shareddomain.IsValidationError(err)
		Expect(ok).To(BeTrue())
		Expect(validationErr.Field).To(Equal("name"))
	})

	It("should expose the implicit fallback", func() {
		Expect(domain.FallbackCategory("owner-1").IsFallback()).To(BeTrue())
	})
})
