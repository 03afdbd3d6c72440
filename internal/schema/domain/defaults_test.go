package domain_test

import (
	"finance-tracker/internal/schema/domain"
	shareddomain "finance-tracker/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Defaults", func() {
	It("should seed description, amount and category for expenses", func() {
		fields, err := domain.DefaultFields("owner-1", domain.ContextExpense)
		Expect(err).NotTo(HaveOccurred())
		Expect(fields).To(HaveLen(3))

		Expect(fields[0].Key).To(Equal(domain.KeyDescription))
		Expect(fields[0].Label).To(Equal(shareddomain.DisplayName("Descripción")))
		Expect(fields[1].Key).To(Equal(domain.KeyAmount))
		Expect(fields[1].Kind).To(Equal(domain.KindNumber))
		Expect(fields[2].Key).To(Equal(domain.KeyCategory))
		Expect(fields[2].Kind).To(Equal(domain.KindSelect))

		for i, field := range fields {
			Expect(field.Order).To(Equal(i))
			Expect(field.IsCore).To(BeTrue())
			Expect(field.IsEnabled).To(BeTrue())
			Expect(field.Owner).To(Equal(shareddomain.OwnerID("owner-1")))
		}
	})

	It("should seed description and amount for incomes", func() {
		fields, err := domain.DefaultFields("owner-1", domain.ContextIncome)
		Expect(err).NotTo(HaveOccurred())
		Expect(fields).To(HaveLen(2))
		Expect(fields[0].Key).To(Equal(domain.KeyDescription))
		Expect(fields[1].Key).To(Equal(domain.KeyAmount))
		Expect(fields[1].IsProtected()).To(BeTrue())
	})

	It("should report core keys per context", func() {
		Expect(domain.CoreKeys(domain.ContextIncome)).To(Equal([]domain.Key{domain.KeyDescription, domain.KeyAmount}))
		Expect(domain.IsCoreKey(domain.ContextExpense, domain.KeyCategory)).To(BeTrue())
		Expect(domain.IsCoreKey(domain.ContextIncome, domain.KeyCategory)).To(BeFalse())
	})
})
