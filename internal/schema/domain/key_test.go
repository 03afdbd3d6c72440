package domain_test

import (
	"finance-tracker/internal/schema/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field keys", func() {
	Context("NewFieldKey", func() {
		It("should normalize the label and append the suffix", func() {
			Expect(domain.NewFieldKey("Método de Pago", 1700000000000)).
				To(Equal(domain.Key("m_todo_de_pago_1700000000000")))
		})

		It("should keep digits", func() {
			Expect(domain.NewFieldKey("IVA 21%", 7)).To(Equal(domain.Key("iva_21__7")))
		})
	})

	Context("NextKeySuffix", func() {
		It("should never repeat under rapid repeated calls", func() {
			seen := map[int64]bool{}
			previous := int64(0)
			for range 1000 {
				suffix := domain.NextKeySuffix()
				Expect(seen).NotTo(HaveKey(suffix))
				Expect(suffix).To(BeNumerically(">", previous))
				seen[suffix] = true
				previous = suffix
			}
		})

		It("should yield distinct keys for identical labels", func() {
			first := domain.NewFieldKey("Notas", domain.NextKeySuffix())
			second := domain.NewFieldKey("Notas", domain.NextKeySuffix())
			Expect(first).NotTo(Equal(second))
		})
	})
})
