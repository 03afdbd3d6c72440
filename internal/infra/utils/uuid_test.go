package utils_test

import (
	"finance-tracker/internal/infra/utils"
	"slices"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("GenerateUUID", func() {
	ginkgo.It("should issue version 7 ids", func() {
		id, err := uuid.Parse(utils.GenerateUUID())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(id.Version()).To(gomega.Equal(uuid.Version(7)))
	})

	ginkgo.It("should sort ids in the order they were issued", func() {
		ids := make([]string, 200)
		for i := range ids {
			ids[i] = utils.GenerateUUID()
		}

		gomega.Expect(slices.IsSorted(ids)).To(gomega.BeTrue())
		gomega.Expect(slices.Compact(slices.Clone(ids))).To(gomega.HaveLen(len(ids)))
	})
})
