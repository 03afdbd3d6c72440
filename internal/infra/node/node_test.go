package node_test

import (
	"finance-tracker/internal/infra/node"
	"net"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should describe the running process", func() {
			info := node.GetNodeInfo()

			gomega.Expect(info.ID).To(gomega.HaveLen(36))
			gomega.Expect(info.Hostname).NotTo(gomega.BeEmpty())
			gomega.Expect(net.ParseIP(info.IPAddress)).NotTo(gomega.BeNil())
			gomega.Expect(info.Version).To(gomega.Equal(node.Version))
			gomega.Expect(info.CommitHash).To(gomega.Equal(node.CommitHash))
			gomega.Expect(info.Uptime()).To(gomega.BeNumerically(">=", 0))
		})

		ginkgo.It("should keep identity across calls", func() {
			first := node.GetNodeInfo()
			second := node.GetNodeInfo()

			gomega.Expect(second.ID).To(gomega.Equal(first.ID))
			gomega.Expect(second.IPAddress).To(gomega.Equal(first.IPAddress))
			gomega.Expect(second.StartedAt).To(gomega.Equal(first.StartedAt))
		})

		ginkgo.It("should reflect the link-time version", func() {
			previous := node.Version
			ginkgo.DeferCleanup(func() { node.Version = previous })

			node.Version = "1.4.0"
			gomega.Expect(node.GetNodeInfo().Version).To(gomega.Equal("1.4.0"))
		})
	})
})
