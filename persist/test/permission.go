package test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/supremind/groupshare/types"
)

var ps types.GrantStore

// TestGrantStore registers the store the shared grant store cases run against
func TestGrantStore(s types.GrantStore) {
	ps = s
}

// GrantStoreCases run against the store registered with TestGrantStore
var GrantStoreCases = Describe("grant store", func() {
	It("does grant document crud", func() {
		g1p1 := &types.Grant{ID: "p-1", Target: "g-1", Resource: "post-1"}
		g2p1 := &types.Grant{ID: "p-2", Target: "g-2", Resource: "post-1"}
		g1p2 := &types.Grant{ID: "p-3", Target: "g-1", Resource: "post-2"}

		By("inserting grants")
		Expect(ps.Insert(g1p1)).To(Succeed())
		Expect(ps.Insert(g2p1)).To(Succeed())
		Expect(ps.Insert(g1p2)).To(Succeed())

		By("rejecting a duplicate (target, resource) pair")
		Expect(ps.Insert(&types.Grant{ID: "p-4", Target: "g-1", Resource: "post-1"})).NotTo(Succeed())

		By("finding by resource")
		Expect(ps.FindByResource("post-1")).To(ConsistOf(g1p1, g2p1))
		Expect(ps.FindByResource("post-9")).To(BeEmpty())

		By("finding by target")
		Expect(ps.FindByTarget("g-1")).To(ConsistOf(g1p1, g1p2))
		Expect(ps.FindByTarget("g-9")).To(BeEmpty())

		By("removing on the pair, idempotently")
		Expect(ps.Remove("g-1", "post-1")).To(Succeed())
		Expect(ps.FindByResource("post-1")).To(ConsistOf(g2p1))
		Expect(ps.Remove("g-1", "post-1")).To(Succeed())

		By("leaving other grants of the same target untouched")
		Expect(ps.FindByTarget("g-1")).To(ConsistOf(g1p2))
	})
})
