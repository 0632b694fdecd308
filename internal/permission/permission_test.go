package permission_test

import (
	"errors"
	"log"
	"testing"

	"github.com/go-logr/stdr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/supremind/groupshare/internal/permission"
	. "github.com/supremind/groupshare/internal/testdata"
	"github.com/supremind/groupshare/persist/fake"
	"github.com/supremind/groupshare/types"
)

func TestPermission(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "permission manager")
}

const (
	groupA = types.GroupID("group-a")
	groupB = types.GroupID("group-b")
	post1  = types.ResourceID("post-1")
	post2  = types.ResourceID("post-2")
)

var _ = Describe("permission manager", func() {
	var p types.Permission

	BeforeEach(func() {
		logger := stdr.New(log.New(GinkgoWriter, "", log.LstdFlags))
		p = permission.New(types.KindView, fake.NewGrantStore(), SequentialIDs("grant"), logger)
	})

	Context("granting and revoking", func() {
		It("permits a group and revokes it back", func() {
			grant, e := p.Permit(groupA, post1)
			Expect(e).To(Succeed())
			Expect(grant.Target).To(Equal(groupA))
			Expect(grant.Resource).To(Equal(post1))

			Expect(p.AnyPermitted([]types.GroupID{groupA}, post1)).To(BeTrue())

			Expect(p.Revoke(groupA, post1)).To(Succeed())
			Expect(p.AnyPermitted([]types.GroupID{groupA}, post1)).To(BeFalse())
		})

		It("treats (target, resource) as a natural key", func() {
			first, e := p.Permit(groupA, post1)
			Expect(e).To(Succeed())

			again, e := p.Permit(groupA, post1)
			Expect(e).To(Succeed())
			Expect(again).To(Equal(first))

			Expect(p.PermissionsOn(post1)).To(HaveLen(1))
		})

		It("does not mind revoking an absent grant", func() {
			Expect(p.Revoke(groupA, post1)).To(Succeed())

			_, e := p.Permit(groupB, post1)
			Expect(e).To(Succeed())
			Expect(p.Revoke(groupA, post1)).To(Succeed())
			Expect(p.PermissionsOn(post1)).To(HaveLen(1))
		})
	})

	Context("the any-overlap decision", func() {
		BeforeEach(func() {
			_, e := p.Permit(groupA, post1)
			Expect(e).To(Succeed())
		})

		It("permits when one of many groups is granted", func() {
			Expect(p.AnyPermitted([]types.GroupID{groupA, groupB}, post1)).To(BeTrue())
			Expect(p.AnyPermitted([]types.GroupID{groupB, groupA}, post1)).To(BeTrue())
		})

		It("denies when no group overlaps the granted set", func() {
			Expect(p.AnyPermitted([]types.GroupID{groupB}, post1)).To(BeFalse())
		})

		It("denies on an empty group set", func() {
			Expect(p.AnyPermitted(nil, post1)).To(BeFalse())
		})

		It("denies on a resource with no grants", func() {
			Expect(p.AnyPermitted([]types.GroupID{groupA, groupB}, post2)).To(BeFalse())
		})

		It("asserts the same decision", func() {
			Expect(p.AssertAnyPermitted([]types.GroupID{groupA, groupB}, post1)).To(Succeed())

			e := p.AssertAnyPermitted([]types.GroupID{groupB}, post1)
			Expect(errors.Is(e, types.ErrNotAuthorized)).To(BeTrue())
		})
	})

	Context("listing grants", func() {
		It("lists by resource and by target", func() {
			onPost1A, e := p.Permit(groupA, post1)
			Expect(e).To(Succeed())
			onPost1B, e := p.Permit(groupB, post1)
			Expect(e).To(Succeed())
			onPost2A, e := p.Permit(groupA, post2)
			Expect(e).To(Succeed())

			Expect(p.PermissionsOn(post1)).To(ConsistOf(onPost1A, onPost1B))
			Expect(p.PermissionsFor(groupA)).To(ConsistOf(onPost1A, onPost2A))
			Expect(p.PermissionsFor(groupB)).To(ConsistOf(onPost1B))
		})
	})

	Context("capability kinds", func() {
		It("keeps kinds apart by construction", func() {
			logger := stdr.New(log.New(GinkgoWriter, "", log.LstdFlags))
			like := permission.New(types.KindLike, fake.NewGrantStore(), SequentialIDs("like-grant"), logger)

			_, e := p.Permit(groupA, post1)
			Expect(e).To(Succeed())

			By("a view grant never answers a like check")
			Expect(like.AnyPermitted([]types.GroupID{groupA}, post1)).To(BeFalse())
			Expect(like.PermissionsOn(post1)).To(BeEmpty())

			By("and revoking the like kind leaves the view grant alone")
			Expect(like.Revoke(groupA, post1)).To(Succeed())
			Expect(p.AnyPermitted([]types.GroupID{groupA}, post1)).To(BeTrue())
		})
	})
})
