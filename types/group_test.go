package types_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/supremind/groupshare/types"
)

func TestTypes(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "types")
}

var _ = Describe("group", func() {
	It("validates caller-supplied fields", func() {
		Expect(types.Group{Name: "hiking", Creator: "alice"}.Validate()).To(Succeed())
		Expect(types.Group{Name: "", Creator: "alice"}.Validate()).NotTo(Succeed())
		Expect(types.Group{Name: "hiking", Creator: ""}.Validate()).NotTo(Succeed())
	})

	It("knows its members, not its creator", func() {
		group := types.Group{Name: "hiking", Creator: "alice", Members: []types.UserID{"bob"}}
		Expect(group.HasMember("bob")).To(BeTrue())
		Expect(group.HasMember("alice")).To(BeFalse())
	})
})
