package fake_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/supremind/groupshare/persist/fake"
	. "github.com/supremind/groupshare/persist/test"
)

func TestFakeStores(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "fake stores")
}

var _ = BeforeSuite(func() {
	TestGroupStore(NewGroupStore())
	TestGrantStore(NewGrantStore())
})

var _ = GroupStoreCases
var _ = GrantStoreCases
