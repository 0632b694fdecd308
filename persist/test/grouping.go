// Package test provides conformance cases shared by every store backend
package test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/supremind/groupshare/types"
)

var gs types.GroupStore

// TestGroupStore registers the store the shared group store cases run against
func TestGroupStore(s types.GroupStore) {
	gs = s
}

// GroupStoreCases run against the store registered with TestGroupStore
var GroupStoreCases = Describe("group store", func() {
	It("does group document crud", func() {
		hiking := &types.Group{ID: "g-hiking", Name: "hiking", Creator: "alice", Members: []types.UserID{"bob", "carol"}}
		chess := &types.Group{ID: "g-chess", Name: "chess", Creator: "alice", Members: []types.UserID{}}
		movies := &types.Group{ID: "g-movies", Name: "movies", Creator: "dave", Members: []types.UserID{"bob"}}

		By("inserting group documents")
		Expect(gs.Insert(hiking)).To(Succeed())
		Expect(gs.Insert(chess)).To(Succeed())
		Expect(gs.Insert(movies)).To(Succeed())

		By("rejecting a duplicate id")
		Expect(gs.Insert(hiking)).NotTo(Succeed())

		By("finding by id")
		Expect(gs.FindByID("g-hiking")).To(Equal(hiking))
		_, e := gs.FindByID("g-unknown")
		Expect(errors.Is(e, types.ErrNotFound)).To(BeTrue())

		By("finding by exact name")
		Expect(gs.FindByName("chess")).To(Equal(chess))
		_, e = gs.FindByName("Chess")
		Expect(errors.Is(e, types.ErrNotFound)).To(BeTrue())

		By("finding by creator")
		Expect(gs.FindByCreator("alice")).To(ConsistOf(hiking, chess))
		Expect(gs.FindByCreator("nobody")).To(BeEmpty())

		By("finding by member")
		Expect(gs.FindByMember("bob")).To(ConsistOf(hiking, movies))
		Expect(gs.FindByMember("carol")).To(ConsistOf(hiking))
		Expect(gs.FindByMember("alice")).To(BeEmpty())

		By("updating a document in place")
		hiking.Members = []types.UserID{"carol"}
		Expect(gs.Update(hiking)).To(Succeed())
		Expect(gs.FindByID("g-hiking")).To(Equal(hiking))
		Expect(gs.FindByMember("bob")).To(ConsistOf(movies))

		By("rejecting an update of an absent document")
		e = gs.Update(&types.Group{ID: "g-unknown", Name: "ghost", Creator: "alice"})
		Expect(errors.Is(e, types.ErrNotFound)).To(BeTrue())

		By("deleting, idempotently")
		Expect(gs.Delete("g-chess")).To(Succeed())
		_, e = gs.FindByID("g-chess")
		Expect(errors.Is(e, types.ErrNotFound)).To(BeTrue())
		Expect(gs.Delete("g-chess")).To(Succeed())

		By("freeing the deleted group's name")
		Expect(gs.Insert(&types.Group{ID: "g-chess-2", Name: "chess", Creator: "eve", Members: []types.UserID{}})).To(Succeed())
	})
})
