// Package testdata provides fixtures shared by the manager tests.
package testdata

import (
	"fmt"

	"github.com/supremind/groupshare/types"
)

// users appearing across the manager tests
const (
	Alice = types.UserID("alice")
	Bob   = types.UserID("bob")
	Carol = types.UserID("carol")
	Dave  = types.UserID("dave")
	Eve   = types.UserID("eve")
)

// GroupSeed is a group the tests start from
type GroupSeed struct {
	Name    string
	Creator types.UserID
	Members []types.UserID
}

// GroupSeeds cover a creator owning several groups, users shared between
// groups, an empty group, and creators who are not members of their own groups
var GroupSeeds = []GroupSeed{
	{Name: "climbing", Creator: Alice, Members: []types.UserID{Bob, Carol}},
	{Name: "book club", Creator: Alice, Members: []types.UserID{Carol, Dave}},
	{Name: "running", Creator: Bob, Members: []types.UserID{Alice}},
	{Name: "cooking", Creator: Carol, Members: nil},
}

// SequentialIDs returns a generator handing out prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
