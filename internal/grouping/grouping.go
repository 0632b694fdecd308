// Package grouping implements group lifecycle and membership management over
// a GroupStore.
package grouping

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/supremind/groupshare/types"
)

var _ types.Grouping = (*manager)(nil)

// manager is stateless: every call reads through to the store, and membership
// changes are read-modify-write on a single group document. Concurrent edits
// on the same group are last writer wins.
type manager struct {
	store types.GroupStore
	newID func() string
	log   logr.Logger
}

// New creates a group manager over the given store
func New(store types.GroupStore, newID func() string, log logr.Logger) types.Grouping {
	return &manager{
		store: store,
		newID: newID,
		log:   log,
	}
}

// Create implements GroupingWriter interface
func (m *manager) Create(name string, creator types.UserID) (*types.Group, error) {
	group := &types.Group{
		ID:      types.GroupID(m.newID()),
		Name:    name,
		Creator: creator,
		Members: []types.UserID{},
	}
	if e := group.Validate(); e != nil {
		return nil, e
	}
	if e := m.assertNameUnique(name, group.ID); e != nil {
		return nil, e
	}

	m.log.V(4).Info("create group", "group", group.ID, "name", name, "creator", creator)

	if e := m.store.Insert(group); e != nil {
		return nil, e
	}
	return group, nil
}

// Delete implements GroupingWriter interface.
// Deleting an absent group is not an error, and grants targeting the group
// are left in place: they can never match a membership set again.
func (m *manager) Delete(group types.GroupID) error {
	m.log.V(4).Info("delete group", "group", group)

	return m.store.Delete(group)
}

// Rename implements GroupingWriter interface
func (m *manager) Rename(group types.GroupID, name string) error {
	found, e := m.Get(group)
	if e != nil {
		return e
	}

	found.Name = name
	if e := found.Validate(); e != nil {
		return e
	}
	if e := m.assertNameUnique(name, group); e != nil {
		return e
	}

	m.log.V(4).Info("rename group", "group", group, "name", name)

	return m.store.Update(found)
}

// SetMembers implements GroupingWriter interface
func (m *manager) SetMembers(group types.GroupID, members []types.UserID) error {
	found, e := m.Get(group)
	if e != nil {
		return e
	}

	// a member appears at most once, first occurrence wins
	seen := make(map[types.UserID]struct{}, len(members))
	deduped := make([]types.UserID, 0, len(members))
	for _, member := range members {
		if _, ok := seen[member]; ok {
			continue
		}
		seen[member] = struct{}{}
		deduped = append(deduped, member)
	}

	m.log.V(4).Info("set members", "group", group, "members", deduped)

	found.Members = deduped
	return m.store.Update(found)
}

// Join implements GroupingWriter interface
func (m *manager) Join(group types.GroupID, user types.UserID) error {
	found, e := m.Get(group)
	if e != nil {
		return e
	}
	if found.HasMember(user) {
		return fmt.Errorf("%w: %s in group %s", types.ErrAlreadyMember, user, group)
	}

	m.log.V(4).Info("join", "group", group, "user", user)

	found.Members = append(found.Members, user)
	return m.store.Update(found)
}

// Leave implements GroupingWriter interface
func (m *manager) Leave(group types.GroupID, user types.UserID) error {
	found, e := m.Get(group)
	if e != nil {
		return e
	}

	at := -1
	for i, member := range found.Members {
		if member == user {
			at = i
			break
		}
	}
	if at < 0 {
		return fmt.Errorf("%w: %s in group %s", types.ErrNotMember, user, group)
	}

	m.log.V(4).Info("leave", "group", group, "user", user)

	found.Members = append(found.Members[:at], found.Members[at+1:]...)
	return m.store.Update(found)
}

// Get implements GroupingReader interface
func (m *manager) Get(group types.GroupID) (*types.Group, error) {
	return m.store.FindByID(group)
}

// CreatedBy implements GroupingReader interface
func (m *manager) CreatedBy(user types.UserID) ([]*types.Group, error) {
	return m.store.FindByCreator(user)
}

// GroupsOf implements GroupingReader interface
func (m *manager) GroupsOf(user types.UserID) ([]*types.Group, error) {
	return m.store.FindByMember(user)
}

// AssertCreator implements GroupingReader interface
func (m *manager) AssertCreator(group types.GroupID, user types.UserID) error {
	found, e := m.Get(group)
	if e != nil {
		return e
	}
	if found.Creator != user {
		return fmt.Errorf("%w: %s is not the creator of group %s", types.ErrNotAuthorized, user, group)
	}
	return nil
}

func (m *manager) assertNameUnique(name string, self types.GroupID) error {
	found, e := m.store.FindByName(name)
	if e != nil {
		if errors.Is(e, types.ErrNotFound) {
			return nil
		}
		return e
	}
	if found.ID == self {
		return nil
	}
	return fmt.Errorf("%w: %q used by group %s", types.ErrNameConflict, name, found.ID)
}
