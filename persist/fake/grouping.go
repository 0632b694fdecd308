// Package fake provides in-memory stores which should not be used in real works
package fake

import (
	"fmt"
	"sync"

	"github.com/supremind/groupshare/types"
)

var _ types.GroupStore = (*GroupStore)(nil)

// GroupStore keeps group documents in a map. Values are copied in and out so
// callers never share a member slice with the store.
type GroupStore struct {
	mu     sync.RWMutex
	groups map[types.GroupID]*types.Group
}

// NewGroupStore returns an empty in-memory group store
func NewGroupStore() *GroupStore {
	return &GroupStore{
		groups: make(map[types.GroupID]*types.Group),
	}
}

// Insert implements GroupStore interface
func (s *GroupStore) Insert(group *types.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[group.ID]; ok {
		return fmt.Errorf("duplicate group id: %s", group.ID)
	}
	s.groups[group.ID] = copyGroup(group)
	return nil
}

// Update implements GroupStore interface
func (s *GroupStore) Update(group *types.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[group.ID]; !ok {
		return fmt.Errorf("%w: group %s", types.ErrNotFound, group.ID)
	}
	s.groups[group.ID] = copyGroup(group)
	return nil
}

// Delete implements GroupStore interface
func (s *GroupStore) Delete(id types.GroupID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.groups, id)
	return nil
}

// FindByID implements GroupStore interface
func (s *GroupStore) FindByID(id types.GroupID) (*types.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[id]
	if !ok {
		return nil, fmt.Errorf("%w: group %s", types.ErrNotFound, id)
	}
	return copyGroup(group), nil
}

// FindByName implements GroupStore interface
func (s *GroupStore) FindByName(name string) (*types.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, group := range s.groups {
		if group.Name == name {
			return copyGroup(group), nil
		}
	}
	return nil, fmt.Errorf("%w: group named %q", types.ErrNotFound, name)
}

// FindByCreator implements GroupStore interface
func (s *GroupStore) FindByCreator(user types.UserID) ([]*types.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]*types.Group, 0)
	for _, group := range s.groups {
		if group.Creator == user {
			found = append(found, copyGroup(group))
		}
	}
	return found, nil
}

// FindByMember implements GroupStore interface
func (s *GroupStore) FindByMember(user types.UserID) ([]*types.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]*types.Group, 0)
	for _, group := range s.groups {
		if group.HasMember(user) {
			found = append(found, copyGroup(group))
		}
	}
	return found, nil
}

func copyGroup(group *types.Group) *types.Group {
	members := make([]types.UserID, len(group.Members))
	copy(members, group.Members)

	return &types.Group{
		ID:      group.ID,
		Name:    group.Name,
		Creator: group.Creator,
		Members: members,
	}
}
