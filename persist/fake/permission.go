package fake

import (
	"fmt"
	"sync"

	"github.com/supremind/groupshare/types"
)

var _ types.GrantStore = (*GrantStore)(nil)

// GrantStore keeps the grants of one capability kind in memory
type GrantStore struct {
	mu     sync.RWMutex
	grants []*types.Grant
}

// NewGrantStore returns an empty in-memory grant store
func NewGrantStore() *GrantStore {
	return &GrantStore{}
}

// Insert implements GrantStore interface
func (s *GrantStore) Insert(grant *types.Grant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, got := range s.grants {
		if got.Target == grant.Target && got.Resource == grant.Resource {
			return fmt.Errorf("duplicate grant: %s over %s", grant.Target, grant.Resource)
		}
	}
	s.grants = append(s.grants, &types.Grant{
		ID:       grant.ID,
		Target:   grant.Target,
		Resource: grant.Resource,
	})
	return nil
}

// Remove implements GrantStore interface
func (s *GrantStore) Remove(target types.GroupID, resource types.ResourceID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.grants[:0]
	for _, grant := range s.grants {
		if grant.Target == target && grant.Resource == resource {
			continue
		}
		kept = append(kept, grant)
	}
	s.grants = kept
	return nil
}

// FindByResource implements GrantStore interface
func (s *GrantStore) FindByResource(resource types.ResourceID) ([]*types.Grant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]*types.Grant, 0)
	for _, grant := range s.grants {
		if grant.Resource == resource {
			found = append(found, &types.Grant{ID: grant.ID, Target: grant.Target, Resource: grant.Resource})
		}
	}
	return found, nil
}

// FindByTarget implements GrantStore interface
func (s *GrantStore) FindByTarget(target types.GroupID) ([]*types.Grant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]*types.Grant, 0)
	for _, grant := range s.grants {
		if grant.Target == target {
			found = append(found, &types.Grant{ID: grant.ID, Target: grant.Target, Resource: grant.Resource})
		}
	}
	return found, nil
}
