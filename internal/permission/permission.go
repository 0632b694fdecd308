// Package permission implements grant issuance and the any-overlap decision
// for a single capability kind over a GrantStore.
package permission

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/supremind/groupshare/types"
)

var _ types.Permission = (*manager)(nil)

// manager handles grants of exactly one kind. Independence of kinds comes
// from construction: each manager gets its own store, and nothing recorded in
// a grant tells which kind it is.
type manager struct {
	kind  types.Kind
	store types.GrantStore
	newID func() string
	log   logr.Logger
}

// New creates a permission manager of the given capability kind over the
// given store
func New(kind types.Kind, store types.GrantStore, newID func() string, log logr.Logger) types.Permission {
	return &manager{
		kind:  kind,
		store: store,
		newID: newID,
		log:   log,
	}
}

// Permit implements Permission interface
func (m *manager) Permit(target types.GroupID, resource types.ResourceID) (*types.Grant, error) {
	granted, e := m.store.FindByResource(resource)
	if e != nil {
		return nil, e
	}
	for _, grant := range granted {
		if grant.Target == target {
			// (target, resource) is a natural key, permitting twice changes nothing
			return grant, nil
		}
	}

	grant := &types.Grant{
		ID:       types.GrantID(m.newID()),
		Target:   target,
		Resource: resource,
	}

	m.log.V(4).Info("permit", "kind", m.kind, "target", target, "resource", resource)

	if e := m.store.Insert(grant); e != nil {
		return nil, e
	}
	return grant, nil
}

// Revoke implements Permission interface
func (m *manager) Revoke(target types.GroupID, resource types.ResourceID) error {
	m.log.V(4).Info("revoke", "kind", m.kind, "target", target, "resource", resource)

	return m.store.Remove(target, resource)
}

// AnyPermitted implements Permission interface
func (m *manager) AnyPermitted(groups []types.GroupID, resource types.ResourceID) (bool, error) {
	m.log.V(6).Info("any permitted", "kind", m.kind, "groups", groups, "resource", resource)

	granted, e := m.store.FindByResource(resource)
	if e != nil {
		return false, e
	}
	if len(granted) == 0 || len(groups) == 0 {
		return false, nil
	}

	targets := make(map[types.GroupID]struct{}, len(granted))
	for _, grant := range granted {
		targets[grant.Target] = struct{}{}
	}
	for _, group := range groups {
		if _, ok := targets[group]; ok {
			return true, nil
		}
	}
	return false, nil
}

// AssertAnyPermitted implements Permission interface
func (m *manager) AssertAnyPermitted(groups []types.GroupID, resource types.ResourceID) error {
	permitted, e := m.AnyPermitted(groups, resource)
	if e != nil {
		return e
	}
	if !permitted {
		return fmt.Errorf("%w: no %s grant on %s for the given groups", types.ErrNotAuthorized, m.kind, resource)
	}
	return nil
}

// PermissionsOn implements Permission interface
func (m *manager) PermissionsOn(resource types.ResourceID) ([]*types.Grant, error) {
	return m.store.FindByResource(resource)
}

// PermissionsFor implements Permission interface
func (m *manager) PermissionsFor(target types.GroupID) ([]*types.Grant, error) {
	return m.store.FindByTarget(target)
}
