// Package authorizer composes a grouping with a permission manager of one
// capability kind into the canonical check and issuance sequences.
package authorizer

import (
	"github.com/go-logr/logr"

	"github.com/supremind/groupshare/types"
)

var _ types.Authorizer = (*authorizer)(nil)

type authorizer struct {
	g   types.Grouping
	p   types.Permission
	log logr.Logger
}

// New creates an authorizer over the given grouping and permission managers
func New(g types.Grouping, p types.Permission, log logr.Logger) types.Authorizer {
	return &authorizer{
		g:   g,
		p:   p,
		log: log,
	}
}

// Shall tells if any group containing user holds a grant over resource.
// The membership set and the grant set are read in separate store calls with
// no transaction around them: a concurrent Leave may let a check made on the
// just-read set still succeed.
func (a *authorizer) Shall(user types.UserID, resource types.ResourceID) (bool, error) {
	a.log.V(6).Info("shall", "user", user, "resource", resource)

	groups, e := a.g.GroupsOf(user)
	if e != nil {
		return false, e
	}
	return a.p.AnyPermitted(groupIDs(groups), resource)
}

// AssertShall fails with ErrNotAuthorized if Shall is false
func (a *authorizer) AssertShall(user types.UserID, resource types.ResourceID) error {
	groups, e := a.g.GroupsOf(user)
	if e != nil {
		return e
	}
	return a.p.AssertAnyPermitted(groupIDs(groups), resource)
}

// Permit grants the capability to group over resource, only for the group's
// creator. Resource ownership is verified by the caller before getting here.
func (a *authorizer) Permit(actor types.UserID, group types.GroupID, resource types.ResourceID) (*types.Grant, error) {
	a.log.V(4).Info("permit", "actor", actor, "group", group, "resource", resource)

	if e := a.g.AssertCreator(group, actor); e != nil {
		return nil, e
	}
	return a.p.Permit(group, resource)
}

// Revoke removes the grant, behind the same creator gate as Permit
func (a *authorizer) Revoke(actor types.UserID, group types.GroupID, resource types.ResourceID) error {
	a.log.V(4).Info("revoke", "actor", actor, "group", group, "resource", resource)

	if e := a.g.AssertCreator(group, actor); e != nil {
		return e
	}
	return a.p.Revoke(group, resource)
}

// Groups returns the grouping reader shared by all authorizers of the app
func (a *authorizer) Groups() types.GroupingReader {
	return a.g
}

// Permissions returns the permission manager of this authorizer's kind
func (a *authorizer) Permissions() types.Permission {
	return a.p
}

func groupIDs(groups []*types.Group) []types.GroupID {
	ids := make([]types.GroupID, 0, len(groups))
	for _, group := range groups {
		ids = append(ids, group.ID)
	}
	return ids
}
