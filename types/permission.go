package types

// Permission manages grants of one capability kind and answers the decision
// the whole system is built on: does at least one group in a given set hold a
// grant over a resource. A group set overlapping one granted group is enough;
// sharing with this circle or that circle, not all of them.
type Permission interface {
	// Permit grants the capability to target over resource.
	// (target, resource) is a natural key: permitting an existing pair
	// changes nothing and returns the grant already recorded.
	Permit(target GroupID, resource ResourceID) (*Grant, error)

	// Revoke removes the grant on (target, resource).
	// Revoking an absent grant is not an error.
	Revoke(target GroupID, resource ResourceID) error

	// AnyPermitted tells if at least one of the groups holds a grant over resource
	AnyPermitted(groups []GroupID, resource ResourceID) (bool, error)

	// AssertAnyPermitted fails with ErrNotAuthorized if AnyPermitted is false
	AssertAnyPermitted(groups []GroupID, resource ResourceID) error

	// PermissionsOn returns all grants over a resource, for display and audit
	PermissionsOn(ResourceID) ([]*Grant, error)

	// PermissionsFor returns all grants held by a target group
	PermissionsFor(GroupID) ([]*Grant, error)
}
