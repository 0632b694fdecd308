package types

// Authorizer binds a Grouping to a Permission of one capability kind and
// composes the two canonical sequences: check-before-act, and creator-gated
// grant issuance. An application runs one Authorizer per kind, sharing a
// single Grouping between them.
type Authorizer interface {
	// Shall tells if user may exercise the capability on resource:
	// true iff any group containing user holds a grant over it
	Shall(user UserID, resource ResourceID) (bool, error)

	// AssertShall fails with ErrNotAuthorized if Shall is false
	AssertShall(user UserID, resource ResourceID) error

	// Permit grants the capability to group over resource, after checking
	// actor is the group's creator. Whether actor may share the resource at
	// all (e.g. owns the post) is checked by the caller beforehand.
	Permit(actor UserID, group GroupID, resource ResourceID) (*Grant, error)

	// Revoke removes the grant, behind the same creator check
	Revoke(actor UserID, group GroupID, resource ResourceID) error

	// Groups exposes the underlying grouping reader
	Groups() GroupingReader

	// Permissions exposes the underlying permission manager
	Permissions() Permission
}
