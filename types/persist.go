package types

// GroupStore is a durable collection of group documents. Pure data access:
// no policy, no cross-document transactions. Each call is a single document
// operation serialized by the backend; cancellation and timeouts are the
// backend's own.
type GroupStore interface {
	// Insert adds a new group document keyed by its ID.
	// Inserting an existing ID is an error.
	Insert(*Group) error

	// Update overwrites the document with the same ID, ErrNotFound if absent
	Update(*Group) error

	// Delete removes the document. Deleting an absent one is not an error.
	Delete(GroupID) error

	// FindByID returns the group, or ErrNotFound
	FindByID(GroupID) (*Group, error)

	// FindByName returns the group with exactly this name, case sensitive,
	// or ErrNotFound
	FindByName(string) (*Group, error)

	// FindByCreator returns all groups created by the user, order unspecified
	FindByCreator(UserID) ([]*Group, error)

	// FindByMember returns all groups whose member list contains the user,
	// order unspecified
	FindByMember(UserID) ([]*Group, error)
}

// GrantStore is a durable collection of grants of a single capability kind.
// One store instance per kind keeps the namespaces apart.
type GrantStore interface {
	// Insert adds a grant. (Target, Resource) is a natural key: inserting a
	// pair already present is an error.
	Insert(*Grant) error

	// Remove deletes the grant on the (target, resource) pair.
	// Removing an absent one is not an error.
	Remove(target GroupID, resource ResourceID) error

	// FindByResource returns all grants over a resource, order unspecified
	FindByResource(ResourceID) ([]*Grant, error)

	// FindByTarget returns all grants held by a group, order unspecified
	FindByTarget(GroupID) ([]*Grant, error)
}
