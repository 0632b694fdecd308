package types

// Grouping owns group lifecycle and membership: a user belongs to any number
// of groups, a group is created and controlled by exactly one user.
type Grouping interface {
	GroupingWriter
	GroupingReader
}

// GroupingReader defines methods to query groups and memberships
type GroupingReader interface {
	// Get returns the group, or ErrNotFound
	Get(GroupID) (*Group, error)

	// CreatedBy returns all groups created by the user, order unspecified
	CreatedBy(UserID) ([]*Group, error)

	// GroupsOf returns all groups the user is a member of, order unspecified
	GroupsOf(UserID) ([]*Group, error)

	// AssertCreator fails with ErrNotFound if the group is absent, and with
	// ErrNotAuthorized if user is not its creator. It is the gate callers run
	// before any group mutation or grant change; the writer methods do not
	// run it themselves.
	AssertCreator(GroupID, UserID) error
}

// GroupingWriter defines methods to create, change, or remove groups
type GroupingWriter interface {
	// Create makes a group with no members, owned by creator.
	// Fails with ErrNameConflict if a live group already has the name.
	Create(name string, creator UserID) (*Group, error)

	// Delete removes a group. Deleting an absent group is not an error.
	// Grants targeting the group are not cascaded: they simply never match
	// a membership set again.
	Delete(GroupID) error

	// Rename changes the group name, under the same uniqueness rule as Create
	Rename(GroupID, string) error

	// SetMembers replaces the whole member list
	SetMembers(GroupID, []UserID) error

	// Join adds a user to the group, ErrAlreadyMember if already present
	Join(GroupID, UserID) error

	// Leave removes a user from the group, ErrNotMember if absent
	Leave(GroupID, UserID) error
}
