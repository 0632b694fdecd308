package types

// ResourceID identifies a shared resource: a post in the surrounding
// application, an uninterpreted key here.
type ResourceID string

// GrantID identifies a grant record.
type GrantID string

// Kind labels a capability namespace. Grants of different kinds are kept in
// different stores behind different Permission instances, so they can never
// cross-match at decision time.
type Kind string

// preset capability kinds, applications may define others
const (
	KindView Kind = "view"
	KindLike Kind = "like"
)

// Grant records that a group holds one kind of capability over a resource.
// Existence itself is the state: present means granted. Grants are never
// mutated in place.
type Grant struct {
	ID       GrantID
	Target   GroupID
	Resource ResourceID
}
