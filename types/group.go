package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UserID identifies a user. The core never interprets it; validity of the id
// itself is the identity collaborator's concern.
type UserID string

// GroupID identifies a group, assigned at creation and immutable after.
type GroupID string

// Group is a named, creator-owned set of users used as the unit of sharing.
// The creator is not a member unless explicitly added.
type Group struct {
	ID      GroupID
	Name    string
	Creator UserID
	Members []UserID
}

// Validate checks the caller-supplied fields. The ID is assigned by the
// manager and not checked here.
func (g Group) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&g.Creator, validation.Required),
	)
}

// HasMember tells if user is in the member list
func (g Group) HasMember(user UserID) bool {
	for _, m := range g.Members {
		if m == user {
			return true
		}
	}
	return false
}
