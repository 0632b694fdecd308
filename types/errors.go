package types

import "errors"

// exported errors
var (
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrNameConflict  = errors.New("group name already taken")
	ErrAlreadyMember = errors.New("already a member")
	ErrNotMember     = errors.New("not a member")
)
