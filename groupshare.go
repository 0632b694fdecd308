// Package groupshare decides, for a user and a resource, whether a capability
// (viewing, liking) may be exercised. Permission is never granted to users
// directly: it is granted to groups, and a user's access derives from the
// overlap between the groups containing the user and the groups granted the
// capability over the resource.
package groupshare

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/google/uuid"

	"github.com/supremind/groupshare/internal/authorizer"
	"github.com/supremind/groupshare/internal/grouping"
	"github.com/supremind/groupshare/internal/permission"
	"github.com/supremind/groupshare/types"
)

// NewGrouping creates a group manager over the given store
func NewGrouping(store types.GroupStore, opts ...Option) types.Grouping {
	cfg := newConfig(opts...)
	return grouping.New(store, cfg.newID, cfg.log.WithName("grouping"))
}

// NewPermission creates a permission manager of one capability kind over the
// given store. Run one manager per kind, each over its own store, to keep
// grants of different kinds from ever cross-matching.
func NewPermission(kind types.Kind, store types.GrantStore, opts ...Option) types.Permission {
	cfg := newConfig(opts...)
	return permission.New(kind, store, cfg.newID, cfg.log.WithName("permission").WithName(string(kind)))
}

// New composes a grouping and a permission manager into the authorizer for
// one capability kind. Authorizers of different kinds share the grouping.
func New(g types.Grouping, p types.Permission, opts ...Option) types.Authorizer {
	cfg := newConfig(opts...)
	return authorizer.New(g, p, cfg.log.WithName("authorizer"))
}

// Option controls how managers are initialized
type Option func(*config)

// WithLogger sets the logger for the constructed component.
// Logs go to the standard logger if not set.
func WithLogger(l logr.Logger) Option {
	return func(cfg *config) {
		cfg.log = l
		cfg.logSet = true
	}
}

// WithIDGenerator replaces the uuid generator assigning group and grant ids
func WithIDGenerator(newID func() string) Option {
	return func(cfg *config) {
		cfg.newID = newID
	}
}

type config struct {
	log    logr.Logger
	logSet bool
	newID  func() string
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.logSet {
		cfg.log = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
	}
	return cfg
}
