package mgo

import (
	"fmt"

	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"

	"github.com/supremind/groupshare/types"
)

var _ types.GrantStore = (*GrantStore)(nil)

// GrantStore is a GrantStore backed by mongodb. Kind partitioning is the
// caller's: build one store per kind, each on its own collection.
type GrantStore struct {
	*collection
}

// NewGrantStore uses the given mongodb collection to store grant documents.
// A unique index on (target, resource) enforces the natural key.
func NewGrantStore(coll *mgo.Collection) (*GrantStore, error) {
	s := &GrantStore{&collection{Collection: coll}}

	ss := s.copySession()
	defer ss.closeSession()

	for _, index := range []mgo.Index{
		{Key: []string{"target", "resource"}, Unique: true},
		{Key: []string{"resource"}},
	} {
		if e := ss.EnsureIndex(index); e != nil {
			return nil, e
		}
	}

	return s, nil
}

type grantDO struct {
	ID       string `bson:"_id"`
	Target   string `bson:"target"`
	Resource string `bson:"resource"`
}

func newGrantDO(grant *types.Grant) *grantDO {
	return &grantDO{
		ID:       string(grant.ID),
		Target:   string(grant.Target),
		Resource: string(grant.Resource),
	}
}

func (do *grantDO) asGrant() *types.Grant {
	return &types.Grant{
		ID:       types.GrantID(do.ID),
		Target:   types.GroupID(do.Target),
		Resource: types.ResourceID(do.Resource),
	}
}

// Insert implements GrantStore interface
func (s *GrantStore) Insert(grant *types.Grant) error {
	ss := s.copySession()
	defer ss.closeSession()

	e := ss.Collection.Insert(newGrantDO(grant))
	if mgo.IsDup(e) {
		return fmt.Errorf("duplicate grant: %s over %s", grant.Target, grant.Resource)
	}
	return e
}

// Remove implements GrantStore interface
func (s *GrantStore) Remove(target types.GroupID, resource types.ResourceID) error {
	ss := s.copySession()
	defer ss.closeSession()

	_, e := ss.RemoveAll(bson.M{"target": string(target), "resource": string(resource)})
	return e
}

// FindByResource implements GrantStore interface
func (s *GrantStore) FindByResource(resource types.ResourceID) ([]*types.Grant, error) {
	return s.findAll(bson.M{"resource": string(resource)})
}

// FindByTarget implements GrantStore interface
func (s *GrantStore) FindByTarget(target types.GroupID) ([]*types.Grant, error) {
	return s.findAll(bson.M{"target": string(target)})
}

func (s *GrantStore) findAll(query bson.M) ([]*types.Grant, error) {
	ss := s.copySession()
	defer ss.closeSession()

	iter := ss.Find(query).Iter()
	defer iter.Close()

	found := make([]*types.Grant, 0)

	var do grantDO
	for iter.Next(&do) {
		found = append(found, do.asGrant())
		do = grantDO{}
	}
	if e := iter.Err(); e != nil {
		return nil, e
	}
	return found, nil
}
