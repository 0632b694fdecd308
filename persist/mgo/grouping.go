package mgo

import (
	"fmt"

	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"

	"github.com/supremind/groupshare/types"
)

var _ types.GroupStore = (*GroupStore)(nil)

// GroupStore is a GroupStore backed by mongodb
type GroupStore struct {
	*collection
}

// NewGroupStore uses the given mongodb collection to store group documents.
// A unique index on the name keeps the uniqueness invariant across instances;
// creator and member lookups run on their own indexes.
func NewGroupStore(coll *mgo.Collection) (*GroupStore, error) {
	s := &GroupStore{&collection{Collection: coll}}

	ss := s.copySession()
	defer ss.closeSession()

	for _, index := range []mgo.Index{
		{Key: []string{"name"}, Unique: true},
		{Key: []string{"creator"}},
		{Key: []string{"members"}},
	} {
		if e := ss.EnsureIndex(index); e != nil {
			return nil, e
		}
	}

	return s, nil
}

type groupDO struct {
	ID      string   `bson:"_id"`
	Name    string   `bson:"name"`
	Creator string   `bson:"creator"`
	Members []string `bson:"members"`
}

func newGroupDO(group *types.Group) *groupDO {
	members := make([]string, 0, len(group.Members))
	for _, member := range group.Members {
		members = append(members, string(member))
	}

	return &groupDO{
		ID:      string(group.ID),
		Name:    group.Name,
		Creator: string(group.Creator),
		Members: members,
	}
}

func (do *groupDO) asGroup() *types.Group {
	members := make([]types.UserID, 0, len(do.Members))
	for _, member := range do.Members {
		members = append(members, types.UserID(member))
	}

	return &types.Group{
		ID:      types.GroupID(do.ID),
		Name:    do.Name,
		Creator: types.UserID(do.Creator),
		Members: members,
	}
}

// Insert implements GroupStore interface
func (s *GroupStore) Insert(group *types.Group) error {
	ss := s.copySession()
	defer ss.closeSession()

	return ss.Collection.Insert(newGroupDO(group))
}

// Update implements GroupStore interface
func (s *GroupStore) Update(group *types.Group) error {
	ss := s.copySession()
	defer ss.closeSession()

	e := ss.UpdateId(string(group.ID), newGroupDO(group))
	if e == mgo.ErrNotFound {
		return fmt.Errorf("%w: group %s", types.ErrNotFound, group.ID)
	}
	return e
}

// Delete implements GroupStore interface
func (s *GroupStore) Delete(id types.GroupID) error {
	ss := s.copySession()
	defer ss.closeSession()

	e := ss.RemoveId(string(id))
	if e == mgo.ErrNotFound {
		return nil
	}
	return e
}

// FindByID implements GroupStore interface
func (s *GroupStore) FindByID(id types.GroupID) (*types.Group, error) {
	ss := s.copySession()
	defer ss.closeSession()

	var do groupDO
	if e := ss.FindId(string(id)).One(&do); e != nil {
		if e == mgo.ErrNotFound {
			return nil, fmt.Errorf("%w: group %s", types.ErrNotFound, id)
		}
		return nil, e
	}
	return do.asGroup(), nil
}

// FindByName implements GroupStore interface
func (s *GroupStore) FindByName(name string) (*types.Group, error) {
	ss := s.copySession()
	defer ss.closeSession()

	var do groupDO
	if e := ss.Find(bson.M{"name": name}).One(&do); e != nil {
		if e == mgo.ErrNotFound {
			return nil, fmt.Errorf("%w: group named %q", types.ErrNotFound, name)
		}
		return nil, e
	}
	return do.asGroup(), nil
}

// FindByCreator implements GroupStore interface
func (s *GroupStore) FindByCreator(user types.UserID) ([]*types.Group, error) {
	return s.findAll(bson.M{"creator": string(user)})
}

// FindByMember implements GroupStore interface.
// The member list is an indexed array, so the containment query does not scan
// the collection.
func (s *GroupStore) FindByMember(user types.UserID) ([]*types.Group, error) {
	return s.findAll(bson.M{"members": string(user)})
}

func (s *GroupStore) findAll(query bson.M) ([]*types.Group, error) {
	ss := s.copySession()
	defer ss.closeSession()

	iter := ss.Find(query).Iter()
	defer iter.Close()

	found := make([]*types.Group, 0)

	var do groupDO
	for iter.Next(&do) {
		found = append(found, do.asGroup())
		do = groupDO{}
	}
	if e := iter.Err(); e != nil {
		return nil, e
	}
	return found, nil
}
