package repository

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// memCollection is an in-memory Collection understanding equality filters,
// $set updates, single-key sorts, skip/limit and inclusion projections.
type memCollection struct {
	mu    sync.Mutex
	docs  []bson.M
	calls int
}

var _ Collection = (*memCollection)(nil)

func newMemCollection(t *testing.T, seed ...interface{}) *memCollection {
	t.Helper()
	c := &memCollection{}
	for _, d := range seed {
		if _, err := c.InsertOne(context.Background(), d); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	c.calls = 0
	return c
}

func normalize(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func asM(v interface{}) bson.M {
	switch t := v.(type) {
	case bson.M:
		return t
	case bson.D:
		return t.Map()
	}
	return nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func (c *memCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++

	m, err := normalize(document)
	if err != nil {
		return nil, err
	}
	if _, ok := m["_id"]; !ok {
		m["_id"] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, m)
	return &mongo.InsertOneResult{InsertedID: m["_id"]}, nil
}

func (c *memCollection) Find(_ context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++

	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}

	var skip, limit int64
	var sortSpec, projection bson.D
	for _, o := range opts {
		if o == nil {
			continue
		}
		if o.Skip != nil {
			skip = *o.Skip
		}
		if o.Limit != nil {
			limit = *o.Limit
		}
		if s, ok := o.Sort.(bson.D); ok {
			sortSpec = s
		}
		if p, ok := o.Projection.(bson.D); ok {
			projection = p
		}
	}
	if skip < 0 {
		return nil, errors.New("skip must be non-negative")
	}

	var hits []bson.M
	for _, d := range c.docs {
		if matches(d, f) {
			hits = append(hits, d)
		}
	}

	if len(sortSpec) > 0 {
		key := sortSpec[0].Key
		desc := sortSpec[0].Value == -1
		sort.SliceStable(hits, func(i, j int) bool {
			a, b := number(hits[i][key]), number(hits[j][key])
			if desc {
				return a > b
			}
			return a < b
		})
	}

	if skip >= int64(len(hits)) {
		hits = nil
	} else {
		hits = hits[skip:]
	}
	if limit > 0 && limit < int64(len(hits)) {
		hits = hits[:limit]
	}

	out := make([]interface{}, 0, len(hits))
	for _, d := range hits {
		out = append(out, project(d, projection))
	}
	return mongo.NewCursorFromDocuments(out, nil, nil)
}

func (c *memCollection) UpdateOne(_ context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++

	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}
	u, err := normalize(update)
	if err != nil {
		return nil, err
	}
	set := asM(u["$set"])

	upsert := false
	for _, o := range opts {
		if o != nil && o.Upsert != nil {
			upsert = *o.Upsert
		}
	}

	for _, d := range c.docs {
		if !matches(d, f) {
			continue
		}
		modified := int64(0)
		for k, v := range set {
			if !reflect.DeepEqual(d[k], v) {
				modified = 1
			}
			d[k] = v
		}
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}

	if !upsert {
		return &mongo.UpdateResult{}, nil
	}
	doc := bson.M{}
	for k, v := range f {
		doc[k] = v
	}
	for k, v := range set {
		doc[k] = v
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, doc)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: doc["_id"]}, nil
}

func (c *memCollection) DeleteOne(_ context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++

	f, err := normalize(filter)
	if err != nil {
		return nil, err
	}
	for i, d := range c.docs {
		if matches(d, f) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (c *memCollection) EstimatedDocumentCount(_ context.Context, _ ...*options.EstimatedDocumentCountOptions) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return int64(len(c.docs)), nil
}

func (c *memCollection) find(t *testing.T, id primitive.ObjectID) bson.M {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.docs {
		if d["_id"] == id {
			return d
		}
	}
	return nil
}

func number(v interface{}) float64 {
	switch n := v.(type) {
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return -1 << 62
}

func project(doc bson.M, projection bson.D) bson.M {
	if len(projection) == 0 {
		return doc
	}
	out := bson.M{}
	keepID := true
	for _, e := range projection {
		if e.Key == "_id" {
			keepID = e.Value != 0
			continue
		}
		if v, ok := doc[e.Key]; ok {
			out[e.Key] = v
		}
	}
	if keepID {
		out["_id"] = doc["_id"]
	}
	return out
}
