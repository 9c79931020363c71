package repository

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryGateway is an in-process Gateway used by tests. Documents are kept
// in insertion order per collection; filters are matched by field equality,
// which covers every query the application issues. Unique indexes can be
// declared with EnsureUnique so the duplicate-insert path behaves like the
// real store.
type MemoryGateway struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	unique      map[string][][]string
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		collections: make(map[string][]bson.M),
		unique:      make(map[string][][]string),
	}
}

// EnsureUnique declares a unique index over the given fields.
func (g *MemoryGateway) EnsureUnique(collection string, fields ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unique[collection] = append(g.unique[collection], fields)
}

func (g *MemoryGateway) Insert(_ context.Context, collection string, doc any) (string, error) {
	m, err := toDoc(doc)
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}

	if _, ok := m["_id"]; !ok {
		m["_id"] = primitive.NewObjectID()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, fields := range g.unique[collection] {
		for _, existing := range g.collections[collection] {
			same := true
			for _, f := range fields {
				if !reflect.DeepEqual(existing[f], m[f]) {
					same = false
					break
				}
			}
			if same {
				return "", &StorageError{Op: "insert", Collection: collection, Err: ErrDuplicateKey}
			}
		}
	}

	g.collections[collection] = append(g.collections[collection], m)

	if oid, ok := m["_id"].(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (g *MemoryGateway) FindOne(_ context.Context, collection string, filter bson.M, out any) error {
	f, err := toDoc(filter)
	if err != nil {
		return &StorageError{Op: "findOne", Collection: collection, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, doc := range g.collections[collection] {
		if matches(doc, f) {
			return fromDoc(doc, out)
		}
	}
	return ErrNoDocument
}

func (g *MemoryGateway) FindMany(_ context.Context, collection string, filter bson.M, sortKeys []Sort, out any) error {
	f, err := toDoc(filter)
	if err != nil {
		return &StorageError{Op: "findMany", Collection: collection, Err: err}
	}

	g.mu.Lock()
	var matched []bson.M
	for _, doc := range g.collections[collection] {
		if matches(doc, f) {
			matched = append(matched, doc)
		}
	}
	g.mu.Unlock()

	if len(sortKeys) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			for _, k := range sortKeys {
				c := compareValues(matched[i][k.Field], matched[j][k.Field])
				if c == 0 {
					continue
				}
				if k.Ascending {
					return c < 0
				}
				return c > 0
			}
			return false
		})
	}

	slice := reflect.ValueOf(out).Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, len(matched)))
	for _, doc := range matched {
		elem := reflect.New(slice.Type().Elem())
		if err := fromDoc(doc, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (g *MemoryGateway) Count(_ context.Context, collection string, filter bson.M) (int64, error) {
	f, err := toDoc(filter)
	if err != nil {
		return 0, &StorageError{Op: "count", Collection: collection, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var n int64
	for _, doc := range g.collections[collection] {
		if matches(doc, f) {
			n++
		}
	}
	return n, nil
}

func (g *MemoryGateway) DeleteOne(_ context.Context, collection string, filter bson.M) (bool, error) {
	f, err := toDoc(filter)
	if err != nil {
		return false, &StorageError{Op: "deleteOne", Collection: collection, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	docs := g.collections[collection]
	for i, doc := range docs {
		if matches(doc, f) {
			g.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (g *MemoryGateway) UpdateOne(_ context.Context, collection string, filter bson.M, update bson.M) (bool, error) {
	f, err := toDoc(filter)
	if err != nil {
		return false, &StorageError{Op: "updateOne", Collection: collection, Err: err}
	}

	set, ok := update["$set"].(bson.M)
	if !ok {
		return false, &StorageError{Op: "updateOne", Collection: collection,
			Err: fmt.Errorf("unsupported update document: %v", update)}
	}
	patch, err := toDoc(set)
	if err != nil {
		return false, &StorageError{Op: "updateOne", Collection: collection, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, doc := range g.collections[collection] {
		if matches(doc, f) {
			for k, v := range patch {
				doc[k] = v
			}
			return true, nil
		}
	}
	return false, nil
}

// toDoc normalizes a struct or map through the bson codec so stored values
// have the same types the real driver would produce.
func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = bson.M{}
	}
	return m, nil
}

func fromDoc(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case primitive.DateTime:
		bv := b.(primitive.DateTime)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case primitive.ObjectID:
		bv := b.(primitive.ObjectID)
		return bytes.Compare(av[:], bv[:])
	case string:
		bv := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case int32:
		bv := b.(int32)
		return int(av - bv)
	case int64:
		bv := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	default:
		return 0
	}
}
