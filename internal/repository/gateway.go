package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sort names a field and a direction for FindMany.
type Sort struct {
	Field     string
	Ascending bool
}

// Gateway is the generic document access layer. It knows collections,
// filters and documents; it holds no business rules. Every storage failure
// comes back as a *StorageError, absence as ErrNoDocument.
type Gateway interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	FindOne(ctx context.Context, collection string, filter bson.M, out any) error
	FindMany(ctx context.Context, collection string, filter bson.M, sort []Sort, out any) error
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (bool, error)
	UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M) (bool, error)
}

type mongoGateway struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewMongoGateway(db *mongo.Database) Gateway {
	return &mongoGateway{
		db: db,
		// Bound per call so a stalled server fails the request instead of
		// hanging it.
		timeout: 5 * time.Second,
	}
}

func (g *mongoGateway) Insert(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", g.wrap("insert", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (g *mongoGateway) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := g.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocument
	}
	if err != nil {
		return g.wrap("findOne", collection, err)
	}
	return nil
}

func (g *mongoGateway) FindMany(ctx context.Context, collection string, filter bson.M, sort []Sort, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	opts := options.Find()
	if len(sort) > 0 {
		keys := bson.D{}
		for _, s := range sort {
			dir := 1
			if !s.Ascending {
				dir = -1
			}
			keys = append(keys, bson.E{Key: s.Field, Value: dir})
		}
		opts.SetSort(keys)
	}

	cursor, err := g.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return g.wrap("findMany", collection, err)
	}

	if err := cursor.All(ctx, out); err != nil {
		return g.wrap("findMany", collection, err)
	}
	return nil
}

func (g *mongoGateway) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	n, err := g.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, g.wrap("count", collection, err)
	}
	return n, nil
}

func (g *mongoGateway) DeleteOne(ctx context.Context, collection string, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return false, g.wrap("deleteOne", collection, err)
	}
	return res.DeletedCount > 0, nil
}

func (g *mongoGateway) UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, g.wrap("updateOne", collection, err)
	}
	return res.MatchedCount > 0, nil
}

func (g *mongoGateway) wrap(op, collection string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		err = errors.Join(ErrDuplicateKey, err)
	}
	return &StorageError{Op: op, Collection: collection, Err: err}
}
