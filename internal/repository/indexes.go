package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. The unique
// (room_id, user_id) index on room_members is load-bearing: concurrent
// duplicate joins race past the find-before-insert check, and the index is
// what keeps the pair unique. The insert that loses the race fails with a
// duplicate key error which the membership service treats as success.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"chat_rooms": {
			{Keys: bson.D{{Key: "is_active", Value: 1}}},
		},
		"room_members": {
			{
				Keys:    bson.D{{Key: "room_id", Value: 1}, {Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		"messages": {
			{Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "timestamp", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	return nil
}
