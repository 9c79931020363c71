package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mindhaven/internal/model"
)

const messageCollection = "messages"

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	// FindByRoomChronological returns a room's messages sorted by timestamp
	// ascending, ties broken by id, so history renders in the order it was
	// written regardless of storage iteration order.
	FindByRoomChronological(ctx context.Context, roomID string) ([]model.Message, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type messageRepository struct {
	gw Gateway
}

func NewMessageRepository(gw Gateway) MessageRepository {
	return &messageRepository{gw: gw}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	id, err := r.gw.Insert(ctx, messageCollection, message)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	message.ID = oid
	return nil
}

func (r *messageRepository) FindByRoomChronological(ctx context.Context, roomID string) ([]model.Message, error) {
	var messages []model.Message
	sort := []Sort{
		{Field: "timestamp", Ascending: true},
		{Field: "_id", Ascending: true},
	}
	if err := r.gw.FindMany(ctx, messageCollection, bson.M{"room_id": roomID}, sort, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.gw.Count(ctx, messageCollection, bson.M{"user_id": userID})
}
