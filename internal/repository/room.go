package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mindhaven/internal/model"
)

const roomCollection = "chat_rooms"

type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id string) (*model.Room, error)
	FindAllActive(ctx context.Context) ([]model.Room, error)
}

type roomRepository struct {
	gw Gateway
}

func NewRoomRepository(gw Gateway) RoomRepository {
	return &roomRepository{gw: gw}
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	id, err := r.gw.Insert(ctx, roomCollection, room)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	room.ID = oid
	return nil
}

// FindByID returns ErrNoDocument for malformed ids as well: an id that can
// never match a document is indistinguishable from a missing one.
func (r *roomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	var room model.Room
	if err := r.gw.FindOne(ctx, roomCollection, bson.M{"_id": oid}, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAllActive(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := r.gw.FindMany(ctx, roomCollection, bson.M{"is_active": true}, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
