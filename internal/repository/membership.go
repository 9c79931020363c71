package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mindhaven/internal/model"
)

const membershipCollection = "room_members"

type MembershipRepository interface {
	Create(ctx context.Context, membership *model.Membership) error
	Find(ctx context.Context, roomID, userID string) (*model.Membership, error)
	FindByRoom(ctx context.Context, roomID string) ([]model.Membership, error)
	FindByUser(ctx context.Context, userID string) ([]model.Membership, error)
	Delete(ctx context.Context, roomID, userID string) (bool, error)
	CountByRoom(ctx context.Context, roomID string) (int64, error)
}

type membershipRepository struct {
	gw Gateway
}

func NewMembershipRepository(gw Gateway) MembershipRepository {
	return &membershipRepository{gw: gw}
}

func (r *membershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	_, err := r.gw.Insert(ctx, membershipCollection, membership)
	return err
}

func (r *membershipRepository) Find(ctx context.Context, roomID, userID string) (*model.Membership, error) {
	var m model.Membership
	err := r.gw.FindOne(ctx, membershipCollection, bson.M{"room_id": roomID, "user_id": userID}, &m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *membershipRepository) FindByRoom(ctx context.Context, roomID string) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := r.gw.FindMany(ctx, membershipCollection, bson.M{"room_id": roomID}, nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *membershipRepository) FindByUser(ctx context.Context, userID string) ([]model.Membership, error) {
	var memberships []model.Membership
	if err := r.gw.FindMany(ctx, membershipCollection, bson.M{"user_id": userID}, nil, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *membershipRepository) Delete(ctx context.Context, roomID, userID string) (bool, error) {
	return r.gw.DeleteOne(ctx, membershipCollection, bson.M{"room_id": roomID, "user_id": userID})
}

func (r *membershipRepository) CountByRoom(ctx context.Context, roomID string) (int64, error) {
	return r.gw.Count(ctx, membershipCollection, bson.M{"room_id": roomID})
}
