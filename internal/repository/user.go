package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mindhaven/internal/model"
)

const userCollection = "users"

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id, name, bio string) error
	TouchLastActive(ctx context.Context, id string) error
}

type userRepository struct {
	gw Gateway
}

func NewUserRepository(gw Gateway) UserRepository {
	return &userRepository{gw: gw}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	id, err := r.gw.Insert(ctx, userCollection, user)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	user.ID = oid
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	var user model.User
	if err := r.gw.FindOne(ctx, userCollection, bson.M{"_id": oid}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.gw.FindOne(ctx, userCollection, bson.M{"email": email}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id, name, bio string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoDocument
	}

	matched, err := r.gw.UpdateOne(ctx, userCollection, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":        name,
		"profile_bio": bio,
		"last_active": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if !matched {
		return ErrNoDocument
	}
	return nil
}

func (r *userRepository) TouchLastActive(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoDocument
	}

	_, err = r.gw.UpdateOne(ctx, userCollection, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"last_active": time.Now().UTC(),
	}})
	return err
}
