package service

import (
	"context"

	"mindhaven/internal/model"
)

type MembershipService interface {
	IsMember(ctx context.Context, roomID, userID string) (bool, error)
	// Join is idempotent: joining a room twice leaves one membership and
	// reports alreadyMember on the repeat call.
	Join(ctx context.Context, roomID, userID string) (alreadyMember bool, err error)
	Leave(ctx context.Context, roomID, userID string) error
}

type RoomService interface {
	ListRooms(ctx context.Context, requestingUserID string) ([]model.RoomView, error)
	CreateRoom(ctx context.Context, name, description, creatorID string) (*model.Room, error)
}

type ConversationService interface {
	GetRoomDetail(ctx context.Context, roomID, requestingUserID string) (*model.RoomDetail, error)
	PostMessage(ctx context.Context, roomID, userID, content string) (*model.Message, error)
}

type UserService interface {
	Register(ctx context.Context, email, name, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, userID, name, bio string) error
}
