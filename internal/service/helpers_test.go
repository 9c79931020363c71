package service_test

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"mindhaven/internal/model"
	"mindhaven/internal/repository"
	"mindhaven/internal/service"
)

// env wires the full service stack over the in-memory gateway with the same
// unique indexes EnsureIndexes creates against the real store.
type env struct {
	gw *repository.MemoryGateway

	rooms    repository.RoomRepository
	members  repository.MembershipRepository
	messages repository.MessageRepository
	users    repository.UserRepository

	membership    service.MembershipService
	roomService   service.RoomService
	conversations service.ConversationService
	userService   service.UserService
}

func newEnv() *env {
	gw := repository.NewMemoryGateway()
	gw.EnsureUnique("room_members", "room_id", "user_id")
	gw.EnsureUnique("users", "email")

	rooms := repository.NewRoomRepository(gw)
	members := repository.NewMembershipRepository(gw)
	messages := repository.NewMessageRepository(gw)
	users := repository.NewUserRepository(gw)
	cache := repository.NewNoopMemberCountCache()

	membership := service.NewMembershipService(rooms, members, cache)

	return &env{
		gw:            gw,
		rooms:         rooms,
		members:       members,
		messages:      messages,
		users:         users,
		membership:    membership,
		roomService:   service.NewRoomService(rooms, members, cache),
		conversations: service.NewConversationService(rooms, members, messages, users, membership),
		userService:   service.NewUserService(users, messages),
	}
}

func (e *env) seedUser(t *testing.T, name string) string {
	t.Helper()
	user := &model.User{
		Email:      name + "@example.com",
		Name:       name,
		Password:   "hash",
		JoinDate:   time.Now().UTC(),
		LastActive: time.Now().UTC(),
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return user.ID.Hex()
}

func (e *env) seedRoom(t *testing.T, name, creatorID string) *model.Room {
	t.Helper()
	room, err := e.roomService.CreateRoom(context.Background(), name, "", creatorID)
	if err != nil {
		t.Fatalf("seed room %s: %v", name, err)
	}
	return room
}

func (e *env) seedMessage(t *testing.T, roomID, userID, content string, ts time.Time) {
	t.Helper()
	msg := &model.Message{
		RoomID:    roomID,
		UserID:    userID,
		Content:   content,
		Timestamp: ts,
	}
	if err := e.messages.Create(context.Background(), msg); err != nil {
		t.Fatalf("seed message %q: %v", content, err)
	}
}

// unknownID is a well-formed id that matches no document.
func unknownID() string {
	return primitive.NewObjectID().Hex()
}
