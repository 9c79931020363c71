package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindhaven/internal/model"
	"mindhaven/internal/service"
)

func TestCreateRoomRejectsEmptyName(t *testing.T) {
	e := newEnv()
	user := e.seedUser(t, "alice")

	for _, name := range []string{"", "   "} {
		_, err := e.roomService.CreateRoom(context.Background(), name, "desc", user)
		assert.ErrorIs(t, err, service.ErrValidation, "name %q", name)
	}
}

func TestCreateRoomEnrollsCreator(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := e.seedUser(t, "alice")

	room, err := e.roomService.CreateRoom(ctx, "Support", "a place to talk", user)
	require.NoError(t, err)
	assert.False(t, room.ID.IsZero())
	assert.True(t, room.IsActive)
	assert.Equal(t, user, room.CreatedBy)
	assert.False(t, room.CreatedAt.IsZero())

	isMember, err := e.membership.IsMember(ctx, room.ID.Hex(), user)
	require.NoError(t, err)
	assert.True(t, isMember, "the creator is the room's first member")
}

func TestListRoomsAnnotatesViewer(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	alice := e.seedUser(t, "alice")
	bob := e.seedUser(t, "bob")

	support := e.seedRoom(t, "Support", alice)
	e.seedRoom(t, "Mindfulness", bob)

	_, err := e.membership.Join(ctx, support.ID.Hex(), bob)
	require.NoError(t, err)

	views, err := e.roomService.ListRooms(ctx, bob)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byName := map[string]model.RoomView{}
	for _, v := range views {
		byName[v.Name] = v
	}

	assert.True(t, byName["Support"].IsJoined)
	assert.Equal(t, int64(2), byName["Support"].MemberCount)
	assert.True(t, byName["Mindfulness"].IsJoined)
	assert.Equal(t, int64(1), byName["Mindfulness"].MemberCount)

	views, err = e.roomService.ListRooms(ctx, alice)
	require.NoError(t, err)
	byName = map[string]model.RoomView{}
	for _, v := range views {
		byName[v.Name] = v
	}
	assert.True(t, byName["Support"].IsJoined)
	assert.False(t, byName["Mindfulness"].IsJoined)
}

func TestListRoomsExcludesInactive(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := e.seedUser(t, "alice")
	e.seedRoom(t, "Support", user)

	archived := &model.Room{
		Name:      "Archived",
		CreatedAt: time.Now().UTC(),
		CreatedBy: user,
		IsActive:  false,
	}
	require.NoError(t, e.rooms.Create(ctx, archived))

	views, err := e.roomService.ListRooms(ctx, user)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Support", views[0].Name)
}

// The full directory/membership/messaging round trip of the community
// feature.
func TestCommunityScenario(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	alice := e.seedUser(t, "alice")
	bob := e.seedUser(t, "bob")

	room, err := e.roomService.CreateRoom(ctx, "Support", "peer support", alice)
	require.NoError(t, err)
	roomID := room.ID.Hex()

	views, err := e.roomService.ListRooms(ctx, alice)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].MemberCount)
	assert.True(t, views[0].IsJoined)

	alreadyMember, err := e.membership.Join(ctx, roomID, bob)
	require.NoError(t, err)
	assert.False(t, alreadyMember)

	views, err = e.roomService.ListRooms(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views[0].MemberCount)
	assert.True(t, views[0].IsJoined)

	views, err = e.roomService.ListRooms(ctx, alice)
	require.NoError(t, err)
	assert.True(t, views[0].IsJoined)

	_, err = e.conversations.PostMessage(ctx, roomID, bob, "hi")
	require.NoError(t, err)

	detail, err := e.conversations.GetRoomDetail(ctx, roomID, alice)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 1)
	assert.Equal(t, "hi", detail.Messages[0].Content)
	assert.Equal(t, "bob", detail.Messages[0].AuthorName)
	assert.Len(t, detail.Members, 2)

	require.NoError(t, e.membership.Leave(ctx, roomID, bob))

	views, err = e.roomService.ListRooms(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views[0].MemberCount)
	assert.False(t, views[0].IsJoined)

	_, err = e.conversations.PostMessage(ctx, roomID, bob, "still here?")
	assert.ErrorIs(t, err, service.ErrForbidden)
}
