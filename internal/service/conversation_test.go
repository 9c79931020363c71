package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"mindhaven/internal/service"
)

func TestPostMessageRequiresMembership(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	creator := e.seedUser(t, "alice")
	outsider := e.seedUser(t, "bob")
	room := e.seedRoom(t, "Support", creator)

	_, err := e.conversations.PostMessage(ctx, room.ID.Hex(), outsider, "hello")
	assert.ErrorIs(t, err, service.ErrForbidden)
	assert.ErrorContains(t, err, "must join this room to send messages")

	count, err := e.gw.Count(ctx, "messages", bson.M{"room_id": room.ID.Hex()})
	require.NoError(t, err)
	assert.Zero(t, count, "a rejected post must not persist a message")
}

func TestPostMessageRejectsEmptyContent(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	creator := e.seedUser(t, "alice")
	room := e.seedRoom(t, "Support", creator)

	for _, content := range []string{"", "   "} {
		_, err := e.conversations.PostMessage(ctx, room.ID.Hex(), creator, content)
		assert.ErrorIs(t, err, service.ErrValidation, "content %q", content)
	}

	count, err := e.gw.Count(ctx, "messages", bson.M{"room_id": room.ID.Hex()})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostMessageRoomNotFound(t *testing.T) {
	e := newEnv()
	user := e.seedUser(t, "alice")

	_, err := e.conversations.PostMessage(context.Background(), unknownID(), user, "hello")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPostMessageUpdatesLastActive(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	creator := e.seedUser(t, "alice")
	room := e.seedRoom(t, "Support", creator)

	before, err := e.users.FindByID(ctx, creator)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	msg, err := e.conversations.PostMessage(ctx, room.ID.Hex(), creator, "hello")
	require.NoError(t, err)
	assert.False(t, msg.ID.IsZero())
	assert.Equal(t, "hello", msg.Content)

	after, err := e.users.FindByID(ctx, creator)
	require.NoError(t, err)
	assert.True(t, after.LastActive.After(before.LastActive))
}

func TestGetRoomDetailMessageOrdering(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	userA := e.seedUser(t, "alice")
	userB := e.seedUser(t, "bob")
	room := e.seedRoom(t, "Support", userA)

	base := time.Now().UTC().Truncate(time.Millisecond)
	t1 := base.Add(-3 * time.Minute)
	t2 := base.Add(-2 * time.Minute)
	t3 := base.Add(-1 * time.Minute)

	// Inserted out of chronological order on purpose.
	e.seedMessage(t, room.ID.Hex(), userB, "second", t2)
	e.seedMessage(t, room.ID.Hex(), userA, "first", t1)
	e.seedMessage(t, room.ID.Hex(), userA, "third", t3)

	detail, err := e.conversations.GetRoomDetail(ctx, room.ID.Hex(), userA)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 3)

	assert.Equal(t, "first", detail.Messages[0].Content)
	assert.Equal(t, "second", detail.Messages[1].Content)
	assert.Equal(t, "third", detail.Messages[2].Content)
	assert.Equal(t, "alice", detail.Messages[0].AuthorName)
	assert.Equal(t, "bob", detail.Messages[1].AuthorName)
}

func TestGetRoomDetailTiesKeepInsertionOrder(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := e.seedUser(t, "alice")
	room := e.seedRoom(t, "Support", user)

	ts := time.Now().UTC().Truncate(time.Millisecond)
	e.seedMessage(t, room.ID.Hex(), user, "one", ts)
	e.seedMessage(t, room.ID.Hex(), user, "two", ts)
	e.seedMessage(t, room.ID.Hex(), user, "three", ts)

	detail, err := e.conversations.GetRoomDetail(ctx, room.ID.Hex(), user)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 3)
	assert.Equal(t, "one", detail.Messages[0].Content)
	assert.Equal(t, "two", detail.Messages[1].Content)
	assert.Equal(t, "three", detail.Messages[2].Content)
}

func TestGetRoomDetailVanishedUsers(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	creator := e.seedUser(t, "alice")
	room := e.seedRoom(t, "Support", creator)

	// A membership and a message from a user that no longer exists in the
	// identity store.
	ghost := unknownID()
	_, err := e.gw.Insert(ctx, "room_members", bson.M{
		"room_id": room.ID.Hex(), "user_id": ghost, "joined_at": time.Now().UTC(),
	})
	require.NoError(t, err)
	e.seedMessage(t, room.ID.Hex(), ghost, "boo", time.Now().UTC())

	detail, err := e.conversations.GetRoomDetail(ctx, room.ID.Hex(), creator)
	require.NoError(t, err)

	require.Len(t, detail.Members, 1, "vanished users are dropped from the roster")
	assert.Equal(t, "alice", detail.Members[0].Name)

	require.Len(t, detail.Messages, 1)
	assert.Equal(t, "Unknown User", detail.Messages[0].AuthorName)
}

func TestGetRoomDetailNotFound(t *testing.T) {
	e := newEnv()
	user := e.seedUser(t, "alice")

	_, err := e.conversations.GetRoomDetail(context.Background(), unknownID(), user)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = e.conversations.GetRoomDetail(context.Background(), "garbage", user)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetRoomDetailMembershipFlag(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	creator := e.seedUser(t, "alice")
	visitor := e.seedUser(t, "bob")
	room := e.seedRoom(t, "Support", creator)

	detail, err := e.conversations.GetRoomDetail(ctx, room.ID.Hex(), visitor)
	require.NoError(t, err)
	assert.False(t, detail.IsMember)

	detail, err = e.conversations.GetRoomDetail(ctx, room.ID.Hex(), creator)
	require.NoError(t, err)
	assert.True(t, detail.IsMember)
}
