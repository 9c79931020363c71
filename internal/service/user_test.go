package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindhaven/internal/service"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	user, err := e.userService.Register(ctx, "Carol@Example.com", "carol", "s3cret")
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "carol@example.com", user.Email, "emails are stored lowercased")
	assert.Empty(t, user.Password, "the returned user must not carry the hash")
	assert.False(t, user.JoinDate.IsZero())

	logged, err := e.userService.Login(ctx, "carol@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.Empty(t, logged.Password)

	_, err = e.userService.Login(ctx, "carol@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = e.userService.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	cases := []struct {
		email, name, password string
	}{
		{"", "carol", "pw"},
		{"carol@example.com", "", "pw"},
		{"carol@example.com", "carol", ""},
	}
	for _, c := range cases {
		_, err := e.userService.Register(ctx, c.email, c.name, c.password)
		assert.ErrorIs(t, err, service.ErrValidation)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.userService.Register(ctx, "carol@example.com", "carol", "pw")
	require.NoError(t, err)

	_, err = e.userService.Register(ctx, "carol@example.com", "impostor", "pw")
	assert.ErrorIs(t, err, service.ErrEmailExists)
}

func TestGetProfileCountsMessages(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := e.seedUser(t, "alice")
	room := e.seedRoom(t, "Support", user)

	e.seedMessage(t, room.ID.Hex(), user, "one", time.Now().UTC())
	e.seedMessage(t, room.ID.Hex(), user, "two", time.Now().UTC())

	profile, err := e.userService.GetProfile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Name)
	assert.Equal(t, int64(2), profile.MessageCount)
	assert.Empty(t, profile.User.Password)

	_, err = e.userService.GetProfile(ctx, unknownID())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	user := e.seedUser(t, "alice")

	require.NoError(t, e.userService.UpdateProfile(ctx, user, "Alice W.", "on a journey"))

	updated, err := e.users.FindByID(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "Alice W.", updated.Name)
	assert.Equal(t, "on a journey", updated.ProfileBio)

	err = e.userService.UpdateProfile(ctx, user, "  ", "bio")
	assert.ErrorIs(t, err, service.ErrValidation)

	err = e.userService.UpdateProfile(ctx, unknownID(), "Ghost", "")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
