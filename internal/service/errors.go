package service

import (
	"errors"
	"fmt"
)

// Error categories. Handlers map these to HTTP statuses with errors.Is;
// specific errors below wrap a category so both checks work.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

var (
	ErrRoomNotFound  = fmt.Errorf("%w: room not found", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrNotAMember    = fmt.Errorf("%w: must join this room to send messages", ErrForbidden)
	ErrEmptyContent  = fmt.Errorf("%w: message content cannot be empty", ErrValidation)
	ErrEmptyRoomName = fmt.Errorf("%w: room name cannot be empty", ErrValidation)

	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
