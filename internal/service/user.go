package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"mindhaven/internal/model"
	"mindhaven/internal/pkg/auth"
	"mindhaven/internal/repository"
)

// Profile is a user plus aggregates shown on the profile page.
type Profile struct {
	User         model.User `json:"user"`
	MessageCount int64      `json:"message_count"`
}

type userService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
}

func NewUserService(userRepo repository.UserRepository, messageRepo repository.MessageRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

func (s *userService) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, repository.ErrNoDocument) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.User{
		Email:      email,
		Name:       name,
		Password:   hash,
		JoinDate:   now,
		LastActive: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The email unique index closes the find-before-insert race the
		// same way the membership index does for joins.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	user.SanitizePassword()
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNoDocument) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastActive(ctx, user.ID.Hex()); err != nil {
		log.Printf("failed to update last active for user %s: %v", user.ID.Hex(), err)
	}

	user.SanitizePassword()
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNoDocument) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	count, err := s.messageRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.SanitizePassword()
	return &Profile{User: *user, MessageCount: count}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, name, bio string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	err := s.userRepo.UpdateProfile(ctx, userID, name, bio)
	if errors.Is(err, repository.ErrNoDocument) {
		return ErrUserNotFound
	}
	return err
}
