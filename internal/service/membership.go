package service

import (
	"context"
	"errors"
	"time"

	"mindhaven/internal/model"
	"mindhaven/internal/repository"
)

type membershipService struct {
	roomRepo   repository.RoomRepository
	memberRepo repository.MembershipRepository
	cache      repository.MemberCountCache
}

func NewMembershipService(
	roomRepo repository.RoomRepository,
	memberRepo repository.MembershipRepository,
	cache repository.MemberCountCache,
) MembershipService {
	return &membershipService{
		roomRepo:   roomRepo,
		memberRepo: memberRepo,
		cache:      cache,
	}
}

func (s *membershipService) IsMember(ctx context.Context, roomID, userID string) (bool, error) {
	_, err := s.memberRepo.Find(ctx, roomID, userID)
	if errors.Is(err, repository.ErrNoDocument) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *membershipService) Join(ctx context.Context, roomID, userID string) (bool, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if errors.Is(err, repository.ErrNoDocument) {
		return false, ErrRoomNotFound
	}
	if err != nil {
		return false, err
	}
	if !room.IsActive {
		return false, ErrRoomNotFound
	}

	_, err = s.memberRepo.Find(ctx, roomID, userID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, repository.ErrNoDocument) {
		return false, err
	}

	membership := &model.Membership{
		RoomID:   roomID,
		UserID:   userID,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		// Two concurrent joins can both pass the lookup above; the unique
		// (room_id, user_id) index decides the race and the loser lands
		// here. That is the idempotent already-member outcome.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return true, nil
		}
		return false, err
	}

	s.cache.Invalidate(ctx, roomID)
	return false, nil
}

func (s *membershipService) Leave(ctx context.Context, roomID, userID string) error {
	_, err := s.roomRepo.FindByID(ctx, roomID)
	if errors.Is(err, repository.ErrNoDocument) {
		return ErrRoomNotFound
	}
	if err != nil {
		return err
	}

	deleted, err := s.memberRepo.Delete(ctx, roomID, userID)
	if err != nil {
		return err
	}
	// Leaving a room the user never joined is a no-op, not an error.
	if deleted {
		s.cache.Invalidate(ctx, roomID)
	}
	return nil
}
