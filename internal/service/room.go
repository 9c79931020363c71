package service

import (
	"context"
	"strings"
	"time"

	"mindhaven/internal/model"
	"mindhaven/internal/repository"
)

type roomService struct {
	roomRepo   repository.RoomRepository
	memberRepo repository.MembershipRepository
	cache      repository.MemberCountCache
}

func NewRoomService(
	roomRepo repository.RoomRepository,
	memberRepo repository.MembershipRepository,
	cache repository.MemberCountCache,
) RoomService {
	return &roomService{
		roomRepo:   roomRepo,
		memberRepo: memberRepo,
		cache:      cache,
	}
}

// ListRooms returns every active room annotated with the requesting user's
// membership status and the member count. Result order follows storage
// iteration order and is not specified.
func (s *roomService) ListRooms(ctx context.Context, requestingUserID string) ([]model.RoomView, error) {
	rooms, err := s.roomRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	memberships, err := s.memberRepo.FindByUser(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	joined := make(map[string]bool, len(memberships))
	for _, m := range memberships {
		joined[m.RoomID] = true
	}

	views := make([]model.RoomView, 0, len(rooms))
	for _, room := range rooms {
		id := room.ID.Hex()

		count, ok := s.cache.Get(ctx, id)
		if !ok {
			count, err = s.memberRepo.CountByRoom(ctx, id)
			if err != nil {
				return nil, err
			}
			s.cache.Set(ctx, id, count)
		}

		views = append(views, model.RoomView{
			Room:        room,
			MemberCount: count,
			IsJoined:    joined[id],
		})
	}
	return views, nil
}

func (s *roomService) CreateRoom(ctx context.Context, name, description, creatorID string) (*model.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}

	room := &model.Room{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   creatorID,
		IsActive:    true,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	// The creator's membership is a second, separate write. A crash between
	// the two leaves a room with zero members, recoverable by the creator
	// joining manually. Multi-document transactions would need a replica
	// set, which a single-mongod deployment does not have.
	membership := &model.Membership{
		RoomID:   room.ID.Hex(),
		UserID:   creatorID,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.memberRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	return room, nil
}
