package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mindhaven/internal/model"
	"mindhaven/internal/repository"
)

// unknownAuthor is shown for messages whose author no longer exists in the
// identity store.
const unknownAuthor = "Unknown User"

type conversationService struct {
	roomRepo    repository.RoomRepository
	memberRepo  repository.MembershipRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	memberships MembershipService
}

func NewConversationService(
	roomRepo repository.RoomRepository,
	memberRepo repository.MembershipRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	memberships MembershipService,
) ConversationService {
	return &conversationService{
		roomRepo:    roomRepo,
		memberRepo:  memberRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		memberships: memberships,
	}
}

// GetRoomDetail assembles the full view of a room: metadata, roster and the
// message history in chronological order. A member whose user record has
// been deleted is dropped from the roster; a message by such a user still
// appears, attributed to "Unknown User".
func (s *conversationService) GetRoomDetail(ctx context.Context, roomID, requestingUserID string) (*model.RoomDetail, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if errors.Is(err, repository.ErrNoDocument) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	isMember, err := s.memberships.IsMember(ctx, roomID, requestingUserID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)

	memberships, err := s.memberRepo.FindByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	members := make([]model.RoomMember, 0, len(memberships))
	for _, m := range memberships {
		name, ok, err := s.resolveName(ctx, names, m.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		members = append(members, model.RoomMember{ID: m.UserID, Name: name})
	}

	messages, err := s.messageRepo.FindByRoomChronological(ctx, roomID)
	if err != nil {
		return nil, err
	}
	views := make([]model.MessageView, 0, len(messages))
	for _, msg := range messages {
		name, ok, err := s.resolveName(ctx, names, msg.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			name = unknownAuthor
		}
		views = append(views, model.MessageView{Message: msg, AuthorName: name})
	}

	return &model.RoomDetail{
		Room:     *room,
		IsMember: isMember,
		Members:  members,
		Messages: views,
	}, nil
}

func (s *conversationService) PostMessage(ctx context.Context, roomID, userID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	_, err := s.roomRepo.FindByID(ctx, roomID)
	if errors.Is(err, repository.ErrNoDocument) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	isMember, err := s.memberships.IsMember(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotAMember
	}

	message := &model.Message{
		RoomID:    roomID,
		UserID:    userID,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	// Refreshing the author's last-active timestamp is fire and forget: the
	// message is already stored, so a failure here must not fail the post.
	if err := s.userRepo.TouchLastActive(ctx, userID); err != nil {
		log.Printf("failed to update last active for user %s: %v", userID, err)
	}

	return message, nil
}

// resolveName looks up a user's display name through a per-call cache so a
// room full of messages by one author costs a single lookup.
func (s *conversationService) resolveName(ctx context.Context, cache map[string]string, userID string) (string, bool, error) {
	if name, ok := cache[userID]; ok {
		return name, name != "", nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNoDocument) {
		cache[userID] = ""
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	cache[userID] = user.Name
	return user.Name, true, nil
}
