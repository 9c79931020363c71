package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Room is never mutated after creation; IsActive is a soft-delete switch
// flipped outside this application.
type Room struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
}

// RoomView is the directory projection of a room for one viewer.
type RoomView struct {
	Room
	MemberCount int64 `bson:"-" json:"member_count"`
	IsJoined    bool  `bson:"-" json:"is_joined"`
}

type RoomMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoomDetail is the assembled view of one room: metadata, roster and
// the full message history in chronological order.
type RoomDetail struct {
	Room     Room          `json:"room"`
	IsMember bool          `json:"is_member"`
	Members  []RoomMember  `json:"members"`
	Messages []MessageView `json:"messages"`
}
