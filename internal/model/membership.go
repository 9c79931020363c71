package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership grants a user read/write access to a room. Room and user ids
// are stored as hex strings, the same shape the room_members collection of
// the original deployment uses. At most one document may exist per
// (room_id, user_id) pair; a unique index enforces this.
type Membership struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RoomID   string             `bson:"room_id" json:"room_id"`
	UserID   string             `bson:"user_id" json:"user_id"`
	JoinedAt time.Time          `bson:"joined_at" json:"joined_at"`
}
