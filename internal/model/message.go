package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is immutable once created.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RoomID    string             `bson:"room_id" json:"room_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Content   string             `bson:"content" json:"content"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// MessageView is a message with the author's display name resolved.
type MessageView struct {
	Message
	AuthorName string `bson:"-" json:"author_name"`
}
