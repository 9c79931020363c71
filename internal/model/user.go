package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Password   string             `bson:"password" json:"-"`
	ProfileBio string             `bson:"profile_bio" json:"profile_bio"`
	JoinDate   time.Time          `bson:"join_date" json:"join_date"`
	LastActive time.Time          `bson:"last_active" json:"last_active"`
}

func (u *User) SanitizePassword() {
	u.Password = ""
}
