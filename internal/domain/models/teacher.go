package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Teacher is a credential record in the teachers collection.
//
// This service authorizes privileged announcement operations by the mere
// existence of a teacher record matching the supplied username. The
// password hash is written by seeding for the benefit of the wider system's
// login flow and is never checked here.
type Teacher struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username      string             `bson:"username" json:"username"`
	DisplayName   string             `bson:"display_name" json:"display_name"`
	DisplayNameCI string             `bson:"display_name_ci" json:"-"`
	PasswordHash  string             `bson:"password_hash,omitempty" json:"-"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
