package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is a time-bounded notice shown to the school community.
//
// Dates are stored as the ISO-8601 strings the caller supplied. The active
// window is derived at read time by comparing those strings against the
// current server time, also formatted as ISO-8601. Comparison is
// lexicographic, which is only sound while every writer formats timestamps
// consistently (see isodate).
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string             `bson:"message" json:"message"`
	StartDate *string            `bson:"start_date" json:"start_date"` // nil means "always started"
	EndDate   string             `bson:"end_date" json:"end_date"`
	CreatedBy string             `bson:"created_by" json:"created_by"`
	CreatedAt string             `bson:"created_at" json:"created_at"`
}
