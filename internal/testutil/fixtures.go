package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/schoolhub/internal/app/system/isodate"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateTeacher creates a test teacher record with the given username.
func (f *Fixtures) CreateTeacher(ctx context.Context, username, displayName string) models.Teacher {
	f.t.Helper()

	teacher := models.Teacher{
		ID:            primitive.NewObjectID(),
		Username:      username,
		DisplayName:   displayName,
		DisplayNameCI: text.Fold(displayName),
		CreatedAt:     time.Now().UTC(),
	}

	_, err := f.db.Collection("teachers").InsertOne(ctx, teacher)
	if err != nil {
		f.t.Fatalf("failed to create test teacher: %v", err)
	}

	return teacher
}

// CreateAnnouncement creates a test announcement. startDate may be nil for
// "always started".
func (f *Fixtures) CreateAnnouncement(ctx context.Context, message string, startDate *string, endDate, createdBy string) models.Announcement {
	f.t.Helper()

	ann := models.Announcement{
		ID:        primitive.NewObjectID(),
		Message:   message,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: createdBy,
		CreatedAt: isodate.Now(),
	}

	_, err := f.db.Collection("announcements").InsertOne(ctx, ann)
	if err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}

	return ann
}

// CreateAnnouncementAt creates a test announcement with an explicit
// created_at, for tests that need a deterministic sort order.
func (f *Fixtures) CreateAnnouncementAt(ctx context.Context, message string, startDate *string, endDate, createdBy, createdAt string) models.Announcement {
	f.t.Helper()

	ann := models.Announcement{
		ID:        primitive.NewObjectID(),
		Message:   message,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}

	_, err := f.db.Collection("announcements").InsertOne(ctx, ann)
	if err != nil {
		f.t.Fatalf("failed to create test announcement: %v", err)
	}

	return ann
}
