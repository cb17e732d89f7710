package teacherstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/schoolhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateUsername is returned when creating a teacher whose username
// already exists.
var ErrDuplicateUsername = errors.New("a teacher with this username already exists")

// Store provides access to the teachers collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new teacher store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teachers")}
}

// GetByUsername looks up a teacher by exact username match. Returns
// mongo.ErrNoDocuments if no teacher exists with that username.
//
// The match is deliberately exact (no case folding): the username doubles
// as the authorization identifier for privileged announcement operations.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	var t models.Teacher
	if err := s.c.FindOne(ctx, bson.M{"username": username}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Exists reports whether a teacher record with the given username exists.
func (s *Store) Exists(ctx context.Context, username string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new teacher after normalizing derived fields.
func (s *Store) Create(ctx context.Context, t models.Teacher) (models.Teacher, error) {
	t.ID = primitive.NewObjectID()
	t.DisplayNameCI = text.Fold(t.DisplayName)
	t.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Teacher{}, ErrDuplicateUsername
		}
		return models.Teacher{}, err
	}
	return t, nil
}
