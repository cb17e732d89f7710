package announcementstore

import (
	"context"
	"errors"

	"github.com/dalemusser/schoolhub/internal/app/system/isodate"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no announcement matches the given id.
var ErrNotFound = errors.New("announcement not found")

// Store provides access to the announcements collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new announcement store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("announcements")}
}

// ListActive returns announcements whose window contains now, most recently
// created first. now is an ISO-8601 string; the range conditions compare
// strings lexicographically, the same way the rest of the system formats
// and compares these dates.
func (s *Store) ListActive(ctx context.Context, now string) ([]models.Announcement, error) {
	filter := bson.M{
		"$and": bson.A{
			bson.M{"end_date": bson.M{"$gte": now}},
			bson.M{"$or": bson.A{
				bson.M{"start_date": nil},
				bson.M{"start_date": bson.M{"$lte": now}},
			}},
		},
	}
	return s.find(ctx, filter)
}

// ListAll returns every announcement regardless of active window, most
// recently created first.
func (s *Store) ListAll(ctx context.Context) ([]models.Announcement, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	announcements := []models.Announcement{}
	if err := cur.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// GetByID loads an announcement by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	var a models.Announcement
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a new announcement, assigning its id and created_at.
// Date fields are stored exactly as supplied; validation happens at the
// handler layer before this is called.
func (s *Store) Create(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = isodate.Now()

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Announcement{}, err
	}
	return a, nil
}

// Update applies a partial field set to the announcement with the given id.
// Only the keys present in set are written. Returns ErrNotFound if no
// record matches.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	if len(set) == 0 {
		return nil
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the announcement with the given id. Returns ErrNotFound if
// no record matches.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
