package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAnnouncements(ctx, db); err != nil {
		problems = append(problems, "announcements: "+err.Error())
	}
	if err := ensureTeachers(ctx, db); err != nil {
		problems = append(problems, "teachers: "+err.Error())
	}
	if err := ensureAuditEvents(ctx, db); err != nil {
		problems = append(problems, "audit_events: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// ensureAnnouncements covers the two read paths: the active-window query
// (end_date range plus start_date) and the created_at descending sort.
func ensureAnnouncements(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("announcements").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "end_date", Value: 1}, {Key: "start_date", Value: 1}},
			Options: options.Index().SetName("active_window"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
	return err
}

// ensureTeachers enforces username uniqueness; the username is the
// authorization identifier, so duplicates would be ambiguous.
func ensureTeachers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("teachers").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "display_name_ci", Value: 1}},
			Options: options.Index().SetName("display_name_ci"),
		},
	})
	return err
}

func ensureAuditEvents(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("audit_events").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("timestamp_desc"),
		},
		{
			Keys:    bson.D{{Key: "announcement_id", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("announcement_timestamp"),
		},
	})
	return err
}
