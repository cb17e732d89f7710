package announcementstore_test

import (
	"testing"

	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	"github.com/dalemusser/schoolhub/internal/app/system/isodate"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/dalemusser/schoolhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestCreate_AssignsIDAndCreatedAt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Announcement{
		Message:   "Spring concert Friday",
		EndDate:   "2030-01-01T00:00:00",
		CreatedBy: "ms_lopez",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected assigned id")
	}
	if created.CreatedAt == "" {
		t.Error("expected assigned created_at")
	}
	if !isodate.Valid(created.CreatedAt) {
		t.Errorf("created_at %q should be a valid ISO timestamp", created.CreatedAt)
	}

	loaded, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded.Message != "Spring concert Friday" {
		t.Errorf("message: got %q", loaded.Message)
	}
	if loaded.EndDate != "2030-01-01T00:00:00" {
		t.Errorf("end_date: got %q", loaded.EndDate)
	}
	if loaded.StartDate != nil {
		t.Errorf("start_date: got %v, want nil", *loaded.StartDate)
	}
}

func TestListActive_ExcludesExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAnnouncement(ctx, "expired", nil, "2020-01-01T00:00:00", "ms_lopez")
	fx.CreateAnnouncement(ctx, "current", nil, "2099-01-01T00:00:00", "ms_lopez")

	items, err := store.ListActive(ctx, isodate.Now())
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Message != "current" {
		t.Errorf("got %q, want %q", items[0].Message, "current")
	}
}

func TestListActive_ExcludesNotYetStarted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAnnouncement(ctx, "future", strPtr("2098-01-01T00:00:00"), "2099-01-01T00:00:00", "ms_lopez")
	fx.CreateAnnouncement(ctx, "started", strPtr("2020-01-01T00:00:00"), "2099-01-01T00:00:00", "ms_lopez")
	fx.CreateAnnouncement(ctx, "no start", nil, "2099-01-01T00:00:00", "ms_lopez")

	items, err := store.ListActive(ctx, isodate.Now())
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.Message == "future" {
			t.Error("future announcement should not be active")
		}
	}
}

func TestListActive_OrderedByCreatedAtDesc(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAnnouncementAt(ctx, "oldest", nil, "2099-01-01T00:00:00", "ms_lopez", "2024-01-01T00:00:00.000000")
	fx.CreateAnnouncementAt(ctx, "newest", nil, "2099-01-01T00:00:00", "ms_lopez", "2024-03-01T00:00:00.000000")
	fx.CreateAnnouncementAt(ctx, "middle", nil, "2099-01-01T00:00:00", "ms_lopez", "2024-02-01T00:00:00.000000")

	items, err := store.ListActive(ctx, isodate.Now())
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}

	want := []string{"newest", "middle", "oldest"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, w := range want {
		if items[i].Message != w {
			t.Errorf("position %d: got %q, want %q", i, items[i].Message, w)
		}
	}
}

func TestListAll_IncludesExpired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAnnouncementAt(ctx, "expired", nil, "2020-01-01T00:00:00", "ms_lopez", "2024-01-01T00:00:00.000000")
	fx.CreateAnnouncementAt(ctx, "current", nil, "2099-01-01T00:00:00", "ms_lopez", "2024-02-01T00:00:00.000000")

	items, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Message != "current" || items[1].Message != "expired" {
		t.Errorf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != announcementstore.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ann := fx.CreateAnnouncement(ctx, "original", strPtr("2025-01-01T00:00:00"), "2099-01-01T00:00:00", "ms_lopez")

	err := store.Update(ctx, ann.ID, bson.M{"message": "edited"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := store.GetByID(ctx, ann.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.Message != "edited" {
		t.Errorf("message: got %q, want %q", updated.Message, "edited")
	}
	// Untouched fields keep prior values.
	if updated.StartDate == nil || *updated.StartDate != "2025-01-01T00:00:00" {
		t.Errorf("start_date changed unexpectedly: %v", updated.StartDate)
	}
	if updated.EndDate != "2099-01-01T00:00:00" {
		t.Errorf("end_date changed unexpectedly: %q", updated.EndDate)
	}
}

func TestUpdate_ClearStartDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ann := fx.CreateAnnouncement(ctx, "has start", strPtr("2025-01-01T00:00:00"), "2099-01-01T00:00:00", "ms_lopez")

	if err := store.Update(ctx, ann.ID, bson.M{"start_date": nil}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := store.GetByID(ctx, ann.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.StartDate != nil {
		t.Errorf("start_date: got %v, want nil", *updated.StartDate)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Update(ctx, primitive.NewObjectID(), bson.M{"message": "x"})
	if err != announcementstore.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestUpdate_EmptySetIsNoOp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// No fields supplied: nothing to write, not an error, even for an
	// unknown id.
	if err := store.Update(ctx, primitive.NewObjectID(), bson.M{}); err != nil {
		t.Errorf("empty update should be a no-op, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ann := fx.CreateAnnouncement(ctx, "to delete", nil, "2099-01-01T00:00:00", "ms_lopez")

	if err := store.Delete(ctx, ann.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.GetByID(ctx, ann.ID); err != announcementstore.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound after delete", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := announcementstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Delete(ctx, primitive.NewObjectID()); err != announcementstore.ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
