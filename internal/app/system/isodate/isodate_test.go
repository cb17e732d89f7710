package isodate_test

import (
	"sort"
	"testing"
	"time"

	"github.com/dalemusser/schoolhub/internal/app/system/isodate"
)

func TestParse_Naive(t *testing.T) {
	got, err := isodate.Parse("2025-01-02T03:04:05")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_TrailingZ(t *testing.T) {
	got, err := isodate.Parse("2030-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_ExplicitOffset(t *testing.T) {
	got, err := isodate.Parse("2025-06-15T12:00:00+02:00")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_Fractional(t *testing.T) {
	got, err := isodate.Parse("2025-01-02T03:04:05.123456")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Nanosecond() != 123456000 {
		t.Errorf("nanoseconds: got %d, want 123456000", got.Nanosecond())
	}
}

func TestParse_DateOnly(t *testing.T) {
	if _, err := isodate.Parse("2025-01-02"); err != nil {
		t.Errorf("date-only should parse: %v", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2025-13-40T00:00:00", "01/02/2025"} {
		if _, err := isodate.Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestValid(t *testing.T) {
	if !isodate.Valid("2025-01-01T00:00:00") {
		t.Error("expected valid")
	}
	if isodate.Valid("bogus") {
		t.Error("expected invalid")
	}
}

func TestNow_LexicographicOrdering(t *testing.T) {
	a := isodate.Now()
	time.Sleep(2 * time.Millisecond)
	b := isodate.Now()

	pair := []string{b, a}
	sort.Strings(pair)
	if pair[0] != a {
		t.Errorf("expected %q to sort before %q", a, b)
	}
}

func TestNow_Parseable(t *testing.T) {
	if !isodate.Valid(isodate.Now()) {
		t.Error("Now() should produce a parseable timestamp")
	}
}
