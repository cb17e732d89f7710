package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/schoolhub/internal/app/system/htmlsanitize"
)

func TestMessage_Empty(t *testing.T) {
	if got := htmlsanitize.Message(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestMessage_PlainTextUnchanged(t *testing.T) {
	for _, msg := range []string{
		"School closes early on Friday.",
		"Tom & Jerry movie night",
		"Math scores: 5 < 10",
		"Bake sale > last year's",
	} {
		if got := htmlsanitize.Message(msg); got != msg {
			t.Errorf("Message(%q) = %q, want input unchanged", msg, got)
		}
	}
}

func TestMessage_RemovesScript(t *testing.T) {
	got := htmlsanitize.Message("<p>Hello</p><script>alert('xss')</script>")
	if strings.Contains(got, "script") {
		t.Errorf("expected script removed, got %q", got)
	}
	if !strings.Contains(got, "Hello") {
		t.Errorf("expected safe content preserved, got %q", got)
	}
}

func TestMessage_RemovesOnclick(t *testing.T) {
	input := `<b onclick="alert('xss')">Bold</b>`
	got := htmlsanitize.Message(input)
	if strings.Contains(got, "onclick") {
		t.Errorf("expected onclick removed, got %q", got)
	}
}

func TestMessage_KeepsBasicFormatting(t *testing.T) {
	input := "<strong>Reminder:</strong> bring permission slips"
	got := htmlsanitize.Message(input)
	if !strings.Contains(got, "<strong>") {
		t.Errorf("expected formatting preserved, got %q", got)
	}
}
