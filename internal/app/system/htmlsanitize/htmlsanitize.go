// Package htmlsanitize strips unsafe HTML from announcement messages.
//
// Announcements are authored by teachers and rendered by several school
// frontends, so any markup in the message is filtered through a UGC policy
// before it is stored. Plain text passes through unchanged.
package htmlsanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Message sanitizes an announcement message. Safe formatting tags survive;
// scripts, event handlers, and javascript: URLs do not.
//
// The policy entity-escapes bare text, but messages are stored and listed
// as submitted, so the escaping is undone afterward. "Tom & Jerry" stays
// "Tom & Jerry" instead of becoming "Tom &amp; Jerry".
func Message(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(policy.Sanitize(s))
}
