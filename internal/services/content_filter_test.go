package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFilterCheck(t *testing.T) {
	filter := NewContentFilter()

	tests := []struct {
		name   string
		text   string
		ok     bool
		reason string
	}{
		{"empty comment is a rating-only review", "", true, ""},
		{"plain comment", "The application process was well organized.", true, ""},
		{"profanity", "This was a fucking waste of time", false, "inappropriate_language"},
		{"profanity case insensitive", "What a SCAM", false, "inappropriate_language"},
		{"url", "More info at https://example.com/offer", false, "url_not_allowed"},
		{"www url", "see www.example.com for details", false, "url_not_allowed"},
		{"phone number", "Call me at 555-123-4567", false, "contact_info_not_allowed"},
		{"repeated characters", "sooooo good!!!!", false, "spam_detected"},
		{"word containing banned substring", "I passed my assessment", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := filter.Check(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	filter := NewContentFilter()

	assert.Equal(t, "URLs and web links are not allowed in reviews.", filter.RejectionMessage("url_not_allowed"))
	assert.Equal(t, "Your review does not meet our content guidelines.", filter.RejectionMessage("unknown_reason"))
}
