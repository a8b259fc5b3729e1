package booklink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_BookingLinks(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantID  string
	}{
		{"book path", "https://boinvit.com/book/biz-123", "biz-123"},
		{"booking path", "https://boinvit.com/booking/abc", "abc"},
		{"public booking path", "https://app.boinvit.com/public-booking/xyz-9", "xyz-9"},
		{"trailing slash", "https://boinvit.com/book/biz-123/", "biz-123"},
		{"extra segments after id", "https://boinvit.com/book/biz-123/services", "biz-123"},
		{"surrounding whitespace", "  https://boinvit.com/booking/abc  ", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.payload)
			assert.Equal(t, KindBusiness, res.Kind)
			assert.Equal(t, tt.wantID, res.BusinessID)
		})
	}
}

func TestResolve_ExternalURL(t *testing.T) {
	res := Resolve("https://example.com/some/page")
	assert.Equal(t, KindExternalURL, res.Kind)
	assert.Equal(t, "https://example.com/some/page", res.URL)
	assert.Empty(t, res.BusinessID)
}

func TestResolve_BookingMarkerWithoutID(t *testing.T) {
	// A booking path with no id after the marker is just an external URL.
	res := Resolve("https://boinvit.com/book/")
	assert.Equal(t, KindExternalURL, res.Kind)
}

func TestResolve_PlainText(t *testing.T) {
	for _, payload := range []string{"hello world", "BIZ-123", "ftp://example.com/file", ""} {
		res := Resolve(payload)
		assert.Equal(t, KindText, res.Kind, "payload %q", payload)
		assert.Equal(t, payload, res.Text)
	}
}
