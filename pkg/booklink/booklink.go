// Package booklink resolves scanned QR payloads and shared links into
// in-app destinations. Booking URLs carry the business identifier as the
// trailing path segment after /book/, /booking/ or /public-booking/.
package booklink

import (
	"net/url"
	"strings"
)

// Kind classifies a scanned payload
type Kind string

const (
	// KindBusiness means the payload is a booking link for a business
	KindBusiness Kind = "business"
	// KindExternalURL means the payload is a URL outside the booking flow
	KindExternalURL Kind = "external_url"
	// KindText means the payload is not a URL at all
	KindText Kind = "text"
)

// bookingPathMarkers are the path prefixes recognized as booking links
var bookingPathMarkers = []string{"/book/", "/booking/", "/public-booking/"}

// Resolution is the outcome of classifying a payload
type Resolution struct {
	Kind       Kind
	BusinessID string // set when Kind == KindBusiness
	URL        string // set when the payload parsed as a URL
	Text       string // original payload, set when Kind == KindText
}

// Resolve classifies a raw scanned payload
func Resolve(payload string) Resolution {
	trimmed := strings.TrimSpace(payload)

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return Resolution{Kind: KindText, Text: payload}
	}

	if id, ok := businessIDFromPath(parsed.Path); ok {
		return Resolution{Kind: KindBusiness, BusinessID: id, URL: trimmed}
	}

	return Resolution{Kind: KindExternalURL, URL: trimmed}
}

// businessIDFromPath extracts the business id that follows a booking marker.
// The id is the first path segment after the marker; anything beyond it
// (e.g. /book/<id>/services) is ignored.
func businessIDFromPath(path string) (string, bool) {
	for _, marker := range bookingPathMarkers {
		idx := strings.Index(path, marker)
		if idx < 0 {
			continue
		}
		rest := path[idx+len(marker):]
		rest = strings.Trim(rest, "/")
		if rest == "" {
			continue
		}
		if slash := strings.IndexByte(rest, '/'); slash >= 0 {
			rest = rest[:slash]
		}
		return rest, true
	}
	return "", false
}
