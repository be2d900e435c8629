// Package video classifies lesson video URLs and builds embeddable
// player URLs for YouTube links.
package video

import (
	"net/url"
	"regexp"
	"strings"
)

// Type tags the kind of video a URL points at.
type Type string

const (
	TypeNone    Type = "none"
	TypeYouTube Type = "youtube"
	TypeDirect  Type = "direct"
)

// Matches the common YouTube URL shapes:
//
//	https://www.youtube.com/watch?v=VIDEO_ID
//	https://youtu.be/VIDEO_ID
//	https://www.youtube.com/embed/VIDEO_ID
//	https://www.youtube.com/shorts/VIDEO_ID
//
// Video IDs are exactly 11 characters of [A-Za-z0-9_-].
var youtubeIDRe = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|shorts/)|youtu\.be/)([A-Za-z0-9_\-]{11})`)

// Classify maps a raw URL to a Type. Empty input is TypeNone, anything
// containing a YouTube host marker is TypeYouTube, every other non-empty
// URL is TypeDirect.
func Classify(rawURL string) Type {
	if rawURL == "" {
		return TypeNone
	}
	if IsYouTube(rawURL) {
		return TypeYouTube
	}
	return TypeDirect
}

// IsYouTube reports whether the URL contains a YouTube host marker.
// It says nothing about whether a video ID is extractable.
func IsYouTube(rawURL string) bool {
	return strings.Contains(rawURL, "youtube.com") || strings.Contains(rawURL, "youtu.be")
}

// YouTubeID extracts the 11-character video ID from any supported
// YouTube URL shape. ok is false when no ID can be extracted.
func YouTubeID(rawURL string) (id string, ok bool) {
	if rawURL == "" {
		return "", false
	}
	m := youtubeIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// EmbedURL returns a privacy-enhanced embed URL on youtube-nocookie.com,
// which sets no cookies until the user clicks play. Returns "" when the
// URL has no extractable video ID.
//
// rel=0 suppresses related videos from other channels after playback;
// modestbranding=1 reduces YouTube logo prominence.
func EmbedURL(rawURL string) string {
	id, ok := YouTubeID(rawURL)
	if !ok {
		return ""
	}
	params := url.Values{}
	params.Set("rel", "0")
	params.Set("modestbranding", "1")
	return "https://www.youtube-nocookie.com/embed/" + id + "?" + params.Encode()
}
