// Package media resolves the gallery sequence for a project: an
// optional YouTube video extracted from the notes field followed by the
// project's images in their stored order.
package media

import (
	"fmt"
	"regexp"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
)

// Type discriminates gallery entries.
type Type string

const (
	TypeVideo Type = "video"
	TypeImage Type = "image"
)

// Item is one gallery entry. Built fresh on every gallery open, never
// persisted.
type Item struct {
	Type         Type   `json:"type"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// idPatterns is the ordered list of recognized YouTube URL shapes; the
// first structural match wins. An ID is exactly 11 URL-safe characters.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([A-Za-z0-9_-]{11})`),
}

// videoURLPattern finds a YouTube watch or short URL embedded in free text.
var videoURLPattern = regexp.MustCompile(`https?://(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)[A-Za-z0-9_-]+\S*`)

// ExtractVideoID pulls the 11-character video identifier out of a
// YouTube URL.
func ExtractVideoID(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	for _, pattern := range idPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ExtractVideoURL scans free text for the first embedded YouTube URL.
func ExtractVideoURL(notes string) (string, bool) {
	if notes == "" {
		return "", false
	}
	if m := videoURLPattern.FindString(notes); m != "" {
		return m, true
	}
	return "", false
}

// Resolve builds the gallery sequence for a project: a video item first
// when the notes carry a resolvable YouTube URL, then every image in
// original order. An empty result means the gallery must not open.
func Resolve(p domain.Project) []Item {
	items := make([]Item, 0, len(p.Images)+1)

	if url, ok := ExtractVideoURL(p.Notes); ok {
		if id, ok := ExtractVideoID(url); ok {
			items = append(items, Item{
				Type:         TypeVideo,
				URL:          fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&rel=0", id),
				ThumbnailURL: fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", id),
			})
		}
	}

	for _, img := range p.Images {
		items = append(items, Item{Type: TypeImage, URL: img})
	}

	return items
}
