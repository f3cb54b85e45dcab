package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
)

func TestExtractVideoID(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ",
	}
	for _, url := range urls {
		t.Run(url, func(t *testing.T) {
			id, ok := ExtractVideoID(url)
			require.True(t, ok)
			assert.Equal(t, "dQw4w9WgXcQ", id)
		})
	}

	t.Run("rejects non-YouTube URLs", func(t *testing.T) {
		for _, url := range []string{
			"",
			"https://vimeo.com/123456789",
			"https://example.com/watch?v=dQw4w9WgXcQ0000",
			"https://www.youtube.com/watch?v=short",
		} {
			_, ok := ExtractVideoID(url)
			assert.False(t, ok, "url %q must not yield an ID", url)
		}
	})
}

func TestExtractVideoURL(t *testing.T) {
	t.Run("finds the first URL in free text", func(t *testing.T) {
		url, ok := ExtractVideoURL("teaser here https://youtu.be/dQw4w9WgXcQ and more text")
		require.True(t, ok)
		assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", url)
	})

	t.Run("watch URL with query tail", func(t *testing.T) {
		url, ok := ExtractVideoURL("see https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s")
		require.True(t, ok)
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", url)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := ExtractVideoURL("just notes, no links")
		assert.False(t, ok)
		_, ok = ExtractVideoURL("")
		assert.False(t, ok)
	})
}

func TestResolve(t *testing.T) {
	t.Run("video prepended before images", func(t *testing.T) {
		items := Resolve(domain.Project{
			Images: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
			Notes:  "cut: https://youtu.be/dQw4w9WgXcQ",
		})
		require.Len(t, items, 3)

		assert.Equal(t, TypeVideo, items[0].Type)
		assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&rel=0", items[0].URL)
		assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg", items[0].ThumbnailURL)

		assert.Equal(t, TypeImage, items[1].Type)
		assert.Equal(t, "/uploads/a.jpg", items[1].URL)
		assert.Equal(t, "/uploads/b.jpg", items[2].URL)
	})

	t.Run("images only", func(t *testing.T) {
		items := Resolve(domain.Project{Images: []string{"/uploads/a.jpg"}, Notes: "plain notes"})
		require.Len(t, items, 1)
		assert.Equal(t, TypeImage, items[0].Type)
	})

	t.Run("unresolvable video URL contributes nothing", func(t *testing.T) {
		items := Resolve(domain.Project{Notes: "https://youtu.be/short"})
		assert.Empty(t, items)
	})

	t.Run("empty project yields empty sequence", func(t *testing.T) {
		assert.Empty(t, Resolve(domain.Project{}))
	})
}
