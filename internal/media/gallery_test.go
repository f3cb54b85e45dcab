package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{Type: TypeVideo, URL: "v"},
		{Type: TypeImage, URL: "a"},
		{Type: TypeImage, URL: "b"},
	}
}

func TestGalleryRefusesEmptySequence(t *testing.T) {
	g, ok := NewGallery(nil)
	assert.False(t, ok)
	assert.Nil(t, g)
}

func TestGalleryNavigationWraps(t *testing.T) {
	g, ok := NewGallery(testItems())
	require.True(t, ok)
	require.Equal(t, 3, g.Len())

	assert.Equal(t, "v", g.Current().URL)

	assert.Equal(t, "a", g.Next().URL)
	assert.Equal(t, "b", g.Next().URL)
	// next() from the last index wraps to 0
	assert.Equal(t, "v", g.Next().URL)
	assert.Equal(t, 0, g.Index())

	// previous() from index 0 wraps to the last index
	assert.Equal(t, "b", g.Previous().URL)
	assert.Equal(t, 2, g.Index())
}

func TestGallerySelectReducesModulo(t *testing.T) {
	g, ok := NewGallery(testItems())
	require.True(t, ok)

	assert.Equal(t, "b", g.Select(2).URL)
	assert.Equal(t, "v", g.Select(3).URL)
	assert.Equal(t, "a", g.Select(7).URL)
	assert.Equal(t, "b", g.Select(-1).URL)
}

func TestGallerySingleItem(t *testing.T) {
	g, ok := NewGallery([]Item{{Type: TypeImage, URL: "only"}})
	require.True(t, ok)

	assert.Equal(t, "only", g.Next().URL)
	assert.Equal(t, "only", g.Previous().URL)
	assert.Equal(t, 0, g.Index())
}
