package sheets

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
	"github.com/nothingsolutions/portfolio-backend/internal/projects/repository"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "projects.json")
	projects := []domain.Project{
		{ID: "1", Item: "Launch", Images: []string{"/uploads/a.jpg"}, Status: "Public"},
		{ID: "2", Item: "Flyer", Images: []string{}, Status: "Login Required"},
	}

	require.NoError(t, WriteJSON(path, projects))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, projects, doc.Projects)
}

func TestWriteMarkdownReadableByFileStore(t *testing.T) {
	dir := t.TempDir()
	projects := []domain.Project{
		{ID: "1", Item: "Product Launch", Images: []string{"/uploads/a.jpg"}, Date: "11.2025", Status: "Featured 1"},
		{ID: "2", Item: "", Status: "Public"},
	}

	require.NoError(t, WriteMarkdown(dir, projects))

	store := repository.NewFileStore(dir, "")
	loaded, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	byID := map[string]domain.Project{}
	for _, p := range loaded {
		byID[p.ID] = p
	}

	assert.Equal(t, "Product Launch", byID["1"].Item)
	assert.Equal(t, []string{"/uploads/a.jpg"}, byID["1"].Images)
	assert.Equal(t, "Featured 1", byID["1"].Status)
	assert.Equal(t, "Public", byID["2"].Status)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "product-launch", slug("Product Launch"))
	assert.Equal(t, "event-flyers-2024", slug("  Event Flyers: 2024! "))
	assert.Equal(t, "", slug("???"))
}
