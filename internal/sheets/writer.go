package sheets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
)

// WriteJSON writes the aggregate fallback document consumed by the
// content loader.
func WriteJSON(path string, projects []domain.Project) error {
	doc := struct {
		Projects []domain.Project `json:"projects"`
	}{Projects: projects}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteMarkdown writes one frontmatter file per project into the
// content directory, the layout the CMS edits directly.
func WriteMarkdown(dir string, projects []domain.Project) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	for _, p := range projects {
		block, err := yaml.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal project %s: %w", p.ID, err)
		}

		name := slug(p.Item)
		if name == "" {
			name = "project-" + p.ID
		}
		path := filepath.Join(dir, name+".md")

		content := "---\n" + string(block) + "---\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	s = nonSlugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}
