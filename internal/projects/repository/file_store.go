package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
)

// FileStore reads projects from a directory of markdown files with YAML
// frontmatter, one file per project. When the directory is missing or
// holds no markdown it falls back to a single aggregate JSON document;
// when that is unreadable too it serves an empty collection. Every call
// re-reads storage; there is no caching at this scale.
type FileStore struct {
	contentDir   string
	fallbackJSON string
}

func NewFileStore(contentDir, fallbackJSON string) *FileStore {
	return &FileStore{
		contentDir:   contentDir,
		fallbackJSON: fallbackJSON,
	}
}

func (s *FileStore) All(ctx context.Context) ([]domain.Project, error) {
	entries, err := os.ReadDir(s.contentDir)
	if err != nil {
		log.Printf("[content] directory %s not readable, falling back to JSON: %v", s.contentDir, err)
		return s.fallback(), nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		log.Printf("[content] no markdown files in %s, falling back to JSON", s.contentDir)
		return s.fallback(), nil
	}
	sort.Strings(names)

	projects := make([]domain.Project, 0, len(names))
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(s.contentDir, name))
		if err != nil {
			log.Printf("[content] skipping %s: %v", name, err)
			continue
		}
		p, err := parseFrontmatter(raw)
		if err != nil {
			log.Printf("[content] skipping %s: %v", name, err)
			continue
		}
		projects = append(projects, applyDefaults(p))
	}

	return projects, nil
}

func (s *FileStore) ByID(ctx context.Context, id string) (domain.Project, bool, error) {
	projects, err := s.All(ctx)
	if err != nil {
		return domain.Project{}, false, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Project{}, false, nil
}

func (s *FileStore) fallback() []domain.Project {
	raw, err := os.ReadFile(s.fallbackJSON)
	if err != nil {
		log.Printf("[content] fallback JSON not readable: %v", err)
		return []domain.Project{}
	}

	var doc struct {
		Projects []domain.Project `json:"projects"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("[content] fallback JSON malformed: %v", err)
		return []domain.Project{}
	}

	out := make([]domain.Project, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		out = append(out, applyDefaults(p))
	}
	return out
}

// applyDefaults normalizes a freshly decoded project: absent fields stay
// empty strings except status, which defaults to Public, and images,
// which becomes an empty list rather than nil.
func applyDefaults(p domain.Project) domain.Project {
	if p.Status == "" {
		p.Status = domain.StatusPublic
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}
