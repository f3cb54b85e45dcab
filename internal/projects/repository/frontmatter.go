package repository

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
)

const frontmatterDelim = "---"

// parseFrontmatter decodes the leading "---"-delimited YAML block of a
// markdown content file into a project. The markdown body after the
// block is ignored; the CMS keeps all fields in the frontmatter.
func parseFrontmatter(raw []byte) (domain.Project, error) {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	rest, ok := strings.CutPrefix(text, frontmatterDelim+"\n")
	if !ok {
		return domain.Project{}, fmt.Errorf("missing frontmatter block")
	}

	block, _, ok := strings.Cut(rest, "\n"+frontmatterDelim)
	if !ok {
		return domain.Project{}, fmt.Errorf("unterminated frontmatter block")
	}

	var p domain.Project
	if err := yaml.Unmarshal([]byte(block), &p); err != nil {
		return domain.Project{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	return p, nil
}
