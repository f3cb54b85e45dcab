package domain

import "strings"

// Project is one portfolio entry as edited in the CMS. Every field is
// free text straight from the content files; the list pipeline interprets
// Date and Status, everything else is display-only.
type Project struct {
	ID       string   `json:"id" yaml:"id"`
	Images   []string `json:"images" yaml:"images"`
	Item     string   `json:"item" yaml:"item"`
	Client   string   `json:"client" yaml:"client"`
	Category string   `json:"category" yaml:"category"`
	Role     string   `json:"role" yaml:"role"`
	Date     string   `json:"date" yaml:"date"`
	Program  string   `json:"program" yaml:"program"`
	Supplier string   `json:"supplier" yaml:"supplier"`
	Notes    string   `json:"notes" yaml:"notes"`
	Status   string   `json:"status" yaml:"status"`
}

// Recognized status values. Anything else is treated as a plain,
// visible, unfeatured status.
const (
	StatusPublic         = "Public"
	StatusFeaturedPrefix = "Featured"
	StatusLoginRequired  = "Login Required"
)

// LoginRequired reports whether the project is gated behind the
// portfolio unlock password.
func (p Project) LoginRequired() bool {
	return strings.EqualFold(strings.TrimSpace(p.Status), StatusLoginRequired)
}
