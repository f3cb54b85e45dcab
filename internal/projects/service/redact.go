package service

import "github.com/nothingsolutions/portfolio-backend/internal/projects/domain"

// Placeholder copy shown on a gated row while the session is locked.
// Varying lengths keep the redacted table visually plausible.
const (
	placeholderShort  = "Lorem ipsum"
	placeholderMedium = "Lorem ipsum dolor sit amet"
	placeholderLong   = "Lorem ipsum dolor sit amet, consectetur adipiscing elit"
)

// Redact returns the locked rendering of a login-required project:
// placeholder text in place of the real field values, media stripped.
// The ID, date and status survive so the client can still key the row
// and offer the unlock affordance. This is display obfuscation only,
// not an access-control boundary; the spreadsheet intentionally shows
// that the row exists.
func Redact(p domain.Project) domain.Project {
	return domain.Project{
		ID:       p.ID,
		Images:   []string{},
		Item:     placeholderMedium,
		Client:   placeholderShort,
		Category: placeholderShort,
		Role:     placeholderLong,
		Date:     p.Date,
		Program:  placeholderShort,
		Supplier: placeholderShort,
		Notes:    placeholderLong,
		Status:   p.Status,
	}
}
