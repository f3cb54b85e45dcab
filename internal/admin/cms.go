// Package admin serves the configuration consumed by the Decap CMS
// admin panel. The field schema here mirrors the project content model;
// the panel itself is third-party code loaded in the browser.
package admin

// CMSConfig is the Decap CMS configuration document.
type CMSConfig struct {
	Backend      Backend      `yaml:"backend"`
	MediaFolder  string       `yaml:"media_folder"`
	PublicFolder string       `yaml:"public_folder"`
	Collections  []Collection `yaml:"collections"`
}

type Backend struct {
	Name   string `yaml:"name"`
	Repo   string `yaml:"repo"`
	Branch string `yaml:"branch"`
	// BaseURL points the CMS OAuth client at this service's relay.
	BaseURL      string `yaml:"base_url,omitempty"`
	AuthEndpoint string `yaml:"auth_endpoint,omitempty"`
}

type Collection struct {
	Name   string  `yaml:"name"`
	Label  string  `yaml:"label"`
	Folder string  `yaml:"folder"`
	Create bool    `yaml:"create"`
	Slug   string  `yaml:"slug"`
	Editor *Editor `yaml:"editor,omitempty"`
	Fields []Field `yaml:"fields"`
}

type Editor struct {
	Preview bool `yaml:"preview"`
}

type Field struct {
	Label    string   `yaml:"label"`
	Name     string   `yaml:"name"`
	Widget   string   `yaml:"widget"`
	Hint     string   `yaml:"hint,omitempty"`
	Required *bool    `yaml:"required,omitempty"`
	Options  []string `yaml:"options,omitempty"`
	Default  string   `yaml:"default,omitempty"`
	Field    *Field   `yaml:"field,omitempty"`
}

// DefaultCMSConfig builds the panel configuration for the given content
// repository.
func DefaultCMSConfig(repo, branch, relayBaseURL string) CMSConfig {
	optional := false

	return CMSConfig{
		Backend: Backend{
			Name:         "github",
			Repo:         repo,
			Branch:       branch,
			BaseURL:      relayBaseURL,
			AuthEndpoint: "api/auth",
		},
		MediaFolder:  "public/uploads",
		PublicFolder: "/uploads",
		Collections: []Collection{
			{
				Name:   "projects",
				Label:  "Projects",
				Folder: "content/projects",
				Create: true,
				Slug:   "{{slug}}",
				Editor: &Editor{Preview: false},
				Fields: []Field{
					{Label: "ID", Name: "id", Widget: "string", Hint: "Unique project ID"},
					{Label: "Title", Name: "item", Widget: "string"},
					{Label: "Client", Name: "client", Widget: "string", Required: &optional},
					{Label: "Category", Name: "category", Widget: "string", Required: &optional, Hint: "e.g., Event Flyers, Physical Goods, Website"},
					{Label: "Role", Name: "role", Widget: "string", Required: &optional, Hint: "e.g., Graphic Design, Project Management"},
					{Label: "Date", Name: "date", Widget: "string", Required: &optional, Hint: "Format: MM.YYYY or YYYY"},
					{Label: "Program", Name: "program", Widget: "string", Required: &optional, Hint: "Software or tools used"},
					{Label: "Supplier", Name: "supplier", Widget: "string", Required: &optional},
					{Label: "Status", Name: "status", Widget: "select", Options: []string{"Public", "Featured 1", "Featured 2", "Featured 3", "Login Required", "Archived"}, Default: "Public"},
					{Label: "Notes", Name: "notes", Widget: "text", Required: &optional},
					{Label: "Images", Name: "images", Widget: "list", Required: &optional, Field: &Field{Label: "Image", Name: "image", Widget: "image"}},
				},
			},
		},
	}
}
