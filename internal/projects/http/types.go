package http

import (
	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
	"github.com/nothingsolutions/portfolio-backend/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// projectView is a project as rendered to the browser; gated rows carry
// placeholder values and locked=true while the session is locked.
type projectView struct {
	domain.Project
	Locked bool `json:"locked"`
}

// showcaseRow is one line of the strict public list view.
type showcaseRow struct {
	ID     string `json:"id"`
	Year   string `json:"year"`
	Client string `json:"client"`
	Item   string `json:"item"`
}
