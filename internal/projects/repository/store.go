package repository

import (
	"context"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
)

// Store loads the project collection from durable storage.
type Store interface {
	// All returns every project in storage order. Implementations
	// degrade to an empty collection instead of failing: a broken
	// content directory must never take the site down.
	All(ctx context.Context) ([]domain.Project, error)
	// ByID returns the project with the given ID, if present.
	ByID(ctx context.Context, id string) (domain.Project, bool, error)
}
