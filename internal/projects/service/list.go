package service

import (
	"context"
	"sort"
	"strings"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
	"github.com/nothingsolutions/portfolio-backend/internal/projects/repository"
)

// Service implements the read-side pipeline over the project collection:
// ordering, free-text search and the two list views.
type Service struct {
	store repository.Store
}

func New(store repository.Store) *Service {
	return &Service{store: store}
}

// Browse returns the main spreadsheet view: featured projects first in
// their manual order, the rest newest-first, filtered by the search
// query when one is given. Gated rows are included; redaction is the
// HTTP layer's concern.
func (s *Service) Browse(ctx context.Context, query string) ([]domain.Project, error) {
	projects, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	sorted := sortFeaturedFirst(projects)

	query = strings.TrimSpace(query)
	if query == "" {
		return sorted, nil
	}
	return filterQuery(sorted, query), nil
}

// Showcase returns the strict public list view: date order only, no
// featured override, and only projects whose status is exactly Public or
// starts with Featured. Login-required rows are absent here entirely.
func (s *Service) Showcase(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	sorted := sortByDate(projects)

	out := make([]domain.Project, 0, len(sorted))
	for _, p := range sorted {
		if p.Status == domain.StatusPublic || strings.HasPrefix(p.Status, domain.StatusFeaturedPrefix) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Project looks up a single project by ID.
func (s *Service) Project(ctx context.Context, id string) (domain.Project, bool, error) {
	return s.store.ByID(ctx, id)
}

// sortFeaturedFirst orders featured projects before everything else,
// ascending by their manual rank, then the remainder descending by date
// rank. The sort is stable so equal keys keep storage order.
func sortFeaturedFirst(projects []domain.Project) []domain.Project {
	sorted := make([]domain.Project, len(projects))
	copy(sorted, projects)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aOrder, aFeatured := featuredOrder(a.Status)
		bOrder, bFeatured := featuredOrder(b.Status)

		if aFeatured && bFeatured {
			return aOrder < bOrder
		}
		if aFeatured != bFeatured {
			return aFeatured
		}
		return rankDate(a.Date) > rankDate(b.Date)
	})
	return sorted
}

func sortByDate(projects []domain.Project) []domain.Project {
	sorted := make([]domain.Project, len(projects))
	copy(sorted, projects)

	sort.SliceStable(sorted, func(i, j int) bool {
		return rankDate(sorted[i].Date) > rankDate(sorted[j].Date)
	})
	return sorted
}

// filterQuery retains projects where any searchable field contains the
// query, case-folded. Pure substring predicate, OR across fields; no
// tokenization and no relevance ranking.
func filterQuery(projects []domain.Project, query string) []domain.Project {
	q := strings.ToLower(query)

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p domain.Project, q string) bool {
	for _, field := range []string{p.Item, p.Client, p.Category, p.Role, p.Notes, p.Status} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Year extracts the display year from a date string: "11.2025" yields
// "2025", anything without a dot is shown as-is.
func Year(date string) string {
	if date == "" {
		return ""
	}
	if _, after, ok := strings.Cut(date, "."); ok {
		return after
	}
	return date
}
