// Package service orchestrates catalog reads and Wikipedia enrichment.
package service

import (
	"context"
	"errors"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/catalog"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/domain"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/logger"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/wikipedia"
)

// ErrClubNotFound is returned when no record matches the requested slug.
var ErrClubNotFound = errors.New("club not found")

// wikipediaAttribution is attached to successful media blocks; Wikipedia
// content is CC BY-SA and requires attribution.
const wikipediaAttribution = "Conteúdo resumido de Wikipedia (CC BY-SA 4.0)."

// SummaryFetcher resolves a reference-page title to a summary payload.
type SummaryFetcher interface {
	Summary(ctx context.Context, title string) (*wikipedia.Summary, error)
}

// Detail is a club projection merged with its media block. Media is null
// when the club has no reference page.
type Detail struct {
	domain.Projection
	Media *domain.Media `json:"media"`
}

// ClubService serves listings, views, and enriched detail lookups.
type ClubService struct {
	store   *catalog.Store
	fetcher SummaryFetcher
	logger  logger.Logger
}

// NewClubService creates a ClubService.
func NewClubService(store *catalog.Store, fetcher SummaryFetcher, log logger.Logger) *ClubService {
	return &ClubService{
		store:   store,
		fetcher: fetcher,
		logger:  log,
	}
}

// List returns a filtered, paginated page of the catalog.
func (s *ClubService) List(req catalog.ListRequest) catalog.ListResult {
	return s.store.List(req)
}

// Grid returns the grid view working set.
func (s *ClubService) Grid(query, sortKey string) []domain.Projection {
	return s.store.Grid(query, sortKey)
}

// Timeline returns the founding-year timeline groups.
func (s *ClubService) Timeline(query string) []catalog.TimelineGroup {
	return s.store.Timeline(query)
}

// ByState returns the clubs of one state.
func (s *ClubService) ByState(uf string) []domain.Projection {
	return s.store.ByState(uf)
}

// Get resolves one club by slug and merges in its media block. An
// enrichment failure degrades to a media block with all fields null; it is
// never surfaced as an error.
func (s *ClubService) Get(ctx context.Context, slug string) (*Detail, error) {
	club, ok := s.store.BySlug(slug)
	if !ok {
		return nil, ErrClubNotFound
	}

	detail := &Detail{Projection: club.Project()}
	if club.WikipediaPage == "" {
		return detail, nil
	}

	sum, err := s.fetcher.Summary(ctx, club.WikipediaPage)
	if err != nil {
		s.logger.Warn("Wikipedia enrichment failed, degrading to empty media",
			logger.String("slug", club.Slug),
			logger.String("page", club.WikipediaPage),
			logger.Error(err),
		)
		detail.Media = &domain.Media{}
		return detail, nil
	}

	detail.Media = &domain.Media{
		CrestImageURL:    optional(sum.Thumbnail),
		WikipediaSummary: optional(sum.Extract),
		WikipediaURL:     optional(sum.WikipediaURL),
		Attribution:      wikipediaAttribution,
	}
	return detail, nil
}

// optional maps an empty string to a null JSON field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
