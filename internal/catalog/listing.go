package catalog

import (
	"strings"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/domain"
)

// Listing limits. MaxLimit caps the page size regardless of what the
// caller asks for.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ListRequest carries the listing filters and pagination. Zero values mean
// "no filter". Offset and Limit are taken as parsed: negative or zero
// values fall back to defaults during clamping.
type ListRequest struct {
	Query  string
	State  string
	Status string
	Letter string
	Offset int
	Limit  int
}

// ListResult is a page of projected clubs plus pre-pagination totals and
// the effective offset/limit.
type ListResult struct {
	Total  int                 `json:"total"`
	Count  int                 `json:"count"`
	Offset int                 `json:"offset"`
	Limit  int                 `json:"limit"`
	Data   []domain.Projection `json:"data"`
}

// List filters the store conjunctively (query, then state, then status,
// then starting letter) and paginates the result. Insertion order is
// preserved; listings are never re-sorted.
func (s *Store) List(req ListRequest) ListResult {
	rows := s.clubs

	if req.Query != "" {
		rows = filterClubs(rows, matchesQuery(req.Query))
	}
	if req.State != "" {
		rows = filterClubs(rows, matchesState(req.State))
	}
	if req.Status != "" {
		rows = filterClubs(rows, matchesStatus(req.Status))
	}
	if req.Letter != "" {
		rows = filterClubs(rows, matchesLetter(req.Letter))
	}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(rows)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	page := make([]domain.Projection, 0, end-start)
	for _, club := range rows[start:end] {
		page = append(page, club.Project())
	}

	return ListResult{
		Total:  total,
		Count:  len(page),
		Offset: offset,
		Limit:  limit,
		Data:   page,
	}
}

func filterClubs(clubs []*domain.Club, keep func(*domain.Club) bool) []*domain.Club {
	out := make([]*domain.Club, 0, len(clubs))
	for _, club := range clubs {
		if keep(club) {
			out = append(out, club)
		}
	}
	return out
}

// matchesQuery reports a case-insensitive substring match against the full
// name, short name, or city.
func matchesQuery(query string) func(*domain.Club) bool {
	term := strings.ToLower(query)
	return func(c *domain.Club) bool {
		return (c.FullName != "" && strings.Contains(strings.ToLower(c.FullName), term)) ||
			(c.ShortName != "" && strings.Contains(strings.ToLower(c.ShortName), term)) ||
			(c.City != "" && strings.Contains(strings.ToLower(c.City), term))
	}
}

func matchesState(state string) func(*domain.Club) bool {
	return func(c *domain.Club) bool {
		return c.State != "" && strings.EqualFold(c.State, state)
	}
}

func matchesStatus(status string) func(*domain.Club) bool {
	return func(c *domain.Club) bool {
		return c.Status != "" && strings.EqualFold(c.Status, status)
	}
}

// matchesLetter reports a case-insensitive prefix match against the short
// name, falling back to the full name.
func matchesLetter(letter string) func(*domain.Club) bool {
	prefix := strings.ToLower(letter)
	return func(c *domain.Club) bool {
		return strings.HasPrefix(strings.ToLower(c.DisplayName()), prefix)
	}
}
