package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/domain"
)

// Sort keys accepted by the grid view. Name sorts use Brazilian Portuguese
// collation; the founded sort places clubs with an unknown year last.
const (
	SortShortName = "short_name"
	SortFullName  = "full_name"
	SortFounded   = "founded"
)

// TimelineGroup is one founding-year bucket. Year is nil for the trailing
// group of clubs with an unknown founding year.
type TimelineGroup struct {
	Year  *int                `json:"year"`
	Clubs []domain.Projection `json:"clubs"`
}

// newCollator returns a collator for club names. Collators carry internal
// buffers, so each view call builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}

// Grid returns the working subset of the catalog: clubs whose short name
// contains query (case-insensitive), optionally sorted by one of the Sort
// keys. An empty sortKey keeps insertion order.
func (s *Store) Grid(query, sortKey string) []domain.Projection {
	working := s.workingSet(query)

	switch sortKey {
	case SortShortName:
		sortByName(working, func(c *domain.Club) string { return c.ShortName })
	case SortFullName:
		sortByName(working, func(c *domain.Club) string { return c.FullName })
	case SortFounded:
		sortByFounded(working)
	}

	return project(working)
}

// Timeline groups the working subset by founding year, years descending,
// with unknown-year clubs collected into a trailing group. Clubs inside a
// group are sorted by short name.
func (s *Store) Timeline(query string) []TimelineGroup {
	working := s.workingSet(query)

	byYear := make(map[int][]*domain.Club)
	var unknown []*domain.Club
	for _, club := range working {
		if club.Founded == nil {
			unknown = append(unknown, club)
			continue
		}
		byYear[*club.Founded] = append(byYear[*club.Founded], club)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]TimelineGroup, 0, len(years)+1)
	for _, year := range years {
		clubs := byYear[year]
		sortByName(clubs, (*domain.Club).DisplayName)
		y := year
		groups = append(groups, TimelineGroup{Year: &y, Clubs: project(clubs)})
	}
	if len(unknown) > 0 {
		sortByName(unknown, (*domain.Club).DisplayName)
		groups = append(groups, TimelineGroup{Year: nil, Clubs: project(unknown)})
	}

	return groups
}

// ByState returns the clubs of one state, sorted by short name.
func (s *Store) ByState(uf string) []domain.Projection {
	matched := filterClubs(s.clubs, matchesState(uf))
	sortByName(matched, (*domain.Club).DisplayName)
	return project(matched)
}

// workingSet filters by short-name substring only; the broader free-text
// match belongs to List.
func (s *Store) workingSet(query string) []*domain.Club {
	if query == "" {
		working := make([]*domain.Club, len(s.clubs))
		copy(working, s.clubs)
		return working
	}

	term := strings.ToLower(query)
	return filterClubs(s.clubs, func(c *domain.Club) bool {
		return strings.Contains(strings.ToLower(c.ShortName), term)
	})
}

func sortByName(clubs []*domain.Club, key func(*domain.Club) string) {
	coll := newCollator()
	sort.SliceStable(clubs, func(i, j int) bool {
		return coll.CompareString(key(clubs[i]), key(clubs[j])) < 0
	})
}

// sortByFounded orders ascending by founding year, unknown years after all
// known ones.
func sortByFounded(clubs []*domain.Club) {
	sort.SliceStable(clubs, func(i, j int) bool {
		yi, yj := clubs[i].Founded, clubs[j].Founded
		switch {
		case yi == nil:
			return false
		case yj == nil:
			return true
		default:
			return *yi < *yj
		}
	})
}

func project(clubs []*domain.Club) []domain.Projection {
	out := make([]domain.Projection, 0, len(clubs))
	for _, club := range clubs {
		out = append(out, club.Project())
	}
	return out
}
