// Package catalog holds the in-memory club store and the read paths over
// it: filtered listings and the grid/timeline/state views.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/domain"
)

// Store holds the normalized club records, built once at startup and
// read-only afterwards. Records keep their file order.
type Store struct {
	clubs  []*domain.Club
	bySlug map[string]*domain.Club
}

// Load reads the static dataset and builds a Store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var records []domain.Club
	if unmarshalErr := json.Unmarshal(data, &records); unmarshalErr != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, unmarshalErr)
	}

	store, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return store, nil
}

// New normalizes the given records and builds a Store. Normalization
// assigns sequential ids, derives missing slugs from the display name,
// defaults status to active, and ensures aka/sources are non-nil. Duplicate
// slugs are a load error.
func New(records []domain.Club) (*Store, error) {
	store := &Store{
		clubs:  make([]*domain.Club, 0, len(records)),
		bySlug: make(map[string]*domain.Club, len(records)),
	}

	for i := range records {
		club := records[i]
		club.ID = i + 1

		if club.Slug == "" {
			name := club.FullName
			if name == "" {
				name = club.ShortName
			}
			club.Slug = domain.Slugify(name)
		} else {
			// Provided slugs go through the same normalization so the
			// lowercase/hyphenated invariant holds regardless of input.
			club.Slug = domain.Slugify(club.Slug)
		}
		if club.Slug == "" {
			return nil, fmt.Errorf("record %d (%q): empty slug", club.ID, club.FullName)
		}

		if club.Status == "" {
			club.Status = domain.StatusActive
		}
		if club.AKA == nil {
			club.AKA = []string{}
		}
		if club.Sources == nil {
			club.Sources = []string{}
		}

		if _, exists := store.bySlug[club.Slug]; exists {
			return nil, fmt.Errorf("duplicate slug %q", club.Slug)
		}

		store.clubs = append(store.clubs, &club)
		store.bySlug[club.Slug] = &club
	}

	return store, nil
}

// All returns the records in insertion order. Callers must not mutate them.
func (s *Store) All() []*domain.Club {
	return s.clubs
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.clubs)
}

// BySlug looks up a club by slug, case-insensitively. The normalized short
// name is accepted as an alias.
func (s *Store) BySlug(slug string) (*domain.Club, bool) {
	want := strings.ToLower(slug)

	if club, ok := s.bySlug[want]; ok {
		return club, true
	}
	for _, club := range s.clubs {
		if domain.Slugify(club.ShortName) == want {
			return club, true
		}
	}
	return nil, false
}
