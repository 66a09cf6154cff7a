// Package domain defines the club catalog types shared across the service.
package domain

// Club status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Anthem holds a club's anthem metadata.
type Anthem struct {
	Title     string `json:"title"`
	LyricsURL string `json:"lyrics_url"`
	AudioURL  string `json:"audio_url,omitempty"`
}

// Club is one catalog entry. Records are normalized at load time and
// immutable afterwards.
type Club struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	ShortName     string   `json:"short_name"`
	FullName      string   `json:"full_name"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Founded       *int     `json:"founded,omitempty"`
	Dissolved     *int     `json:"dissolved,omitempty"`
	Status        string   `json:"status,omitempty"`
	AKA           []string `json:"aka,omitempty"`
	WikipediaPage string   `json:"wikipedia_page,omitempty"`
	Anthem        *Anthem  `json:"anthem,omitempty"`
	Sources       []string `json:"sources,omitempty"`

	// Presentation extras; optional.
	Site string `json:"site,omitempty"`
	Kit  string `json:"kit,omitempty"`
}

// Projection is the public shape of a club returned by the API. Absent
// optional fields serialize as null, missing status defaults to active,
// and aka/sources are always present as arrays.
type Projection struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	ShortName     string   `json:"short_name"`
	FullName      string   `json:"full_name"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Founded       *int     `json:"founded"`
	Dissolved     *int     `json:"dissolved"`
	Status        string   `json:"status"`
	AKA           []string `json:"aka"`
	WikipediaPage *string  `json:"wikipedia_page"`
	Anthem        *Anthem  `json:"anthem"`
	Sources       []string `json:"sources"`
	Site          string   `json:"site,omitempty"`
	Kit           string   `json:"kit,omitempty"`
}

// Media is the Wikipedia enrichment block attached to detail responses.
// All fields are null when enrichment failed or no reference page exists.
type Media struct {
	CrestImageURL    *string `json:"crest_image_url"`
	WikipediaSummary *string `json:"wikipedia_summary"`
	WikipediaURL     *string `json:"wikipedia_url"`
	Attribution      string  `json:"attribution,omitempty"`
}

// Project builds the public projection of a club.
func (c *Club) Project() Projection {
	p := Projection{
		ID:        c.ID,
		Slug:      c.Slug,
		ShortName: c.ShortName,
		FullName:  c.FullName,
		City:      c.City,
		State:     c.State,
		Founded:   c.Founded,
		Dissolved: c.Dissolved,
		Status:    c.Status,
		AKA:       c.AKA,
		Anthem:    c.Anthem,
		Sources:   c.Sources,
		Site:      c.Site,
		Kit:       c.Kit,
	}

	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.AKA == nil {
		p.AKA = []string{}
	}
	if p.Sources == nil {
		p.Sources = []string{}
	}
	if c.WikipediaPage != "" {
		page := c.WikipediaPage
		p.WikipediaPage = &page
	}

	return p
}

// DisplayName returns the short name, falling back to the full name.
func (c *Club) DisplayName() string {
	if c.ShortName != "" {
		return c.ShortName
	}
	return c.FullName
}
