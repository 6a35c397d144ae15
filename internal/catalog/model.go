// File: internal/catalog/model.go
package catalog

import "time"

// Movie mirrors a document in the movies collection. The catalog is a
// read-only data source; nothing in the auth core touches it.
type Movie struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Plot      string    `bson:"plot,omitempty" json:"plot,omitempty"`
	Genres    []string  `bson:"genres,omitempty" json:"genres,omitempty"`
	Runtime   int       `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Cast      []string  `bson:"cast,omitempty" json:"cast,omitempty"`
	Title     string    `bson:"title" json:"title"`
	FullPlot  string    `bson:"fullplot,omitempty" json:"fullplot,omitempty"`
	Countries []string  `bson:"countries,omitempty" json:"countries,omitempty"`
	Released  time.Time `bson:"released,omitempty" json:"released,omitempty"`
	Directors []string  `bson:"directors,omitempty" json:"directors,omitempty"`
	Rated     string    `bson:"rated,omitempty" json:"rated,omitempty"`
	Awards    *Awards   `bson:"awards,omitempty" json:"awards,omitempty"`
	Year      int       `bson:"year,omitempty" json:"year,omitempty"`
	IMDB      *IMDB     `bson:"imdb,omitempty" json:"imdb,omitempty"`
	Type      string    `bson:"type,omitempty" json:"type,omitempty"`
}

// Awards is the nested awards document.
type Awards struct {
	Wins        int    `bson:"wins" json:"wins"`
	Nominations int    `bson:"nominations" json:"nominations"`
	Text        string `bson:"text" json:"text"`
}

// IMDB is the nested imdb rating document.
type IMDB struct {
	Rating float64 `bson:"rating" json:"rating"`
	Votes  int     `bson:"votes" json:"votes"`
	ID     int     `bson:"id" json:"id"`
}

// Pagination bounds a catalog page request. Limit is clamped to 1..20.
type Pagination struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 20
)

// Normalize clamps the pagination to valid bounds.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return p
}

// PaginatedMovies is the page envelope returned by every catalog query.
type PaginatedMovies struct {
	Data           []Movie `json:"data"`
	CurrentPage    int     `json:"currentPage"`
	TotalPages     int     `json:"totalPages"`
	RemainingPages int     `json:"remainingPages"`
	TotalItems     int64   `json:"totalItems"`
	ItemsPerPage   int     `json:"itemsPerPage"`
	HasMore        bool    `json:"hasMore"`
}

// NewPaginatedMovies builds the envelope from a page of data and the total
// match count.
func NewPaginatedMovies(data []Movie, total int64, p Pagination) *PaginatedMovies {
	if data == nil {
		data = []Movie{}
	}
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	remaining := totalPages - p.Page
	if remaining < 0 {
		remaining = 0
	}
	return &PaginatedMovies{
		Data:           data,
		CurrentPage:    p.Page,
		TotalPages:     totalPages,
		RemainingPages: remaining,
		TotalItems:     total,
		ItemsPerPage:   p.Limit,
		HasMore:        p.Page < totalPages,
	}
}
