package domain

import "context"

// Movie is a ranked entry in the personal list. Ranking is the primary key
// and doubles as display order: rankings always form a dense 1..N sequence.
type Movie struct {
	Ranking     int `boltholdIndex:"Ranking"`
	Title       string
	Year        int
	Description string
	Rating      int
	Review      string
	ImgURL      string
}

// SearchResult is a candidate returned by the external metadata service.
// It is never persisted; committing one creates a Movie.
type SearchResult struct {
	ID        int64
	Title     string
	Year      int
	Overview  string
	PosterURL string
}

type MovieRepository interface {
	ListByRanking(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, ranking int) (*Movie, error)
	Insert(ctx context.Context, title string, year int, description, imgURL string) (*Movie, error)
	UpdateRatingReview(ctx context.Context, ranking, rating int, review string) error
	Delete(ctx context.Context, ranking int) error
	Close() error
}

type MovieSearcher interface {
	SearchByTitle(ctx context.Context, query string) ([]SearchResult, error)
	FetchDetails(ctx context.Context, id int64) (*SearchResult, error)
}
