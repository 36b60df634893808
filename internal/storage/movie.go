package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/timshannon/bolthold"
	bolt "go.etcd.io/bbolt"

	"filmrank/internal/domain"
)

type movieRepository struct {
	store *bolthold.Store
}

func NewMovieRepository(store *bolthold.Store) domain.MovieRepository {
	return &movieRepository{store: store}
}

func (r *movieRepository) ListByRanking(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var movies []domain.Movie
	err := r.store.Find(&movies, bolthold.Where("Ranking").Ge(1).SortBy("Ranking"))
	if err != nil {
		return nil, fmt.Errorf("listing movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) Get(ctx context.Context, ranking int) (*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var movie domain.Movie
	err := r.store.Get(ranking, &movie)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, domain.ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting movie: %w", err)
	}
	return &movie, nil
}

// Insert creates a movie at ranking max+1 (1 on an empty store) with a zero
// rating and empty review. Reading the current maximum and writing the new
// row happen in one write transaction so concurrent inserts cannot assign
// the same ranking.
func (r *movieRepository) Insert(ctx context.Context, title string, year int, description, imgURL string) (*domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx, err := r.store.Bolt().Begin(true)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var existing []domain.Movie
	err = r.store.TxFind(tx, &existing, bolthold.Where("Title").Eq(title))
	if err != nil {
		return nil, fmt.Errorf("checking title uniqueness: %w", err)
	}
	if len(existing) > 0 {
		return nil, domain.ErrDuplicateTitle
	}

	maxRanking, err := r.maxRanking(tx)
	if err != nil {
		return nil, err
	}

	movie := &domain.Movie{
		Ranking:     maxRanking + 1,
		Title:       title,
		Year:        year,
		Description: description,
		Rating:      0,
		Review:      "",
		ImgURL:      imgURL,
	}

	if err := r.store.TxInsert(tx, movie.Ranking, movie); err != nil {
		return nil, fmt.Errorf("inserting movie: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing insert: %w", err)
	}
	return movie, nil
}

func (r *movieRepository) maxRanking(tx *bolt.Tx) (int, error) {
	var top []domain.Movie
	err := r.store.TxFind(tx, &top, bolthold.Where("Ranking").Ge(1).SortBy("Ranking").Reverse().Limit(1))
	if err != nil {
		return 0, fmt.Errorf("finding max ranking: %w", err)
	}
	if len(top) == 0 {
		return 0, nil
	}
	return top[0].Ranking, nil
}

func (r *movieRepository) UpdateRatingReview(ctx context.Context, ranking, rating int, review string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if rating < 1 || rating > 10 {
		return domain.ErrInvalidRating
	}
	if review == "" {
		return domain.ErrEmptyReview
	}

	tx, err := r.store.Bolt().Begin(true)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var movie domain.Movie
	err = r.store.TxGet(tx, ranking, &movie)
	if errors.Is(err, bolthold.ErrNotFound) {
		return domain.ErrMovieNotFound
	}
	if err != nil {
		return fmt.Errorf("getting movie: %w", err)
	}

	movie.Rating = rating
	movie.Review = review

	if err := r.store.TxUpdate(tx, ranking, &movie); err != nil {
		return fmt.Errorf("updating movie: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}
	return nil
}

// Delete removes the movie at the given ranking and shifts every
// higher-ranked movie down by one, keeping rankings a dense 1..N sequence.
// The removal and the shift share one write transaction; either both apply
// or neither does.
func (r *movieRepository) Delete(ctx context.Context, ranking int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := r.store.Bolt().Begin(true)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var movie domain.Movie
	err = r.store.TxGet(tx, ranking, &movie)
	if errors.Is(err, bolthold.ErrNotFound) {
		return domain.ErrMovieNotFound
	}
	if err != nil {
		return fmt.Errorf("getting movie: %w", err)
	}

	if err := r.store.TxDelete(tx, ranking, &domain.Movie{}); err != nil {
		return fmt.Errorf("deleting movie: %w", err)
	}

	if err := r.shiftDown(tx, ranking); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// shiftDown re-keys every movie ranked above the freed slot. Ascending order
// guarantees each target ranking was vacated by the previous step.
func (r *movieRepository) shiftDown(tx *bolt.Tx, deleted int) error {
	var higher []domain.Movie
	err := r.store.TxFind(tx, &higher, bolthold.Where("Ranking").Gt(deleted).SortBy("Ranking"))
	if err != nil {
		return fmt.Errorf("finding higher-ranked movies: %w", err)
	}

	for i := range higher {
		movie := higher[i]
		if err := r.store.TxDelete(tx, movie.Ranking, &domain.Movie{}); err != nil {
			return fmt.Errorf("unkeying movie %d: %w", movie.Ranking, err)
		}
		movie.Ranking--
		if err := r.store.TxInsert(tx, movie.Ranking, &movie); err != nil {
			return fmt.Errorf("rekeying movie to %d: %w", movie.Ranking, err)
		}
	}
	return nil
}

func (r *movieRepository) Close() error {
	return r.store.Close()
}
