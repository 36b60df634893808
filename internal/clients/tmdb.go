package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"filmrank/internal/domain"
)

const releaseDateYearLen = 4

type tmdbMovie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

type tmdbSearchResponse struct {
	Results []tmdbMovie `json:"results"`
}

type tmdbClient struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	httpClient   *http.Client
}

// NewTMDBClient returns a MovieSearcher backed by The Movie Database API.
func NewTMDBClient(baseURL, imageBaseURL, apiKey string, timeout time.Duration) domain.MovieSearcher {
	return &tmdbClient{
		baseURL:      baseURL,
		imageBaseURL: imageBaseURL,
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

func (c *tmdbClient) SearchByTitle(ctx context.Context, query string) ([]domain.SearchResult, error) {
	searchURL := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		c.baseURL, c.apiKey, url.QueryEscape(query))

	var response tmdbSearchResponse
	if err := c.getJSON(ctx, searchURL, &response); err != nil {
		return nil, fmt.Errorf("searching movies: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(response.Results))
	for _, movie := range response.Results {
		results = append(results, c.normalize(movie))
	}
	return results, nil
}

func (c *tmdbClient) FetchDetails(ctx context.Context, id int64) (*domain.SearchResult, error) {
	detailsURL := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, id, c.apiKey)

	var movie tmdbMovie
	if err := c.getJSON(ctx, detailsURL, &movie); err != nil {
		return nil, fmt.Errorf("fetching movie details: %w", err)
	}

	result := c.normalize(movie)
	return &result, nil
}

func (c *tmdbClient) getJSON(ctx context.Context, rawURL string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", domain.ErrSearchUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrSearchUnavailable, err)
	}
	return nil
}

func (c *tmdbClient) normalize(movie tmdbMovie) domain.SearchResult {
	return domain.SearchResult{
		ID:        movie.ID,
		Title:     movie.Title,
		Year:      parseYear(movie.ReleaseDate),
		Overview:  movie.Overview,
		PosterURL: c.posterURL(movie.PosterPath),
	}
}

func (c *tmdbClient) posterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return c.imageBaseURL + posterPath
}

func parseYear(releaseDate string) int {
	if len(releaseDate) < releaseDateYearLen {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:releaseDateYearLen])
	if err != nil {
		return 0
	}
	return year
}
