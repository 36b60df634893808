package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"filmrank/internal/domain"
	"filmrank/internal/forms"
)

type HTTPHandler struct {
	movieRepo domain.MovieRepository
	searcher  domain.MovieSearcher
}

func NewHTTPHandler(movieRepo domain.MovieRepository, searcher domain.MovieSearcher) *HTTPHandler {
	return &HTTPHandler{
		movieRepo: movieRepo,
		searcher:  searcher,
	}
}

func (h *HTTPHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.handleHome)
	app.Get("/edit", h.handleEditForm)
	app.Post("/edit", h.handleEditSubmit)
	app.Get("/delete", h.handleDelete)
	app.Get("/add", h.handleAddForm)
	app.Post("/add", h.handleAddSubmit)
	app.Get("/select", h.handleSelect)
	app.Get("/movie", h.handleCommitSelected)
	app.Get("/health", h.handleHealth)
}

func (h *HTTPHandler) handleHome(c *fiber.Ctx) error {
	movies, err := h.movieRepo.ListByRanking(c.UserContext())
	if err != nil {
		log.WithField("error", err).Error("failed to list movies")
		return h.renderError(c, fiber.StatusInternalServerError, "Could not load the movie list")
	}

	return c.Render("index", fiber.Map{
		"Movies": movies,
	})
}

func (h *HTTPHandler) handleEditForm(c *fiber.Ctx) error {
	ranking, err := parseRanking(c.Query("ranking"))
	if err != nil {
		return h.renderError(c, fiber.StatusBadRequest, "Invalid ranking")
	}

	movie, err := h.movieRepo.Get(c.UserContext(), ranking)
	if err != nil {
		return h.movieError(c, err, ranking)
	}

	return c.Render("edit", fiber.Map{
		"Movie":  movie,
		"Rating": formatRating(movie.Rating),
		"Review": movie.Review,
		"Errors": forms.FieldErrors{},
	})
}

func (h *HTTPHandler) handleEditSubmit(c *fiber.Ctx) error {
	ranking, err := parseRanking(c.Query("ranking"))
	if err != nil {
		return h.renderError(c, fiber.StatusBadRequest, "Invalid ranking")
	}

	movie, err := h.movieRepo.Get(c.UserContext(), ranking)
	if err != nil {
		return h.movieError(c, err, ranking)
	}

	rawRating := c.FormValue("rating")
	rawReview := c.FormValue("review")

	rating, review, fieldErrs := forms.ValidateRateReview(rawRating, rawReview)
	if !fieldErrs.Valid() {
		return c.Render("edit", fiber.Map{
			"Movie":  movie,
			"Rating": rawRating,
			"Review": rawReview,
			"Errors": fieldErrs,
		})
	}

	if err := h.movieRepo.UpdateRatingReview(c.UserContext(), ranking, rating, review); err != nil {
		return h.movieError(c, err, ranking)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *HTTPHandler) handleDelete(c *fiber.Ctx) error {
	ranking, err := parseRanking(c.Query("ranking"))
	if err != nil {
		return h.renderError(c, fiber.StatusBadRequest, "Invalid ranking")
	}

	if err := h.movieRepo.Delete(c.UserContext(), ranking); err != nil {
		return h.movieError(c, err, ranking)
	}

	log.WithField("ranking", ranking).Info("movie deleted and list reranked")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *HTTPHandler) handleAddForm(c *fiber.Ctx) error {
	return c.Render("add", fiber.Map{
		"Title":  "",
		"Errors": forms.FieldErrors{},
	})
}

func (h *HTTPHandler) handleAddSubmit(c *fiber.Ctx) error {
	rawTitle := c.FormValue("title")

	title, fieldErrs := forms.ValidateAddMovie(rawTitle)
	if !fieldErrs.Valid() {
		return c.Render("add", fiber.Map{
			"Title":  rawTitle,
			"Errors": fieldErrs,
		})
	}

	return c.Redirect("/select?movie="+url.QueryEscape(title), fiber.StatusSeeOther)
}

func (h *HTTPHandler) handleSelect(c *fiber.Ctx) error {
	query := c.Query("movie")
	if query == "" {
		return h.renderError(c, fiber.StatusBadRequest, "Missing movie query")
	}

	results, err := h.searcher.SearchByTitle(c.UserContext(), query)
	if err != nil {
		log.WithFields(log.Fields{
			"query": query,
			"error": err,
		}).Error("failed to search movie metadata")
		return h.searchError(c, err)
	}

	return c.Render("select", fiber.Map{
		"Query":   query,
		"Results": results,
	})
}

func (h *HTTPHandler) handleCommitSelected(c *fiber.Ctx) error {
	id, err := parseExternalID(c.Query("id"))
	if err != nil {
		return h.renderError(c, fiber.StatusBadRequest, "Invalid movie id")
	}

	details, err := h.searcher.FetchDetails(c.UserContext(), id)
	if err != nil {
		log.WithFields(log.Fields{
			"id":    id,
			"error": err,
		}).Error("failed to fetch movie details")
		return h.searchError(c, err)
	}

	movie, err := h.movieRepo.Insert(c.UserContext(), details.Title, details.Year, details.Overview, details.PosterURL)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return h.renderError(c, fiber.StatusConflict, "That movie is already in the list")
		}
		log.WithFields(log.Fields{
			"title": details.Title,
			"error": err,
		}).Error("failed to insert movie")
		return h.renderError(c, fiber.StatusInternalServerError, "Could not add the movie")
	}

	return c.Redirect(fmt.Sprintf("/edit?ranking=%d", movie.Ranking), fiber.StatusSeeOther)
}

func (h *HTTPHandler) handleHealth(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func (h *HTTPHandler) movieError(c *fiber.Ctx, err error, ranking int) error {
	if errors.Is(err, domain.ErrMovieNotFound) {
		return h.renderError(c, fiber.StatusNotFound, "No movie with that ranking")
	}
	log.WithFields(log.Fields{
		"ranking": ranking,
		"error":   err,
	}).Error("movie store operation failed")
	return h.renderError(c, fiber.StatusInternalServerError, "Something went wrong")
}

func (h *HTTPHandler) searchError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrSearchUnavailable) {
		return h.renderError(c, fiber.StatusBadGateway, "The movie search service is unavailable, try again later")
	}
	return h.renderError(c, fiber.StatusInternalServerError, "Something went wrong")
}

func (h *HTTPHandler) renderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Status":  status,
		"Message": message,
	})
}

func formatRating(rating int) string {
	if rating == 0 {
		return ""
	}
	return strconv.Itoa(rating)
}
