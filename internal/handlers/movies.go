package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"genai-prompt/internal/contextutil"
	"genai-prompt/internal/service"
)

// MoviesHandler handles HTTP requests for movie recommendations.
type MoviesHandler struct {
	movieService service.MovieService
}

// NewMoviesHandler creates a new MoviesHandler.
func NewMoviesHandler(movieService service.MovieService) *MoviesHandler {
	return &MoviesHandler{
		movieService: movieService,
	}
}

// ServeHTTP handles GET /movies?category=<text>&year=<int>.
// Absent or empty parameters fall back to category "action" and year 2022.
// The body is the model's JSON object as decoded, with whatever keys it produced.
//
// swagger:route GET /movies recommendMovie
//
// # Recommend a movie
//
// Renders the movie prompt for a category and year and returns the model's
// JSON answer. Expected keys are category, year, title, producer, actors and
// summary, but the object is passed through as the model produced it.
//
// ---
// produces:
// - application/json
// parameters:
//   - in: query
//     name: category
//     type: string
//     description: Movie category, defaults to action
//     required: false
//   - in: query
//     name: year
//     type: integer
//     description: Release year, defaults to 2022
//     required: false
//
// responses:
//
//	'200':
//	  description: The model's JSON object
//	'400':
//	  description: Year is not an integer
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'502':
//	  description: Provider failure or a reply that is not a JSON object
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *MoviesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	query, err := parseMovieQuery(r)
	if err != nil {
		handleServiceError(ctx, w, err, "Invalid query parameters")
		return
	}

	reply, err := h.movieService.Recommend(ctx, query)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to process movie request")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(reply); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// parseMovieQuery binds the category and year query parameters. Only type
// coercion is checked; any string or integer is accepted.
func parseMovieQuery(r *http.Request) (service.MovieQuery, error) {
	query := service.DefaultMovieQuery()
	values := r.URL.Query()

	if category := values.Get("category"); category != "" {
		query.Category = category
	}

	if raw := values.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return service.MovieQuery{}, &service.ValidationError{
				Field:   "year",
				Message: "must be an integer",
			}
		}
		query.Year = year
	}

	return query, nil
}
