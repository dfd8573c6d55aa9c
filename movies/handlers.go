// Package movies, HTTP layer for the search pass-through endpoint.
package movies

import (
	"log"
	"net/http"

	"github.com/user/movie-memo-go/apperror"
	"github.com/user/movie-memo-go/users"
)

// Handlers provides the HTTP handlers for the movie search endpoint.
type Handlers struct {
	client *Client
}

// NewHandlers creates new movie Handlers.
func NewHandlers(client *Client) *Handlers {
	return &Handlers{client: client}
}

// HandleSearch godoc
// @Summary Search the external movie catalog
// @Description Passes the search query to the external movie-metadata API and returns one page of results unchanged.
// @Tags movies
// @Produce json
// @Param search query string true "Search query"
// @Success 200 {object} movies.SearchMovieResult
// @Failure 400 {object} apperror.ErrorResponse "Missing search query"
// @Failure 404 {object} apperror.ErrorResponse "Search failed upstream"
// @Router /movie [get]
func (h *Handlers) HandleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("search")
		if query == "" {
			users.WriteError(w, r, apperror.NewInvalidArguments("search query parameter is required", nil))
			return
		}

		result, err := h.client.Search(r.Context(), query)
		if err != nil {
			// The upstream error stays in the logs; the caller only learns
			// the search found nothing usable.
			log.Printf("movie search failed: %v", err)
			users.WriteError(w, r, apperror.NewNotFound("not found", err))
			return
		}

		users.WriteJSON(w, http.StatusOK, result)
	}
}
