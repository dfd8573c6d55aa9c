// Package usermovies, HTTP layer.
package usermovies

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/movie-memo-go/apperror"
	"github.com/user/movie-memo-go/users"
)

// Handlers provides the HTTP handlers for the user-movie endpoints.
type Handlers struct {
	service *Service
}

// NewHandlers creates new user-movie Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleCreateForUser godoc
// @Summary Record a movie for a user
// @Description Records that the user identified in the path has seen a movie. At most one record per (user, movie) pair.
// @Tags user-movies
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param userMovie body usermovies.CreateUserMovieRequest true "Movie to record"
// @Success 201 {object} usermovies.UserMovie "Record created"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or pair already recorded"
// @Failure 500 {object} apperror.ErrorResponse "Storage failure"
// @Router /user/{userID}/movies [post]
func (h *Handlers) HandleCreateForUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserMovieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			users.WriteError(w, r, apperror.NewInvalidArguments("invalid request body", err))
			return
		}
		defer r.Body.Close()

		// The owning user comes from the path; a user_id in the body is
		// ignored in favor of it.
		if userID := chi.URLParam(r, "userID"); userID != "" {
			req.UserID = &userID
		}

		um, err := h.service.Create(r.Context(), req)
		if err != nil {
			users.WriteError(w, r, err)
			return
		}

		users.WriteJSON(w, http.StatusCreated, um)
	}
}

// HandleListByUser godoc
// @Summary List a user's recorded movies
// @Description Returns every movie recorded for the user; an empty array when none exist.
// @Tags user-movies
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} usermovies.UserMovie
// @Failure 500 {object} apperror.ErrorResponse "Storage failure"
// @Router /user/{userID}/movies [get]
func (h *Handlers) HandleListByUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		if userID == "" {
			users.WriteError(w, r, apperror.NewInvalidArguments("user id is required", nil))
			return
		}

		list, err := h.service.ListByUserID(r.Context(), userID)
		if err != nil {
			users.WriteError(w, r, err)
			return
		}

		users.WriteJSON(w, http.StatusOK, list)
	}
}
