// Package users, HTTP layer. Handlers decode requests, delegate to the
// service, and translate apperror values into status codes and JSON bodies.
// This file also hosts the response helpers shared by the other feature
// packages.
package users

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/movie-memo-go/apperror"
)

// Handlers provides the HTTP handlers for the user endpoints.
type Handlers struct {
	service *Service
}

// NewHandlers creates new user Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleCreateUser godoc
// @Summary Create a user
// @Description Registers a new user under a unique username.
// @Tags users
// @Accept json
// @Produce json
// @Param user body users.CreateUserRequest true "User to create"
// @Success 201 {object} users.User "User created"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or username already taken"
// @Failure 500 {object} apperror.ErrorResponse "Storage failure"
// @Router /user [post]
func (h *Handlers) HandleCreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewInvalidArguments("invalid request body", err))
			return
		}
		defer r.Body.Close()

		user, err := h.service.Create(r.Context(), req.Username)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusCreated, user)
	}
}

// HandleListUsers godoc
// @Summary List users by username
// @Description Returns the users matching the given username; an empty array when nothing matches.
// @Tags users
// @Produce json
// @Param username query string true "Username to look up"
// @Success 200 {array} users.User
// @Failure 500 {object} apperror.ErrorResponse "Storage failure"
// @Router /user [get]
func (h *Handlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			WriteError(w, r, apperror.NewInvalidArguments("username query parameter is required", nil))
			return
		}

		list, err := h.service.ListByUsername(r.Context(), username)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, list)
	}
}

// WriteJSON sends a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError translates an error into the standard error payload. Errors that
// are not AppErrors are recorded as storage failures so nothing internal
// leaks; the original error stays in the logs either way.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewStorageFailure("unexpected error", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, appErr)
	}

	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
