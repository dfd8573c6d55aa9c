// Package users, request payloads for the user endpoints.
package users

// CreateUserRequest represents the payload for creating a user.
type CreateUserRequest struct {
	Username string `json:"username" example:"alice"`
}
