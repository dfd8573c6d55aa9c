// Package usermovies, request payloads for the user-movie endpoints.
package usermovies

// CreateUserMovieRequest represents the payload for recording a movie for a
// user. UserID is a pointer so a missing foreign key can be told apart from
// an empty one; Seen and WatchAgain default to false when omitted, and Rating
// stays null when omitted.
type CreateUserMovieRequest struct {
	UserID     *string `json:"user_id,omitempty" example:"8e1e3b1a-3a68-4f6a-9a6c-2f0d2f2b9b6e"`
	MovieID    int     `json:"movie_id" example:"42"`
	Title      string  `json:"title" example:"Dune"`
	Seen       *bool   `json:"seen,omitempty" example:"true"`
	WatchAgain *bool   `json:"watch_again,omitempty" example:"false"`
	Rating     *int    `json:"rating,omitempty" example:"8"`
}
