// Package usermovies encapsulates the UserMovie association resource: one row
// per (user, movie) pair recording that a user has seen (or wants to re-watch)
// a movie from the external catalog. This file defines the entity as stored.
package usermovies

import "time"

// UserMovie associates a user with an externally-sourced movie. The title is
// a denormalized snapshot taken at recording time and is never re-fetched
// from the catalog. Rating is optional and unbounded. Rows are never updated
// or deleted once created.
type UserMovie struct {
	ID         int       `json:"id"`
	MovieID    int       `json:"movie_id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Seen       bool      `json:"seen"`
	WatchAgain bool      `json:"watch_again"`
	Rating     *int      `json:"rating"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}
