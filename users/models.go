// Package users encapsulates the User resource: its model, the creation
// protocol that enforces username uniqueness, and the HTTP handlers exposing
// it. This file defines the entity as stored in the database.
package users

import "time"

// User represents a registered user. The id is an opaque, store-generated
// identifier; created_on and updated_on are stamped by the store at insert
// time. Users are never updated or deleted once created.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
