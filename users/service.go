// Package users, service layer. Implements the resource creation protocol for
// the User entity: validate, check existence on the natural key, insert, and
// classify every failure into the apperror taxonomy.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/movie-memo-go/apperror"
	"github.com/user/movie-memo-go/db"
)

// Service provides operations on the User resource.
type Service struct {
	db *pgxpool.Pool
}

// NewService creates a new user Service backed by the given pool.
func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// Exists reports whether a user with the given username is already present.
// It is a pure read: no side effects, and asking twice without intervening
// writes yields the same answer.
func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username = $1 LIMIT 1`

	var one int
	err := s.db.QueryRow(ctx, query, username).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperror.NewStorageFailure("failed to check user existence", err)
	}
	return true, nil
}

// Create registers a new user under the given username. At most one user can
// exist per username: the natural key is pre-checked and additionally
// enforced by a unique constraint, so a concurrent duplicate insert still
// surfaces as AlreadyExists rather than a raw constraint error.
func (s *Service) Create(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.NewInvalidArguments("username is required", nil)
	}

	exists, err := s.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewAlreadyExistsRecord(
			fmt.Sprintf("user '%s' already exists", username),
			User{Username: username},
		)
	}

	user := &User{Username: username}
	query := `INSERT INTO users (username)
	          VALUES ($1)
	          RETURNING id, created_on, updated_on`
	err = s.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.CreatedOn, &user.UpdatedOn)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == db.PgUniqueViolation {
			// A concurrent request won the race between our existence check
			// and this insert. The constraint is the atomic source of truth.
			return nil, apperror.NewAlreadyExistsRecord(
				fmt.Sprintf("user '%s' already exists", username),
				User{Username: username},
			)
		}
		// The existence check already ruled out the usual non-parameter
		// cause, so remaining insert failures are treated as a problem with
		// the supplied values.
		return nil, apperror.NewInvalidArguments("failed to create user", err)
	}

	return user, nil
}

// ListByUsername returns the users matching the given username. Zero matches
// yield an empty slice, not an error. Order is whatever the store returns.
func (s *Service) ListByUsername(ctx context.Context, username string) ([]User, error) {
	query := `SELECT id, username, created_on, updated_on FROM users WHERE username = $1`

	rows, err := s.db.Query(ctx, query, username)
	if err != nil {
		return nil, apperror.NewStorageFailure("failed to list users", err)
	}
	defer rows.Close()

	result := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedOn, &u.UpdatedOn); err != nil {
			return nil, apperror.NewStorageFailure("failed to scan user row", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorageFailure("failed to read user rows", err)
	}

	return result, nil
}
