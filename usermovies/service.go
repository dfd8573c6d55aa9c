// Package usermovies, service layer. Same creation protocol as the users
// package, specialized to the (user_id, movie_id) natural key.
package usermovies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/movie-memo-go/apperror"
	"github.com/user/movie-memo-go/db"
)

// Service provides operations on the UserMovie resource.
type Service struct {
	db *pgxpool.Pool
}

// NewService creates a new user-movie Service backed by the given pool.
func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// validateUserID rejects malformed user ids before they reach the store. The
// column is a uuid, so a non-uuid string would otherwise surface as a storage
// error instead of a parameter problem.
func validateUserID(userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return apperror.NewInvalidArguments("user_id must be a valid uuid", err)
	}
	return nil
}

// Exists reports whether the (userID, movieID) pair is already recorded.
// Read-only, no side effects.
func (s *Service) Exists(ctx context.Context, userID string, movieID int) (bool, error) {
	if err := validateUserID(userID); err != nil {
		return false, err
	}

	query := `SELECT 1 FROM user_movies WHERE user_id = $1 AND movie_id = $2 LIMIT 1`

	var one int
	err := s.db.QueryRow(ctx, query, userID, movieID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperror.NewStorageFailure("failed to check user movie existence", err)
	}
	return true, nil
}

// Create records a movie for a user. The required fields are validated before
// any storage access; the (user_id, movie_id) pair is pre-checked and also
// enforced by a composite unique constraint, so a concurrent duplicate still
// surfaces as AlreadyExists. Optional fields default to seen=false,
// watch_again=false and a null rating.
func (s *Service) Create(ctx context.Context, req CreateUserMovieRequest) (*UserMovie, error) {
	if req.UserID == nil || strings.TrimSpace(*req.UserID) == "" {
		return nil, apperror.NewInvalidArguments("user_id is required", nil)
	}
	if req.MovieID == 0 {
		return nil, apperror.NewInvalidArguments("movie_id is required", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.NewInvalidArguments("title is required", nil)
	}

	userID := *req.UserID
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	exists, err := s.Exists(ctx, userID, req.MovieID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewAlreadyExistsRecord(
			fmt.Sprintf("movie %d is already recorded for user '%s'", req.MovieID, userID),
			UserMovie{UserID: userID, MovieID: req.MovieID, Title: req.Title},
		)
	}

	// Caller-supplied defaults for the optional booleans.
	seen := false
	if req.Seen != nil {
		seen = *req.Seen
	}
	watchAgain := false
	if req.WatchAgain != nil {
		watchAgain = *req.WatchAgain
	}

	um := &UserMovie{
		MovieID:    req.MovieID,
		UserID:     userID,
		Title:      req.Title,
		Seen:       seen,
		WatchAgain: watchAgain,
		Rating:     req.Rating,
	}

	query := `INSERT INTO user_movies (movie_id, user_id, title, seen, watch_again, rating)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_on, updated_on`
	err = s.db.QueryRow(ctx, query,
		um.MovieID, um.UserID, um.Title, um.Seen, um.WatchAgain, um.Rating,
	).Scan(&um.ID, &um.CreatedOn, &um.UpdatedOn)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == db.PgUniqueViolation {
			// Lost the race between existence check and insert; the
			// constraint is the atomic source of truth.
			return nil, apperror.NewAlreadyExistsRecord(
				fmt.Sprintf("movie %d is already recorded for user '%s'", um.MovieID, um.UserID),
				*um,
			)
		}
		// Remaining insert failures (malformed user_id, missing user, bad
		// value) are parameter problems; the existence check already ruled
		// out the non-parameter causes.
		return nil, apperror.NewInvalidArguments("failed to create user movie", err)
	}

	return um, nil
}

// ListByUserID returns every movie recorded for a user. Zero rows yield an
// empty slice, not an error. Order is whatever the store returns.
func (s *Service) ListByUserID(ctx context.Context, userID string) ([]UserMovie, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	query := `SELECT id, movie_id, user_id, title, seen, watch_again, rating, created_on, updated_on
	          FROM user_movies
	          WHERE user_id = $1`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewStorageFailure("failed to list user movies", err)
	}
	defer rows.Close()

	result := []UserMovie{}
	for rows.Next() {
		var um UserMovie
		var rating sql.NullInt32
		if err := rows.Scan(
			&um.ID, &um.MovieID, &um.UserID, &um.Title,
			&um.Seen, &um.WatchAgain, &rating,
			&um.CreatedOn, &um.UpdatedOn,
		); err != nil {
			return nil, apperror.NewStorageFailure("failed to scan user movie row", err)
		}
		if rating.Valid {
			r := int(rating.Int32)
			um.Rating = &r
		}
		result = append(result, um)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStorageFailure("failed to read user movie rows", err)
	}

	return result, nil
}
