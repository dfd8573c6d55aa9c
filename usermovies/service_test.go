package usermovies

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/movie-memo-go/apperror"
	"github.com/user/movie-memo-go/users"
)

// A nil pool proves the required-field checks run before any storage access:
// a query attempt would panic.
func TestCreateValidatesBeforeStorage(t *testing.T) {
	s := NewService(nil)
	ctx := context.Background()
	empty := ""
	alice := "8e1e3b1a-3a68-4f6a-9a6c-2f0d2f2b9b6e"

	notAUUID := "abc"

	cases := []struct {
		name string
		req  CreateUserMovieRequest
	}{
		{"nil user_id", CreateUserMovieRequest{MovieID: 42, Title: "Dune"}},
		{"empty user_id", CreateUserMovieRequest{UserID: &empty, MovieID: 42, Title: "Dune"}},
		{"malformed user_id", CreateUserMovieRequest{UserID: &notAUUID, MovieID: 42, Title: "Dune"}},
		{"missing movie_id", CreateUserMovieRequest{UserID: &alice, Title: "Dune"}},
		{"missing title", CreateUserMovieRequest{UserID: &alice, MovieID: 42}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(ctx, tc.req)
			if !apperror.IsInvalidArguments(err) {
				t.Errorf("Create() error = %v, want InvalidArguments", err)
			}
		})
	}
}

// Malformed keys are parameter problems on every operation, rejected before
// the store sees them; the nil pool would panic otherwise.
func TestMalformedUserIDIsParameterProblem(t *testing.T) {
	s := NewService(nil)
	ctx := context.Background()

	if _, err := s.Exists(ctx, "not-a-uuid", 42); !apperror.IsInvalidArguments(err) {
		t.Errorf("Exists() error = %v, want InvalidArguments", err)
	}
	if _, err := s.ListByUserID(ctx, "not-a-uuid"); !apperror.IsInvalidArguments(err) {
		t.Errorf("ListByUserID() error = %v, want InvalidArguments", err)
	}
}

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database round-trip test")
	}
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestUserMovieLifecycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	// The association needs an owning user.
	owner, err := users.NewService(pool).Create(ctx, fmt.Sprintf("memo-%d", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("creating owner: %v", err)
	}

	s := NewService(pool)
	req := CreateUserMovieRequest{UserID: &owner.ID, MovieID: 42, Title: "Dune"}

	created, err := s.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("created record should have a store-generated id")
	}
	if created.Seen || created.WatchAgain {
		t.Error("seen and watch_again should default to false")
	}
	if created.Rating != nil {
		t.Errorf("rating should default to null, got %v", *created.Rating)
	}
	if created.Title != "Dune" || created.MovieID != 42 || created.UserID != owner.ID {
		t.Errorf("created = %+v, want requested fields", created)
	}

	// Same (user, movie) pair again: AlreadyExists, no second row.
	_, err = s.Create(ctx, req)
	if !apperror.IsAlreadyExists(err) {
		t.Fatalf("duplicate Create() error = %v, want AlreadyExists", err)
	}

	exists, err := s.Exists(ctx, owner.ID, 42)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("pair should exist after creation")
	}

	list, err := s.ListByUserID(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUserID() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("found %d rows, want 1", len(list))
	}

	// A different movie for the same user is a different natural key.
	rating := 8
	seen := true
	req2 := CreateUserMovieRequest{UserID: &owner.ID, MovieID: 43, Title: "Dune: Part Two", Seen: &seen, Rating: &rating}
	second, err := s.Create(ctx, req2)
	if err != nil {
		t.Fatalf("Create() with new movie error = %v", err)
	}
	if !second.Seen || second.Rating == nil || *second.Rating != 8 {
		t.Errorf("optional fields not applied: %+v", second)
	}
}

func TestListByUserIDEmptyResult(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	owner, err := users.NewService(pool).Create(ctx, fmt.Sprintf("empty-%d", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("creating owner: %v", err)
	}

	list, err := NewService(pool).ListByUserID(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUserID() error = %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("user with no recorded movies should get an empty slice, got %v", list)
	}
}

func TestCreateWithUnknownUserIsParameterProblem(t *testing.T) {
	pool := testPool(t)

	ghost := "00000000-0000-0000-0000-000000000000"
	_, err := NewService(pool).Create(context.Background(), CreateUserMovieRequest{
		UserID: &ghost, MovieID: 42, Title: "Dune",
	})
	if !apperror.IsInvalidArguments(err) {
		t.Errorf("Create() with unknown user error = %v, want InvalidArguments", err)
	}
}
