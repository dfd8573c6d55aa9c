package users

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/movie-memo-go/apperror"
)

// A nil pool proves validation failures never reach storage: any query
// attempt would panic.
func TestCreateRejectsMissingUsername(t *testing.T) {
	s := NewService(nil)

	for _, username := range []string{"", "   ", "\t"} {
		_, err := s.Create(context.Background(), username)
		if !apperror.IsInvalidArguments(err) {
			t.Errorf("Create(%q) error = %v, want InvalidArguments", username, err)
		}
	}
}

// testPool connects to the database named by TEST_DATABASE_URL, skipping the
// test when it is not set.
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

func TestUserLifecycle(t *testing.T) {
	pool := testPool(t)
	s := NewService(pool)
	ctx := context.Background()

	username := fmt.Sprintf("alice-%d", time.Now().UnixNano())

	// Absent before creation.
	exists, err := s.Exists(ctx, username)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Fatalf("fresh username %q should not exist", username)
	}

	created, err := s.Create(ctx, username)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("created user should have a store-generated id")
	}
	if created.Username != username {
		t.Errorf("username = %q, want %q", created.Username, username)
	}
	if created.CreatedOn.IsZero() || created.UpdatedOn.IsZero() {
		t.Error("timestamps should be stamped by the store")
	}

	// Present after creation; asking twice gives the same answer.
	for i := 0; i < 2; i++ {
		exists, err = s.Exists(ctx, username)
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if !exists {
			t.Fatal("created username should exist")
		}
	}

	// Second create fails with AlreadyExists and attaches the attempt.
	_, err = s.Create(ctx, username)
	if !apperror.IsAlreadyExists(err) {
		t.Fatalf("duplicate Create() error = %v, want AlreadyExists", err)
	}
	ae, _ := apperror.FromError(err)
	if rec, ok := ae.Record.(User); !ok || rec.Username != username {
		t.Errorf("record = %#v, want attempted user", ae.Record)
	}

	// Row count unchanged: exactly one row for the username.
	list, err := s.ListByUsername(ctx, username)
	if err != nil {
		t.Fatalf("ListByUsername() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("found %d rows for %q, want 1", len(list), username)
	}
}

func TestListByUsernameEmptyResult(t *testing.T) {
	pool := testPool(t)
	s := NewService(pool)

	list, err := s.ListByUsername(context.Background(), fmt.Sprintf("nobody-%d", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("ListByUsername() error = %v", err)
	}
	if list == nil {
		t.Error("zero matches should yield an empty slice, not nil")
	}
	if len(list) != 0 {
		t.Errorf("unexpected rows: %v", list)
	}
}
