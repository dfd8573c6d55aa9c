// Package db provides database connectivity and migration functionality for
// the movie-memo application. It establishes the pgx connection pool the rest
// of the application borrows connections from, and applies schema migrations
// on startup. Acquisition failures (exhaustion, timeout, closed pool) surface
// to callers through the pool itself; this package only classifies the errors
// it produces while building the pool.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // registers migrate's postgres database driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // registers the file:// migration source
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq" // database/sql driver behind migrate's postgres DSN handling

	"github.com/user/movie-memo-go/apperror"
	"github.com/user/movie-memo-go/config"
)

// PgUniqueViolation is the PostgreSQL error code for unique constraint
// violations. The creation protocol treats it as the atomic source of
// already-exists failures.
const PgUniqueViolation = "23505"

// NewDBPool establishes a connection pool against PostgreSQL using the
// provided configuration. The pool is shared by every request; each operation
// borrows a connection for the duration of its round-trip and returns it on
// completion.
func NewDBPool(cfg *config.PoolConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable&pool_max_conns=%d",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
		cfg.MaxSize,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, apperror.NewStorageFailure(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}

	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	// Bound pool creation so an unreachable database fails startup instead of
	// hanging it.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperror.NewStorageFailure(fmt.Sprintf("error creating pool for database %s", cfg.DBName), err)
	}

	// Ping to verify the connection before handing the pool out.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperror.NewStorageFailure(fmt.Sprintf("error connecting to database %s", cfg.DBName), err)
	}

	return pool, nil
}

// getDSN constructs a DSN string from PoolConfig suitable for golang-migrate,
// which goes through database/sql + lib/pq rather than pgx.
func getDSN(cfg *config.PoolConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName,
	)
}

// RunMigrations applies any pending database migrations from the given
// directory. Migration versioning and execution are handled by golang-migrate;
// the uniqueness constraints the creation protocol relies on live in these
// migration files.
func RunMigrations(cfg *config.PoolConfig, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, getDSN(cfg))
	if err != nil {
		return apperror.NewStorageFailure("failed to create migrator", err)
	}
	defer func() {
		// m.Close returns separate errors for the source and the database
		// handle; neither failing should mask a successful migration run.
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			if srcErr != nil {
				fmt.Printf("warning: error closing migration source: %v\n", srcErr)
			}
			if dbErr != nil {
				fmt.Printf("warning: error closing migration database instance: %v\n", dbErr)
			}
		}
	}()

	// ErrNoChange just means the schema is already current.
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return apperror.NewStorageFailure("failed to run migrations", err)
	}

	return nil
}
