// Package repository keeps pending flow states in Postgres, for deployments that cannot rely on
// cookies alone and already run a database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Repository encapsulates all operations available on the database.
//
// Get, Set and Del make it usable as a flowstate.KV.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	// DeleteExpired removes expired rows and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

// repository implements Repository.
type repository struct {
	database *sql.DB
	// now is swapped in tests.
	now func() time.Time
}

// NewRepository returns a new implementation of Repository.
func NewRepository(database *sql.DB) Repository {
	return &repository{database: database, now: time.Now}
}

func (r *repository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args := getFlowStateQuery(key, r.now())

	var value []byte
	if err := r.database.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error in query execution: %w", err)
	}
	return value, true, nil
}

// Set upserts the value. A non-positive ttl never expires.
func (r *repository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt sql.NullTime
	if ttl > 0 {
		expiresAt = sql.NullTime{Time: r.now().Add(ttl), Valid: true}
	}

	query, args := setFlowStateQuery(key, value, expiresAt)
	if _, err := r.database.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error in query execution: %w", err)
	}
	return nil
}

func (r *repository) Del(ctx context.Context, key string) error {
	query, args := deleteFlowStateQuery(key)
	if _, err := r.database.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error in query execution: %w", err)
	}
	return nil
}

func (r *repository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args := deleteExpiredFlowStatesQuery(r.now())
	result, err := r.database.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error in query execution: %w", err)
	}

	// Parameters for logging.
	af, _ := result.RowsAffected()
	if af > 0 {
		slog.InfoContext(ctx, "expired flow states deleted", "rows-affected", af)
	}
	return af, nil
}

// RunJanitor calls DeleteExpired periodically until the context is cancelled.
func RunJanitor(ctx context.Context, repo Repository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := repo.DeleteExpired(ctx); err != nil {
				slog.ErrorContext(ctx, "error in repo.DeleteExpired call", "err", err)
			}
		}
	}
}
