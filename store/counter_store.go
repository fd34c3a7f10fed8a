// api/store/counter_store.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type CounterStore struct {
	DB *sql.DB
}

func NewCounterStore(db *sql.DB) *CounterStore {
	return &CounterStore{
		DB: db,
	}
}

// EnsureSchema idempotently creates the pageviews table. It is called
// lazily before every live read and write, so it must stay a no-op when the
// table already exists.
func (s *CounterStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS pageviews (
			pathname TEXT PRIMARY KEY,
			views INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure pageviews schema: %w", err)
	}
	return nil
}

// Increment records one view for pathname as a single store-side upsert:
// insert with views = 1 on first observation, otherwise views = views + 1.
// Concurrent reports for the same path cannot lose updates because nothing
// is read before the write.
func (s *CounterStore) Increment(ctx context.Context, pathname string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO pageviews (pathname, views) VALUES ($1, 1)
		ON CONFLICT (pathname) DO UPDATE SET views = pageviews.views + 1
	`, pathname)
	if err != nil {
		return fmt.Errorf("failed to increment views for %q: %w", pathname, err)
	}
	return nil
}

// Read returns the current view count for pathname. A path with no row
// reads as 0; absence is not an error.
func (s *CounterStore) Read(ctx context.Context, pathname string) (int64, error) {
	var views int64
	err := s.DB.QueryRowContext(ctx,
		`SELECT views FROM pageviews WHERE pathname = $1`, pathname,
	).Scan(&views)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read views for %q: %w", pathname, err)
	}
	return views, nil
}

// SetViews overwrites the count for pathname with an absolute value. Used
// only by the bulk importer; the live path never calls this.
func (s *CounterStore) SetViews(ctx context.Context, pathname string, views int64) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO pageviews (pathname, views) VALUES ($1, $2)
		ON CONFLICT (pathname) DO UPDATE SET views = EXCLUDED.views
	`, pathname, views)
	if err != nil {
		return fmt.Errorf("failed to set views for %q: %w", pathname, err)
	}
	return nil
}
