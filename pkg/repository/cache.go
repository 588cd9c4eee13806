package repository

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// maxCacheEntries bounds the summary cache to the most recent entries
const maxCacheEntries = 100

// SummaryCacheRepository stores generated summaries keyed by a hash of the
// article link. The cache is best-effort: lookups and writes degrade to a
// miss or a no-op on failure so the summarization flow is never interrupted.
type SummaryCacheRepository struct {
	db *sqlx.DB
}

// summaryCacheSQL represents a cache row for SQL operations
type summaryCacheSQL struct {
	ID        int64     `db:"id"`
	LinkHash  string    `db:"link_hash"`
	Link      string    `db:"link"`
	Summary   string    `db:"summary"`
	Model     string    `db:"model"`
	CreatedAt time.Time `db:"created_at"`
}

// NewSummaryCacheRepository creates a new summary cache repository
func NewSummaryCacheRepository(database *sqlx.DB) *SummaryCacheRepository {
	return &SummaryCacheRepository{db: database}
}

// Get returns the cached summary for link. The second value reports whether
// a usable entry was found, lookup failures count as a miss.
func (r *SummaryCacheRepository) Get(ctx context.Context, link string) (string, bool) {
	var summary string
	err := r.db.GetContext(ctx, &summary,
		"SELECT summary FROM summary_cache WHERE link_hash = ?", linkHash(link))
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		lgr.Printf("[WARN] summary cache lookup failed for %s: %v", link, err)
		return "", false
	}
	if summary == "" {
		return "", false
	}
	return summary, true
}

// Put stores or refreshes the summary for link and reports success. An
// existing entry for the same link is replaced and its age reset, so repeated
// puts keep the entry among the most recent.
func (r *SummaryCacheRepository) Put(ctx context.Context, link, summary, model string) bool {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO summary_cache (link_hash, link, summary, model)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(link_hash) DO UPDATE SET
				link = excluded.link,
				summary = excluded.summary,
				model = excluded.model,
				created_at = CURRENT_TIMESTAMP
		`
		if _, err := r.db.ExecContext(ctx, query, linkHash(link), link, summary, model); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("upsert summary: %w", err)}
		}
		return nil
	})
	if err != nil {
		lgr.Printf("[WARN] failed to cache summary for %s: %v", link, err)
		return false
	}

	// retention is best-effort, a failed trim does not undo the write
	if err := r.trim(ctx); err != nil {
		lgr.Printf("[WARN] failed to trim summary cache: %v", err)
	}
	return true
}

// Size returns the number of cached summaries
func (r *SummaryCacheRepository) Size(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM summary_cache"); err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return count, nil
}

// trim drops everything outside the most recent entries once the table grows
// past the limit. Ties on created_at fall back to insertion order.
func (r *SummaryCacheRepository) trim(ctx context.Context) error {
	count, err := r.Size(ctx)
	if err != nil {
		return err
	}
	if count <= maxCacheEntries {
		return nil
	}

	query := `
		DELETE FROM summary_cache
		WHERE id NOT IN (
			SELECT id FROM summary_cache
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)
	`
	if _, err := r.db.ExecContext(ctx, query, maxCacheEntries); err != nil {
		return fmt.Errorf("delete old cache entries: %w", err)
	}
	return nil
}

// linkHash derives the cache key from the raw article link
func linkHash(link string) string {
	sum := sha256.Sum256([]byte(link))
	return hex.EncodeToString(sum[:])
}
