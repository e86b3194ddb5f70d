package feedcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v8"
	_ "github.com/doug-martin/goqu/v8/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCache is the optional cache backend for server deployments: the
// same (feed, query) -> payload entries Cache stamps onto disk as individual
// files instead live in one shared table, so a fleet of depscan workers
// behind the same database sees a common cache. Selected with
// --cache-backend=postgres; Cache (the on-disk default) needs no server and
// remains the default for single-host runs.
type PostgresCache[V any] struct {
	Pool  *pgxpool.Pool
	Table string
	TTL   time.Duration
}

// NewPostgresCache builds a PostgresCache backed by pool, storing entries in
// table (defaulting to "feed_cache"). Call EnsureSchema once before first
// use.
func NewPostgresCache[V any](pool *pgxpool.Pool, table string, ttl time.Duration) *PostgresCache[V] {
	if table == "" {
		table = "feed_cache"
	}
	return &PostgresCache[V]{Pool: pool, Table: table, TTL: ttl}
}

// EnsureSchema creates the cache table if it does not already exist.
func (c *PostgresCache[V]) EnsureSchema(ctx context.Context) error {
	_, err := c.Pool.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		feed text NOT NULL,
		query text NOT NULL,
		payload jsonb NOT NULL,
		fetched_at timestamptz NOT NULL,
		PRIMARY KEY (feed, query)
	)`, c.Table))
	return err
}

// Get mirrors Cache.Get's miss-then-create contract against the shared
// table: a hit within TTL is returned as-is, a miss or expired row calls
// create and upserts the result. Concurrent misses on different connections
// race on the upsert; the last writer wins, which is acceptable since create
// is expected to be idempotent for a given (feed, query).
func (c *PostgresCache[V]) Get(ctx context.Context, feed, query string, create CreateFunc[V]) (*V, error) {
	ds := goqu.Dialect("postgres").From(c.Table).
		Select("payload", "fetched_at").
		Where(goqu.Ex{"feed": feed, "query": query})
	sql, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("feedcache: build select: %w", err)
	}

	var payload []byte
	var fetchedAt time.Time
	err = c.Pool.QueryRow(ctx, sql, args...).Scan(&payload, &fetchedAt)
	switch {
	case err == nil:
		if c.TTL <= 0 || time.Since(fetchedAt) < c.TTL {
			var v V
			if jsonErr := json.Unmarshal(payload, &v); jsonErr == nil {
				return &v, nil
			}
		}
	case errors.Is(err, pgx.ErrNoRows):
		// miss, fall through to create
	default:
		return nil, fmt.Errorf("feedcache: select entry: %w", err)
	}

	v, err := create(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := c.store(ctx, feed, query, v); err != nil {
		return v, nil // cache write failures never fail the call
	}
	return v, nil
}

func (c *PostgresCache[V]) store(ctx context.Context, feed, query string, v *V) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	ds := goqu.Dialect("postgres").Insert(c.Table).
		Rows(goqu.Record{"feed": feed, "query": query, "payload": payload, "fetched_at": now}).
		OnConflict(goqu.DoUpdate("feed, query", goqu.Record{"payload": payload, "fetched_at": now}))
	sql, args, err := ds.ToSQL()
	if err != nil {
		return fmt.Errorf("feedcache: build upsert: %w", err)
	}
	_, err = c.Pool.Exec(ctx, sql, args...)
	return err
}

// BulkStore loads many entries for feed at once, batching the upserts with
// the same micro-batching shape the teacher used for bulk vulnerability
// inserts (pkg/microbatch), rewritten here onto pgx/v5's Batch/SendBatch.
// Used by the ml/cache warmup paths to precompute a whole feed's worth of
// entries in one transaction instead of one round trip per entry.
func (c *PostgresCache[V]) BulkStore(ctx context.Context, feed string, entries map[string]*V, batchSize int) error {
	tx, err := c.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("feedcache: begin bulk store: %w", err)
	}
	defer tx.Rollback(ctx)

	b := newBatchInsert(tx, batchSize, 0)
	now := time.Now().UTC()
	upsertSQL := fmt.Sprintf(`INSERT INTO %s (feed, query, payload, fetched_at) VALUES ($1,$2,$3,$4)
		ON CONFLICT (feed, query) DO UPDATE SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at`, c.Table)
	for query, v := range entries {
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("feedcache: marshal bulk entry %q: %w", query, err)
		}
		if err := b.Queue(ctx, upsertSQL, feed, query, payload, now); err != nil {
			return err
		}
	}
	if err := b.Done(ctx); err != nil {
		return fmt.Errorf("feedcache: flush bulk store: %w", err)
	}
	return tx.Commit(ctx)
}
