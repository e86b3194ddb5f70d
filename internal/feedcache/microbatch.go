package feedcache

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// batchInsert groups queued statements into pgx batches of a fixed size,
// adapted from the teacher's pkg/microbatch (written against pgx/v4) onto
// pgx/v5's Tx.SendBatch API. PostgresCache.BulkStore uses it to upsert many
// cache entries in one round trip instead of one statement per entry.
type batchInsert struct {
	tx        pgx.Tx
	batch     *pgx.Batch
	batchSize int
	queued    int
	timeout   time.Duration
}

func newBatchInsert(tx pgx.Tx, batchSize int, timeout time.Duration) *batchInsert {
	if batchSize <= 0 {
		batchSize = 500
	}
	if timeout == 0 {
		timeout = time.Minute
	}
	return &batchInsert{tx: tx, batchSize: batchSize, timeout: timeout}
}

// Queue enqueues one statement, flushing the current batch first if it's
// already full.
func (b *batchInsert) Queue(ctx context.Context, query string, args ...interface{}) error {
	if b.queued == b.batchSize {
		if err := b.flush(ctx, b.queued); err != nil {
			return fmt.Errorf("feedcache: flush batch: %w", err)
		}
		b.queued = 0
	}
	if b.batch == nil {
		b.batch = &pgx.Batch{}
	}
	b.batch.Queue(query, args...)
	b.queued++
	return nil
}

// Done flushes any statements queued since the last full batch.
func (b *batchInsert) Done(ctx context.Context) error {
	if b.queued == 0 {
		return nil
	}
	return b.flush(ctx, b.queued)
}

func (b *batchInsert) flush(ctx context.Context, n int) error {
	tctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	res := b.tx.SendBatch(tctx, b.batch)
	defer res.Close()
	defer func() { b.batch = nil }()
	for i := 0; i < n; i++ {
		if _, err := res.Exec(); err != nil {
			return fmt.Errorf("batch exec %d: %w", i, err)
		}
	}
	return nil
}
