// Package feedcache is a disk-backed, integrity-stamped cache for
// vulnerability feed responses. Every entry is tagged with a keyed HMAC over
// (feed, query, payload, timestamp) so a tampered cache file is detected and
// rejected rather than silently trusted.
package feedcache

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/reachlab/depscan"
	"github.com/reachlab/depscan/internal/lock"
)

// CreateFunc produces a fresh value for key when the cache has no entry, or
// rejects a tampered one. Mirrors the create-on-miss shape used elsewhere in
// this codebase for in-memory caches.
type CreateFunc[V any] func(ctx context.Context, key string) (*V, error)

// Cache is a directory of HMAC-stamped JSON entries, one file per key.
type Cache[V any] struct {
	Dir    string
	Secret []byte
	TTL    time.Duration

	// Lock serializes concurrent misses for the same (feed, query) key, so
	// two goroutines racing on a cold cache don't both call create and
	// clobber each other's store. Per-process by default; New installs a
	// lock.Local, matching the "vulnerability cache is single-writer"
	// resource rule.
	Lock lock.ContextLock
}

// New builds a Cache rooted at dir, signing entries with secret. TTL is the
// maximum age of a cache hit before it is treated as a miss.
func New[V any](dir string, secret []byte, ttl time.Duration) *Cache[V] {
	return &Cache[V]{Dir: dir, Secret: secret, TTL: ttl, Lock: &lock.Local{}}
}

type envelope struct {
	Feed      string          `json:"feed"`
	Query     string          `json:"query"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
	MAC       string          `json:"mac"`
}

// ErrTampered is returned when a cache entry's HMAC does not match its
// recorded contents.
var ErrTampered = errors.New("feedcache: integrity check failed")

// Get returns the cached value for (feed, query) if present, unexpired, and
// correctly signed; otherwise it calls create, stores the fresh result, and
// returns it.
func (c *Cache[V]) Get(ctx context.Context, feed, query string, create CreateFunc[V]) (*V, error) {
	path := c.path(feed, query)

	if v, err := c.load(feed, query, path); err == nil {
		return v, nil
	} else if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, errExpired) {
		// A tampered or corrupt entry is discarded rather than trusted. The
		// load error is not returned to the caller, and feedcache has no
		// logger of its own, so the discard is silent.
		_ = os.Remove(path)
	}

	l := c.Lock
	if l == nil {
		l = &lock.Local{}
	}
	lockCtx, cancel := l.Lock(ctx, feed+"\x00"+query)
	defer cancel()

	// Re-check under the lock: another goroutine may have populated the
	// entry while this one waited.
	if v, err := c.load(feed, query, path); err == nil {
		return v, nil
	}

	v, err := create(lockCtx, query)
	if err != nil {
		return nil, err
	}
	if err := c.store(feed, query, path, v); err != nil {
		return v, nil // cache write failures never fail the call
	}
	return v, nil
}

var errExpired = errors.New("feedcache: entry expired")

func (c *Cache[V]) load(feed, query, path string) (*V, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("feedcache: decode entry: %w", err)
	}

	expectMAC := c.mac(env.Feed, env.Query, env.Payload, env.Timestamp)
	if !hmac.Equal([]byte(expectMAC), []byte(env.MAC)) {
		return nil, ErrTampered
	}
	if env.Feed != feed || env.Query != query {
		return nil, ErrTampered
	}
	if c.TTL > 0 && time.Since(time.Unix(env.Timestamp, 0)) > c.TTL {
		return nil, errExpired
	}

	var v V
	if err := json.Unmarshal(env.Payload, &v); err != nil {
		return nil, fmt.Errorf("feedcache: decode payload: %w", err)
	}
	return &v, nil
}

func (c *Cache[V]) store(feed, query, path string, v *V) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ts := time.Now().Unix()
	env := envelope{
		Feed:      feed,
		Query:     query,
		Payload:   payload,
		Timestamp: ts,
		MAC:       c.mac(feed, query, payload, ts),
	}
	raw, err := json.Marshal(&env)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func (c *Cache[V]) mac(feed, query string, payload json.RawMessage, ts int64) string {
	h := hmac.New(sha256.New, c.Secret)
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%d", feed, query, payload, ts)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// path derives the entry's filename from a content digest of (feed, query),
// using the depscan.Digest type as a stable, algorithm-tagged identity.
func (c *Cache[V]) path(feed, query string) string {
	sum := sha256.Sum256([]byte(feed + "\x00" + query))
	d, err := depscan.NewDigest(depscan.SHA256, sum[:])
	if err != nil {
		panic(fmt.Sprintf("feedcache: digest of a fixed-size sha256 sum: %v", err))
	}
	return filepath.Join(c.Dir, feed+"-"+strings.ReplaceAll(d.String(), ":", "_")+".json")
}
