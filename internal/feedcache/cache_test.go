package feedcache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestCacheStoresAndReturnsValue(t *testing.T) {
	dir := t.TempDir()
	c := New[string](dir, []byte("secret"), time.Hour)

	calls := 0
	create := func(ctx context.Context, key string) (*string, error) {
		calls++
		v := "value-for-" + key
		return &v, nil
	}

	v1, err := c.Get(context.Background(), "osv", "npm:left-pad:1.3.0", create)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	v2, err := c.Get(context.Background(), "osv", "npm:left-pad:1.3.0", create)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *v1 != *v2 {
		t.Errorf("values differ: %q vs %q", *v1, *v2)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1 (second Get should hit cache)", calls)
	}
}

func TestCacheRejectsTamperedEntry(t *testing.T) {
	dir := t.TempDir()
	c := New[string](dir, []byte("secret"), time.Hour)

	create := func(ctx context.Context, key string) (*string, error) {
		v := "original"
		return &v, nil
	}
	if _, err := c.Get(context.Background(), "osv", "key", create); err != nil {
		t.Fatalf("Get: %v", err)
	}

	path := c.path("osv", "key")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	tampered := append([]byte{}, raw...)
	tampered[len(tampered)-5] ^= 0xFF
	if err := os.WriteFile(path, tampered, 0o600); err != nil {
		t.Fatal(err)
	}

	calls := 0
	create2 := func(ctx context.Context, key string) (*string, error) {
		calls++
		v := "rebuilt"
		return &v, nil
	}
	v, err := c.Get(context.Background(), "osv", "key", create2)
	if err != nil {
		t.Fatalf("Get after tamper: %v", err)
	}
	if calls != 1 {
		t.Errorf("tampered entry should have been discarded and rebuilt once, got %d calls", calls)
	}
	if *v != "rebuilt" {
		t.Errorf("value = %q, want rebuilt", *v)
	}
}
