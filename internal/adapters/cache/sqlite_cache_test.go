package cache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSQLiteCacheRoundTrip(t *testing.T) {
	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "geo.db"), zap.NewNop(), 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer c.Stop()
	ctx := context.Background()

	if _, err := c.Get(ctx, "8.8.8.8"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := c.Set(ctx, entry("8.8.8.8", time.Hour)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Replacing an entry must not fail on the primary key
	if err := c.Set(ctx, entry("8.8.8.8", time.Hour)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := c.Get(ctx, "8.8.8.8")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.IP != "8.8.8.8" || got.Location.Country != "United States" || got.Location.IP != "8.8.8.8" {
		t.Errorf("unexpected entry %+v", got)
	}

	c.Set(ctx, entry("1.1.1.1", -time.Minute))
	if _, err := c.Get(ctx, "1.1.1.1"); !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
	if err := c.Cleanup(ctx); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := c.Get(ctx, "1.1.1.1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected cleanup to remove expired entry, got %v", err)
	}
}

func TestSQLiteCacheStopTwice(t *testing.T) {
	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "geo.db"), zap.NewNop(), time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	c.Stop()
	c.Stop()
}
