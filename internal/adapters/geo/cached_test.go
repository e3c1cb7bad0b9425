package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/adapters/cache"
	"github.com/mikey/eml-analyzer/internal/core"
)

type countingLocator struct {
	calls int
	err   error
}

func (c *countingLocator) Lookup(_ context.Context, ip string) (core.GeoLocation, error) {
	c.calls++
	if c.err != nil {
		return core.GeoLocation{}, c.err
	}
	return core.GeoLocation{IP: ip, City: "Sydney", Region: "New South Wales", Country: "Australia"}, nil
}

func TestCachedLocatorHit(t *testing.T) {
	store := cache.NewMemoryCache(zap.NewNop(), 0)
	defer store.Stop()
	next := &countingLocator{}
	locator := NewCachedLocator(next, store, time.Hour, zap.NewNop())

	for i := 0; i < 3; i++ {
		loc, err := locator.Lookup(context.Background(), "1.1.1.1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if loc.Country != "Australia" {
			t.Errorf("unexpected location %+v", loc)
		}
	}
	if next.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", next.calls)
	}
}

func TestCachedLocatorDoesNotCacheFailures(t *testing.T) {
	store := cache.NewMemoryCache(zap.NewNop(), 0)
	defer store.Stop()
	next := &countingLocator{err: errors.New("boom")}
	locator := NewCachedLocator(next, store, time.Hour, zap.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := locator.Lookup(context.Background(), "1.1.1.1"); err == nil {
			t.Fatalf("expected error")
		}
	}
	if next.calls != 2 {
		t.Errorf("expected failures to reach the provider every time, got %d calls", next.calls)
	}
	if _, err := store.Get(context.Background(), "1.1.1.1"); !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("expected nothing cached, got %v", err)
	}
}

func TestCachedLocatorExpiredEntry(t *testing.T) {
	store := cache.NewMemoryCache(zap.NewNop(), 0)
	defer store.Stop()
	next := &countingLocator{}
	locator := NewCachedLocator(next, store, -time.Minute, zap.NewNop())

	locator.Lookup(context.Background(), "1.1.1.1")
	locator.Lookup(context.Background(), "1.1.1.1")
	if next.calls != 2 {
		t.Errorf("expected expired entries to be refreshed, got %d calls", next.calls)
	}
}
