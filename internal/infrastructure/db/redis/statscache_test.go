package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

type cachedStats struct {
	Total  int    `json:"total"`
	Recent string `json:"recent"`
}

func newTestCache(t *testing.T) (*StatsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStatsCache(client), mr
}

func TestStatsCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	in := cachedStats{Total: 42, Recent: "laptop"}
	if err := cache.Set(ctx, "dashboard:stats:admin:7", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out cachedStats
	hit, err := cache.Get(ctx, "dashboard:stats:admin:7", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestStatsCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var out cachedStats
	hit, err := cache.Get(context.Background(), "absent", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("expected a miss for an absent key")
	}
}

func TestStatsCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", cachedStats{Total: 1}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	var out cachedStats
	hit, err := cache.Get(ctx, "k", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("expected the entry to expire")
	}
}

func TestStatsCacheCorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t)

	mr.Set("k", "{not json")

	var out cachedStats
	if _, err := cache.Get(context.Background(), "k", &out); err == nil {
		t.Fatal("expected a decode error")
	}
}
