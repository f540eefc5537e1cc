package cache

import (
	"context"
	"testing"
	"time"
)

type payload struct {
	Name  string
	Count int
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	mc := NewMemoryCache(WithMemoryCleanup(0))
	defer mc.Close()
	ctx := context.Background()

	in := &payload{Name: "GDP", Count: 3}
	if err := mc.Set(ctx, "k", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out *payload
	if err := mc.Get(ctx, "k", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != in {
		t.Fatalf("expected the stored pointer back, got %+v", out)
	}
}

func TestMemoryCacheLazyExpiry(t *testing.T) {
	mc := NewMemoryCache(WithMemoryCleanup(0))
	defer mc.Close()
	ctx := context.Background()

	if err := mc.Set(ctx, "k", &payload{}, time.Nanosecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	var out *payload
	if err := mc.Get(ctx, "k", &out); err != ErrCacheMiss {
		t.Fatalf("expected miss, got %v", err)
	}
	// the expired entry must be gone after the lookup
	if ok, _ := mc.Exists(ctx, "k"); ok {
		t.Fatalf("expired entry survived lazy eviction")
	}
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2), WithMemoryCleanup(0))
	defer mc.Close()
	ctx := context.Background()

	_ = mc.Set(ctx, "a", &payload{Name: "a"}, time.Minute)
	time.Sleep(time.Millisecond)
	_ = mc.Set(ctx, "b", &payload{Name: "b"}, time.Minute)
	time.Sleep(time.Millisecond)
	_ = mc.Set(ctx, "c", &payload{Name: "c"}, time.Minute)

	var out *payload
	if err := mc.Get(ctx, "a", &out); err != ErrCacheMiss {
		t.Fatalf("expected oldest entry evicted, got %v", err)
	}
	if err := mc.Get(ctx, "c", &out); err != nil {
		t.Fatalf("newest entry missing: %v", err)
	}
}
