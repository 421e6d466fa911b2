package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { c.Close() })
	return c, mr
}

type payload struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := payload{Name: "Ada", Score: 374}
	if err := c.SetJSON(ctx, "board", in, time.Minute); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}

	var out payload
	if !c.GetJSON(ctx, "board", &out) {
		t.Fatal("GetJSON missed a stored key")
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestGetMissingKey(t *testing.T) {
	c, _ := newTestCache(t)

	var out payload
	if c.GetJSON(context.Background(), "nope", &out) {
		t.Error("GetJSON hit on a missing key")
	}
}

func TestExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.SetJSON(ctx, "board", payload{Name: "Ada"}, time.Minute); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}

	// miniredis advances time manually instead of sleeping.
	mr.FastForward(2 * time.Minute)

	var out payload
	if c.GetJSON(ctx, "board", &out) {
		t.Error("GetJSON hit on an expired key")
	}
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetJSON(ctx, "a", payload{}, time.Minute)
	c.SetJSON(ctx, "b", payload{}, time.Minute)
	c.Invalidate(ctx, "a", "b")

	var out payload
	if c.GetJSON(ctx, "a", &out) || c.GetJSON(ctx, "b", &out) {
		t.Error("invalidated keys still readable")
	}
}

func TestNilCacheIsAlwaysMiss(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	if err := c.SetJSON(ctx, "k", payload{}, time.Minute); err != nil {
		t.Errorf("nil cache SetJSON returned %v", err)
	}
	var out payload
	if c.GetJSON(ctx, "k", &out) {
		t.Error("nil cache reported a hit")
	}
	c.Invalidate(ctx, "k")
	if err := c.Close(); err != nil {
		t.Errorf("nil cache Close returned %v", err)
	}
}
