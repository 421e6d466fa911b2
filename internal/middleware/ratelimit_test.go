package middleware

import "testing"

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3)

	for i := 0; i < 3; i++ {
		if got := rl.allow("user-a"); !got.allowed {
			t.Fatalf("request %d rejected below the limit", i+1)
		}
	}
	if got := rl.allow("user-a"); got.allowed {
		t.Error("request above the limit was allowed")
	}
}

func TestRateLimiterIsolatesUsers(t *testing.T) {
	rl := NewRateLimiter(1)

	if !rl.allow("user-a").allowed {
		t.Fatal("first request for user-a rejected")
	}
	if rl.allow("user-a").allowed {
		t.Fatal("user-a exceeded their bucket")
	}
	// A different user has their own bucket.
	if !rl.allow("user-b").allowed {
		t.Error("user-b blocked by user-a's consumption")
	}
}

func TestRateLimiterReportsRemaining(t *testing.T) {
	rl := NewRateLimiter(10)

	got := rl.allow("user-a")
	if got.limit != 10 {
		t.Errorf("limit = %v, want 10", got.limit)
	}
	if got.remaining >= 10 || got.remaining < 8 {
		t.Errorf("remaining = %v after one request, want just under 9-10", got.remaining)
	}
}
