package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 2)

	if !limiter.Allow("openai") {
		t.Error("first call should be allowed")
	}
	if !limiter.Allow("openai") {
		t.Error("second call should be allowed within burst")
	}
	if limiter.Allow("openai") {
		t.Error("third call should be throttled")
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("a") {
		t.Error("key a should be allowed")
	}
	if !limiter.Allow("b") {
		t.Error("key b has its own budget")
	}
	if limiter.Allow("a") {
		t.Error("key a should be throttled")
	}
}

func TestLimiter_SetRateOverridesKey(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetRate("fast", 100, 10)

	for i := 0; i < 10; i++ {
		if !limiter.Allow("fast") {
			t.Fatalf("call %d throttled despite burst of 10", i)
		}
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.01, 1)

	// Drain the burst so the next Wait would block for a long time.
	if !limiter.Allow("slow") {
		t.Fatal("burst call should be allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "slow"); err == nil {
		t.Error("Wait should fail when the context expires first")
	}
}

func TestLimiter_ZeroBurstClamped(t *testing.T) {
	limiter := NewLimiter(1, 0)

	if !limiter.Allow("k") {
		t.Error("burst must be clamped to at least 1")
	}
}
