package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, max int64, window time.Duration) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLimiter(client, max, window), mr
}

func TestAllow_UnderLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "login:alice@example.com")
		if err != nil {
			t.Fatalf("Allow: %v", err)
		}
		if !ok {
			t.Fatalf("hit %d throttled, want allowed", i+1)
		}
	}
}

func TestAllow_OverLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, err := limiter.Allow(ctx, "login:bob@example.com"); err != nil || !ok {
			t.Fatalf("hit %d: ok=%v err=%v", i+1, ok, err)
		}
	}
	ok, err := limiter.Allow(ctx, "login:bob@example.com")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ok {
		t.Error("third hit allowed, want throttled")
	}
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "login:a@example.com"); !ok {
		t.Fatal("first key throttled")
	}
	if ok, _ := limiter.Allow(ctx, "login:b@example.com"); !ok {
		t.Error("second key throttled by first key's counter")
	}
}

func TestAllow_WindowResets(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "login:c@example.com"); !ok {
		t.Fatal("first hit throttled")
	}
	if ok, _ := limiter.Allow(ctx, "login:c@example.com"); ok {
		t.Fatal("second hit allowed within window")
	}

	mr.FastForward(2 * time.Minute)

	if ok, err := limiter.Allow(ctx, "login:c@example.com"); err != nil || !ok {
		t.Errorf("hit after window: ok=%v err=%v", ok, err)
	}
}
