package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"github.com/bunniesplumbing/chat-gateway/internal/config"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(config.RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	window := []time.Time{
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
	}
	if err := s.Put(ctx, "s1", window); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(window[0]) || !got[1].Equal(window[1]) {
		t.Fatalf("got %v, want %v", got, window)
	}
}

func TestRedisStoreMissingSessionIsEmptyWindow(t *testing.T) {
	s, _ := newTestRedisStore(t)

	got, err := s.Get(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("missing key must not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty window", got)
	}
}

func TestRedisStoreSetsWindowTTL(t *testing.T) {
	s, mr := newTestRedisStore(t)

	if err := s.Put(context.Background(), "s1", []time.Time{time.Now()}); err != nil {
		t.Fatalf("put: %v", err)
	}

	ttl := mr.TTL(redisKeyPrefix + "s1")
	if ttl <= 0 || ttl > Window {
		t.Fatalf("ttl = %v, want within (0, %v]", ttl, Window)
	}
}

func TestRedisStoreEmptyPutDeletes(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "s1", []time.Time{time.Now()}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "s1", nil); err != nil {
		t.Fatalf("empty put: %v", err)
	}
	if mr.Exists(redisKeyPrefix + "s1") {
		t.Fatal("empty put should delete the key")
	}
}

func TestRedisStoreDiscardsCorruptWindow(t *testing.T) {
	s, mr := newTestRedisStore(t)

	mr.Set(redisKeyPrefix+"s1", "not json")

	got, err := s.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("corrupt window must not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want the corrupt window discarded", got)
	}
}

func TestLimiterWithRedisStore(t *testing.T) {
	s, _ := newTestRedisStore(t)
	l := New(s, 2, zap.NewNop())
	ctx := context.Background()

	if !l.Admit(ctx, "s1") || !l.Admit(ctx, "s1") {
		t.Fatal("first two requests should be admitted")
	}
	if l.Admit(ctx, "s1") {
		t.Fatal("third request should be rejected")
	}
	if !l.Admit(ctx, "s2") {
		t.Fatal("other sessions keep their own quota")
	}
}
