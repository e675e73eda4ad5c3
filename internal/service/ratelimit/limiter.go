// Package ratelimit enforces the per-session sliding-window quota on the
// chat endpoint.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Window is the trailing interval a session's requests are counted over.
const Window = 3600 * time.Second

// Store persists per-session request timestamp windows. A missing session
// must be returned as an empty window, not an error.
type Store interface {
	Get(ctx context.Context, sessionID string) ([]time.Time, error)
	Put(ctx context.Context, sessionID string, window []time.Time) error
}

// Limiter gates requests against a sliding window of Window length.
type Limiter struct {
	store  Store
	limit  int
	logger *zap.Logger

	// mu makes prune-check-record atomic so two concurrent tabs on one
	// session cannot both slip past the quota.
	mu sync.Mutex

	now func() time.Time
}

// New creates a limiter admitting at most limit requests per session per
// trailing hour.
func New(store Store, limit int, logger *zap.Logger) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// Admit reports whether the session may issue another request. An admitted
// call records its timestamp; a rejected call leaves the window untouched so
// rejections never count against the quota. Store failures admit the
// request: a degraded limiter must not take the chat down.
func (l *Limiter) Admit(ctx context.Context, sessionID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	window, err := l.store.Get(ctx, sessionID)
	if err != nil {
		l.logger.Warn("rate window read failed, admitting request",
			zap.String("session_id", sessionID), zap.Error(err))
		return true
	}

	pruned := window[:0]
	for _, ts := range window {
		if now.Sub(ts) < Window {
			pruned = append(pruned, ts)
		}
	}

	if len(pruned) >= l.limit {
		// Persist the prune even on rejection so the window stays bounded.
		if err := l.store.Put(ctx, sessionID, pruned); err != nil {
			l.logger.Warn("rate window write failed",
				zap.String("session_id", sessionID), zap.Error(err))
		}
		return false
	}

	pruned = append(pruned, now)
	if err := l.store.Put(ctx, sessionID, pruned); err != nil {
		l.logger.Warn("rate window write failed, admitting request",
			zap.String("session_id", sessionID), zap.Error(err))
	}
	return true
}
