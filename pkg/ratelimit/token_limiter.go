package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter enforces a per-minute token budget, used to stay inside
// AI provider token-per-minute quotas. Wait blocks until the requested
// number of tokens fits in the current minute window.
type TokenLimiter struct {
	mu          sync.Mutex
	maxPerMin   int
	used        int
	windowStart time.Time
}

// NewTokenLimiter creates a limiter with the given tokens-per-minute budget.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		maxPerMin:   maxPerMinute,
		windowStart: time.Now(),
	}
}

// GetRemaining returns the number of tokens left in the current window.
func (l *TokenLimiter) GetRemaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refresh()
	return l.maxPerMin - l.used
}

// Wait blocks until tokens can be consumed or the context is canceled.
// Requests larger than the whole budget are allowed through once the
// window is empty, since they could otherwise never proceed.
func (l *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	for {
		l.mu.Lock()
		l.refresh()
		if l.used+tokens <= l.maxPerMin || (tokens > l.maxPerMin && l.used == 0) {
			l.used += tokens
			l.mu.Unlock()
			return nil
		}
		wait := time.Minute - time.Since(l.windowStart)
		l.mu.Unlock()

		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (l *TokenLimiter) refresh() {
	if time.Since(l.windowStart) >= time.Minute {
		l.used = 0
		l.windowStart = time.Now()
	}
}
