package generate

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RateLimitConfig defines a token bucket.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustainable rate (tokens added per second).
	RequestsPerSecond float64

	// BurstSize is the maximum number of requests allowed in a burst.
	BurstSize int
}

var (
	// OpenAILimits allows three requests a minute.
	OpenAILimits = RateLimitConfig{RequestsPerSecond: 3.0 / 60, BurstSize: 3}
	// OllamaLimits is generous; a local server has no published limit.
	OllamaLimits = RateLimitConfig{RequestsPerSecond: 10, BurstSize: 20}
)

// Limiter is a token bucket shared by every request to one provider. It is
// safe for concurrent use.
type Limiter struct {
	mu         sync.Mutex
	tokens     float64
	lastUpdate time.Time
	ratePerSec float64
	maxTokens  float64
	now        func() time.Time
}

// NewLimiter creates a full bucket.
func NewLimiter(cfg RateLimitConfig) *Limiter {
	if cfg.BurstSize < 1 {
		cfg.BurstSize = 1
	}
	return &Limiter{
		tokens:     float64(cfg.BurstSize),
		lastUpdate: time.Now(),
		ratePerSec: cfg.RequestsPerSecond,
		maxTokens:  float64(cfg.BurstSize),
		now:        time.Now,
	}
}

// refill must be called with mu held.
func (l *Limiter) refill() {
	now := l.now()
	elapsed := now.Sub(l.lastUpdate).Seconds()
	l.tokens += elapsed * l.ratePerSec
	if l.tokens > l.maxTokens {
		l.tokens = l.maxTokens
	}
	l.lastUpdate = now
}

// Allow consumes a token if one is available.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	if l.tokens >= 1.0 {
		l.tokens--
		return true
	}
	return false
}

// reserve takes a token, possibly going into debt, and returns how long the
// caller must wait before using it.
func (l *Limiter) reserve() (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	l.tokens--
	if l.tokens >= 0 {
		return 0, nil
	}
	if l.ratePerSec <= 0 {
		l.tokens++
		return 0, fmt.Errorf("%w: bucket never refills", ErrRateLimited)
	}
	return time.Duration(-l.tokens / l.ratePerSec * float64(time.Second)), nil
}

// Wait blocks until a token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	d, err := l.reserve()
	if err != nil || d == 0 {
		return err
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		l.tokens++
		l.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrRateLimited, ctx.Err())
	}
}

// Available returns the current token count.
func (l *Limiter) Available() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	return l.tokens
}
