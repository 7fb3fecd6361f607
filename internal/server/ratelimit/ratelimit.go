// Package ratelimit throttles API clients with per-endpoint token buckets.
// The public intake and the Chrome-backed download endpoints get strict
// budgets; authenticated admin reads fall through to a generous default.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket for one client/endpoint pair. Tokens refill
// continuously at refillPerSec up to capacity.
type bucket struct {
	mu           sync.Mutex
	capacity     float64
	refillPerSec float64
	tokens       float64
	refilledAt   time.Time
	lastSeen     time.Time
}

func newBucket(capacity int, refillPerSec float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity:     float64(capacity),
		refillPerSec: refillPerSec,
		tokens:       float64(capacity), // full on first sight
		refilledAt:   now,
		lastSeen:     now,
	}
}

// refillLocked credits tokens for the time elapsed since the last refill.
// Callers must hold mu.
func (b *bucket) refillLocked(now time.Time) {
	b.tokens += now.Sub(b.refilledAt).Seconds() * b.refillPerSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilledAt = now
}

// take consumes one token if available and reports the bucket state after
// the attempt: whether the request may proceed, how many whole tokens
// remain, and when the bucket will be full again.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)
	b.lastSeen = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	reset = now
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refillPerSec
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, int(b.tokens), reset
}

// idleSince reports whether the bucket has been untouched since the cutoff.
func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info describes the rate limit state for one request. It feeds the
// X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one token bucket per client and endpoint. Buckets for
// clients that stop sending requests are dropped by a background sweep.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
}

// NewLimiter creates a rate limiter. A nil config enables limiting with the
// global defaults and no per-endpoint budgets.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.sweepTicker = time.NewTicker(config.CleanupInterval)
		l.sweepStop = make(chan struct{})
		go l.sweep()
	}

	return l
}

// Allow checks whether a request from the client may proceed against the
// budget for the given endpoint and method.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Limit 0 marks an unthrottled endpoint (the health check)
	if endpointConfig.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + "|" + method + " " + endpoint
	b := l.bucketFor(key, endpointConfig)

	allowed, remaining, reset := b.take()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(reset); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      endpointConfig.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

// bucketFor returns the bucket for the key, creating it on first use.
func (l *Limiter) bucketFor(key string, cfg *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := cfg.Burst
	if capacity <= 0 {
		capacity = cfg.Limit
	}
	b := newBucket(capacity, float64(cfg.Limit)/cfg.Window.Seconds())
	l.buckets[key] = b
	return b
}

// sweep drops buckets whose clients have been idle for over an hour.
func (l *Limiter) sweep() {
	for {
		select {
		case <-l.sweepTicker.C:
			l.dropIdleBuckets(time.Now().Add(-1 * time.Hour))
		case <-l.sweepStop:
			return
		}
	}
}

func (l *Limiter) dropIdleBuckets(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the background sweep goroutine.
func (l *Limiter) Stop() {
	if l.sweepTicker != nil {
		l.sweepTicker.Stop()
	}
	if l.sweepStop != nil {
		close(l.sweepStop)
	}
}
