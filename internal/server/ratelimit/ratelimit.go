// Package ratelimit limits requests per client and route with token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket holds up to capacity tokens and refills at refillRate tokens
// per second.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func newTokenBucket(capacity int, refillRate float64, now time.Time) *tokenBucket {
	return &tokenBucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastAccess: now,
	}
}

// refill must be called with mu held. A now earlier than the last refill
// adds nothing and leaves lastRefill in place.
func (b *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed <= 0 {
		return
	}
	b.tokens = min(b.capacity, b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now
}

// take consumes a token when one is available and reports the bucket state
// afterwards.
func (b *tokenBucket) take(now time.Time) (allowed bool, remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(now)
	b.lastAccess = now
	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}
	return allowed, int(b.tokens), b.fullAt(now)
}

// fullAt must be called with mu held.
func (b *tokenBucket) fullAt(now time.Time) time.Time {
	if b.tokens >= b.capacity || b.refillRate <= 0 {
		return now
	}
	missing := b.capacity - b.tokens
	return now.Add(time.Duration(missing / b.refillRate * float64(time.Second)))
}

func (b *tokenBucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAccess.Before(cutoff)
}

// Info describes the limit that applied to a request.
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
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one bucket per client and route rule.
type Limiter struct {
	config  *Config
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter creates a limiter. A nil config enables a default limit of
// DefaultLimit requests per DefaultWindow on every route.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    DefaultLimit,
			DefaultWindow:   DefaultWindow,
			CleanupInterval: DefaultCleanupInterval,
		}
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = DefaultIdleTTL
	}

	l := &Limiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
		stop:    make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow consumes a token for clientID on the route matching path and method.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	rule := MatchEndpoint(path, method, l.config.EndpointConfigs)
	key := clientID + " " + method + " " + path
	if rule == nil {
		rule = &EndpointConfig{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	} else {
		// Prefix rules share one bucket across every path they cover.
		key = clientID + " " + rule.Method + " " + rule.Path
	}
	if rule.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	now := time.Now()
	allowed, remaining, resetTime := l.bucket(key, *rule, now).take(now)

	info := Info{
		Allowed:   allowed,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = max(resetTime.Sub(now), 0)
	}
	return allowed, info
}

func (l *Limiter) bucket(key string, rule EndpointConfig, now time.Time) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	window := rule.Window
	if window <= 0 {
		window = DefaultWindow
	}
	b := newTokenBucket(capacity, float64(rule.Limit)/window.Seconds(), now)
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle(time.Now().Add(-l.config.IdleTTL))
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets not used since cutoff.
func (l *Limiter) evictIdle(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}
