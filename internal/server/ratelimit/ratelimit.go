// Package ratelimit provides per-client token bucket rate limiting for the preview server.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Rule limits requests whose method matches and whose path starts with Prefix.
type Rule struct {
	Method string
	Prefix string
	Limit  int           // Requests per window; zero or less means unlimited
	Window time.Duration
	Burst  int // Bucket capacity; Limit when zero
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled      bool
	DefaultLimit int
	Window       time.Duration
	IdleTTL      time.Duration // Buckets unused for this long are dropped
	Rules        []Rule
}

// DefaultConfig limits rendering harder than editing and leaves reads on the default
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		DefaultLimit: 600,
		Window:       time.Minute,
		IdleTTL:      time.Hour,
		Rules: []Rule{
			{Method: "GET", Prefix: "/health", Limit: 0},
			{Method: "GET", Prefix: "/events", Limit: 0},
			{Method: "PUT", Prefix: "/resumes/", Limit: 120, Window: time.Minute, Burst: 20},
			{Method: "DELETE", Prefix: "/resumes/", Limit: 60, Window: time.Minute, Burst: 10},
			{Method: "POST", Prefix: "/resumes/", Limit: 120, Window: time.Minute, Burst: 20},
		},
	}
}

// Match returns the first rule for method and path, or nil
func (c Config) Match(method, path string) *Rule {
	for i := range c.Rules {
		rule := &c.Rules[i]
		if rule.Method == method && strings.HasPrefix(path, rule.Prefix) {
			return rule
		}
	}
	return nil
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func (b *bucket) refill(now time.Time) {
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now
}

func (b *bucket) take(now time.Time) bool {
	b.refill(now)
	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// fullAt is when the bucket will be at capacity again
func (b *bucket) fullAt(now time.Time) time.Time {
	missing := b.capacity - b.tokens
	if missing <= 0 {
		return now
	}
	return now.Add(time.Duration(missing / b.refillRate * float64(time.Second)))
}

// Limiter manages rate limiting for multiple clients using token buckets.
// Each client, rule and method combination gets its own bucket.
type Limiter struct {
	config   Config
	now      func() time.Time
	mu       sync.Mutex
	buckets  map[string]*bucket
	lastSeen map[string]time.Time
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config Config) *Limiter {
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	return &Limiter{
		config:   config,
		now:      time.Now,
		buckets:  make(map[string]*bucket),
		lastSeen: make(map[string]time.Time),
	}
}

// Allow checks if a request from clientID is allowed and consumes a token if so.
func (l *Limiter) Allow(clientID, method, path string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	limit, window, burst := l.config.DefaultLimit, l.config.Window, l.config.DefaultLimit
	key := clientID + ":*"
	if rule := l.config.Match(method, path); rule != nil {
		limit, window, burst = rule.Limit, rule.Window, rule.Burst
		key = clientID + ":" + rule.Method + ":" + rule.Prefix
	}
	if limit <= 0 {
		return true, Info{Allowed: true}
	}
	if window <= 0 {
		window = l.config.Window
	}
	if burst <= 0 {
		burst = limit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			capacity:   float64(burst),
			refillRate: float64(limit) / window.Seconds(),
			tokens:     float64(burst),
			lastRefill: now,
		}
		l.buckets[key] = b
	}
	l.lastSeen[key] = now

	allowed := b.take(now)
	info := Info{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: int(b.tokens),
		ResetTime: b.fullAt(now),
	}
	if !allowed {
		info.RetryAfter = time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
	}
	return allowed, info
}

// Prune drops buckets idle for longer than the configured TTL and returns how many were removed
func (l *Limiter) Prune() int {
	if l.config.IdleTTL <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.config.IdleTTL)
	removed := 0
	for key, seen := range l.lastSeen {
		if seen.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastSeen, key)
			removed++
		}
	}
	return removed
}

// Size returns the number of live buckets
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
