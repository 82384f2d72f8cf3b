// Package ratelimiter implements a per-identity token bucket. It backs
// the auth endpoints, where signup and login attempts are throttled by
// client IP.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
	timer      *time.Timer
}

// Limiter hands out token buckets keyed by identity (an IP, an email).
// Idle buckets expire so the map doesn't grow without bound.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens per second
	capacity float64
	idleTTL  time.Duration
}

func New(rate, capacity float64, idleTTL time.Duration) *Limiter {
	return &Limiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		idleTTL:  idleTTL,
	}
}

// Allow reports whether the identity may proceed, consuming one token
// if so.
func (l *Limiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: time.Now()}
		l.buckets[identity] = b
	}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(l.idleTTL, func() { l.drop(identity) })

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

func (l *Limiter) drop(identity string) {
	l.mu.Lock()
	delete(l.buckets, identity)
	l.mu.Unlock()
}

// Stop cancels all expiry timers.
func (l *Limiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.buckets {
		if b.timer != nil {
			b.timer.Stop()
		}
	}
}
