/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/flamego/flamego"
	"golang.org/x/time/rate"
)

const rateLimitIdleTTL = 10 * time.Minute

// rateLimiter applies a token bucket per client key and periodically evicts
// idle entries.
type rateLimiter struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	byKey   map[string]*rateLimitEntry
	hits    uint64
	idleTTL time.Duration
}

type rateLimitEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newRateLimiter returns nil, which allows everything, when rps or burst is
// not positive.
func newRateLimiter(rps float64, burst int) *rateLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}

	return &rateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		byKey:   make(map[string]*rateLimitEntry),
		idleTTL: rateLimitIdleTTL,
	}
}

func (l *rateLimiter) allow(key string, now time.Time) bool {
	if l == nil {
		return true
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byKey[key]
	if !ok {
		e = &rateLimitEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = e
	}

	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%512 == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(l.byKey, k)
			}
		}
	}

	return allowed
}

// RateLimit rejects clients that exceed rps requests per second (with the
// given burst) with 429.
func RateLimit(rps float64, burst int) flamego.Handler {
	limiter := newRateLimiter(rps, burst)

	return func(c flamego.Context, client ClientAddr) {
		if !limiter.allow(string(client), time.Now()) {
			logRateLimited(c, client)
			c.ResponseWriter().Header().Set("Retry-After", "1")
			writeFailure(c, http.StatusTooManyRequests, errRateLimited)

			return
		}

		c.Next()
	}
}
