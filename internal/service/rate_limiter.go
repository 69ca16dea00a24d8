package service

import (
	"sync"
	"time"
)

// RateLimiter limita requests por origen. Allow devuelve false cuando el
// origen agotó su cupo dentro de la ventana.
type RateLimiter interface {
	Allow(key string) bool
}

// SlidingWindowLimiter implementa una ventana deslizante en memoria: guarda
// los timestamps de cada origen y descarta los que salieron de la ventana.
// La lectura del contador y el append del nuevo timestamp ocurren bajo el
// mismo lock para no subcontar bajo concurrencia.
type SlidingWindowLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	entries map[string][]time.Time
	now     func() time.Time
}

// NewSlidingWindowLimiter construye el limiter. Defaults: ventana de 60s, max 1.
func NewSlidingWindowLimiter(window time.Duration, max int) *SlidingWindowLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &SlidingWindowLimiter{
		window:  window,
		max:     max,
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

func (l *SlidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.entries[key][:0]
	for _, ts := range l.entries[key] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.max {
		l.entries[key] = recent
		return false
	}

	l.entries[key] = append(recent, now)
	return true
}
