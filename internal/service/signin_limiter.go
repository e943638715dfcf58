package service

import (
	"context"
	"sync"
	"time"
)

// SignInLimiter limita los intentos de login por email normalizado.
// Allow recibe el contexto del request para cortar llamadas remotas.
type SignInLimiter interface {
	Allow(ctx context.Context, email string) bool
}

// signInBucket cuenta intentos dentro de una ventana fija.
type signInBucket struct {
	attempts int
	resetAt  time.Time
}

type memorySignInLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	now       func() time.Time
	nextSweep time.Time
	buckets   map[string]*signInBucket
}

// NewSignInLimiter crea el limitador en memoria usado cuando no hay Redis.
func NewSignInLimiter(window time.Duration, max int) SignInLimiter {
	return newMemorySignInLimiter(window, max, time.Now)
}

func newMemorySignInLimiter(window time.Duration, max int, now func() time.Time) *memorySignInLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memorySignInLimiter{
		window:  window,
		max:     max,
		now:     now,
		buckets: make(map[string]*signInBucket),
	}
}

func (l *memorySignInLimiter) Allow(_ context.Context, email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[email]
	if !ok || !now.Before(b.resetAt) {
		l.buckets[email] = &signInBucket{attempts: 1, resetAt: now.Add(l.window)}
		return true
	}
	if b.attempts >= l.max {
		return false
	}
	b.attempts++
	return true
}

// sweep descarta las ventanas vencidas, como mucho una vez por ventana.
func (l *memorySignInLimiter) sweep(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}
	for email, b := range l.buckets {
		if !now.Before(b.resetAt) {
			delete(l.buckets, email)
		}
	}
	l.nextSweep = now.Add(l.window)
}

func (l *memorySignInLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
