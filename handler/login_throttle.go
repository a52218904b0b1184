package handler

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	loginFailureBurst  = 5
	loginFailureRefill = time.Minute
)

// LoginThrottle limits failed sign-in attempts per email address.
// Successful sign-ins never consume the allowance.
type LoginThrottle struct {
	mu       sync.Mutex
	every    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func NewLoginThrottle(refill time.Duration, burst int) *LoginThrottle {
	return &LoginThrottle{
		every:    rate.Every(refill),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (t *LoginThrottle) limiter(email string) *rate.Limiter {
	key := strings.ToLower(strings.TrimSpace(email))
	t.mu.Lock()
	defer t.mu.Unlock()
	lim, ok := t.limiters[key]
	if !ok {
		lim = rate.NewLimiter(t.every, t.burst)
		t.limiters[key] = lim
	}
	return lim
}

// Blocked reports whether the email has used up its failed attempts.
func (t *LoginThrottle) Blocked(email string) bool {
	return t.limiter(email).Tokens() < 1
}

func (t *LoginThrottle) Failed(email string) {
	t.limiter(email).Allow()
}

func (t *LoginThrottle) Reset(email string) {
	key := strings.ToLower(strings.TrimSpace(email))
	t.mu.Lock()
	delete(t.limiters, key)
	t.mu.Unlock()
}
