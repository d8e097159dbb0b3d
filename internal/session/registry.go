// Package session tracks which users are currently logged in. Records live
// only in process memory; a restart logs everyone out.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultTTL is how long a session stays valid after login or refresh.
const DefaultTTL = 24 * time.Hour

var activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "quill_active_sessions",
	Help: "Number of session records currently held in the registry, including expired ones awaiting overwrite",
})

// Record associates a user with an opaque token and an expiry instant.
// A record whose expiry has passed is logically invalid but stays in the
// registry until the next login overwrites it or logout removes it; there is
// no background sweep.
type Record struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Registry is a mutex-guarded map from user ID to its single active session.
// Construct one per process and inject it into the server; it must not be a
// package-level singleton.
type Registry struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	records map[string]*Record
}

// NewRegistry creates an empty registry with the given session TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		ttl:     ttl,
		now:     time.Now,
		records: make(map[string]*Record),
	}
}

// Begin creates a session for the user, or refreshes the existing one.
// A refresh extends the expiry in place and keeps the existing token, even if
// the record had already expired.
func (r *Registry) Begin(userID string) *Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt := r.now().Add(r.ttl)
	if rec, ok := r.records[userID]; ok {
		rec.ExpiresAt = expiresAt
		return rec.clone()
	}

	rec := &Record{
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: expiresAt,
	}
	r.records[userID] = rec
	activeSessions.Set(float64(len(r.records)))
	return rec.clone()
}

// Lookup returns the user's session record. The second result reports whether
// a record exists at all; a record whose expiry is at or before now is
// returned with ok=true so callers can distinguish "never logged in" from
// "logged in but expired".
func (r *Registry) Lookup(userID string) (rec *Record, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.records[userID]
	if !ok {
		return nil, false
	}
	return stored.clone(), true
}

// End removes the user's session record and reports whether one existed.
func (r *Registry) End(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[userID]; !ok {
		return false
	}
	delete(r.records, userID)
	activeSessions.Set(float64(len(r.records)))
	return true
}

// Len returns the number of records held, expired ones included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Live reports whether the record is still valid at the given instant.
func (rec *Record) Live(now time.Time) bool {
	return rec.ExpiresAt.After(now)
}

// SetClock overrides the registry's time source. Tests only.
func (r *Registry) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Now returns the registry's current time.
func (r *Registry) Now() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.now()
}

func (rec *Record) clone() *Record {
	c := *rec
	return &c
}
