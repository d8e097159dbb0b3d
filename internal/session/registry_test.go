package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginCreatesRecord(t *testing.T) {
	t.Parallel()
	r := NewRegistry(DefaultTTL)

	rec := r.Begin("user123")
	require.NotNil(t, rec)
	assert.Equal(t, "user123", rec.UserID)
	assert.NotEmpty(t, rec.Token)
	assert.True(t, rec.Live(r.Now()))
	assert.Equal(t, 1, r.Len())
}

func TestBeginRefreshKeepsToken(t *testing.T) {
	t.Parallel()
	r := NewRegistry(DefaultTTL)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r.SetClock(func() time.Time { return base })

	first := r.Begin("user123")

	// A second login an hour later must refresh expiry in place, not mint a
	// second session.
	r.SetClock(func() time.Time { return base.Add(time.Hour) })
	second := r.Begin("user123")

	assert.Equal(t, first.Token, second.Token)
	assert.Equal(t, base.Add(time.Hour).Add(DefaultTTL), second.ExpiresAt)
	assert.Equal(t, 1, r.Len())
}

func TestBeginRefreshAfterExpiry(t *testing.T) {
	t.Parallel()
	r := NewRegistry(time.Minute)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r.SetClock(func() time.Time { return base })
	first := r.Begin("user123")

	// Logging in again after expiry still keeps the old token; the record is
	// overwritten in place.
	r.SetClock(func() time.Time { return base.Add(2 * time.Minute) })
	second := r.Begin("user123")

	assert.Equal(t, first.Token, second.Token)
	assert.True(t, second.Live(r.Now()))
}

func TestLookupDistinguishesAbsentFromExpired(t *testing.T) {
	t.Parallel()
	r := NewRegistry(time.Minute)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r.SetClock(func() time.Time { return base })

	_, ok := r.Lookup("never-logged-in")
	assert.False(t, ok)

	r.Begin("user123")

	rec, ok := r.Lookup("user123")
	require.True(t, ok)
	assert.True(t, rec.Live(r.Now()))

	// Exactly at expiry the record is no longer live but still present.
	r.SetClock(func() time.Time { return base.Add(time.Minute) })
	rec, ok = r.Lookup("user123")
	require.True(t, ok)
	assert.False(t, rec.Live(r.Now()))
	assert.Equal(t, 1, r.Len())
}

func TestEnd(t *testing.T) {
	t.Parallel()
	r := NewRegistry(DefaultTTL)

	r.Begin("user123")
	assert.True(t, r.End("user123"))
	assert.False(t, r.End("user123"))
	assert.Equal(t, 0, r.Len())

	_, ok := r.Lookup("user123")
	assert.False(t, ok)
}

func TestConcurrentLogins(t *testing.T) {
	t.Parallel()
	r := NewRegistry(DefaultTTL)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Begin("user123")
			r.Lookup("user123")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Len())
}
