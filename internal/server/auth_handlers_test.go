package server

import (
	"net/http"
	"testing"
	"time"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLogoutFlow(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", "Wonderland1")

	resp := env.request(t, http.MethodPost, "/users/login", nil, withBasicAuth("alice", "Wonderland1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, env.registry.Len())

	resp = env.request(t, http.MethodPost, "/users/logout", nil, withBasicAuth("alice", "Wonderland1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, env.registry.Len())

	// A second logout finds no session.
	resp = env.request(t, http.MethodPost, "/users/logout", nil, withBasicAuth("alice", "Wonderland1"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeJSON[models.ErrorResponse](t, resp)
	assert.Equal(t, models.CodeSessionNotFound, body.Code)
}

func TestLoginResponseHasNoToken(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", "Wonderland1")

	resp := env.request(t, http.MethodPost, "/users/login", nil, withBasicAuth("alice", "Wonderland1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON[map[string]any](t, resp)
	assert.Contains(t, body, "message")
	assert.NotContains(t, body, "token")
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", "Wonderland1")

	resp := env.request(t, http.MethodPost, "/users/login", nil, withBasicAuth("alice", "WrongPass99"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, env.registry.Len())
}

func TestLoginUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	resp := env.request(t, http.MethodPost, "/users/login", nil, withBasicAuth("ghost", "Whatever99"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoginMissingCredentials(t *testing.T) {
	env := setupTestEnv(t)

	resp := env.request(t, http.MethodPost, "/users/login", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/users/login", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic not-base64!!")
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginTwiceRefreshesSession(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", "Wonderland1")

	resp := env.request(t, http.MethodPost, "/users/login", nil, withBasicAuth("alice", "Wonderland1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first, ok := env.registry.Lookup("alice")
	require.True(t, ok)

	env.registry.SetClock(func() time.Time { return time.Now().Add(time.Hour) })

	resp = env.request(t, http.MethodPost, "/users/login", nil, withBasicAuth("alice", "Wonderland1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second, ok := env.registry.Lookup("alice")
	require.True(t, ok)

	assert.Equal(t, first.Token, second.Token)
	assert.True(t, second.ExpiresAt.After(first.ExpiresAt))
	assert.Equal(t, 1, env.registry.Len())
}

func TestLogoutExpiredSession(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", "Wonderland1")

	resp := env.request(t, http.MethodPost, "/users/login", nil, withBasicAuth("alice", "Wonderland1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Jump past the session TTL.
	env.registry.SetClock(func() time.Time { return time.Now().Add(25 * time.Hour) })

	resp = env.request(t, http.MethodPost, "/users/logout", nil, withBasicAuth("alice", "Wonderland1"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeJSON[models.ErrorResponse](t, resp)
	assert.Equal(t, models.CodeNotAuthenticated, body.Code)

	// The stale record is retained; only a live logout removes it.
	assert.Equal(t, 1, env.registry.Len())
}

func TestLogoutWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", "Wonderland1")

	resp := env.request(t, http.MethodPost, "/users/login", nil, withBasicAuth("alice", "Wonderland1"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/users/logout", nil, withBasicAuth("alice", "WrongPass99"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 1, env.registry.Len())
}
