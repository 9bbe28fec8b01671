package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesAndReusesToken(t *testing.T) {
	store := newFakeUserStore()
	users := NewUserHandler(testConfig(), store)
	h := NewAuthHandler(testConfig(), store)
	registerUser(t, users, `{"user_name": "ana", "password": "s3cret"}`)

	login := func() string {
		u, err := store.GetByID(t.Context(), 1)
		require.NoError(t, err)
		c, rec := request(t, http.MethodGet, "/api/login", "", 0)
		c.Set("user", u)
		require.NoError(t, h.Login(c))
		require.Equal(t, http.StatusOK, rec.Code)
		token, ok := decodeBody(t, rec)["token"].(string)
		require.True(t, ok)
		require.NotEmpty(t, token)
		return token
	}

	first := login()
	// A token with plenty of validity left is handed out again.
	assert.Equal(t, first, login())
}

func TestLoginWithoutVerifiedUser(t *testing.T) {
	h := NewAuthHandler(testConfig(), newFakeUserStore())
	c, rec := request(t, http.MethodGet, "/api/login", "", 0)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, rec)["error"])
}

func TestLogoutExpiresToken(t *testing.T) {
	store := newFakeUserStore()
	users := NewUserHandler(testConfig(), store)
	h := NewAuthHandler(testConfig(), store)
	registerUser(t, users, `{"user_name": "ana", "password": "s3cret"}`)

	u, err := store.GetByID(t.Context(), 1)
	require.NoError(t, err)
	_, err = store.IssueToken(t.Context(), u, time.Hour)
	require.NoError(t, err)

	c, rec := request(t, http.MethodDelete, "/api/login", "", 1)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	u, err = store.GetByID(t.Context(), 1)
	require.NoError(t, err)
	assert.False(t, u.TokenValidFor(time.Now().UTC(), 0))
}
