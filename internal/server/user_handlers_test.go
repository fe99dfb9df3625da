package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUsers(t *testing.T) {
	s, app := newTestServer(t)
	caller := registerUser(t, s, "caller", "caller@example.com")
	registerUser(t, s, "maya", "maya@example.com")
	registerUser(t, s, "amaya", "amaya@example.com")
	auth := authHeader(t, s, caller)

	t.Run("requires auth", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/users/search?q=maya", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("query too short", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/users/search?q=ma", auth, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("substring match ordered by username", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/users/search?q=maya", auth, nil)
		require.Equal(t, http.StatusOK, status)

		assert.EqualValues(t, 2, body["total_items"])
		items, ok := body["items"].([]interface{})
		require.True(t, ok)
		require.Len(t, items, 2)

		first := items[0].(map[string]interface{})
		second := items[1].(map[string]interface{})
		assert.Equal(t, "amaya", first["username"])
		assert.Equal(t, "maya", second["username"])
	})

	t.Run("no matches", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/users/search?q=zzz", auth, nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 0, body["total_items"])
		assert.Empty(t, body["items"])
	})
}
