package odin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOdin(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Header.Get("X-Api-Key") != "secret" {
			http.Error(w, "bad", http.StatusBadRequest)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		switch in["token"] {
		case "good":
			_ = json.NewEncoder(w).Encode(map[string]string{"user_id": " user-1 ", "email": "a@b.c"})
		case "nouser":
			_ = json.NewEncoder(w).Encode(map[string]string{})
		default:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}
	}))
}

func TestVerifier_Verify(t *testing.T) {
	srv := newOdin(t)
	defer srv.Close()

	v, err := NewVerifier(Config{BaseURL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)

	_, err = v.Verify(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrOdinUnauthorized)

	_, err = v.Verify(context.Background(), "nouser")
	assert.ErrorIs(t, err, ErrOdinUpstream)

	_, err = v.Verify(context.Background(), " ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestNewVerifier_RequiresConfig(t *testing.T) {
	_, err := NewVerifier(Config{BaseURL: "http://odin"})
	assert.ErrorIs(t, err, ErrOdinNotConfigured)
}
