package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/sign-in", r.URL.Path)

		body := map[string]string{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@swiftdrop.io", body["email"])

		w.Write([]byte(`{"data":{"userId":"u1","name":"Ada","role":"Admin","token":"tok-1"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	got, err := c.SignIn(context.Background(), "ada@swiftdrop.io", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Admin", got.Role)
	assert.Equal(t, "tok-1", got.Token)
}

func TestResetPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/reset-password", r.URL.Path)
		w.Write([]byte(`{"message":"Password updated"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	require.NoError(t, c.ResetPassword(context.Background(), "reset-tok", "new-pass"))
}
