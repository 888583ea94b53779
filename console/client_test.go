package console

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftdrop/console-lib/e"
)

func newTestClient(t *testing.T, srv *httptest.Server, cfg Config) *Client {
	t.Helper()
	cfg.BaseURL = srv.URL
	c, err := NewClient(cfg)
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)
}

func TestClient_AttachesAuthAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{
		TokenSource: func() string { return "tok-1" },
	})

	_, err := c.FetchAllManagers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_ServerMessagePreferredOverFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Manager still owns active geofences"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	err := c.DeleteManager(context.Background(), "m1")
	require.Error(t, err)
	assert.Equal(t, "Manager still owns active geofences", e.UserMessage(err))
}

func TestClient_FieldErrorsUsedWhenMessageAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"email":["Email is already taken"]}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	err := c.ForgotPassword(context.Background(), "a@b.c")
	require.Error(t, err)
	assert.Equal(t, "Email is already taken", e.UserMessage(err))
}

func TestClient_FallbackWhenNoServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	err := c.DeleteManager(context.Background(), "m1")
	require.Error(t, err)
	assert.Equal(t, e.MsgManagerDeleteFailed, e.UserMessage(err))
}

func TestClient_NetworkErrorUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	err = c.DeleteManager(context.Background(), "m1")
	require.Error(t, err)
	assert.Equal(t, e.MsgManagerDeleteFailed, e.UserMessage(err))
}

func TestClient_AuthExpiredFiresOncePerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	}))
	defer srv.Close()

	token := "tok-1"
	var fired int32
	c := newTestClient(t, srv, Config{
		TokenSource:   func() string { return token },
		OnAuthExpired: func() { atomic.AddInt32(&fired, 1) },
	})

	_, err := c.FetchAllManagers(context.Background())
	require.Error(t, err)
	_, err = c.FetchAllManagers(context.Background())
	require.Error(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))

	// A different rejected token fires again
	token = "tok-2"
	_, err = c.FetchAllManagers(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fired))
}

func TestClient_NoAuthExpiredWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	var fired int32
	c := newTestClient(t, srv, Config{
		OnAuthExpired: func() { atomic.AddInt32(&fired, 1) },
	})

	_, err := c.SignIn(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", e.UserMessage(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}
