package console

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftdrop/console-lib/e"
)

func TestFetchAllManagers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/admin/managers", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"1"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	got, err := c.FetchAllManagers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Manager{{ID: "1"}}, got)
}

func TestFetchAllManagers_EmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	got, err := c.FetchAllManagers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Manager{}, got)
}

func TestFetchAllManagers_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	_, err := c.FetchAllManagers(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch managers.", e.UserMessage(err))
}

func TestDeleteManager(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/admin/managers/m1", r.URL.Path)
		w.Write([]byte(`{"message":"Manager deleted"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	require.NoError(t, c.DeleteManager(context.Background(), "m1"))
}

func TestUpdateManagerRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/managers/role/m1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"message":"Role updated"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	require.NoError(t, c.UpdateManagerRole(context.Background(), "m1", "Manager"))
}
