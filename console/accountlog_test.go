package console

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAccountLogs_EncodesFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/account-log/filter", r.URL.Path)
		assert.Equal(t, "Admin", r.URL.Query().Get("role"))
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("date"))
		assert.Equal(t, "ada", r.URL.Query().Get("query"))
		w.Write([]byte(`{"data":[{"id":"l1","role":"Admin","blocked":true}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	got, err := c.FilterAccountLogs(context.Background(), AccountLogFilter{
		Role:  "Admin",
		Date:  &date,
		Query: "ada",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Blocked)
}

func TestFilterAccountLogs_ZeroFilterOmitsParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	_, err := c.FilterAccountLogs(context.Background(), AccountLogFilter{})
	require.NoError(t, err)
}

func TestUnblockUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/account-log/unblock-user/u1", r.URL.Path)
		w.Write([]byte(`{"message":"User unblocked"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	require.NoError(t, c.UnblockUser(context.Background(), "u1"))
}

func TestAccountLogCSV_RawBlob(t *testing.T) {
	csv := "id,user,action\nl1,ada,block\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/account-log/csv", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(csv))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	blob, err := c.AccountLogCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(csv), blob)
}
