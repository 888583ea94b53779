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

func TestSendWhatsAppMessage(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/whatsapp/message", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"Message sent"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	err := c.SendWhatsAppMessage(context.Background(), "+14155552671", "Your order is out for delivery")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSendWhatsAppMessage_InvalidRecipientNeverHitsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	err := c.SendWhatsAppMessage(context.Background(), "not-a-number", "hi")
	require.Error(t, err)
	assert.Equal(t, e.MsgWhatsAppInvalidRecipient, e.UserMessage(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestFetchWhatsAppMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/whatsapp/message", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"w1","to":"+14155552671","body":"hi"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, Config{})

	got, err := c.FetchWhatsAppMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "+14155552671", got[0].To)
}
