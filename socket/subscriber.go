// Package socket keeps a console connected to the backend's push channel.
// Screens register topic handlers (typically just invalidating a query
// cache key) and the subscriber re-dials with backoff whenever the
// connection drops.
package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode070001 = e.Code0700 + "01"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Event is one server push message
type Event struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// Handler receives events for a subscribed topic
type Handler func(ev Event)

// Subscriber maintains the websocket connection and dispatches events
type Subscriber struct {
	url         string
	tokenSource func() string

	mu       sync.Mutex
	handlers map[string][]Handler
}

// New returns a subscriber for the push channel at url. tokenSource
// supplies the bearer token per dial attempt and may be nil
func New(url string, tokenSource func() string) (s *Subscriber, err error) {
	if url == "" {
		return nil, e.N(ECode070001, "socket subscriber requires a url")
	}

	return &Subscriber{
		url:         url,
		tokenSource: tokenSource,
		handlers:    map[string][]Handler{},
	}, nil
}

// On registers a handler for a topic. Multiple handlers per topic are
// dispatched in registration order
func (s *Subscriber) On(topic string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[topic] = append(s.handlers[topic], h)
}

// Run dials the push channel and dispatches events until ctx is done,
// reconnecting with exponential backoff on any drop. It always returns
// ctx.Err()
func (s *Subscriber) Run(ctx context.Context) error {
	backoff := initialBackoff

	for {
		conn, res, err := websocket.DefaultDialer.DialContext(ctx, s.url, s.header())
		if res != nil && res.Body != nil {
			res.Body.Close()
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn().Err(err).Str("url", s.url).Msg("socket.Run.1")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			if backoff *= 2; backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}

		log.Info().Str("url", s.url).Msg("socket connected")
		backoff = initialBackoff

		s.readLoop(ctx, conn)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().Str("url", s.url).Msg("socket disconnected, reconnecting")
	}
}

func (s *Subscriber) header() http.Header {
	h := http.Header{}
	if s.tokenSource != nil {
		if token := s.tokenSource(); token != "" {
			h.Set("Authorization", "Bearer "+token)
		}
	}
	return h
}

// readLoop reads until the connection drops or ctx is done
func (s *Subscriber) readLoop(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()
	defer conn.Close()

	for {
		ev := Event{}
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() == nil {
				log.Warn().Err(err).Msg("socket.readLoop.1")
			}
			return
		}
		s.dispatch(ev)
	}
}

func (s *Subscriber) dispatch(ev Event) {
	s.mu.Lock()
	handlers := append([]Handler(nil), s.handlers[ev.Topic]...)
	s.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}
