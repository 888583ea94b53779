// Package console provides the calls a SwiftDrop admin/merchant console
// makes against the platform backend. There is one file per backend
// resource; every operation performs exactly one HTTP call, carries no
// client side retry and normalizes any failure into a single error whose
// user message is the server provided message when present, else a fixed
// per operation fallback.
//
// Basic usage:
//
//	store := session.NewStore()
//	client, err := console.NewClient(console.Config{
//		BaseURL:     params.APIBaseURL,
//		TokenSource: store.Token,
//		OnAuthExpired: func() {
//			// route the user back to sign in
//		},
//	})
//	if err != nil {
//		return err
//	}
//	managers, err := client.FetchAllManagers(ctx)
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode040001 = e.Code0400 + "01"
	ECode040002 = e.Code0400 + "02"
	ECode040003 = e.Code0400 + "03"
	ECode040004 = e.Code0400 + "04"
	ECode040005 = e.Code0400 + "05"
)

// Config initializes a Client
type Config struct {
	// BaseURL of the backend API, required
	BaseURL string
	// TokenSource supplies the current bearer token, typically
	// session.Store.Token. May be nil for unauthenticated use
	TokenSource func() string
	// OnAuthExpired is invoked when the backend rejects the bearer token.
	// The console uses it to route back to sign in. It fires once per
	// token; a retry with the same rejected token will not fire it again
	OnAuthExpired func()
	// HTTPClient overrides the transport, mainly for tests. No client
	// side timeout is set by default; a request resolves or rejects per
	// the transport's own behavior
	HTTPClient *http.Client
}

// Client issues authenticated calls to the backend API
type Client struct {
	baseURL       string
	tokenSource   func() string
	onAuthExpired func()
	httpClient    *http.Client

	mu           sync.Mutex
	expiredToken string
}

// NewClient returns a new client for the backend at cfg.BaseURL
func NewClient(cfg Config) (c *Client, err error) {
	if cfg.BaseURL == "" {
		return nil, e.N(ECode040001, e.MsgConfigAPIBaseURLRequired)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		tokenSource:   cfg.TokenSource,
		onAuthExpired: cfg.OnAuthExpired,
		httpClient:    hc,
	}, nil
}

// envelope is the backend response shape: {data, message} on success,
// {message} or {errors} on failure
type envelope struct {
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// errorMessage returns the server provided error message, preferring the
// top level message over field errors
func (env *envelope) errorMessage() string {
	if msg := strings.TrimSpace(env.Message); msg != "" {
		return msg
	}
	for _, list := range env.Errors {
		for _, msg := range list {
			if msg = strings.TrimSpace(msg); msg != "" {
				return msg
			}
		}
	}
	return ""
}

// call performs one request and returns the enveloped data payload. Any
// status other than wantStatus is a failure, even without a transport
// error. code and fallback come from the calling operation; fallback is
// surfaced only when the server did not provide a message
func (c *Client) call(ctx context.Context, method, path, query string,
	body interface{}, wantStatus int, code, fallback string) (data json.RawMessage, err error) {

	status, respBody, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, e.WM(err, code, fallback)
	}

	// Decode leniently; an empty or non JSON body is treated as an
	// absent payload, not an error
	env := &envelope{}
	if len(respBody) > 0 {
		_ = json.Unmarshal(respBody, env)
	}

	if status != wantStatus {
		msg := env.errorMessage()
		if msg == "" {
			msg = fallback
		}
		return nil, e.N(code, msg)
	}

	return env.Data, nil
}

// raw performs one request and returns the response body untouched. Used
// for blob endpoints (CSV export) that do not use the envelope
func (c *Client) raw(ctx context.Context, method, path, query string,
	wantStatus int, code, fallback string) (body []byte, err error) {

	status, respBody, err := c.do(ctx, method, path, query, nil)
	if err != nil {
		return nil, e.WM(err, code, fallback)
	}

	if status != wantStatus {
		env := &envelope{}
		_ = json.Unmarshal(respBody, env)
		msg := env.errorMessage()
		if msg == "" {
			msg = fallback
		}
		return nil, e.N(code, msg)
	}

	return respBody, nil
}

func (c *Client) do(ctx context.Context, method, path, query string,
	body interface{}) (status int, respBody []byte, err error) {

	u := c.baseURL + path
	if query != "" {
		u += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, e.W(err, ECode040002)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, nil, e.W(err, ECode040003)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var token string
	if c.tokenSource != nil {
		token = c.tokenSource()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, e.W(err, ECode040004)
	}
	defer res.Body.Close()

	respBody, err = io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, e.W(err, ECode040005)
	}

	// A 401 without a token attached is a failed credential check, not
	// an expired session
	if res.StatusCode == http.StatusUnauthorized && token != "" {
		c.notifyAuthExpired(token)
	}

	return res.StatusCode, respBody, nil
}

// notifyAuthExpired fires the auth expired callback once per rejected
// token. A fresh token rejected later fires it again
func (c *Client) notifyAuthExpired(token string) {
	if c.onAuthExpired == nil {
		return
	}

	c.mu.Lock()
	if token == c.expiredToken {
		c.mu.Unlock()
		return
	}
	c.expiredToken = token
	c.mu.Unlock()

	c.onAuthExpired()
}
