// Package api is the single choke point for every call to the blog platform
// backend. It decorates outgoing requests with session headers, unwraps the
// response envelope, classifies failures, and forces a logout when the
// session has expired. Callers receive either the decoded payload or an
// error; they never see the envelope or the raw transport response.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
	"github.com/google/uuid"
)

// Fallback notification texts.
const (
	msgRequestFailed  = "request failed"
	msgSessionExpired = "session expired, please log in again"
	msgForbidden      = "permission denied"
	msgNotFound       = "requested resource does not exist"
	msgServerError    = "internal server error"
	msgNetworkFailure = "network connection failed"
)

// CredentialSource is the slice of the credential repository the transport
// needs: reading the persisted token/user id to decorate requests, and
// erasing them on authentication expiry.
type CredentialSource interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type Client struct {
	baseURL   string
	http      *http.Client
	creds     CredentialSource
	notifier  Notifier
	progress  Progress
	log       logging.Logger
	cookieSrc func() string
	onExpired func()
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithProgress(p Progress) Option {
	return func(c *Client) { c.progress = p }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithCookieSource supplies the raw Cookie header attached to every request.
// The XSRF-TOKEN pair inside it, when present, also feeds the X-XSRF-TOKEN
// header.
func WithCookieSource(src func() string) Option {
	return func(c *Client) { c.cookieSrc = src }
}

// New builds a Client for the given API root (e.g. "https://host/api").
func New(baseURL string, creds CredentialSource, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		creds:    creds,
		notifier: NopNotifier{},
		progress: NopProgress{},
		log:      logging.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// OnSessionExpired registers the hook invoked after a transport 401 has
// erased the persisted credentials. The hook performs the hard navigation
// to the login page.
func (c *Client) OnSessionExpired(fn func()) {
	c.onExpired = fn
}

// do issues one JSON request and decodes the envelope payload into out
// (which may be nil when no payload is expected).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var rd io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, query, rd, contentType, out)
}

// send is shared by JSON and multipart requests.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.decorate(ctx, req)

	c.progress.Start()
	start := time.Now()
	resp, err := c.http.Do(req)
	c.progress.Done()
	if err != nil {
		RequestsTotal.WithLabelValues(method, "network_error").Inc()
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		c.notifier.Notify(msgNetworkFailure)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	RequestDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode >= 300 {
		return c.classify(ctx, method, resp)
	}

	var env models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		RequestsTotal.WithLabelValues(method, "api_error").Inc()
		c.notifier.Notify(msgRequestFailed)
		return fmt.Errorf("decode response envelope: %w", err)
	}

	if env.Code != models.EnvelopeCodeOK {
		RequestsTotal.WithLabelValues(method, "api_error").Inc()
		msg := env.Message
		if msg == "" {
			msg = msgRequestFailed
		}
		c.log.Debug(ctx, "application-level failure", "method", method, "path", path, "code", env.Code)
		c.notifier.Notify(msg)
		return &APIError{Code: env.Code, Message: msg}
	}

	RequestsTotal.WithLabelValues(method, "ok").Inc()
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}

// decorate attaches the session and correlation headers. Every header is
// conditional on its source being present.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	if tok, err := c.creds.Get(ctx, common.CredentialKeyToken); err == nil && len(tok) > 0 {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+string(tok))
	}
	if uid, err := c.creds.Get(ctx, common.CredentialKeyUserID); err == nil && len(uid) > 0 {
		req.Header.Set(common.UserIDHeader, string(uid))
	}
	if c.cookieSrc != nil {
		if raw := c.cookieSrc(); raw != "" {
			req.Header.Set("Cookie", raw)
			if xsrf := csrfTokenFromCookies(raw); xsrf != "" {
				req.Header.Set(common.XSRFTokenHeader, xsrf)
			}
		}
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
}

// classify maps a transport-level failure to a sentinel error and surfaces
// the user-visible notification. A 401 additionally erases the persisted
// credential record and triggers the session-expired hook; it is the only
// branch that causes a hard navigation.
func (c *Client) classify(ctx context.Context, method string, resp *http.Response) error {
	RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.notifier.Notify(msgSessionExpired)
		c.expireSession(ctx)
		return ErrUnauthorized
	case http.StatusForbidden:
		c.notifier.Notify(msgForbidden)
		return ErrForbidden
	case http.StatusNotFound:
		c.notifier.Notify(msgNotFound)
		return ErrNotFound
	case http.StatusInternalServerError:
		c.notifier.Notify(msgServerError)
		return ErrServer
	default:
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = msgRequestFailed
		}
		c.notifier.Notify(msg)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
}

func (c *Client) expireSession(ctx context.Context) {
	if err := c.creds.Delete(ctx, common.CredentialKeyToken); err != nil {
		c.log.Warn(ctx, "failed to erase token", "error", err)
	}
	if err := c.creds.Delete(ctx, common.CredentialKeyUserID); err != nil {
		c.log.Warn(ctx, "failed to erase user id", "error", err)
	}
	if c.onExpired != nil {
		c.onExpired()
	}
}

// serverMessage extracts the envelope message from an error response body,
// if there is one.
func serverMessage(body io.Reader) string {
	var env models.Envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return ""
	}
	return env.Message
}

// csrfTokenFromCookies extracts the XSRF-TOKEN value from a raw Cookie
// header: split on ';', trim each pair, split on the first '=', exact key
// match.
func csrfTokenFromCookies(raw string) string {
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		name, value, found := strings.Cut(pair, "=")
		if found && name == common.XSRFCookieName {
			return value
		}
	}
	return ""
}
