package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-content-site/internal/logging"
	"github.com/goliatone/go-content-site/pkg/interfaces"
)

// Resource names exposed by the store.
const (
	ResourcePosts       = "posts"
	ResourceCategories  = "categories"
	ResourceContact     = "contact_messages"
	ResourceSubscribers = "newsletter_subscribers"
)

const restPrefix = "/rest/v1/"

const (
	preferRepresentation = "return=representation"
	preferMinimal        = "return=minimal"
)

// Config carries the endpoint and credential used for every request.
type Config struct {
	BaseURL     string
	APIKey      string
	ReadSchema  string
	WriteSchema string
}

// Client issues requests against the store. It holds no per-request state and
// is safe for concurrent use.
type Client struct {
	cfg    Config
	base   string
	http   *http.Client
	logger interfaces.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a Client. Blank schemas default to "public".
func New(cfg Config, opts ...Option) *Client {
	if strings.TrimSpace(cfg.ReadSchema) == "" {
		cfg.ReadSchema = "public"
	}
	if strings.TrimSpace(cfg.WriteSchema) == "" {
		cfg.WriteSchema = "public"
	}
	c := &Client{
		cfg:    cfg,
		base:   strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + restPrefix,
		http:   http.DefaultClient,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Read fetches every row of resource matching q.
func Read[T any](ctx context.Context, c *Client, resource string, q Query) Envelope[[]T] {
	if !q.valid() {
		return invalidRequest[[]T](missingProjectionMessage, nil)
	}
	status, body, env, ok := c.exchange(ctx, http.MethodGet, resource, q.Values(), nil, "")
	if !ok {
		return failure[[]T](env.Status, *env.Error)
	}

	rows := []T{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &rows); err != nil {
			return failure[[]T](status, ErrorInfo{Message: invalidBodyMessage, Details: err.Error()})
		}
	}
	return success(status, rows)
}

// ReadOne fetches at most one row of resource matching q. A missing row is a
// success with nil Data.
func ReadOne[T any](ctx context.Context, c *Client, resource string, q Query) Envelope[*T] {
	if !q.valid() {
		return invalidRequest[*T](missingProjectionMessage, nil)
	}
	status, body, env, ok := c.exchange(ctx, http.MethodGet, resource, q.Limit(1).Values(), nil, "")
	if !ok {
		return failure[*T](env.Status, *env.Error)
	}
	row, err := unwrapRow[T](body)
	if err != nil {
		return failure[*T](status, ErrorInfo{Message: invalidBodyMessage, Details: err.Error()})
	}
	return success(status, row)
}

// Write inserts payload into resource and returns the stored row.
func Write[T any](ctx context.Context, c *Client, resource string, payload any) Envelope[*T] {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return invalidRequest[*T](encodePayloadMessage, err)
	}
	status, body, env, ok := c.exchange(ctx, http.MethodPost, resource, nil, encoded, preferRepresentation)
	if !ok {
		return failure[*T](env.Status, *env.Error)
	}
	row, err := unwrapRow[T](body)
	if err != nil {
		return failure[*T](status, ErrorInfo{Message: invalidBodyMessage, Details: err.Error()})
	}
	return success(status, row)
}

// WriteMinimal inserts payload without asking the store to echo the row back,
// for resources whose read policy would reject the implicit read.
func WriteMinimal(ctx context.Context, c *Client, resource string, payload any) Envelope[struct{}] {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return invalidRequest[struct{}](encodePayloadMessage, err)
	}
	status, _, env, ok := c.exchange(ctx, http.MethodPost, resource, nil, encoded, preferMinimal)
	if !ok {
		return failure[struct{}](env.Status, *env.Error)
	}
	return success(status, struct{}{})
}

// ResourceURL returns the absolute URL for resource with q applied.
func (c *Client) ResourceURL(resource string, values url.Values) string {
	target := c.base + url.PathEscape(resource)
	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

// exchange performs one request. When ok is false the returned envelope holds
// the failure.
func (c *Client) exchange(ctx context.Context, method, resource string, values url.Values, payload []byte, prefer string) (int, []byte, Envelope[struct{}], bool) {
	logger := logging.WithRequestContext(logging.FromContext(ctx, c.logger), resource, method, 0)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.ResourceURL(resource, values), reader)
	if err != nil {
		return 0, nil, invalidRequest[struct{}]("gateway: build request", err), false
	}
	if method == http.MethodGet {
		c.readHeaders(req.Header)
	} else {
		c.writeHeaders(req.Header, prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("store request failed", "error", err)
		return 0, nil, failure[struct{}](0, ErrorInfo{Message: networkErrorMessage, Details: err.Error()}), false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("store response unreadable", "status", resp.StatusCode, "error", err)
		return 0, nil, failure[struct{}](0, ErrorInfo{Message: networkErrorMessage, Details: err.Error()}), false
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		info := decodeErrorInfo(body, resp.StatusCode)
		logger.Debug("store request rejected", "status", resp.StatusCode, "code", info.Code, "message", info.Message)
		return resp.StatusCode, body, failure[struct{}](resp.StatusCode, info), false
	}

	logger.Debug("store request completed", "status", resp.StatusCode)
	return resp.StatusCode, body, Envelope[struct{}]{Status: resp.StatusCode}, true
}

func (c *Client) readHeaders(h http.Header) {
	h.Set("Accept", "application/json")
	h.Set("apikey", c.cfg.APIKey)
	h.Set("Authorization", "Bearer "+c.cfg.APIKey)
	h.Set("Accept-Profile", c.cfg.ReadSchema)
}

func (c *Client) writeHeaders(h http.Header, prefer string) {
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("apikey", c.cfg.APIKey)
	h.Set("Authorization", "Bearer "+c.cfg.APIKey)
	h.Set("Content-Profile", c.cfg.WriteSchema)
	if prefer != "" {
		h.Set("Prefer", prefer)
	}
}

// decodeErrorInfo falls back to the status text when the body is not a store
// error object.
func decodeErrorInfo(body []byte, status int) ErrorInfo {
	var info ErrorInfo
	if err := json.Unmarshal(body, &info); err != nil || (strings.TrimSpace(info.Message) == "" && info.Code == "") {
		return ErrorInfo{Message: statusText(status)}
	}
	if strings.TrimSpace(info.Message) == "" {
		info.Message = statusText(status)
	}
	return info
}

func statusText(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}

// unwrapRow accepts either a single object or an array and returns its first
// element. Empty bodies, null and empty arrays yield nil.
func unwrapRow[T any](body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var rows []T
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, nil
		}
		return &rows[0], nil
	}
	var row T
	if err := json.Unmarshal(trimmed, &row); err != nil {
		return nil, err
	}
	return &row, nil
}
