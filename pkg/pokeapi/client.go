package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/notjagan/moveset/pkg/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	DefaultTimeout = 10 * time.Second

	pageLimit = 100
)

type Client struct {
	baseURL   string
	httpc     *http.Client
	userAgent string
	requestID string
	tracer    trace.Tracer
	timeout   time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithTimeout applies to a copy of the http client, never to one passed in with
// WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRequestID tags every request with an X-Request-ID header.
func WithRequestID(id string) Option {
	return func(c *Client) {
		c.requestID = id
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		tracer:  noop.NewTracerProvider().Tracer("pokeapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		httpc := *c.httpc
		httpc.Timeout = c.timeout
		c.httpc = &httpc
	}

	return c
}

func (c *Client) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

func (c *Client) url(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}

	return c.baseURL + "/" + strings.Join(escaped, "/") + "/"
}

func getJSON[T any](ctx context.Context, c *Client, url string) (*T, error) {
	ctx, span := c.tracer.Start(ctx, "pokeapi.get", trace.WithAttributes(
		attribute.String("http.url", url),
	))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.requestID != "" {
		req.Header.Set("X-Request-ID", c.requestID)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("GET %s: %w", url, model.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	var dst T
	if err := json.NewDecoder(resp.Body).Decode(&dst); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("could not decode response from %s: %w", url, err)
	}

	return &dst, nil
}
