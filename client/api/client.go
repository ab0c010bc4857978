package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/oauth2"

	"github.com/odpf/console/config"
	xerrors "github.com/odpf/console/internal/errors"
)

const (
	CacheTTL     = 5 * time.Minute
	CacheCleanUp = 10 * time.Minute

	requestIDHeader = "X-Request-Id"
)

var (
	ErrEmptyHost    = errors.New("api host is empty")
	ErrNilHTTPDoer  = errors.New("http doer is nil")
	errEmptyPayload = errors.New("empty response payload")
)

// HTTPDoer performs http requests
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the console api. Plain REST endpoints live under /api,
// connect style unary calls are POSTed to /<service>/<method>.
type Client struct {
	host      string
	httpDoer  HTTPDoer
	userAgent string
	requestID func() string
	timeout   time.Duration

	cache *cache.Cache
}

type Option func(*Client)

// WithHTTPDoer overrides the transport, mostly for tests
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *Client) {
		c.httpDoer = doer
	}
}

// WithBearerToken authenticates every request with a static bearer token
func WithBearerToken(ctx context.Context, token string) Option {
	return func(c *Client) {
		if token == "" {
			return
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
		c.httpDoer = oauth2.NewClient(ctx, ts)
	}
}

// WithTimeout bounds every request made through an *http.Client transport
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache.New(ttl, CacheCleanUp)
	}
}

func WithRequestIDGenerator(fn func() string) Option {
	return func(c *Client) {
		c.requestID = fn
	}
}

// NewClient initializes console api client
func NewClient(host string, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, ErrEmptyHost
	}
	c := &Client{
		host:      strings.TrimRight(host, "/"),
		httpDoer:  http.DefaultClient,
		userAgent: config.UserAgent(),
		requestID: func() string { return uuid.New().String() },
		cache:     cache.New(CacheTTL, CacheCleanUp),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpDoer == nil {
		return nil, ErrNilHTTPDoer
	}
	if hc, ok := c.httpDoer.(*http.Client); ok && c.timeout > 0 {
		withTimeout := *hc
		withTimeout.Timeout = c.timeout
		c.httpDoer = &withTimeout
	}
	return c, nil
}

// NewClientFromConfig builds a client from the loaded client configuration
func NewClientFromConfig(ctx context.Context, conf *config.ClientConfig) (*Client, error) {
	return NewClient(conf.Host,
		WithBearerToken(ctx, conf.Auth.Token),
		WithTimeout(conf.GetRequestTimeout()),
	)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// call performs a unary connect call, encoding req and decoding into resp
func (c *Client) call(ctx context.Context, procedure, entity string, req, resp interface{}) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error encoding request: %w", err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/"+procedure, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Connect-Protocol-Version", "1")

	response, err := c.do(request)
	if err != nil {
		return xerrors.NewInternalError(entity, fmt.Sprintf("request to %s failed", procedure), err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return decodeError(entity, response.StatusCode, body)
	}
	if resp == nil {
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyPayload
	}
	if err := json.Unmarshal(body, resp); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func (c *Client) do(request *http.Request) (*http.Response, error) {
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", c.userAgent)
	request.Header.Set(requestIDHeader, c.requestID())
	return c.httpDoer.Do(request)
}

func decodeError(entity string, status int, body []byte) error {
	var e errorBody
	if err := json.Unmarshal(body, &e); err != nil || e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
		if e.Message == "" {
			e.Message = http.StatusText(status)
		}
	}
	return xerrors.FromCode(e.Code, status, entity, e.Message)
}
