package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const defaultTimeout = 10 * time.Second

// Options configure an HTTPClient. HealthAddr is the gRPC endpoint used by
// Ping; DialOptions are appended to the insecure default.
type Options struct {
	BaseURL     string
	HealthAddr  string
	Timeout     time.Duration
	Transport   http.RoundTripper
	DialOptions []grpc.DialOption
}

// bearerTransport attaches the instance's access token to each request.
type bearerTransport struct {
	mu    sync.RWMutex
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) setToken(token string) {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.RLock()
	token := t.token
	t.mu.RUnlock()

	if token == "" {
		return t.base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
	return t.base.RoundTrip(r)
}

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	auth    *bearerTransport
	conn    *grpc.ClientConn
	health  healthpb.HealthClient
}

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid api url %q: scheme and host required", opts.BaseURL)
	}

	rt := opts.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	auth := &bearerTransport{base: rt}
	c := &HTTPClient{
		baseURL: base,
		auth:    auth,
		http:    &http.Client{Transport: auth, Timeout: timeout},
	}

	if opts.HealthAddr != "" {
		dial := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts.DialOptions...)
		conn, err := grpc.NewClient(opts.HealthAddr, dial...)
		if err != nil {
			return nil, fmt.Errorf("health client: %w", err)
		}
		c.conn = conn
		c.health = healthpb.NewHealthClient(conn)
	}

	return c, nil
}

func (c *HTTPClient) SetAccessToken(token string) {
	c.auth.setToken(token)
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodPost, "/users", reg, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	var res models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Ping reports nil when the server's health service answers SERVING.
func (c *HTTPClient) Ping(ctx context.Context) error {
	if c.health == nil {
		return ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.http.Timeout)
	defer cancel()

	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return ErrValidation
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code >= 500:
		return ErrServer
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
