// Package api implements the shop REST API collaborators over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

const (
	defaultBreakerFailureThreshold = 5
	defaultBreakerOpenTimeout      = 30 * time.Second
	maxErrorBodyLength             = 512
)

// errServerStatus marks a 5xx answer so the breaker counts it as a failure.
var errServerStatus = errors.New("server error status")

type response struct {
	status int
	body   []byte
}

// Client is the shared transport for every shop API collaborator.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*response]
	tokens  service.TokenStore
	logger  *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Tokens service.TokenStore
	Logger *slog.Logger
}

// NewClient creates the shop API client from configuration.
func NewClient(params ClientParams) (*Client, error) {
	cfg := params.Config.API
	if cfg == nil || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("api base URL is required")
	}

	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api base URL %s", cfg.BaseURL)
	}

	threshold := cfg.BreakerFailureThreshold
	if threshold == 0 {
		threshold = defaultBreakerFailureThreshold
	}
	openTimeout := cfg.BreakerOpenTimeout
	if openTimeout <= 0 {
		openTimeout = defaultBreakerOpenTimeout
	}

	logger := params.Logger
	breaker := gobreaker.NewCircuitBreaker[*response](gobreaker.Settings{
		Name:    "shop-api",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: breaker,
		tokens:  params.Tokens,
		logger:  logger,
	}, nil
}

// call describes one request to the shop API.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

// do runs c and decodes a 2xx JSON answer into out. Non-2xx answers and
// transport failures come back as *domainerrors.NetworkError.
func (c *Client) do(ctx context.Context, req call, out any) error {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*response, error) {
		return c.send(httpReq)
	})

	logger := deliverycontext.Logger(ctx, c.logger)
	if err != nil && !errors.Is(err, errServerStatus) {
		logger.Warn("Shop API call failed",
			slog.String("op", req.op),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)

		return domainerrors.NewNetworkError(req.op, 0, err)
	}

	logger.Debug("Shop API call",
		slog.String("op", req.op),
		slog.Int("status", resp.status),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.status < 200 || resp.status >= 300 {
		netErr := domainerrors.NewNetworkError(req.op, resp.status, errors.Errorf("unexpected status %d", resp.status))
		netErr.Body = truncate(string(resp.body), maxErrorBodyLength)

		return netErr
	}

	if out == nil || len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return domainerrors.NewNetworkError(req.op, resp.status, errors.Wrap(err, "decode response"))
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, req call) (*http.Request, error) {
	target := c.baseURL.JoinPath(req.path)
	// JoinPath drops the trailing slash the shop routes require.
	if strings.HasSuffix(req.path, "/") && !strings.HasSuffix(target.Path, "/") {
		target.Path += "/"
	}
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: encode request", req.op)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: build request", req.op)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	if req.auth {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}

func (c *Client) send(req *http.Request) (*response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	out := &response{status: resp.StatusCode, body: body}
	if resp.StatusCode >= http.StatusInternalServerError {
		return out, errServerStatus
	}

	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}

// isStatus reports whether err is a NetworkError carrying status.
func isStatus(err error, status int) bool {
	netErr, ok := errors.AsType[*domainerrors.NetworkError](err)

	return ok && netErr.StatusCode == status
}
