// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP with automatic
// retries and configurable timeouts. The wallet backend is reached through it.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	httptransport "github.com/gabapcia/walletdesk/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// ErrUnexpectedStatus is returned when the server answers with a non 2xx
// status and a body that is not a JSON-RPC response.
var ErrUnexpectedStatus = errors.New("unexpected http status")

const tracerName = "github.com/gabapcia/walletdesk/internal/pkg/transport/jsonrpc"

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns an error wrapping ErrProviderReturnedError when the response
// carries a JSON-RPC error object.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends JSON-RPC calls. It is an interface so backends can be mocked.
type Client interface {
	// Fetch calls method with params and returns the raw JSON result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
	tracer           trace.Tracer
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request and returns the raw result. Request ids are
// random UUID strings. Each call is recorded as a client span.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "jsonrpc "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("rpc.system", "jsonrpc"), attribute.String("rpc.method", method)),
	)
	defer span.End()

	result, err := c.fetch(ctx, method, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return result, err
}

func (c *client) fetch(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// config holds transport settings forwarded to the HTTP client.
type config struct {
	httpOpts []httptransport.Option
}

// Option configures the JSON-RPC client.
type Option func(*config)

// WithTimeout sets the maximum duration of a single HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, httptransport.WithTimeout(d))
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, httptransport.WithRetryWaitMin(d))
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, httptransport.WithRetryWaitMax(d))
	}
}

// WithRetryMax sets the maximum number of retries for failed requests.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, httptransport.WithRetryMax(n))
	}
}

// NewClient returns a Client sending requests to providerEndpoint. Transport
// defaults are those of the internal http package.
func NewClient(providerEndpoint string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httptransport.NewClient(cfg.httpOpts...),
		tracer:           otel.Tracer(tracerName),
	}
}
