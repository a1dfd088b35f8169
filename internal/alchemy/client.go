// Package alchemy implements a JSON-RPC 2.0 client for the Alchemy Ethereum API.
package alchemy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"compound-risk-lab/internal/observability"
)

// Default configuration values.
const (
	DefaultTimeout       = 15 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 1 * time.Second
	DefaultMaxDelay      = 10 * time.Second
	DefaultMaxRetryAfter = 60 * time.Second
)

// HTTPClient talks to an Alchemy endpoint over HTTP JSON-RPC 2.0.
// Rate limits (429) and 5xx responses are retried with doubling delays;
// a Retry-After header lengthens the wait up to maxRetryAfter.
type HTTPClient struct {
	endpoint      string
	client        *http.Client
	maxRetries    int
	retryDelay    time.Duration
	maxDelay      time.Duration
	maxRetryAfter time.Duration
	requestID     atomic.Uint64
	now           func() time.Time
}

// ClientOption configures HTTPClient.
type ClientOption func(*HTTPClient)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithMaxRetries sets how many times a failed request is repeated.
// Negative values are treated as 0.
func WithMaxRetries(n int) ClientOption {
	return func(c *HTTPClient) {
		c.maxRetries = max(n, 0)
	}
}

// WithRetryDelay sets the delay before the first retry.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.retryDelay = d
	}
}

// WithMaxDelay caps the exponential backoff delay.
func WithMaxDelay(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.maxDelay = d
	}
}

// WithMaxRetryAfter caps how long a Retry-After header can make the client wait.
func WithMaxRetryAfter(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.maxRetryAfter = d
	}
}

// WithHTTPClient sets custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// NewHTTPClient creates a new Alchemy client. endpoint includes the API key,
// e.g. https://eth-mainnet.g.alchemy.com/v2/<key>.
func NewHTTPClient(endpoint string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		endpoint:      endpoint,
		client:        &http.Client{Timeout: DefaultTimeout},
		maxRetries:    DefaultMaxRetries,
		retryDelay:    DefaultRetryDelay,
		maxDelay:      DefaultMaxDelay,
		maxRetryAfter: DefaultMaxRetryAfter,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type jsonrpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params,omitempty"`
}

type jsonrpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RPCError       `json:"error,omitempty"`
}

// transientError marks a failure worth retrying. wait is a server-requested
// minimum delay before the next attempt.
type transientError struct {
	err  error
	wait time.Duration
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// call sends method and decodes the result into result, retrying transient failures.
func (c *HTTPClient) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	start := c.now()
	defer func() {
		observability.RecordRPCLatency(method, c.now().Sub(start).Seconds())
	}()

	body, err := json.Marshal(jsonrpcRequest{
		JSONRPC: "2.0",
		ID:      c.requestID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	backoff := c.retryDelay
	for attempt := 0; ; attempt++ {
		err := c.post(ctx, body, result)

		var transient *transientError
		if err == nil || !errors.As(err, &transient) {
			return err
		}
		if attempt >= c.maxRetries {
			return fmt.Errorf("%s failed after %d attempts: %w", method, attempt+1, transient.err)
		}

		wait := backoff
		if hint := min(transient.wait, c.maxRetryAfter); hint > wait {
			wait = hint
		}
		backoff = min(backoff*2, c.maxDelay)

		observability.RecordRPCRetry(method)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// post performs a single HTTP round trip. Failures that may clear on retry are
// returned as *transientError.
func (c *HTTPClient) post(ctx context.Context, body []byte, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &transientError{err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transientError{err: fmt.Errorf("read response: %w", err)}
	}

	var rpcResp jsonrpcResponse
	decodeErr := json.Unmarshal(respBody, &rpcResp)

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
		}
		if decodeErr == nil && rpcResp.Error != nil {
			statusErr.RPC = rpcResp.Error
		} else {
			statusErr.Body = truncateBody(respBody)
		}
		if statusErr.Retryable() {
			return &transientError{err: statusErr, wait: statusErr.RetryAfter}
		}
		return statusErr
	}

	if decodeErr != nil {
		return &transientError{err: fmt.Errorf("unmarshal response: %w", decodeErr)}
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if result != nil && rpcResp.Result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("unmarshal result: %w", err)
		}
	}
	return nil
}
