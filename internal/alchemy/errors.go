package alchemy

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RPCError is a JSON-RPC 2.0 error object returned by the provider.
// Alchemy also sends these in the body of non-200 responses.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// StatusError is a non-200 HTTP response from the provider.
type StatusError struct {
	StatusCode int
	RetryAfter time.Duration // zero when the header is absent or unparsable
	RPC        *RPCError     // decoded error body, if any
	Body       string        // raw body when it was not a JSON-RPC error
}

func (e *StatusError) Error() string {
	if e.RPC != nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.RPC.Error())
	}
	if e.Body != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

// Unwrap exposes the decoded RPC error to errors.As.
func (e *StatusError) Unwrap() error {
	if e.RPC == nil {
		return nil
	}
	return e.RPC
}

// Retryable reports whether the request may succeed if repeated:
// rate limiting and server-side failures.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// maxBodyInError bounds the raw body kept in StatusError.
const maxBodyInError = 256

func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxBodyInError {
		return s[:maxBodyInError] + "..."
	}
	return s
}

// parseRetryAfter reads a Retry-After header in delta-seconds or HTTP-date form.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
