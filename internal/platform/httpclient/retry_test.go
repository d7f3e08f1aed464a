package httpclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestBackoff_ExponentialIncrease(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}

	// Run multiple samples to account for jitter.
	const samples = 100
	for attempt := 1; attempt <= 3; attempt++ {
		baseDelay := float64(100*time.Millisecond) * pow(2.0, attempt-1)
		minExpected := time.Duration(baseDelay * (1 - jitterFraction))
		maxExpected := time.Duration(baseDelay * (1 + jitterFraction))

		for range samples {
			delay := backoff(attempt, cfg)
			if delay < minExpected || delay > maxExpected {
				t.Errorf("attempt %d: delay %v not in [%v, %v]", attempt, delay, minExpected, maxExpected)
			}
		}
	}
}

func TestBackoff_CappedAtMaxInterval(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}

	// Attempt 10 would be 100ms * 2^9 = 51.2s without cap.
	maxWithJitter := time.Duration(float64(cfg.maxInterval) * (1 + jitterFraction))

	const samples = 100
	for range samples {
		delay := backoff(10, cfg)
		if delay > maxWithJitter {
			t.Errorf("delay %v exceeds max interval with jitter %v", delay, maxWithJitter)
		}
	}
}

func TestBackoff_JitterWithinBounds(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     10 * time.Second,
		multiplier:      2.0,
	}

	baseDelay := 100 * time.Millisecond
	minExpected := time.Duration(float64(baseDelay) * (1 - jitterFraction))
	maxExpected := time.Duration(float64(baseDelay) * (1 + jitterFraction))

	const samples = 1000
	for range samples {
		delay := backoff(1, cfg)
		if delay < minExpected || delay > maxExpected {
			t.Errorf("delay %v not in [%v, %v]", delay, minExpected, maxExpected)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	dialErr := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	readErr := &net.OpError{Op: "read", Err: errors.New("connection reset by peer")}

	tests := []struct {
		name   string
		method string
		err    error
		want   bool
	}{
		{name: "nil", method: http.MethodGet, err: nil, want: false},
		{name: "context canceled", method: http.MethodGet, err: context.Canceled, want: false},
		{name: "deadline exceeded", method: http.MethodDelete, err: context.DeadlineExceeded, want: false},
		{name: "GET dial error", method: http.MethodGet, err: dialErr, want: true},
		{name: "GET read error", method: http.MethodGet, err: readErr, want: true},
		{name: "GET generic error", method: http.MethodGet, err: errors.New("something failed"), want: true},
		{name: "DELETE read error", method: http.MethodDelete, err: readErr, want: true},
		{name: "POST dial error", method: http.MethodPost, err: dialErr, want: true},
		{name: "POST read error", method: http.MethodPost, err: readErr, want: false},
		{name: "POST generic error", method: http.MethodPost, err: errors.New("something failed"), want: false},
		{name: "POST canceled", method: http.MethodPost, err: context.Canceled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.method, tt.err); got != tt.want {
				t.Errorf("isRetryable(%s, %v) = %v, want %v", tt.method, tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		statusCode int
		want       bool
	}{
		{name: "GET 200 OK", method: http.MethodGet, statusCode: http.StatusOK, want: false},
		{name: "POST 201 Created", method: http.MethodPost, statusCode: http.StatusCreated, want: false},
		{name: "GET 400 Bad Request", method: http.MethodGet, statusCode: http.StatusBadRequest, want: false},
		{name: "DELETE 404 Not Found", method: http.MethodDelete, statusCode: http.StatusNotFound, want: false},
		{name: "GET 429 Too Many Requests", method: http.MethodGet, statusCode: http.StatusTooManyRequests, want: true},
		{name: "POST 429 Too Many Requests", method: http.MethodPost, statusCode: http.StatusTooManyRequests, want: true},
		{name: "GET 500 Internal Server Error", method: http.MethodGet, statusCode: http.StatusInternalServerError, want: true},
		{name: "POST 500 Internal Server Error", method: http.MethodPost, statusCode: http.StatusInternalServerError, want: false},
		{name: "DELETE 502 Bad Gateway", method: http.MethodDelete, statusCode: http.StatusBadGateway, want: true},
		{name: "POST 502 Bad Gateway", method: http.MethodPost, statusCode: http.StatusBadGateway, want: false},
		{name: "POST 503 Service Unavailable", method: http.MethodPost, statusCode: http.StatusServiceUnavailable, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryableStatus(tt.method, tt.statusCode); got != tt.want {
				t.Errorf("isRetryableStatus(%s, %d) = %v, want %v", tt.method, tt.statusCode, got, tt.want)
			}
		})
	}
}

func TestSecureRandFloat64_InRange(t *testing.T) {
	t.Parallel()

	const samples = 1000
	for range samples {
		v := secureRandFloat64()
		if v < 0 || v >= 1 {
			t.Errorf("secureRandFloat64() = %v, want [0, 1)", v)
		}
	}
}

// pow is a test helper for integer-base exponentiation.
func pow(base float64, exp int) float64 {
	result := 1.0
	for range exp {
		result *= base
	}
	return result
}
