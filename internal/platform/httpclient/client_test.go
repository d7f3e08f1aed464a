package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-batch-service/internal/platform/config"
	"github.com/jsamuelsen11/go-batch-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-batch-service/internal/platform/telemetry"
)

const downstream = "todo-api"

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newClient(t *testing.T, cfg *config.ClientConfig, metrics *telemetry.Metrics) *httpclient.Client {
	t.Helper()
	return httpclient.New(cfg, downstream, metrics, slog.New(slog.DiscardHandler))
}

// send builds a request for url and runs it through the client, closing
// any response body before returning the status code.
func send(t *testing.T, ctx context.Context, c *httpclient.Client, method, url, body string) (int, error) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}

	resp, err := c.Do(ctx, req)
	if resp == nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, err
}

// sequenceServer answers each hit with the next status in statuses, repeating
// the last one once the sequence is exhausted.
func sequenceServer(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(hits.Add(1)) - 1
		if n >= len(statuses) {
			n = len(statuses) - 1
		}
		w.WriteHeader(statuses[n])
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestDo_RetryPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		statuses   []int
		wantStatus int
		wantHits   int32
		wantErr    bool
	}{
		{
			name:       "create succeeds first time",
			method:     http.MethodPost,
			statuses:   []int{http.StatusCreated},
			wantStatus: http.StatusCreated,
			wantHits:   1,
		},
		{
			name:       "create retried on 503",
			method:     http.MethodPost,
			statuses:   []int{http.StatusServiceUnavailable, http.StatusCreated},
			wantStatus: http.StatusCreated,
			wantHits:   2,
		},
		{
			name:       "create retried on 429",
			method:     http.MethodPost,
			statuses:   []int{http.StatusTooManyRequests, http.StatusCreated},
			wantStatus: http.StatusCreated,
			wantHits:   2,
		},
		{
			name:       "create not retried on 500",
			method:     http.MethodPost,
			statuses:   []int{http.StatusInternalServerError, http.StatusCreated},
			wantStatus: http.StatusInternalServerError,
			wantHits:   1,
		},
		{
			name:       "create not retried on 422",
			method:     http.MethodPost,
			statuses:   []int{http.StatusUnprocessableEntity},
			wantStatus: http.StatusUnprocessableEntity,
			wantHits:   1,
		},
		{
			name:       "delete retried on 500",
			method:     http.MethodDelete,
			statuses:   []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusNoContent},
			wantStatus: http.StatusNoContent,
			wantHits:   3,
		},
		{
			name:       "delete not retried on 404",
			method:     http.MethodDelete,
			statuses:   []int{http.StatusNotFound},
			wantStatus: http.StatusNotFound,
			wantHits:   1,
		},
		{
			name:       "delete exhausts attempts",
			method:     http.MethodDelete,
			statuses:   []int{http.StatusServiceUnavailable},
			wantStatus: http.StatusServiceUnavailable,
			wantHits:   3,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, hits := sequenceServer(t, tt.statuses...)
			client := newClient(t, testConfig(srv.URL), nil)

			status, err := send(t, context.Background(), client, tt.method, srv.URL+"/todos", "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if got := hits.Load(); got != tt.wantHits {
				t.Errorf("server hits = %d, want %d", got, tt.wantHits)
			}
		})
	}
}

func TestDo_CreateBodyReplayedOnRetry(t *testing.T) {
	t.Parallel()

	const payload = `{"title":"write docs","group_id":7}`

	var (
		mu     sync.Mutex
		bodies []string
		hits   atomic.Int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	client := newClient(t, testConfig(srv.URL), nil)

	status, err := send(t, context.Background(), client, http.MethodPost, srv.URL+"/todos", payload)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want %d", status, http.StatusCreated)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(bodies) != 2 {
		t.Fatalf("attempts = %d, want 2", len(bodies))
	}
	for i, b := range bodies {
		if b != payload {
			t.Errorf("attempt %d body = %q, want %q", i+1, b, payload)
		}
	}
}

func TestDo_PropagatesRequestMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      func() context.Context
		wantReq  string
		wantCorr string
	}{
		{
			name: "ids in context",
			ctx: func() context.Context {
				ctx := httpclient.WithRequestID(context.Background(), "req-1")
				return httpclient.WithCorrelationID(ctx, "batch-corr")
			},
			wantReq:  "req-1",
			wantCorr: "batch-corr",
		},
		{
			name: "no ids",
			ctx:  context.Background,
		},
		{
			name: "empty ids skipped",
			ctx: func() context.Context {
				return httpclient.WithRequestID(context.Background(), "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotReq = r.Header.Get("X-Request-ID")
				gotCorr = r.Header.Get("X-Correlation-ID")
				w.WriteHeader(http.StatusCreated)
			}))
			t.Cleanup(srv.Close)

			client := newClient(t, testConfig(srv.URL), nil)
			if _, err := send(t, tt.ctx(), client, http.MethodPost, srv.URL+"/groups", `{}`); err != nil {
				t.Fatalf("Do() error = %v", err)
			}

			if gotReq != tt.wantReq {
				t.Errorf("X-Request-ID = %q, want %q", gotReq, tt.wantReq)
			}
			if gotCorr != tt.wantCorr {
				t.Errorf("X-Correlation-ID = %q, want %q", gotCorr, tt.wantCorr)
			}
		})
	}
}

func TestDo_RateLimitWaitHonoursContext(t *testing.T) {
	t.Parallel()

	srv, hits := sequenceServer(t, http.StatusCreated)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.1, BurstSize: 1}
	client := newClient(t, cfg, nil)

	if _, err := send(t, context.Background(), client, http.MethodPost, srv.URL+"/groups", `{}`); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := send(t, ctx, client, http.MethodPost, srv.URL+"/groups", `{}`); err == nil {
		t.Fatal("second Do() error = nil, want rate limit wait error")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}

func TestDo_CanceledContext(t *testing.T) {
	t.Parallel()

	srv, hits := sequenceServer(t, http.StatusCreated)
	client := newClient(t, testConfig(srv.URL), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := send(t, ctx, client, http.MethodPost, srv.URL+"/todos", `{}`); err == nil {
		t.Fatal("Do() error = nil, want context error")
	}
	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}

// tripBreaker drives one failing DELETE through a client whose breaker opens
// after a single failure.
func tripBreaker(t *testing.T, breakerTimeout time.Duration) (*httpclient.Client, *atomic.Bool, *atomic.Int32, string) {
	t.Helper()

	var failing atomic.Bool
	var hits atomic.Int32
	failing.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = breakerTimeout
	client := newClient(t, cfg, nil)

	_, _ = send(t, context.Background(), client, http.MethodDelete, srv.URL+"/todos/1", "")
	return client, &failing, &hits, srv.URL
}

func TestDo_CircuitBreakerRejectsWhileOpen(t *testing.T) {
	t.Parallel()

	client, _, hits, url := tripBreaker(t, time.Minute)
	before := hits.Load()

	_, err := send(t, context.Background(), client, http.MethodPost, url+"/todos", `{}`)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Do() error = %v, want gobreaker.ErrOpenState", err)
	}
	if hits.Load() != before {
		t.Error("server was hit while circuit breaker is open")
	}
}

func TestDo_CircuitBreakerRecovers(t *testing.T) {
	t.Parallel()

	client, failing, _, url := tripBreaker(t, 50*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	failing.Store(false)

	status, err := send(t, context.Background(), client, http.MethodDelete, url+"/todos/1", "")
	if err != nil {
		t.Fatalf("Do() error = %v, want recovery", err)
	}
	if status != http.StatusNoContent {
		t.Errorf("status = %d, want %d", status, http.StatusNoContent)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() after recovery = %v, want nil", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("closed", func(t *testing.T) {
		t.Parallel()
		client := newClient(t, testConfig("http://localhost"), nil)
		if err := client.HealthCheck(context.Background()); err != nil {
			t.Errorf("HealthCheck() = %v, want nil", err)
		}
		if got := client.Name(); got != downstream {
			t.Errorf("Name() = %q, want %q", got, downstream)
		}
	})

	t.Run("open", func(t *testing.T) {
		t.Parallel()
		client, _, _, _ := tripBreaker(t, time.Minute)
		err := client.HealthCheck(context.Background())
		if err == nil || !strings.Contains(err.Error(), "failing") {
			t.Errorf("HealthCheck() = %v, want error containing %q", err, "failing")
		}
	})

	t.Run("half-open", func(t *testing.T) {
		t.Parallel()
		client, _, _, _ := tripBreaker(t, 50*time.Millisecond)
		time.Sleep(80 * time.Millisecond)
		err := client.HealthCheck(context.Background())
		if err == nil || !strings.Contains(err.Error(), "degraded") {
			t.Errorf("HealthCheck() = %v, want error containing %q", err, "degraded")
		}
	})
}

func TestDo_RecordsClientMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	srv, _ := sequenceServer(t, http.StatusCreated, http.StatusConflict)
	client := newClient(t, testConfig(srv.URL), metrics)

	for range 2 {
		_, _ = send(t, context.Background(), client, http.MethodPost, srv.URL+"/todos", `{}`)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	results := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("http.client.request.total data = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(telemetry.AttrResult)
				results[v.AsString()] += dp.Value
			}
		}
	}

	if results["success"] != 1 || results["error"] != 1 {
		t.Errorf("client request results = %v, want one success and one error", results)
	}
}

func TestDo_NilMetrics(t *testing.T) {
	t.Parallel()

	srv, _ := sequenceServer(t, http.StatusCreated)
	client := newClient(t, testConfig(srv.URL), nil)

	status, err := send(t, context.Background(), client, http.MethodPost, srv.URL+"/todos", `{}`)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if status != http.StatusCreated {
		t.Errorf("status = %d, want %d", status, http.StatusCreated)
	}
}

func TestDo_CallerCancellationDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv, hits := sequenceServer(t, http.StatusCreated)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := newClient(t, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for range 3 {
		if _, err := send(t, ctx, client, http.MethodPost, srv.URL+"/todos", `{}`); !errors.Is(err, context.Canceled) {
			t.Fatalf("Do() error = %v, want context.Canceled", err)
		}
	}

	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() = %v, want closed breaker", err)
	}
	if status, err := send(t, context.Background(), client, http.MethodPost, srv.URL+"/todos", `{}`); err != nil || status != http.StatusCreated {
		t.Errorf("Do() = (%d, %v), want (201, nil)", status, err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}

func TestDo_SingleAttemptSkipsRetries(t *testing.T) {
	t.Parallel()

	srv, hits := sequenceServer(t, http.StatusBadGateway, http.StatusNoContent)
	client := newClient(t, testConfig(srv.URL), nil)

	ctx := httpclient.WithSingleAttempt(context.Background())
	status, err := send(t, ctx, client, http.MethodDelete, srv.URL+"/groups/100", "")
	if err == nil {
		t.Fatal("Do() error = nil, want retryable status error")
	}
	if status != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", status, http.StatusBadGateway)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}
