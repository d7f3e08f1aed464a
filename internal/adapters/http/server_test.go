package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/go-batch-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-batch-service/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewServer_Addr(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 9090}

	for _, logger := range []*slog.Logger{nil, discardLogger()} {
		s := adapthttp.NewServer(cfg, http.NotFoundHandler(), logger)
		if got := s.Addr(); got != "127.0.0.1:9090" {
			t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
		}
	}
}

func TestServer_StartFailsOnBadAddress(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: -1}, http.NotFoundHandler(), discardLogger())
	if err := s.Start(); err == nil {
		t.Fatal("Start() error = nil, want listen error")
	}
}

// A batch still being processed when shutdown begins gets its response.
func TestServer_ShutdownDrainsInFlightBatch(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := adapthttp.NewServer(config.ServerConfig{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}, handler, discardLogger())

	serveErr := make(chan error, 1)
	go func() { serveErr <- s.Serve(ln) }()

	type result struct {
		body string
		err  error
	}
	respCh := make(chan result, 1)
	go func() {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
			"http://"+ln.Addr().String()+"/api/v1/batches", strings.NewReader(`{"items":[]}`))
		if err != nil {
			respCh <- result{err: err}
			return
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			respCh <- result{err: err}
			return
		}
		defer func() { _ = resp.Body.Close() }()
		b, err := io.ReadAll(resp.Body)
		respCh <- result{body: string(b), err: err}
	}()

	<-started

	shutdownErr := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- s.Shutdown(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	res := <-respCh
	if res.err != nil {
		t.Fatalf("in-flight request error = %v", res.err)
	}
	if res.body != `{"success":true}` {
		t.Errorf("body = %q, want the completed batch response", res.body)
	}
	if err := <-shutdownErr; err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := <-serveErr; err != nil {
		t.Errorf("Serve() error after shutdown = %v", err)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := adapthttp.NewServer(config.ServerConfig{}, http.NotFoundHandler(), discardLogger())
	serveErr := make(chan error, 1)
	go func() { serveErr <- s.Serve(ln) }()

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-serveErr; err != nil {
		t.Fatalf("Serve() error after shutdown = %v", err)
	}
}
