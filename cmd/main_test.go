package main

import (
	"context"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNewServer(t *testing.T) {
	srv := newServer(dummyHandler{}, "9090")
	if srv.Addr != ":9090" || srv.ReadHeaderTimeout == 0 {
		t.Fatalf("unexpected server: %+v", srv)
	}
}

func TestRun_CancelShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cleaned := make(chan struct{})
	done := make(chan error, 1)

	go func() { done <- run(ctx, dummyHandler{}, "0", func() { close(cleaned) }) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not return after cancel")
	}
	select {
	case <-cleaned:
	default:
		t.Fatalf("cleanup not called")
	}
}

func TestRun_ListenError(t *testing.T) {
	cleaned := make(chan struct{})
	err := run(context.Background(), dummyHandler{}, "-1", func() { close(cleaned) })
	if err == nil {
		t.Fatalf("expected listen error for invalid port")
	}
	<-cleaned
}

func TestRun_SignalPath(t *testing.T) {
	ctx, stop := signalContext()
	defer stop()

	cleaned := make(chan struct{})
	go func() { _ = run(ctx, dummyHandler{}, "0", func() { close(cleaned) }) }()

	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}
