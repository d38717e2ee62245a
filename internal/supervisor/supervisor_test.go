// Automated Real Estate Platform - Social Media Automation and Analytics
// Copyright 2026 smaskoun
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/smaskoun/Automated-platform-Real-Estate

package supervisor

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/smaskoun/Automated-platform-Real-Estate/internal/config"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/learning"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/logging"
	"github.com/smaskoun/Automated-platform-Real-Estate/internal/models"
)

type fakeSource struct {
	calls atomic.Int32
	items []models.ContentItem
	err   error
}

func (f *fakeSource) GetAllContent(ctx context.Context, limit int) ([]models.ContentItem, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func testEngine(t *testing.T, source learning.ContentSource) *learning.Engine {
	t.Helper()
	cfg := config.LearningConfig{
		MinDataPoints:   3,
		RetentionDays:   365,
		HistoryCap:      100,
		IngestLimit:     50,
		DefaultPlatform: "manual",
	}
	return learning.NewEngine(cfg, source, logging.NewTestLogger(io.Discard))
}

func TestLearningRefresherRefreshes(t *testing.T) {
	source := &fakeSource{items: []models.ContentItem{
		{"text": "Post one", "engagement": map[string]interface{}{"likes": 5}},
		{"text": "Post two", "engagement": map[string]interface{}{"likes": 3}},
		{"text": "Post three", "engagement": map[string]interface{}{"likes": 1}},
	}}
	engine := testEngine(t, source)

	r := NewLearningRefresher(engine, time.Hour, logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx) }()

	// The initial refresh runs before the first tick.
	deadline := time.After(2 * time.Second)
	for engine.History().Len() < 3 {
		select {
		case <-deadline:
			t.Fatalf("history not populated, len = %d", engine.History().Len())
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not stop after cancel")
	}

	if got := source.calls.Load(); got != 1 {
		t.Errorf("source calls = %d, want 1", got)
	}
	if !engine.Status().Ready {
		t.Error("engine not ready after refresh")
	}
}

func TestLearningRefresherSurvivesSourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("disk on fire")}
	engine := testEngine(t, source)

	r := NewLearningRefresher(engine, time.Hour, logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := r.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve returned %v, want deadline exceeded", err)
	}
	if engine.History().Len() != 0 {
		t.Errorf("history len = %d, want 0", engine.History().Len())
	}
}

func TestLearningRefresherMinimumInterval(t *testing.T) {
	engine := testEngine(t, &fakeSource{})
	r := NewLearningRefresher(engine, time.Second, logging.NewTestLogger(io.Discard))
	if r.interval != time.Minute {
		t.Errorf("interval = %s, want 1m floor", r.interval)
	}
}

type fakeServer struct {
	listening chan struct{}
	stop      chan struct{}
	shutdowns atomic.Int32
}

func newFakeServer() *fakeServer {
	return &fakeServer{listening: make(chan struct{}), stop: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	close(f.listening)
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	f.shutdowns.Add(1)
	close(f.stop)
	return nil
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	server := newFakeServer()
	svc := NewHTTPService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	select {
	case <-server.listening:
	case <-time.After(2 * time.Second):
		t.Fatal("server never started listening")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if server.shutdowns.Load() != 1 {
		t.Errorf("shutdowns = %d, want 1", server.shutdowns.Load())
	}
}

func TestHTTPServiceStartFailure(t *testing.T) {
	svc := NewHTTPService(&failingServer{}, time.Second)
	if err := svc.Serve(context.Background()); err == nil {
		t.Fatal("Serve returned nil for a failed listen")
	}
}

type failingServer struct{}

func (failingServer) ListenAndServe() error            { return errors.New("bind: address in use") }
func (failingServer) Shutdown(_ context.Context) error { return nil }

func TestTreeRunsService(t *testing.T) {
	tree := NewTree(logging.NewTestLogger(io.Discard), DefaultTreeConfig())

	source := &fakeSource{items: []models.ContentItem{{"text": "Post"}}}
	engine := testEngine(t, source)
	tree.Add(NewLearningRefresher(engine, time.Hour, logging.NewTestLogger(io.Discard)))

	ctx, cancel := context.WithCancel(context.Background())
	errs := tree.ServeBackground(ctx)

	deadline := time.After(2 * time.Second)
	for engine.History().Len() < 1 {
		select {
		case <-deadline:
			t.Fatal("supervised refresher never ran")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-errs:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}
}
