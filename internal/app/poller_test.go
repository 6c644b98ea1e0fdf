package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/folio/internal/posts"
	"github.com/five82/folio/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := time.Minute

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, time.Minute},
		{"negative failures", -1, time.Minute},
		{"one failure", 1, 2 * time.Minute},
		{"two failures", 2, 4 * time.Minute},
		{"three failures", 3, 8 * time.Minute},
		{"four failures capped", 4, 15 * time.Minute}, // Would be 16m, capped to 15m
		{"many failures capped", 100, 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff || got <= 0 {
			t.Errorf("calculateBackoff(%d, %v) = %v, outside (0, %v]", failures, baseInterval, got, maxBackoff)
		}
	}
}

type countingSource struct {
	calls atomic.Int32
	err   error
}

func (s *countingSource) List(context.Context) ([]posts.Post, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []posts.Post{{Slug: "a"}}, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestStartPoller_RefreshesAndTriggers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &state.Store{}
	src := &countingSource{}
	p := StartPoller(ctx, store, src, time.Hour, nil)

	waitFor(t, func() bool { return store.Snapshot().Loaded })

	p.Refresh()
	waitFor(t, func() bool { return src.calls.Load() >= 2 })
}

func TestStartPoller_RecordsErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &state.Store{}
	src := &countingSource{err: errors.New("source down")}
	StartPoller(ctx, store, src, time.Hour, nil)

	waitFor(t, func() bool { return store.Snapshot().ConsecutiveFailures == 1 })
	if store.Snapshot().LastError == nil {
		t.Fatalf("LastError = nil, want source error")
	}
}

func TestPoller_NilRefreshIsSafe(t *testing.T) {
	var p *Poller
	p.Refresh()
}
