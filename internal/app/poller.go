package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/folio/internal/posts"
	"github.com/five82/folio/internal/state"
)

const (
	defaultPollInterval = time.Minute
	maxBackoff          = 15 * time.Minute
)

// Poller refreshes the store from a post source in the background.
type Poller struct {
	trigger chan struct{}
}

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the source keeps failing. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, source posts.Source, interval time.Duration, log *zap.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &Poller{trigger: make(chan struct{}, 1)}
	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()

		failures := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			case <-p.trigger:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}

			if err := refresh(ctx, store, source); err != nil {
				failures++
				log.Warn("post refresh failed", zap.Error(err), zap.Int("failures", failures))
			} else {
				if failures > 0 {
					log.Info("post refresh recovered", zap.Int("failures", failures))
				}
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
	return p
}

// Refresh asks the poller to refresh now. Requests made while one is already
// queued are merged.
func (p *Poller) Refresh() {
	if p == nil {
		return
	}
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// calculateBackoff doubles the interval for each consecutive failure, up to
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func refresh(ctx context.Context, store *state.Store, source posts.Source) error {
	items, err := source.List(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		store.Update(nil, err)
		return err
	}
	store.Update(items, nil)
	return nil
}
