package cli

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/hostkiosk/kioskctl/internal/fetch"
	"github.com/hostkiosk/kioskctl/internal/logging"
	"github.com/hostkiosk/kioskctl/internal/notify"
)

// MaxInFlight bounds the fetches a watch loop keeps outstanding. Ticks
// that find this many fetches running are skipped.
const MaxInFlight = 4

// Watch refetches every interval until ctx ends, calling render with each
// result newer than the one on screen. Fetches may overlap on a slow API; a
// response that arrives after a newer one is dropped.
func Watch[T any](ctx context.Context, interval time.Duration, load func(context.Context) (T, error), render func(T) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tracker fetch.Tracker[T]
	var inFlight atomic.Int32
	results := make(chan struct{})
	failures := make(chan error)

	refresh := func() {
		defer inFlight.Add(-1)
		_, applied, err := tracker.Run(ctx, load)
		if !applied {
			logging.L().Debug("dropped stale watch response")
			return
		}
		if err != nil {
			select {
			case failures <- err:
			case <-ctx.Done():
			}
			return
		}
		select {
		case results <- struct{}{}:
		case <-ctx.Done():
		}
	}

	start := func() {
		if inFlight.Add(1) > MaxInFlight {
			inFlight.Add(-1)
			logging.L().Debug("watch tick skipped, fetches still running")
			return
		}
		go refresh()
	}

	start()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			start()
		case <-results:
			// Applied results can arrive out of order; the snapshot holds the newest.
			if err := render(tracker.Snapshot().Data); err != nil {
				return err
			}
		case err := <-failures:
			// The previous render stays on screen.
			logging.L().Warn("watch refresh failed", zap.Error(err))
			notify.Default().Error("Refresh failed", err.Error())
		}
	}
}
