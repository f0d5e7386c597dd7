package watch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mlb-stats-client/domain/plays"
	"mlb-stats-client/internal/logging"
	"mlb-stats-client/internal/metrics"
)

const defaultInterval = 10 * time.Second

// PlaysFetcher fetches play-by-play tables for a set of games.
type PlaysFetcher interface {
	Plays(ctx context.Context, gameIDs []int64) (map[int64]plays.Table, error)
}

// Sink receives each refreshed batch of play tables.
type Sink interface {
	Emit(tables map[int64]plays.Table)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(tables map[int64]plays.Table)

func (f SinkFunc) Emit(tables map[int64]plays.Table) {
	f(tables)
}

// Watcher re-fetches play-by-play for a fixed set of games on an interval
// and hands each batch to the sink.
type Watcher struct {
	fetcher  PlaysFetcher
	sink     Sink
	gameIDs  []int64
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the watch loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsHealthy reports whether the watcher has had a recent success and is not
// failing repeatedly.
func (s Status) IsHealthy() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Watcher with sane defaults.
func New(fetcher PlaysFetcher, sink Sink, gameIDs []int64, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Watcher{
		fetcher:  fetcher,
		sink:     sink,
		gameIDs:  gameIDs,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins watching until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		logging.Info(w.logger, "watcher started",
			logging.FieldCount, len(w.gameIDs),
			logging.FieldDurationMS, w.interval.Milliseconds(),
		)
		// Initial fetch so the sink sees data before the first tick.
		w.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				logging.Info(w.logger, "watcher stopped")
				return
			case <-w.done:
				w.stopTicker()
				logging.Info(w.logger, "watcher stopped")
				return
			case <-w.ticker.C:
				w.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the watch loop.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
}

func (w *Watcher) fetchOnce(ctx context.Context) {
	start := time.Now()
	w.recordAttempt(start)

	tables, err := w.fetcher.Plays(ctx, w.gameIDs)
	w.metrics.RecordWatchCycle(time.Since(start), err)
	if err != nil && len(tables) == 0 {
		logging.Error(w.logger, "watch fetch failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		w.recordFailure(err, start)
		return
	}
	if err != nil {
		// Partial batch: some games were skipped, the rest still flow.
		logging.Warn(w.logger, "watch fetch partially failed", "error", err)
	}

	if w.sink != nil {
		w.sink.Emit(tables)
	}
	w.recordSuccess(start)
	logging.Info(w.logger, "watcher refreshed plays",
		logging.FieldCount, len(tables),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (w *Watcher) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Watcher) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Watcher) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Watcher) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the watcher's recent health.
func (w *Watcher) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
