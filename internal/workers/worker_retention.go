package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/service"
)

type retentionWorker struct {
	files    service.FileService
	age      time.Duration
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRetentionWorker creates a worker that prunes stored files older than age
// every interval. The worker is idle until Run is called. If interval is zero
// or negative it defaults to 1 hour.
func NewRetentionWorker(files service.FileService, age, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = time.Hour
	}

	return &retentionWorker{
		files:    files,
		age:      age,
		interval: interval,
		logger:   log,
	}
}

// Run implements Worker. It stops any previously running pruning loop, then
// launches a background goroutine that prunes expired files every interval.
// The goroutine exits when Stop is called.
func (w *retentionWorker) Run() {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.prune(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully exited.
// Safe to call when the worker is not running (no-op in that case).
func (w *retentionWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *retentionWorker) prune(ctx context.Context) {
	pruned, err := w.files.PruneOlderThan(ctx, w.age)
	if err != nil {
		w.logger.Err(err).Str("func", "*retentionWorker.prune").Msg("error pruning expired files")
		return
	}

	if pruned > 0 {
		w.logger.Info().Str("func", "*retentionWorker.prune").Int("pruned", pruned).Dur("age", w.age).Msg("expired files pruned")
	}
}
