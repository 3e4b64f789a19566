package workers

import (
	"github.com/MKhiriev/go-media-kit/internal/config"
	"github.com/MKhiriev/go-media-kit/internal/logger"
	"github.com/MKhiriev/go-media-kit/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the receiver's background workers from configuration.
// A zero RetentionAge disables the retention worker, leaving the aggregate
// empty; Run and Stop stay safe to call either way.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.RetentionAge > 0 {
		ws.workers = append(ws.workers, NewRetentionWorker(services.FileService, cfg.RetentionAge, cfg.RetentionInterval, log))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that supports graceful shutdown and blocks
// until they have exited.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if stoppable, ok := worker.(interface{ Stop() }); ok {
			stoppable.Stop()
		}
	}
}
