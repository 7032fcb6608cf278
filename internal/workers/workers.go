package workers

import (
	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background jobs of the console.
func NewWorkers(cfg config.Workers, services *service.Services, logger *logger.Logger) (*Workers, error) {
	pruner, err := NewJournalPruner(cfg, services.ActivityService, logger)
	if err != nil {
		return nil, err
	}

	return &Workers{workers: []Worker{pruner}}, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
