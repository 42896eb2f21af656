package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/yoshi-675/sl-political-war-tracker/internal/ports"
)

// Watcher re-runs the pipeline on a fixed interval (watch mode). A failed
// run is logged and the next tick proceeds normally.
type Watcher struct {
	driver   ports.Scheduler
	pipeline *Pipeline
	logger   *slog.Logger
}

// NewWatcher wires the interval driver with the pipeline use case.
func NewWatcher(driver ports.Scheduler, pipeline *Pipeline, logger *slog.Logger) *Watcher {
	return &Watcher{driver: driver, pipeline: pipeline, logger: logger}
}

// Start registers the pipeline with the provided scheduler.
func (w *Watcher) Start(ctx context.Context) error {
	if w.driver == nil || w.pipeline == nil {
		return nil
	}

	job := func(trigger time.Time) {
		if err := w.pipeline.Run(ctx, trigger); err != nil && w.logger != nil {
			w.logger.Error("run failed", "error", err)
		}
	}

	return w.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.driver == nil {
		return nil
	}

	return w.driver.Stop(ctx)
}
