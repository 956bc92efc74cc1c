// Package jobs schedules the background maintenance work.
package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"campus-agenda/services"
)

// StartWarmup schedules the events-cache warmup on the configured cron
// spec and returns the running scheduler so the caller can stop it on
// shutdown.
func StartWarmup(events *services.EventService, schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if err := events.WarmCache(context.Background()); err != nil {
			slog.Warn("events cache warmup failed", "error", err)
			return
		}
		slog.Info("events cache warmed", "schedule", schedule)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
