package jobs

import (
	"context"
	"errors"
	"log/slog"

	"tastyfood/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// MenuRefresher keeps a local menu snapshot in sync with the catalog service.
type MenuRefresher interface {
	Refresh(ctx context.Context) error
}

// MenuRefreshJob periodically re-fetches the menu from the catalog service so
// the fallback snapshot stays warm even when nobody is browsing the menu.
type MenuRefreshJob struct {
	refresher MenuRefresher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewMenuRefreshJob creates a job that refreshes the menu snapshot every minute.
func NewMenuRefreshJob(refresher MenuRefresher, logger *slog.Logger) *MenuRefreshJob {
	return &MenuRefreshJob{
		refresher: refresher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "menu_refresh_job"),
	}
}

// Start begins the menu refresh job to run at the top of every minute.
func (j *MenuRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.refresher.Refresh(ctx); err != nil {
			// A catalog outage is survivable while the snapshot holds; anything
			// else deserves attention.
			if errors.Is(err, errs.ErrUpstreamUnavailable) {
				j.logger.WarnContext(ctx, "Menu refresh skipped, catalog unreachable", "error", err)
				return
			}
			j.logger.ErrorContext(ctx, "Menu refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu refresh job started (running every minute)")
	return nil
}

// Stop stops the menu refresh job.
func (j *MenuRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Menu refresh job stopped")
}
