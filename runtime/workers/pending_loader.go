package workers

import (
	"context"
	"log/slog"
	"time"

	"transfer-lab/contract"
)

var _ contract.Worker = (*PendingLoaderWorker)(nil)

// Scheduler is the slice of the coordinator the loader needs.
type Scheduler interface {
	Enqueue(job contract.Transferable)
	Knows(jobID string) bool
	QueueLength() int
	ActiveCount() int
}

// PendingLoaderWorker polls the repository for persisted jobs that are
// still waiting for admission and feeds them to the scheduler. The startup
// load catches jobs from the previous run; this loop catches jobs inserted
// by other processes while we are running.
type PendingLoaderWorker struct {
	log       *slog.Logger
	repo      contract.Repository
	scheduler Scheduler
	interval  time.Duration
}

func NewPendingLoaderWorker(log *slog.Logger, repo contract.Repository, scheduler Scheduler, interval time.Duration) *PendingLoaderWorker {
	return &PendingLoaderWorker{log: log, repo: repo, scheduler: scheduler, interval: interval}
}

func (w *PendingLoaderWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping pending loader")
			return ctx.Err()
		case <-ticker.C:
			if w.scheduler.QueueLength() > 0 {
				// The queue is still draining; re-reading the repository
				// now would only enqueue duplicates.
				continue
			}
			pending, err := w.repo.ListPending()
			if err != nil {
				w.log.Error("Failed to list pending jobs", "error", err)
				continue
			}
			for _, job := range pending {
				if w.scheduler.Knows(job.ID()) {
					// Already tracked in memory; the persisted copy is
					// just its last snapshot.
					continue
				}
				w.scheduler.Enqueue(job)
				w.log.Debug("Pending job re-enqueued", "job_id", job.ID())
			}
		}
	}
}
