package workers

import (
	"context"
	"log/slog"

	"transfer-lab/contract"
	"transfer-lab/domain"
)

var _ contract.Worker = (*CompletionWorker)(nil)

// CompletionWorker runs the completion hook of successfully finished jobs
// (e.g. moving a download into place) away from the admission path, so a
// slow file move can never stall scheduling.
type CompletionWorker struct {
	log         *slog.Logger
	completions <-chan contract.Transferable
}

func NewCompletionWorker(log *slog.Logger, completions <-chan contract.Transferable) *CompletionWorker {
	return &CompletionWorker{log: log, completions: completions}
}

func (w *CompletionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job, ok := <-w.completions:
			if !ok {
				w.log.Debug("Completion channel is closed")
				return nil
			}
			if err := job.OnComplete(); err != nil {
				// The transfer succeeded but finalization did not; the
				// file never reached its destination.
				w.log.Error("Completion hook failed", "job_id", job.ID(), "error", err)
				job.SetStatus(domain.StatusFailed)
				continue
			}
			w.log.Info("Job finalized", "job_id", job.ID(), "path", job.FullLocalPath())
		}
	}
}
