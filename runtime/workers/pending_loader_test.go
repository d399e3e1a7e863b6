package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"transfer-lab/contract"
	"transfer-lab/domain"
	"transfer-lab/mocks"
)

// fakeScheduler records enqueued ids; always reports an empty queue.
type fakeScheduler struct {
	mu       sync.Mutex
	known    map[string]bool
	enqueued []string
	queueLen int
}

func (f *fakeScheduler) Enqueue(job contract.Transferable) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, job.ID())
	f.known[job.ID()] = true
}

func (f *fakeScheduler) Knows(jobID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.known[jobID]
}

func (f *fakeScheduler) QueueLength() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queueLen
}

func (f *fakeScheduler) ActiveCount() int { return 0 }

func (f *fakeScheduler) enqueuedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.enqueued...)
}

func TestPendingLoader_EnqueuesUnknownJobs(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fresh, err := domain.NewDownload("https://example.com/fresh.bin", "/shared", "fresh.bin")
	req.NoError(err)
	tracked, err := domain.NewDownload("https://example.com/tracked.bin", "/shared", "tracked.bin")
	req.NoError(err)

	scheduler := &fakeScheduler{known: map[string]bool{tracked.ID(): true}}

	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().ListPending().
		Return([]*domain.TransferJob{fresh, tracked}, nil).
		MinTimes(1)

	worker := NewPendingLoaderWorker(slog.Default(), repo, scheduler, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req.ErrorIs(worker.Run(ctx), context.DeadlineExceeded)

	// The already-tracked job was skipped; the fresh one enqueued once.
	req.Equal([]string{fresh.ID()}, scheduler.enqueuedIDs())
}

func TestPendingLoader_SkipsWhileQueueDrains(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := &fakeScheduler{known: map[string]bool{}, queueLen: 3}

	// A non-empty in-memory queue means the repository is not consulted.
	repo := mocks.NewMockRepository(ctrl)

	worker := NewPendingLoaderWorker(slog.Default(), repo, scheduler, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	req.ErrorIs(worker.Run(ctx), context.DeadlineExceeded)
	req.Empty(scheduler.enqueuedIDs())
}
