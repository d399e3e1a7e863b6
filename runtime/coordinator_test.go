package runtime

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"transfer-lab/contract"
	"transfer-lab/domain"
	"transfer-lab/domain/event"
	"transfer-lab/errors"
	"transfer-lab/mocks"
)

func newTestJob(t *testing.T, filename string) *domain.TransferJob {
	t.Helper()
	job, err := domain.NewDownload("https://files.example.com/"+filename, "/shared/transfers", filename)
	require.NoError(t, err)
	return job
}

// capturedHandle wires a mock handle whose status callback the test can
// fire, simulating asynchronous gateway reports. The current field is what
// Current() returns, for reports that land before the callbacks are wired.
type capturedHandle struct {
	handle   *mocks.MockHandle
	current  domain.StatusReport
	onStatus func(report domain.StatusReport)
	progress func(transferred, total int64)
}

func newCapturedHandle(ctrl *gomock.Controller, requestID, correlationID string) *capturedHandle {
	c := &capturedHandle{handle: mocks.NewMockHandle(ctrl)}
	c.handle.EXPECT().RequestID().Return(requestID).AnyTimes()
	c.handle.EXPECT().CorrelationID().Return(correlationID).AnyTimes()
	c.handle.EXPECT().Current().
		DoAndReturn(func() domain.StatusReport { return c.current }).AnyTimes()
	c.handle.EXPECT().OnProgress(gomock.Any()).
		Do(func(fn func(int64, int64)) { c.progress = fn }).AnyTimes()
	c.handle.EXPECT().OnStatus(gomock.Any()).
		Do(func(fn func(domain.StatusReport)) { c.onStatus = fn }).AnyTimes()
	return c
}

func Test_Admission_Stops_At_Ceiling(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	jobs := make([]*domain.TransferJob, 7)
	for i := range jobs {
		jobs[i] = newTestJob(t, fmt.Sprintf("file-%d.bin", i))
	}

	// Five submissions up front, a sixth once the first slot frees up.
	order := make([]string, 0, 6)
	handles := make(map[string]*capturedHandle)
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			order = append(order, sub.CorrelationID)
			h := newCapturedHandle(ctrl, "ext-"+sub.CorrelationID, sub.CorrelationID)
			handles[sub.CorrelationID] = h
			return h.handle, nil
		}).Times(6)
	repo.EXPECT().FindByID(jobs[0].ID()).Return(jobs[0], nil)

	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)
	for _, job := range jobs {
		c.enqueue(job, false)
	}
	c.RunAdmissionLoop()

	req.Equal(5, c.ActiveCount())
	req.Equal(2, c.QueueLength())
	for i := 0; i < 5; i++ {
		req.Equal(jobs[i].ID(), order[i])
		req.NotEmpty(jobs[i].ExternalRequestID())
	}
	req.Equal(domain.StatusQueued, jobs[5].Status())
	req.Equal(domain.StatusQueued, jobs[6].Status())

	// Re-running the loop with a full ceiling is a no-op.
	c.RunAdmissionLoop()
	req.Equal(5, c.ActiveCount())
	req.Equal(2, c.QueueLength())

	// The first terminal report frees one slot and the next queued job
	// takes it right away.
	handles[jobs[0].ID()].onStatus(domain.StatusReport{Status: domain.ExternalCompleted, ResponseCode: 200})
	req.Equal(domain.StatusCompleted, jobs[0].Status())
	req.Equal(5, c.ActiveCount())
	req.Equal(1, c.QueueLength())
	req.Equal(jobs[5].ID(), order[5])
}

func Test_Terminal_Report_Releases_Slot_And_Admits_Next(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	first := newTestJob(t, "first.bin")
	second := newTestJob(t, "second.bin")
	repo.EXPECT().FindByID(first.ID()).Return(first, nil).AnyTimes()

	handles := make(map[string]*capturedHandle)
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			h := newCapturedHandle(ctrl, "ext-"+sub.CorrelationID, sub.CorrelationID)
			handles[sub.CorrelationID] = h
			return h.handle, nil
		}).Times(2)

	completions := make(chan contract.Transferable, 1)
	c := NewCoordinator(slog.Default(), gateway, repo, 1, nil, completions)
	c.enqueue(first, false)
	c.enqueue(second, false)
	c.RunAdmissionLoop()

	req.Equal(1, c.ActiveCount())
	req.Equal(1, c.QueueLength())

	handles[first.ID()].onStatus(domain.StatusReport{Status: domain.ExternalCompleted, ResponseCode: 200})

	req.Equal(domain.StatusCompleted, first.Status())
	req.Equal(1, c.ActiveCount())
	req.Equal(0, c.QueueLength())
	req.NotNil(handles[second.ID()])

	// The completed job was handed off for its completion hook.
	req.Equal(first.ID(), (<-completions).ID())
}

func Test_Duplicate_Terminal_Report_Releases_One_Slot(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	a := newTestJob(t, "a.bin")
	b := newTestJob(t, "b.bin")
	cJob := newTestJob(t, "c.bin")
	repo.EXPECT().FindByID(a.ID()).Return(a, nil).AnyTimes()

	handles := make(map[string]*capturedHandle)
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			h := newCapturedHandle(ctrl, "ext-"+sub.CorrelationID, sub.CorrelationID)
			handles[sub.CorrelationID] = h
			return h.handle, nil
		}).Times(2)

	c := NewCoordinator(slog.Default(), gateway, repo, 1, nil, nil)
	c.enqueue(a, false)
	c.enqueue(b, false)
	c.enqueue(cJob, false)
	c.RunAdmissionLoop()

	report := domain.StatusReport{Status: domain.ExternalCompleted, ResponseCode: 404, Err: errors.ErrTransport}
	handles[a.ID()].onStatus(report)
	req.Equal(domain.StatusFailed, a.Status())
	req.Equal(1, c.ActiveCount())
	req.Equal(1, c.QueueLength())

	// A replayed terminal report must not free a second slot.
	handles[a.ID()].onStatus(report)
	req.Equal(1, c.ActiveCount())
	req.Equal(1, c.QueueLength())
}

func Test_Terminal_Report_Before_Callback_Registration_Is_Replayed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	fast := newTestJob(t, "fast.bin")
	next := newTestJob(t, "next.bin")
	repo.EXPECT().FindByID(fast.ID()).Return(fast, nil)

	// The first transfer resolves before Submit returns: its handle already
	// carries the terminal report and OnStatus never fires.
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			h := newCapturedHandle(ctrl, "ext-"+sub.CorrelationID, sub.CorrelationID)
			if sub.CorrelationID == fast.ID() {
				h.current = domain.StatusReport{Status: domain.ExternalCompleted, ResponseCode: 404}
			}
			return h.handle, nil
		}).Times(2)

	c := NewCoordinator(slog.Default(), gateway, repo, 1, nil, nil)
	c.enqueue(fast, false)
	c.enqueue(next, false)
	c.RunAdmissionLoop()

	req.Equal(domain.StatusFailed, fast.Status())
	req.Equal(1, c.ActiveCount())
	req.Equal(0, c.QueueLength())
	req.NotEmpty(next.ExternalRequestID())
}

func Test_Racing_Terminal_Deliveries_Release_One_Slot(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	raced := newTestJob(t, "raced.bin")
	b := newTestJob(t, "b.bin")
	cJob := newTestJob(t, "c.bin")
	repo.EXPECT().FindByID(raced.ID()).Return(raced, nil).Times(2)

	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			return newCapturedHandle(ctrl, "ext-"+sub.CorrelationID, sub.CorrelationID).handle, nil
		}).Times(2)

	completions := make(chan contract.Transferable, 2)
	c := NewCoordinator(slog.Default(), gateway, repo, 1, nil, completions)
	c.enqueue(raced, false)
	c.enqueue(b, false)
	c.enqueue(cJob, false)
	c.RunAdmissionLoop()
	raced.SetStatus(domain.StatusTransferring)

	// The same terminal report delivered twice concurrently, as when the
	// reconciliation catch-up races the freshly registered status callback.
	report := domain.StatusReport{Status: domain.ExternalCompleted, ResponseCode: 200}
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.ProcessTransfer(raced, report)
		}()
	}
	wg.Wait()

	req.Equal(domain.StatusCompleted, raced.Status())
	req.Equal(1, c.ActiveCount())
	req.Equal(1, c.QueueLength())
	// The completion hook was dispatched exactly once.
	req.Len(completions, 1)
	req.Equal(raced.ID(), (<-completions).ID())
}

func Test_Gateway_Rejection_Demotes_To_Failed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	job := newTestJob(t, "rejected.bin")
	gateway.EXPECT().Submit(gomock.Any()).Return(nil, errors.ErrCapacityExceeded)

	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)
	c.enqueue(job, false)
	c.RunAdmissionLoop()

	req.Equal(domain.StatusFailed, job.Status())
	req.Equal(0, c.ActiveCount())
	req.Equal(0, c.QueueLength())
}

func Test_Failed_Admission_Hook_Demotes_To_Failed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	job := newTestJob(t, "no-dir.bin").WithHooks(
		func(j *domain.TransferJob) error { return fmt.Errorf("destination unavailable") },
		nil,
	)

	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)
	c.enqueue(job, false)
	c.RunAdmissionLoop()

	req.Equal(domain.StatusFailed, job.Status())
	req.Equal(0, c.ActiveCount())
}

func Test_Transient_Reports_Route_Through_State_Machine(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	job := newTestJob(t, "slow.bin")
	repo.EXPECT().FindByID(job.ID()).Return(job, nil).AnyTimes()

	var captured *capturedHandle
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			captured = newCapturedHandle(ctrl, "ext-1", sub.CorrelationID)
			return captured.handle, nil
		})

	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)
	c.enqueue(job, false)
	c.RunAdmissionLoop()

	captured.onStatus(domain.StatusReport{Status: domain.ExternalTransferring})
	req.Equal(domain.StatusTransferring, job.Status())

	captured.onStatus(domain.StatusReport{Status: domain.ExternalWaiting, ResponseCode: 503})
	req.Equal(domain.StatusWaitingForRetry, job.Status())

	// A lost-track report produces no transition at all.
	captured.onStatus(domain.StatusReport{Status: domain.ExternalUnknown})
	req.Equal(domain.StatusWaitingForRetry, job.Status())

	// None of these touch the slot counter.
	req.Equal(1, c.ActiveCount())
}

func Test_Cancel_Queued_Never_Contacts_Gateway(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations at all: any gateway call fails the test.
	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	job := newTestJob(t, "queued.bin")

	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)
	c.enqueue(job, false)

	c.Cancel(job)
	req.Equal(domain.StatusCanceled, job.Status())
	req.Equal(0, c.QueueLength())

	// Canceling again is a no-op.
	c.Cancel(job)
	req.Equal(domain.StatusCanceled, job.Status())
}

func Test_Cancel_Active_Removes_Externally(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	job := newTestJob(t, "active.bin")
	repo.EXPECT().FindByID(job.ID()).Return(job, nil).AnyTimes()

	var captured *capturedHandle
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			captured = newCapturedHandle(ctrl, "ext-1", sub.CorrelationID)
			return captured.handle, nil
		})

	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)
	c.enqueue(job, false)
	c.RunAdmissionLoop()
	job.SetStatus(domain.StatusTransferring)
	job.UpdateProgress(512, 1024)

	gateway.EXPECT().ListActive().Return([]contract.Handle{captured.handle})
	gateway.EXPECT().Remove(captured.handle).
		DoAndReturn(func(h contract.Handle) error {
			// The gateway acknowledges removal with a cancel report.
			captured.onStatus(domain.StatusReport{Status: domain.ExternalCompleted, Err: errors.ErrRequestRemoved})
			return nil
		})

	c.Cancel(job)

	req.Equal(domain.StatusCanceled, job.Status())
	req.Equal(0, c.ActiveCount())
	// Entering Canceled wiped the progress.
	req.Zero(job.TransferredBytes())
	req.True(job.IsIndeterminate())
}

func Test_CancelAll_Drains_Queue_And_Active(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	active := newTestJob(t, "active.bin")
	queued := newTestJob(t, "queued.bin")
	repo.EXPECT().FindByID(active.ID()).Return(active, nil).AnyTimes()
	repo.EXPECT().FindByCorrelationTag(active.ID()).Return(active, nil)

	var captured *capturedHandle
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			captured = newCapturedHandle(ctrl, "ext-1", sub.CorrelationID)
			return captured.handle, nil
		})

	c := NewCoordinator(slog.Default(), gateway, repo, 1, nil, nil)
	c.enqueue(active, false)
	c.enqueue(queued, false)
	c.RunAdmissionLoop()
	active.SetStatus(domain.StatusTransferring)

	gateway.EXPECT().ListActive().Return([]contract.Handle{captured.handle}).Times(2)
	gateway.EXPECT().Remove(captured.handle).
		DoAndReturn(func(h contract.Handle) error {
			captured.onStatus(domain.StatusReport{Status: domain.ExternalCompleted, Err: errors.ErrRequestRemoved})
			return nil
		})

	c.CancelAll()

	req.Equal(domain.StatusCanceled, queued.Status())
	req.Equal(domain.StatusCanceled, active.Status())
	req.Equal(0, c.QueueLength())
	req.Equal(0, c.ActiveCount())
}

func Test_Report_For_Deleted_Job_Removes_External_Request(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	job := newTestJob(t, "deleted.bin")
	repo.EXPECT().FindByID(job.ID()).Return(nil, errors.ErrNotFound)

	var captured *capturedHandle
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			captured = newCapturedHandle(ctrl, "ext-1", sub.CorrelationID)
			return captured.handle, nil
		})

	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)
	c.enqueue(job, false)
	c.RunAdmissionLoop()

	gateway.EXPECT().ListActive().Return([]contract.Handle{captured.handle})
	gateway.EXPECT().Remove(captured.handle).Return(nil)

	captured.onStatus(domain.StatusReport{Status: domain.ExternalTransferring})

	req.Equal(0, c.ActiveCount())
	// The job record is gone; its in-memory status is left alone.
	req.Equal(domain.StatusQueued, job.Status())
}

func Test_EnqueueFront_Preserves_Progress_And_Order(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	a := newTestJob(t, "a.bin")
	b := newTestJob(t, "b.bin")
	retried := newTestJob(t, "retried.bin")
	retried.UpdateProgress(100, 200)

	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)
	c.enqueue(a, false)
	c.enqueue(b, false)
	c.enqueue(retried, true)

	req.Equal(retried.ID(), c.queue[0].ID())
	req.Equal(a.ID(), c.queue[1].ID())
	req.Equal(b.ID(), c.queue[2].ID())
	req.Equal(int64(100), retried.TransferredBytes())
}

func Test_Init_Reconciles_Gateway_State(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	known := newTestJob(t, "known.bin")
	pending := newTestJob(t, "pending.bin")

	knownHandle := newCapturedHandle(ctrl, "ext-known", known.ID())
	knownHandle.current = domain.StatusReport{Status: domain.ExternalTransferring}
	orphanHandle := newCapturedHandle(ctrl, "ext-orphan", "forgotten-tag")

	gateway.EXPECT().ListActive().
		Return([]contract.Handle{knownHandle.handle, orphanHandle.handle})
	repo.EXPECT().FindByCorrelationTag(known.ID()).Return(known, nil)
	repo.EXPECT().FindByCorrelationTag("forgotten-tag").Return(nil, errors.ErrNotFound)
	gateway.EXPECT().Remove(orphanHandle.handle).Return(nil)
	repo.EXPECT().FindByID(known.ID()).Return(known, nil)
	repo.EXPECT().ListPending().Return([]*domain.TransferJob{pending}, nil)

	c := NewCoordinator(slog.Default(), gateway, repo, 1, nil, nil)
	req.NoError(c.Init())

	req.Equal("ext-known", known.ExternalRequestID())
	req.Equal(domain.StatusTransferring, known.Status())
	req.Equal(1, c.ActiveCount())
	// The ceiling is taken by the reconciled job; the pending one waits.
	req.Equal(1, c.QueueLength())
	req.Equal(domain.StatusQueued, pending.Status())
}

func Test_Progress_Callback_Updates_Job_And_Publishes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	job := newTestJob(t, "progress.bin")

	var captured *capturedHandle
	gateway.EXPECT().Submit(gomock.Any()).
		DoAndReturn(func(sub contract.Submission) (contract.Handle, error) {
			captured = newCapturedHandle(ctrl, "ext-1", sub.CorrelationID)
			return captured.handle, nil
		})

	events := make(chan event.DomainEvent, 8)
	c := NewCoordinator(slog.Default(), gateway, repo, 5, events, nil)
	c.enqueue(job, false)
	c.RunAdmissionLoop()

	// Drain the Queued status event first.
	statusEvt := <-events
	req.IsType(event.StatusChanged{}, statusEvt)

	captured.progress(256, 1024)
	req.Equal(int64(256), job.TransferredBytes())

	progressEvt := <-events
	updated, ok := progressEvt.(event.ProgressUpdated)
	req.True(ok)
	req.Equal(job.ID(), updated.ID)
	req.Equal(int64(256), updated.Transferred)
	req.Equal(int64(1024), updated.Total)
}

func Test_Knows_Tracks_Attached_Jobs(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mocks.NewMockGateway(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	job := newTestJob(t, "tracked.bin")
	c := NewCoordinator(slog.Default(), gateway, repo, 5, nil, nil)

	req.False(c.Knows(job.ID()))
	c.enqueue(job, false)
	req.True(c.Knows(job.ID()))
	req.False(c.Knows("someone-else"))
}
