// Package runtime schedules transfer jobs against the external gateway and
// reconciles its asynchronous status reports. It owns no business rules about
// file content; those live in domain and in the sinks.
package runtime

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"transfer-lab/contract"
	"transfer-lab/domain"
	"transfer-lab/domain/event"
	"transfer-lab/errors"
)

// DefaultCeiling is the number of requests the external subsystem accepts
// concurrently. Observed limit, not negotiable from this side.
const DefaultCeiling = 5

// admission is the validated shape of a submission. The remote must be an
// absolute URL and the destination a normalized rooted path.
type admission struct {
	RemoteURL string `validate:"required,url"`
	LocalPath string `validate:"required,startswith=/,endsnotwith=/"`
}

// Coordinator owns the internal FIFO queue of not-yet-admitted jobs and the
// active-slot counter. The queue and the counter are one shared resource
// behind one mutex; the admission loop, cancellation and reconciliation all
// serialize on it. Gateway callbacks re-enter through ProcessTransfer and
// take the same lock before touching scheduler state.
type Coordinator struct {
	mu       sync.Mutex
	log      *slog.Logger
	gateway  contract.Gateway
	repo     contract.Repository
	validate *validator.Validate

	ceiling int
	queue   []contract.Transferable
	active  int

	// admittedIDs holds the job ids currently occupying a slot. Removing an
	// id releases its slot exactly once, whichever report delivery gets
	// there first.
	admittedIDs map[string]struct{}

	// attached tracks jobs whose status notifier is already wired, so a
	// re-enqueued job does not emit duplicate change records.
	attached map[string]struct{}

	events      chan<- event.DomainEvent
	completions chan<- contract.Transferable
}

func NewCoordinator(
	log *slog.Logger,
	gateway contract.Gateway,
	repo contract.Repository,
	ceiling int,
	events chan<- event.DomainEvent,
	completions chan<- contract.Transferable,
) *Coordinator {
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	return &Coordinator{
		log:         log,
		gateway:     gateway,
		repo:        repo,
		validate:    validator.New(),
		ceiling:     ceiling,
		admittedIDs: make(map[string]struct{}),
		attached:    make(map[string]struct{}),
		events:      events,
		completions: completions,
	}
}

// Init reconciles the gateway's already-tracked requests with our own
// records, loads persisted pending jobs into the queue, and runs one
// admission pass. Call it once, right after construction.
func (c *Coordinator) Init() error {
	for _, h := range c.gateway.ListActive() {
		job, err := c.repo.FindByCorrelationTag(h.CorrelationID())
		if err != nil {
			if !stderrors.Is(err, errors.ErrNotFound) {
				return fmt.Errorf("reconciliation lookup failed: %w", err)
			}
			// Orphaned external request: nobody remembers it, drop it.
			c.log.Warn("Removing orphaned external request", "request_id", h.RequestID())
			if err := c.gateway.Remove(h); err != nil && !stderrors.Is(err, errors.ErrAlreadyCancelled) {
				c.log.Error("Failed to remove orphaned request", "request_id", h.RequestID(), "error", err)
			}
			continue
		}

		c.attach(job)
		job.SetExternalRequestID(h.RequestID())
		c.mu.Lock()
		c.active++
		c.admittedIDs[job.ID()] = struct{}{}
		c.mu.Unlock()
		c.route(job, h)

		// The terminal report may have arrived while we were not running.
		c.ProcessTransfer(job, h.Current())
	}

	pending, err := c.repo.ListPending()
	if err != nil {
		return fmt.Errorf("loading pending jobs failed: %w", err)
	}
	for _, job := range pending {
		c.enqueue(job, false)
	}
	c.RunAdmissionLoop()
	return nil
}

// Enqueue appends the job to the internal queue and triggers an
// asynchronous admission pass. Progress is reset: this is a fresh attempt.
func (c *Coordinator) Enqueue(job contract.Transferable) {
	job.ResetProgress()
	c.enqueue(job, false)
	go c.RunAdmissionLoop()
}

// EnqueueFront prepends the job, keeping its progress. Used to re-submit a
// job after a recoverable condition without losing its place.
func (c *Coordinator) EnqueueFront(job contract.Transferable) {
	c.enqueue(job, true)
	go c.RunAdmissionLoop()
}

// EnqueueBatch appends the jobs in order, resetting progress on each.
func (c *Coordinator) EnqueueBatch(jobs []contract.Transferable) {
	for _, job := range jobs {
		job.ResetProgress()
		c.enqueue(job, false)
	}
	go c.RunAdmissionLoop()
}

func (c *Coordinator) enqueue(job contract.Transferable, front bool) {
	c.attach(job)
	job.SetStatus(domain.StatusQueued)
	c.mu.Lock()
	if front {
		c.queue = append([]contract.Transferable{job}, c.queue...)
	} else {
		c.queue = append(c.queue, job)
	}
	c.mu.Unlock()
}

// RunAdmissionLoop admits queued jobs while a slot is free. It is safe to
// invoke from any trigger point; passes serialize on the scheduler lock, so
// concurrent invocations block briefly and then no-op. With an empty queue
// or a full ceiling it does nothing.
func (c *Coordinator) RunAdmissionLoop() {
	c.mu.Lock()
	admitted := c.admitQueuedLocked()
	c.mu.Unlock()
	c.replayMissed(admitted)
}

// admittedJob pairs a freshly admitted job with its gateway handle so the
// caller can replay a report delivered before the callbacks were wired.
type admittedJob struct {
	job    contract.Transferable
	handle contract.Handle
}

// admitQueuedLocked is the iterative admission pass. One lock acquisition
// covers the whole pass; no recursion, no reentrant locking.
func (c *Coordinator) admitQueuedLocked() []admittedJob {
	var admitted []admittedJob
	for c.active < c.ceiling && len(c.queue) > 0 {
		job := c.queue[0]
		c.queue = c.queue[1:]

		if handle, ok := c.admitLocked(job); ok {
			admitted = append(admitted, admittedJob{job: job, handle: handle})
			continue
		}
		// The job may have changed status concurrently (e.g. canceled
		// between pop and submit). Only a still-queued job is demoted.
		if job.Status() == domain.StatusQueued {
			job.SetStatus(domain.StatusFailed)
		}
	}
	return admitted
}

// replayMissed re-delivers a terminal report that arrived before OnStatus
// was registered. The gateway starts transferring before Submit returns,
// so a very fast transfer can resolve inside that window and its only
// report would otherwise be lost, with the slot never released.
func (c *Coordinator) replayMissed(admitted []admittedJob) {
	for _, a := range admitted {
		if report := a.handle.Current(); report.Status == domain.ExternalCompleted {
			c.ProcessTransfer(a.job, report)
		}
	}
}

// admitLocked validates and submits one job. Any failure returns false
// without touching the slot counter; the caller decides the job's fate.
func (c *Coordinator) admitLocked(job contract.Transferable) (contract.Handle, bool) {
	remote := job.RemoteURL()
	if remote == nil {
		c.log.Warn("Job has no remote URL", "job_id", job.ID())
		return nil, false
	}

	sub := contract.Submission{
		CorrelationID: job.ID(),
		Method:        job.Method(),
		RemoteURL:     remote,
		LocalPath:     job.FullLocalPath(),
		Direction:     job.Direction(),
	}
	if err := c.validate.Struct(admission{RemoteURL: remote.String(), LocalPath: sub.LocalPath}); err != nil {
		c.log.Warn("Job failed admission validation", "job_id", job.ID(), "error", err)
		return nil, false
	}

	if err := job.OnBeforeAdmit(); err != nil {
		c.log.Warn("Admission hook failed", "job_id", job.ID(), "error", err)
		return nil, false
	}

	handle, err := c.gateway.Submit(sub)
	if err != nil {
		c.log.Warn("Gateway rejected submission", "job_id", job.ID(), "error", err)
		return nil, false
	}

	job.SetExternalRequestID(handle.RequestID())
	c.active++
	c.admittedIDs[job.ID()] = struct{}{}
	c.route(job, handle)
	c.log.Debug("Job admitted", "job_id", job.ID(), "request_id", handle.RequestID(), "active", c.active)
	return handle, true
}

// route wires the handle callbacks back into the job and the state machine.
func (c *Coordinator) route(job contract.Transferable, handle contract.Handle) {
	handle.OnProgress(func(transferred, total int64) {
		job.UpdateProgress(transferred, total)
		c.publish(event.ProgressUpdated{ID: job.ID(), Transferred: transferred, Total: total, At: time.Now().UTC()})
	})
	handle.OnStatus(func(report domain.StatusReport) {
		c.ProcessTransfer(job, report)
	})
}

// ProcessTransfer routes one gateway status report through the state
// machine and applies the outcome to the job.
func (c *Coordinator) ProcessTransfer(job contract.Transferable, report domain.StatusReport) {
	// A report for a job whose record was deleted while the transfer was
	// live is orphaned: drop the external request, leave no trace.
	if _, err := c.repo.FindByID(job.ID()); err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			c.log.Warn("Report for unknown job, removing external request",
				"job_id", job.ID(), "request_id", job.ExternalRequestID())
			c.RemoveExternalRequest(job.ExternalRequestID())
			c.releaseSlot(job.ID())
			return
		}
		c.log.Error("Repository lookup failed during report routing", "job_id", job.ID(), "error", err)
	}

	if report.Status != domain.ExternalCompleted {
		if next, ok := domain.Reclassify(report.Status, report.ResponseCode); ok {
			job.SetStatus(next)
		}
		return
	}

	// The slot is freed before anything else, so a terminal report always
	// immediately makes room for a queued job. Releasing doubles as the
	// duplicate guard: only the delivery that frees the slot classifies
	// the report, so a replayed terminal report can neither release a
	// second slot nor run the completion hook again.
	if !c.releaseSlot(job.ID()) {
		return
	}

	next := domain.ClassifyTerminal(report.ResponseCode, report.Err)
	job.SetStatus(next)

	if next == domain.StatusCompleted {
		c.dispatchCompletion(job)
	}
}

// releaseSlot frees the slot held by jobID and admits from the queue. It is
// idempotent per job: the id is removed from the admitted set under the
// scheduler lock and only that removal decrements the counter.
func (c *Coordinator) releaseSlot(jobID string) bool {
	c.mu.Lock()
	if _, ok := c.admittedIDs[jobID]; !ok {
		c.mu.Unlock()
		return false
	}
	delete(c.admittedIDs, jobID)
	if c.active > 0 {
		c.active--
	}
	admitted := c.admitQueuedLocked()
	c.mu.Unlock()
	c.replayMissed(admitted)
	return true
}

// dispatchCompletion hands the job to the completion worker. The hook runs
// off the admission path; if the channel is saturated a goroutine carries
// the send so scheduling never blocks on it.
func (c *Coordinator) dispatchCompletion(job contract.Transferable) {
	if c.completions == nil {
		return
	}
	select {
	case c.completions <- job:
	default:
		go func() { c.completions <- job }()
	}
}

// Cancel resolves a job according to where it currently lives. A queued job
// is removed locally; an externally tracked one gets a removal request and
// resolves to Canceled when the cancel report comes back. Terminal and
// never-enqueued jobs are left alone.
func (c *Coordinator) Cancel(job contract.Transferable) {
	status := job.Status()
	if status.Terminal() || status == domain.StatusNone {
		return
	}

	if status == domain.StatusQueued {
		if c.removeFromQueue(job.ID()) {
			job.SetStatus(domain.StatusCanceled)
			return
		}
		// Queued but no longer in the queue: admission won the race. Fall
		// through to external removal if it got a request id.
	}

	extID := job.ExternalRequestID()
	if extID == "" {
		return
	}
	handle, ok := c.findHandle(extID)
	if !ok {
		return
	}
	if err := c.gateway.Remove(handle); err != nil && !stderrors.Is(err, errors.ErrAlreadyCancelled) {
		c.log.Error("External removal failed", "job_id", job.ID(), "request_id", extID, "error", err)
	}
}

// CancelAll cancels every queued job, then every job the gateway still
// tracks, resolved through the repository by correlation tag.
func (c *Coordinator) CancelAll() {
	c.mu.Lock()
	queued := c.queue
	c.queue = nil
	c.mu.Unlock()

	for _, job := range queued {
		if job.Status() == domain.StatusQueued {
			job.SetStatus(domain.StatusCanceled)
		}
	}

	for _, h := range c.gateway.ListActive() {
		job, err := c.repo.FindByCorrelationTag(h.CorrelationID())
		if err != nil {
			c.log.Warn("Active request has no matching job", "request_id", h.RequestID())
			continue
		}
		c.Cancel(job)
	}
}

// RemoveExternalRequest drops a dangling external request by its id. The
// caller settles the slot; a request that is already gone counts as
// resolved.
func (c *Coordinator) RemoveExternalRequest(externalID string) {
	if externalID == "" {
		return
	}
	handle, ok := c.findHandle(externalID)
	if !ok {
		return
	}
	if err := c.gateway.Remove(handle); err != nil && !stderrors.Is(err, errors.ErrAlreadyCancelled) {
		c.log.Error("Failed to remove external request", "request_id", externalID, "error", err)
	}
}

func (c *Coordinator) findHandle(requestID string) (contract.Handle, bool) {
	for _, h := range c.gateway.ListActive() {
		if h.RequestID() == requestID {
			return h, true
		}
	}
	return nil, false
}

func (c *Coordinator) removeFromQueue(jobID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, queued := range c.queue {
		if queued.ID() == jobID {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return true
		}
	}
	return false
}

// attach wires the job's status notifications into the event stream, once.
func (c *Coordinator) attach(job contract.Transferable) {
	c.mu.Lock()
	if _, ok := c.attached[job.ID()]; ok {
		c.mu.Unlock()
		return
	}
	c.attached[job.ID()] = struct{}{}
	c.mu.Unlock()

	job.Subscribe(func(previous, next domain.Status, j *domain.TransferJob) {
		c.publish(event.StatusChanged{Job: j, Previous: previous, New: next, At: time.Now().UTC()})
	})
}

func (c *Coordinator) publish(e event.DomainEvent) {
	if c.events == nil {
		return
	}
	select {
	case c.events <- e:
	default:
		c.log.Debug("Event channel full, dropping event", "job_id", e.JobID())
	}
}

// Knows reports whether the coordinator already tracks this job id, either
// queued or admitted, in this process.
func (c *Coordinator) Knows(jobID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.attached[jobID]
	return ok
}

// ActiveCount is the number of admitted, externally tracked jobs.
func (c *Coordinator) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// QueueLength is the number of jobs waiting for admission.
func (c *Coordinator) QueueLength() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}
