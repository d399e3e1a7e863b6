package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Direction is the transfer direction, derived from the HTTP method: a GET
// downloads into the local path, anything else uploads from it.
type Direction int

const (
	DirectionDownload Direction = iota
	DirectionUpload
)

func (d Direction) String() string {
	if d == DirectionUpload {
		return "upload"
	}
	return "download"
}

// StatusNotifier receives one change record per status mutation.
type StatusNotifier func(previous, next Status, job *TransferJob)

// Hook is a direction-specific behavior attached to a job, e.g. the
// move-into-place step after a completed download.
type Hook func(job *TransferJob) error

// TransferJob is one logical unit of transfer work. Fields are mutated
// exclusively through the setter APIs, which validate input and emit one
// change record per status mutation. A job is safe for concurrent use:
// gateway callbacks and coordinator calls may race on it.
type TransferJob struct {
	mu sync.Mutex

	id                string
	method            string
	remoteURL         *url.URL
	localPath         string
	filename          string
	externalRequestID string
	status            Status
	transferredBytes  int64
	totalBytes        int64
	createdAt         time.Time

	beforeAdmit Hook
	complete    Hook
	subscribers []StatusNotifier
}

// NewDownload creates a GET job fetching remote into localPath/filename.
func NewDownload(rawRemote, localPath, filename string) (*TransferJob, error) {
	return newJob("GET", rawRemote, localPath, filename)
}

// NewUpload creates a POST job sending localPath/filename to remote.
func NewUpload(rawRemote, localPath, filename string) (*TransferJob, error) {
	return newJob("POST", rawRemote, localPath, filename)
}

func newJob(method, rawRemote, localPath, filename string) (*TransferJob, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	j := &TransferJob{
		id:         uuid.New().String(),
		method:     method,
		filename:   filename,
		totalBytes: -1,
		createdAt:  time.Now().UTC(),
	}
	if err := j.SetRemoteURL(rawRemote); err != nil {
		return nil, err
	}
	if err := j.SetLocalPath(localPath); err != nil {
		return nil, err
	}
	return j, nil
}

// Restore rebuilds a job from persisted fields. It bypasses the status
// notification machinery: restoring is not a mutation.
func Restore(id, method, rawRemote, localPath, filename, externalRequestID string,
	status Status, transferred, total int64, createdAt time.Time) (*TransferJob, error) {
	j, err := newJob(method, rawRemote, localPath, filename)
	if err != nil {
		return nil, err
	}
	j.id = id
	j.externalRequestID = externalRequestID
	j.status = status
	j.transferredBytes = transferred
	j.totalBytes = total
	j.createdAt = createdAt
	return j, nil
}

func (j *TransferJob) ID() string { return j.id }

func (j *TransferJob) Method() string { return j.method }

func (j *TransferJob) Direction() Direction {
	if j.method == "GET" {
		return DirectionDownload
	}
	return DirectionUpload
}

func (j *TransferJob) CreatedAt() time.Time { return j.createdAt }

func (j *TransferJob) RemoteURL() *url.URL {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.remoteURL
}

// SetRemoteURL rejects anything that is not a well-formed absolute URI.
func (j *TransferJob) SetRemoteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid remote URL %q: %w", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("remote URL %q is not absolute", raw)
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.remoteURL = u
	return nil
}

func (j *TransferJob) LocalPath() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.localPath
}

// SetLocalPath normalizes p so the stored path always starts with "/" and
// never ends with "/". Inputs that normalize to the bare root are rejected.
func (j *TransferJob) SetLocalPath(p string) error {
	cleaned := path.Clean("/" + strings.Trim(p, "/"))
	if cleaned == "/" || cleaned == "/." || cleaned == "/.." {
		return fmt.Errorf("invalid local path %q", p)
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.localPath = cleaned
	return nil
}

func (j *TransferJob) Filename() string { return j.filename }

// FullLocalPath is the destination path of the transferred file, relative
// to the transfer root.
func (j *TransferJob) FullLocalPath() string {
	return j.LocalPath() + "/" + j.filename
}

// LocalURI is the gateway-facing form of the destination.
func (j *TransferJob) LocalURI() *url.URL {
	return &url.URL{Scheme: "file", Path: j.FullLocalPath()}
}

func (j *TransferJob) ExternalRequestID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.externalRequestID
}

func (j *TransferJob) SetExternalRequestID(id string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.externalRequestID = id
}

func (j *TransferJob) Status() Status {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// SetStatus records the new status and emits one change record to every
// subscriber. Entering Canceled resets the progress fields; no other
// transition touches them.
func (j *TransferJob) SetStatus(next Status) {
	j.mu.Lock()
	previous := j.status
	j.status = next
	if next == StatusCanceled {
		j.resetProgressLocked()
	}
	subscribers := make([]StatusNotifier, len(j.subscribers))
	copy(subscribers, j.subscribers)
	j.mu.Unlock()

	// Subscribers run outside the job lock so they may read the job freely.
	for _, notify := range subscribers {
		notify(previous, next, j)
	}
}

// Subscribe registers a notifier for every subsequent status mutation.
func (j *TransferJob) Subscribe(notify StatusNotifier) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.subscribers = append(j.subscribers, notify)
}

// UpdateProgress is invoked on every gateway progress callback. A negative
// total marks the job indeterminate.
func (j *TransferJob) UpdateProgress(transferred, total int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.transferredBytes = transferred
	if total < 0 {
		j.totalBytes = -1
	} else {
		j.totalBytes = total
	}
}

func (j *TransferJob) TransferredBytes() int64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.transferredBytes
}

func (j *TransferJob) TotalBytes() int64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.totalBytes
}

// IsIndeterminate reports whether the total size is unknown.
func (j *TransferJob) IsIndeterminate() bool {
	return j.TotalBytes() < 0
}

// ProgressFraction is only meaningful when the job is determinate.
func (j *TransferJob) ProgressFraction() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.totalBytes <= 0 {
		return 0
	}
	fraction := float64(j.transferredBytes) / float64(j.totalBytes)
	if fraction > 1 {
		return 1
	}
	return fraction
}

func (j *TransferJob) ResetProgress() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.resetProgressLocked()
}

func (j *TransferJob) resetProgressLocked() {
	j.transferredBytes = 0
	j.totalBytes = -1
}

// WithHooks attaches the admission and completion behaviors. The completion
// hook runs off the admission path, once, when the gateway reports success.
func (j *TransferJob) WithHooks(beforeAdmit, complete Hook) *TransferJob {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.beforeAdmit = beforeAdmit
	j.complete = complete
	return j
}

// OnBeforeAdmit runs synchronously just before submission. A failure aborts
// the admission.
func (j *TransferJob) OnBeforeAdmit() error {
	j.mu.Lock()
	hook := j.beforeAdmit
	j.mu.Unlock()
	if hook == nil {
		return nil
	}
	return hook(j)
}

// OnComplete runs the direction-specific completion behavior, e.g. moving a
// finished download into place.
func (j *TransferJob) OnComplete() error {
	j.mu.Lock()
	hook := j.complete
	j.mu.Unlock()
	if hook == nil {
		return nil
	}
	return hook(j)
}
