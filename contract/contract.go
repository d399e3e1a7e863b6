//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"net/url"
	"reflect"

	"transfer-lab/domain"
	"transfer-lab/domain/event"
)

// Transferable is the capability set every schedulable job must satisfy.
type Transferable interface {
	ID() string
	Method() string
	Direction() domain.Direction
	RemoteURL() *url.URL
	FullLocalPath() string
	LocalURI() *url.URL
	ExternalRequestID() string
	SetExternalRequestID(id string)
	Status() domain.Status
	SetStatus(next domain.Status)
	Subscribe(notify domain.StatusNotifier)
	OnBeforeAdmit() error
	OnComplete() error
	UpdateProgress(transferred, total int64)
	ResetProgress()
}

// Submission is the gateway-facing description of one transfer request.
// LocalPath is relative to the transfer root owned by the gateway.
type Submission struct {
	CorrelationID string
	Method        string
	RemoteURL     *url.URL
	LocalPath     string
	Direction     domain.Direction
}

// Handle is one request the gateway currently tracks. Callbacks fire on
// gateway-owned goroutines, concurrently with caller-driven operations.
type Handle interface {
	RequestID() string
	CorrelationID() string
	// Current returns the last report the gateway produced for this
	// request. Used to catch up on terminal reports that arrived while no
	// status callback was registered.
	Current() domain.StatusReport
	OnProgress(fn func(transferred, total int64))
	OnStatus(fn func(report domain.StatusReport))
}

// Gateway is the external transfer subsystem. Submit and Remove are quick
// registration calls; the actual transfer work happens outside the caller's
// control and is reported back through the handle callbacks.
type Gateway interface {
	Submit(sub Submission) (Handle, error)
	ListActive() []Handle
	FindByCorrelationID(id string) (Handle, bool)
	Remove(h Handle) error
}

// Repository stages job mutations and flushes them on Commit.
type Repository interface {
	// ListPending returns jobs in a non-terminal, not-yet-admitted state,
	// oldest first.
	ListPending() ([]*domain.TransferJob, error)
	FindByCorrelationTag(tag string) (*domain.TransferJob, error)
	FindByID(id string) (*domain.TransferJob, error)
	Insert(job *domain.TransferJob)
	Delete(job *domain.TransferJob)
	Commit() error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself; the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
