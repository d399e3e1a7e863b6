package event

import (
	"time"

	"transfer-lab/domain"
)

type DomainEvent interface {
	JobID() string
}

// StatusChanged is emitted once per status mutation. Consumers use it to
// re-bucket jobs by status; the scheduler itself never consumes it.
type StatusChanged struct {
	Job      *domain.TransferJob
	Previous domain.Status
	New      domain.Status
	At       time.Time
}

func (e StatusChanged) JobID() string {
	return e.Job.ID()
}

// ProgressUpdated mirrors one gateway progress callback.
type ProgressUpdated struct {
	ID          string
	Transferred int64
	Total       int64
	At          time.Time
}

func (e ProgressUpdated) JobID() string {
	return e.ID
}
