package sink

import (
	"context"
	"fmt"
	"log/slog"

	"transfer-lab/contract"
	"transfer-lab/domain/event"
)

var _ contract.EventSink = (*DiskSink)(nil)

// DiskSink persists every status mutation so that a restarted process can
// reconcile its records against whatever the gateway still tracks.
type DiskSink struct {
	repository contract.Repository
	log        *slog.Logger
}

func NewDiskSink(repository contract.Repository, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, log: log}
}

func (d DiskSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.StatusChanged:
		d.repository.Insert(evt.Job)
		return d.repository.Commit()
	default:
		d.log.Debug(fmt.Sprintf("Ignoring event type : %T", evt))
		return nil
	}
}
