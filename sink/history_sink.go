package sink

import (
	"context"
	"log/slog"

	"transfer-lab/contract"
	"transfer-lab/domain/event"
	"transfer-lab/infrastructure/storage"
)

var _ contract.EventSink = (*HistorySink)(nil)

// HistorySink records jobs reaching a terminal state in the search index.
type HistorySink struct {
	index storage.IHistoryIndex
	log   *slog.Logger
}

func NewHistorySink(index storage.IHistoryIndex, log *slog.Logger) HistorySink {
	return HistorySink{index: index, log: log}
}

func (h HistorySink) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.StatusChanged)
	if !ok || !evt.New.Terminal() {
		return nil
	}
	return h.index.Index(storage.EntryFor(evt.Job, evt.At))
}
