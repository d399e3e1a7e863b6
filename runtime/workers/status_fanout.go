package workers

import (
	"context"
	"log/slog"

	"transfer-lab/contract"
	"transfer-lab/domain/event"
)

// StatusFanout broadcasts scheduler events to in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. It is intended for persistence sinks,
// view-layer bucketing and logging, not for scheduling decisions.
type StatusFanout struct {
	Log    *slog.Logger
	Events chan event.DomainEvent
	sinks  []contract.EventSink
}

func NewStatusFanout(log *slog.Logger, events chan event.DomainEvent) *StatusFanout {
	return &StatusFanout{Log: log, Events: events}
}

func (w *StatusFanout) Add(sinks ...contract.EventSink) *StatusFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *StatusFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.Events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.Log.Debug("Context done, stopping fanout")
			return nil
		}
	}
}

// Fanout delivers one event to every sink. A failing sink is logged and
// skipped; it cannot veto delivery to the others.
func (w *StatusFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.Log.Error("Sink rejected event", "job_id", evt.JobID(), "error", err)
		}
	}
}
