package gateway

import (
	"context"
	"sync"

	"transfer-lab/contract"
	"transfer-lab/domain"
)

var _ contract.Handle = (*requestHandle)(nil)

// requestHandle is one tracked request. Callback registration races with
// the transfer goroutine's reports, so both sides go through the mutex; the
// callbacks themselves run outside it.
type requestHandle struct {
	mu            sync.Mutex
	requestID     string
	correlationID string
	current       domain.StatusReport
	onProgress    func(transferred, total int64)
	onStatus      func(report domain.StatusReport)
	cancel        context.CancelFunc
	removed       bool
}

func (h *requestHandle) RequestID() string { return h.requestID }

func (h *requestHandle) CorrelationID() string { return h.correlationID }

func (h *requestHandle) Current() domain.StatusReport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

func (h *requestHandle) OnProgress(fn func(transferred, total int64)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onProgress = fn
}

func (h *requestHandle) OnStatus(fn func(report domain.StatusReport)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onStatus = fn
}

func (h *requestHandle) progress(transferred, total int64) {
	h.mu.Lock()
	fn := h.onProgress
	h.mu.Unlock()
	if fn != nil {
		fn(transferred, total)
	}
}

func (h *requestHandle) report(r domain.StatusReport) {
	h.mu.Lock()
	h.current = r
	fn := h.onStatus
	h.mu.Unlock()
	if fn != nil {
		fn(r)
	}
}

func (h *requestHandle) markRemoved() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removed = true
}

func (h *requestHandle) wasRemoved() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.removed
}
