// Package gateway provides an in-process implementation of the transfer
// subsystem contract, backed by net/http. Submit and Remove are quick
// registration calls; the transfer itself runs on a gateway-owned goroutine
// and is reported back through the handle callbacks.
package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/disk"

	"transfer-lab/contract"
	"transfer-lab/domain"
	"transfer-lab/errors"
)

const progressChunk = 64 * 1024

var _ contract.Gateway = (*HTTPGateway)(nil)

type Config struct {
	// Root anchors the relative local paths of submissions on disk.
	Root string
	// Capacity is the gateway's own global limit of tracked requests,
	// independent of any caller-side ceiling.
	Capacity int
	// MinFreeBytes rejects submissions when the transfer root's volume has
	// less free space than this.
	MinFreeBytes uint64
	// Enabled gates all submissions; a disabled gateway rejects everything.
	Enabled bool
}

type HTTPGateway struct {
	mu      sync.Mutex
	log     *slog.Logger
	cfg     Config
	client  *http.Client
	handles map[string]*requestHandle // by request id
	byTag   map[string]*requestHandle // by correlation tag
}

func NewHTTPGateway(log *slog.Logger, client *http.Client, cfg Config) *HTTPGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGateway{
		log:     log,
		cfg:     cfg,
		client:  client,
		handles: make(map[string]*requestHandle),
		byTag:   make(map[string]*requestHandle),
	}
}

// Submit validates capacity and resources, registers a handle, and starts
// the transfer goroutine. It never blocks on network I/O.
func (g *HTTPGateway) Submit(sub contract.Submission) (contract.Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.cfg.Enabled {
		return nil, errors.ErrSystemDisabled
	}
	if _, ok := g.byTag[sub.CorrelationID]; ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrDuplicateRequest, sub.CorrelationID)
	}
	if len(g.handles) >= g.cfg.Capacity {
		return nil, errors.ErrCapacityExceeded
	}
	if g.cfg.MinFreeBytes > 0 {
		usage, err := disk.Usage(g.cfg.Root)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrTransport, err)
		}
		if usage.Free < g.cfg.MinFreeBytes {
			return nil, errors.ErrInsufficientStorage
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &requestHandle{
		requestID:     uuid.New().String(),
		correlationID: sub.CorrelationID,
		cancel:        cancel,
	}
	g.handles[h.requestID] = h
	g.byTag[h.correlationID] = h

	go g.run(ctx, h, sub)
	g.log.Debug("Request registered", "request_id", h.requestID, "tag", sub.CorrelationID)
	return h, nil
}

func (g *HTTPGateway) ListActive() []contract.Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	active := make([]contract.Handle, 0, len(g.handles))
	for _, h := range g.handles {
		active = append(active, h)
	}
	return active
}

func (g *HTTPGateway) FindByCorrelationID(id string) (contract.Handle, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	h, ok := g.byTag[id]
	return h, ok
}

// Remove cancels the request's transfer. The goroutine observes the
// cancellation and produces the final removed report; removal of a request
// that is no longer tracked returns ErrAlreadyCancelled.
func (g *HTTPGateway) Remove(h contract.Handle) error {
	g.mu.Lock()
	tracked, ok := g.handles[h.RequestID()]
	g.mu.Unlock()
	if !ok {
		return errors.ErrAlreadyCancelled
	}
	tracked.markRemoved()
	tracked.cancel()
	return nil
}

// run performs the transfer and emits the final report. The handle is
// unregistered before the terminal report fires, so a completed request
// never shows up in ListActive.
func (g *HTTPGateway) run(ctx context.Context, h *requestHandle, sub contract.Submission) {
	code, err := g.transfer(ctx, h, sub)

	if h.wasRemoved() || ctx.Err() != nil {
		code, err = 0, errors.ErrRequestRemoved
	}

	g.unregister(h)
	h.report(domain.StatusReport{Status: domain.ExternalCompleted, ResponseCode: code, Err: err})
}

func (g *HTTPGateway) transfer(ctx context.Context, h *requestHandle, sub contract.Submission) (int, error) {
	h.report(domain.StatusReport{Status: domain.ExternalTransferring})

	localAbs := filepath.Join(g.cfg.Root, filepath.FromSlash(sub.LocalPath))

	if sub.Direction == domain.DirectionDownload {
		return g.download(ctx, h, sub, localAbs)
	}
	return g.upload(ctx, h, sub, localAbs)
}

// download streams the response body into a .part staging file next to the
// final destination. Moving it into place is the caller's completion step.
func (g *HTTPGateway) download(ctx context.Context, h *requestHandle, sub contract.Submission, localAbs string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sub.RemoteURL.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 500 {
		// The remote is unhealthy; surface the backoff state before the
		// terminal report so observers see the retry-worthy condition.
		h.report(domain.StatusReport{Status: domain.ExternalWaiting, ResponseCode: resp.StatusCode})
		return resp.StatusCode, nil
	}
	if resp.StatusCode >= 400 {
		return resp.StatusCode, nil
	}

	if err := os.MkdirAll(filepath.Dir(localAbs), 0o755); err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	staging, err := os.Create(domain.StagingPath(localAbs))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	defer func() {
		_ = staging.Close()
	}()

	total := resp.ContentLength // -1 when the remote does not announce it
	var written int64
	buf := make([]byte, progressChunk)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := staging.Write(buf[:n]); writeErr != nil {
				return 0, fmt.Errorf("%w: %v", errors.ErrTransport, writeErr)
			}
			written += int64(n)
			h.progress(written, total)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, fmt.Errorf("%w: %v", errors.ErrTransport, readErr)
		}
	}
	return resp.StatusCode, nil
}

// upload streams the local file as the request body.
func (g *HTTPGateway) upload(ctx context.Context, h *requestHandle, sub contract.Submission, localAbs string) (int, error) {
	file, err := os.Open(localAbs)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}

	body := &progressReader{reader: file, total: info.Size(), handle: h}
	req, err := http.NewRequestWithContext(ctx, sub.Method, sub.RemoteURL.String(), body)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	req.ContentLength = info.Size()

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		h.report(domain.StatusReport{Status: domain.ExternalWaiting, ResponseCode: resp.StatusCode})
	}
	return resp.StatusCode, nil
}

func (g *HTTPGateway) unregister(h *requestHandle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.handles, h.requestID)
	delete(g.byTag, h.correlationID)
}

type progressReader struct {
	reader io.Reader
	total  int64
	read   int64
	handle *requestHandle
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.read += int64(n)
		r.handle.progress(r.read, r.total)
	}
	return n, err
}
