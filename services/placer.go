// Package services holds the file-placement step that runs after a
// download completes, outside the scheduling core.
package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"transfer-lab/domain"
)

// FilePlacer owns the on-disk side of a job's lifecycle: preparing the
// destination before admission and moving a finished download into place.
type FilePlacer struct {
	root string
	log  *slog.Logger
}

func NewFilePlacer(root string, log *slog.Logger) *FilePlacer {
	return &FilePlacer{root: root, log: log}
}

// Decorate attaches the placer's hooks to a job. Uploads read an existing
// file, so only downloads get a completion step.
func (p *FilePlacer) Decorate(job *domain.TransferJob) {
	if job.Direction() == domain.DirectionDownload {
		job.WithHooks(p.EnsureDestination, p.Place)
		return
	}
	job.WithHooks(p.EnsureSource, nil)
}

// EnsureDestination creates the destination directory. Runs synchronously
// just before submission; a failure here aborts the admission.
func (p *FilePlacer) EnsureDestination(job *domain.TransferJob) error {
	dir := filepath.Join(p.root, filepath.FromSlash(job.LocalPath()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot prepare destination %s: %w", dir, err)
	}
	return nil
}

// EnsureSource verifies the upload's source file exists before admission.
func (p *FilePlacer) EnsureSource(job *domain.TransferJob) error {
	src := filepath.Join(p.root, filepath.FromSlash(job.FullLocalPath()))
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("upload source missing: %w", err)
	}
	return nil
}

// Place moves the staging file onto the final path and logs the sniffed
// MIME type. Rename is atomic on the same volume, so readers never observe
// a half-written destination.
func (p *FilePlacer) Place(job *domain.TransferJob) error {
	final := filepath.Join(p.root, filepath.FromSlash(job.FullLocalPath()))
	staging := domain.StagingPath(final)

	if mt, err := mimetype.DetectFile(staging); err == nil {
		p.log.Debug("Detected content type", "job_id", job.ID(), "mime", mt.String())
	}

	if err := os.Rename(staging, final); err != nil {
		return fmt.Errorf("cannot move %s into place: %w", staging, err)
	}
	return nil
}
