//go:generate go run go.uber.org/mock/mockgen -source=history_index.go -destination=../../mocks/mock_history_index.go -package=mocks
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"

	"transfer-lab/domain"
)

// HistoryEntry is one finished transfer as recorded in the search index.
type HistoryEntry struct {
	JobID      string
	Filename   string
	RemoteURL  string
	Direction  string
	Status     string
	FinishedAt time.Time
}

type IHistoryIndex interface {
	Index(entry HistoryEntry) error
	Search(ctx context.Context, terms string, limit int) ([]HistoryEntry, error)
}

// HistoryIndex keeps a full-text index of terminal transfers so operators
// can find past downloads by filename or remote URL.
type HistoryIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewHistoryIndex(writer *bluge.Writer, log *slog.Logger) *HistoryIndex {
	return &HistoryIndex{writer: writer, log: log}
}

// Index upserts one entry keyed by job id, so a re-enqueued job keeps a
// single history record reflecting its latest outcome.
func (h *HistoryIndex) Index(entry HistoryEntry) error {
	doc := bluge.NewDocument(entry.JobID).
		AddField(bluge.NewTextField("filename", entry.Filename).StoreValue()).
		AddField(bluge.NewTextField("remote_url", entry.RemoteURL).StoreValue()).
		AddField(bluge.NewKeywordField("direction", entry.Direction).StoreValue()).
		AddField(bluge.NewKeywordField("status", entry.Status).StoreValue()).
		AddField(bluge.NewDateTimeField("finished_at", entry.FinishedAt).StoreValue())

	if err := h.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("failed to index transfer %s: %w", entry.JobID, err)
	}
	return nil
}

// Search matches terms against filename and remote URL.
func (h *HistoryIndex) Search(ctx context.Context, terms string, limit int) ([]HistoryEntry, error) {
	reader, err := h.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open index reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	return SearchReader(ctx, reader, terms, limit)
}

// SearchReader runs the history query against an already-open reader. The
// viewer uses it directly so it can read the index without taking the
// writer lock.
func SearchReader(ctx context.Context, reader *bluge.Reader, terms string, limit int) ([]HistoryEntry, error) {
	query := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(terms).SetField("filename")).
		AddShould(bluge.NewMatchQuery(terms).SetField("remote_url"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var entries []HistoryEntry
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate matches: %w", err)
		}
		if match == nil {
			break
		}

		var entry HistoryEntry
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				entry.JobID = string(value)
			case "filename":
				entry.Filename = string(value)
			case "remote_url":
				entry.RemoteURL = string(value)
			case "direction":
				entry.Direction = string(value)
			case "status":
				entry.Status = string(value)
			case "finished_at":
				if t, err := bluge.DecodeDateTime(value); err == nil {
					entry.FinishedAt = t
				}
			}
			return true
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read stored fields: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// EntryFor builds the history record of a terminal job.
func EntryFor(job *domain.TransferJob, at time.Time) HistoryEntry {
	remote := ""
	if u := job.RemoteURL(); u != nil {
		remote = u.String()
	}
	return HistoryEntry{
		JobID:      job.ID(),
		Filename:   job.Filename(),
		RemoteURL:  remote,
		Direction:  job.Direction().String(),
		Status:     job.Status().String(),
		FinishedAt: at,
	}
}
