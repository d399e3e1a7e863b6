package storage

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"transfer-lab/contract"
	"transfer-lab/domain"
	"transfer-lab/errors"
)

var _ contract.Repository = (*JobRepository)(nil)

// diskJob is the persisted shape of a transfer job.
type diskJob struct {
	ID                string        `json:"id"`
	Method            string        `json:"method"`
	RemoteURL         string        `json:"remote_url"`
	LocalPath         string        `json:"local_path"`
	Filename          string        `json:"filename"`
	ExternalRequestID string        `json:"external_request_id"`
	Status            domain.Status `json:"status"`
	TransferredBytes  int64         `json:"transferred_bytes"`
	TotalBytes        int64         `json:"total_bytes"`
	CreatedAt         time.Time     `json:"created_at"`
}

type stagedOp struct {
	key    []byte
	idxKey []byte
	value  []byte // nil means delete
}

// JobRepository persists transfer jobs in BadgerDB. Mutations are staged in
// memory and flushed atomically by Commit, so a batch of inserts and deletes
// lands in one transaction.
//
// The primary key is "transfer:job:{timestamp_padded}:{id}": 19-digit zero
// padding keeps lexicographical order chronological, so a prefix scan yields
// jobs oldest first. A secondary "transfer:idx:{id}" key resolves id lookups
// without scanning.
type JobRepository struct {
	db  *badger.DB
	log *slog.Logger

	mu     sync.Mutex
	staged []stagedOp

	// decorate re-attaches non-persistable behavior (admission and
	// completion hooks) to jobs loaded from disk.
	decorate func(job *domain.TransferJob)
}

func NewJobRepository(db *badger.DB, log *slog.Logger, decorate func(job *domain.TransferJob)) *JobRepository {
	return &JobRepository{db: db, log: log, decorate: decorate}
}

func jobKey(createdAt time.Time, id string) []byte {
	return []byte(fmt.Sprintf("transfer:job:%019d:%s", createdAt.UnixNano(), id))
}

func idxKey(id string) []byte {
	return []byte("transfer:idx:" + id)
}

// Insert stages an upsert of the job's current snapshot.
func (r *JobRepository) Insert(job *domain.TransferJob) {
	disk := fromJob(job)
	value, err := json.Marshal(disk)
	if err != nil {
		r.log.Error("Failed to marshal job", "job_id", job.ID(), "error", err)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, stagedOp{
		key:    jobKey(disk.CreatedAt, disk.ID),
		idxKey: idxKey(disk.ID),
		value:  value,
	})
}

// Delete stages removal of the job and its index entry.
func (r *JobRepository) Delete(job *domain.TransferJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staged = append(r.staged, stagedOp{
		key:    jobKey(job.CreatedAt(), job.ID()),
		idxKey: idxKey(job.ID()),
	})
}

// Commit flushes every staged mutation in a single transaction. The staging
// buffer is cleared only on success, so a failed commit can be retried.
func (r *JobRepository) Commit() error {
	r.mu.Lock()
	staged := r.staged
	r.mu.Unlock()

	if len(staged) == 0 {
		return nil
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		for _, op := range staged {
			if op.value == nil {
				if err := txn.Delete(op.key); err != nil {
					return err
				}
				if err := txn.Delete(op.idxKey); err != nil {
					return err
				}
				continue
			}
			if err := txn.Set(op.key, op.value); err != nil {
				return err
			}
			if err := txn.Set(op.idxKey, op.key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	r.mu.Lock()
	r.staged = r.staged[len(staged):]
	r.mu.Unlock()
	return nil
}

// FindByID resolves a job through its index entry.
func (r *JobRepository) FindByID(id string) (*domain.TransferJob, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(idxKey(id))
		if err != nil {
			return err
		}
		mainKey, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		main, err := txn.Get(mainKey)
		if err != nil {
			return err
		}
		raw, err = main.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup of job %s failed: %w", id, err)
	}
	return r.toJob(raw)
}

// FindByCorrelationTag resolves the gateway correlation tag to a job. The
// tag is the job id, stamped onto the submission at admission time.
func (r *JobRepository) FindByCorrelationTag(tag string) (*domain.TransferJob, error) {
	return r.FindByID(tag)
}

// ListPending returns jobs that are non-terminal and were never admitted,
// oldest first. Key layout keeps the scan chronological.
func (r *JobRepository) ListPending() ([]*domain.TransferJob, error) {
	var pending []*domain.TransferJob
	prefix := []byte("transfer:job:")

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var disk diskJob
				if err := json.Unmarshal(v, &disk); err != nil {
					return fmt.Errorf("failed to unmarshal job: %w", err)
				}
				if disk.Status.Terminal() || disk.ExternalRequestID != "" {
					return nil
				}
				job, err := r.toJob(v)
				if err != nil {
					return err
				}
				pending = append(pending, job)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during pending scan: %w", err)
	}
	return pending, nil
}

// ListAll returns every persisted job, oldest first. Used by the viewer.
func (r *JobRepository) ListAll() ([]*domain.TransferJob, error) {
	var raws [][]byte
	prefix := []byte("transfer:job:")

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			raw, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			raws = append(raws, raw)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during full scan: %w", err)
	}

	jobs := lo.FilterMap(raws, func(raw []byte, _ int) (*domain.TransferJob, bool) {
		job, err := r.toJob(raw)
		if err != nil {
			r.log.Error("Skipping unreadable job record", "error", err)
			return nil, false
		}
		return job, true
	})
	return jobs, nil
}

func fromJob(job *domain.TransferJob) diskJob {
	remote := ""
	if u := job.RemoteURL(); u != nil {
		remote = u.String()
	}
	return diskJob{
		ID:                job.ID(),
		Method:            job.Method(),
		RemoteURL:         remote,
		LocalPath:         job.LocalPath(),
		Filename:          job.Filename(),
		ExternalRequestID: job.ExternalRequestID(),
		Status:            job.Status(),
		TransferredBytes:  job.TransferredBytes(),
		TotalBytes:        job.TotalBytes(),
		CreatedAt:         job.CreatedAt(),
	}
}

func (r *JobRepository) toJob(raw []byte) (*domain.TransferJob, error) {
	var disk diskJob
	if err := json.Unmarshal(raw, &disk); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	job, err := domain.Restore(disk.ID, disk.Method, disk.RemoteURL, disk.LocalPath, disk.Filename,
		disk.ExternalRequestID, disk.Status, disk.TransferredBytes, disk.TotalBytes, disk.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to restore job %s: %w", disk.ID, err)
	}
	if r.decorate != nil {
		r.decorate(job)
	}
	return job, nil
}
