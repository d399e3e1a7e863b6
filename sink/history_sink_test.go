package sink

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"transfer-lab/domain"
	"transfer-lab/domain/event"
	"transfer-lab/infrastructure/storage"
	"transfer-lab/mocks"
)

func Test_HistorySink_Indexes_Terminal_Transitions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job, err := domain.NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)
	job.SetStatus(domain.StatusCompleted)
	at := time.Now().UTC()

	index := mocks.NewMockIHistoryIndex(ctrl)
	index.EXPECT().Index(storage.EntryFor(job, at)).Return(nil)

	sink := NewHistorySink(index, slog.Default())
	evt := event.StatusChanged{Job: job, Previous: domain.StatusTransferring, New: domain.StatusCompleted, At: at}
	req.NoError(sink.Consume(context.Background(), evt))
}

func Test_HistorySink_Skips_Transient_Transitions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job, err := domain.NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)

	// No index expectations: only terminal states enter the history.
	index := mocks.NewMockIHistoryIndex(ctrl)
	sink := NewHistorySink(index, slog.Default())

	evt := event.StatusChanged{Job: job, Previous: domain.StatusQueued, New: domain.StatusTransferring, At: time.Now().UTC()}
	req.NoError(sink.Consume(context.Background(), evt))

	progress := event.ProgressUpdated{ID: job.ID(), Transferred: 1, Total: 2, At: time.Now().UTC()}
	req.NoError(sink.Consume(context.Background(), progress))
}
