package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewDownload_Normalizes_Local_Path(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "/shared/transfers", "/shared/transfers"},
		{"missing leading slash", "shared/transfers", "/shared/transfers"},
		{"trailing slash", "/shared/transfers/", "/shared/transfers"},
		{"both sides", "shared/transfers/", "/shared/transfers"},
		{"inner dot segments", "/shared/./transfers/../transfers", "/shared/transfers"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			job, err := NewDownload("https://example.com/file.bin", tc.input, "file.bin")
			req.NoError(err)
			req.Equal(tc.want, job.LocalPath())
		})
	}
}

func Test_NewDownload_Rejects_Root_Paths(t *testing.T) {
	req := require.New(t)

	for _, input := range []string{"", "/", "//", ".", "..", "/.."} {
		_, err := NewDownload("https://example.com/file.bin", input, "file.bin")
		req.Error(err, "input %q should be rejected", input)
	}
}

func Test_NewDownload_Rejects_Relative_Remote(t *testing.T) {
	req := require.New(t)

	_, err := NewDownload("example.com/file.bin", "/shared", "file.bin")
	req.Error(err)

	_, err = NewDownload("/just/a/path", "/shared", "file.bin")
	req.Error(err)

	_, err = NewDownload("https://example.com/file.bin", "/shared", "")
	req.Error(err)
}

func Test_Direction_Follows_Method(t *testing.T) {
	req := require.New(t)

	down, err := NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)
	req.Equal(DirectionDownload, down.Direction())
	req.Equal("GET", down.Method())

	up, err := NewUpload("https://example.com/upload", "/shared", "file.bin")
	req.NoError(err)
	req.Equal(DirectionUpload, up.Direction())
	req.Equal("POST", up.Method())
}

func Test_FullLocalPath_And_URI(t *testing.T) {
	req := require.New(t)

	job, err := NewDownload("https://example.com/file.bin", "shared/transfers/", "file.bin")
	req.NoError(err)
	req.Equal("/shared/transfers/file.bin", job.FullLocalPath())
	req.Equal("file:///shared/transfers/file.bin", job.LocalURI().String())
}

func Test_Progress_Indeterminate_By_Default(t *testing.T) {
	req := require.New(t)

	job, err := NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)
	req.True(job.IsIndeterminate())
	req.Zero(job.ProgressFraction())

	job.UpdateProgress(512, 1024)
	req.False(job.IsIndeterminate())
	req.InDelta(0.5, job.ProgressFraction(), 0.001)

	// A server that stops reporting a length flips the job back.
	job.UpdateProgress(600, -1)
	req.True(job.IsIndeterminate())
	req.Equal(int64(600), job.TransferredBytes())
}

func Test_Progress_Fraction_Is_Capped(t *testing.T) {
	req := require.New(t)

	job, err := NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)

	job.UpdateProgress(2048, 1024)
	req.Equal(1.0, job.ProgressFraction())
}

func Test_SetStatus_Notifies_Subscribers(t *testing.T) {
	req := require.New(t)

	job, err := NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)

	var gotPrevious, gotNext Status
	calls := 0
	job.Subscribe(func(previous, next Status, j *TransferJob) {
		gotPrevious, gotNext = previous, next
		calls++
	})

	job.SetStatus(StatusQueued)
	req.Equal(1, calls)
	req.Equal(StatusNone, gotPrevious)
	req.Equal(StatusQueued, gotNext)

	job.SetStatus(StatusTransferring)
	req.Equal(2, calls)
	req.Equal(StatusQueued, gotPrevious)
	req.Equal(StatusTransferring, gotNext)
}

func Test_Cancel_Resets_Progress(t *testing.T) {
	req := require.New(t)

	job, err := NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)
	job.UpdateProgress(512, 1024)

	job.SetStatus(StatusCanceled)
	req.Zero(job.TransferredBytes())
	req.True(job.IsIndeterminate())

	// No other transition touches the progress fields.
	job2, err := NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)
	job2.UpdateProgress(512, 1024)
	job2.SetStatus(StatusFailed)
	req.Equal(int64(512), job2.TransferredBytes())
}

func Test_Restore_Does_Not_Notify(t *testing.T) {
	req := require.New(t)

	source, err := NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)

	restored, err := Restore(source.ID(), source.Method(), source.RemoteURL().String(),
		source.LocalPath(), source.Filename(), "ext-42",
		StatusTransferring, 100, 200, source.CreatedAt())
	req.NoError(err)
	req.Equal(source.ID(), restored.ID())
	req.Equal("ext-42", restored.ExternalRequestID())
	req.Equal(StatusTransferring, restored.Status())
	req.Equal(int64(100), restored.TransferredBytes())
	req.Equal(int64(200), restored.TotalBytes())
}

func Test_Hooks_Are_Optional(t *testing.T) {
	req := require.New(t)

	job, err := NewDownload("https://example.com/file.bin", "/shared", "file.bin")
	req.NoError(err)
	req.NoError(job.OnBeforeAdmit())
	req.NoError(job.OnComplete())

	admitted, completed := 0, 0
	job.WithHooks(
		func(j *TransferJob) error { admitted++; return nil },
		func(j *TransferJob) error { completed++; return nil },
	)
	req.NoError(job.OnBeforeAdmit())
	req.NoError(job.OnComplete())
	req.Equal(1, admitted)
	req.Equal(1, completed)
}
