package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	"transfer-lab/domain"
	"transfer-lab/infrastructure/storage"
	"transfer-lab/internal"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Viewer dumps the transfer records from a live (or stopped) daemon.
// With -search it queries the history index instead of the job store.
func main() {
	search := flag.String("search", "", "Full-text query against finished transfers")
	limit := flag.Int("limit", 20, "Maximum history entries to display")
	flag.Parse()

	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger := logs.GetLoggerFromString("WARN")

	if *search != "" {
		renderHistory(config, *search, *limit)
		return
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process (the daemon) holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := storage.NewJobRepository(db, logger, nil)
	jobs, err := repository.ListAll()
	if err != nil {
		log.Fatalf("Failed to list jobs: %v", err)
	}

	table := newTable()
	table.SetHeader([]string{"ID", "Direction", "Status", "Progress", "Remote", "Local"})
	for _, job := range jobs {
		table.Append([]string{
			shortID(job.ID()),
			job.Direction().String(),
			colorStatus(job.Status()),
			progressCell(job),
			job.RemoteURL().String(),
			job.FullLocalPath(),
		})
	}
	table.Render()
}

func renderHistory(config internal.Config, query string, limit int) {
	reader, err := bluge.OpenReader(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		log.Fatalf("Failed to open history index: %v", err)
	}
	defer reader.Close()

	entries, err := storage.SearchReader(context.Background(), reader, query, limit)
	if err != nil {
		log.Fatalf("History search failed: %v", err)
	}

	table := newTable()
	table.SetHeader([]string{"Finished", "Direction", "Status", "Filename", "Remote"})
	for _, entry := range entries {
		table.Append([]string{
			entry.FinishedAt.Format(time.RFC822),
			entry.Direction,
			entry.Status,
			entry.Filename,
			entry.RemoteURL,
		})
	}
	table.Render()
}

func newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func colorStatus(status domain.Status) string {
	switch status {
	case domain.StatusCompleted:
		return color.New(color.FgGreen).Render(status.String())
	case domain.StatusFailed, domain.StatusFailedServer:
		return color.New(color.FgRed).Render(status.String())
	case domain.StatusCanceled:
		return color.New(color.FgYellow).Render(status.String())
	case domain.StatusTransferring:
		return color.New(color.FgCyan).Render(status.String())
	default:
		return status.String()
	}
}

func progressCell(job *domain.TransferJob) string {
	if job.IsIndeterminate() {
		return fmt.Sprintf("%d B", job.TransferredBytes())
	}
	return fmt.Sprintf("%.0f%%", job.ProgressFraction()*100)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
