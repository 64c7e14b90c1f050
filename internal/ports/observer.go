package ports

import (
	"time"

	"github.com/devbush/aai-transcribe/internal/domain"
)

// FileOutcome describes how processing a single file ended
type FileOutcome struct {
	File       domain.MediaFile
	OutputPath string // empty when the file failed
	Success    bool
	Error      string
	Duration   time.Duration
}

// BatchObserver receives progress notifications from a batch run
type BatchObserver interface {
	// FileStarted is called before a file is submitted. index is zero-based.
	FileStarted(index, total int, file domain.MediaFile)

	// FileFinished is called once per file, after success or failure.
	FileFinished(outcome FileOutcome)
}
