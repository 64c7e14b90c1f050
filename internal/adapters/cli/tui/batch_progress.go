package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/devbush/aai-transcribe/internal/domain"
	"github.com/devbush/aai-transcribe/internal/ports"
)

// renderProgressBar creates a text progress bar like [=====>    ]
// current=0, total=10, width=10 → [          ]
// current=5, total=10, width=10 → [=====>    ]
// current=10, total=10, width=10 → [==========]
// current=3, total=10, width=10 → [==>       ]
func renderProgressBar(current, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}

	var bar strings.Builder
	bar.WriteString("[")

	switch {
	case current >= total:
		bar.WriteString(strings.Repeat("=", width))
	case current <= 0:
		bar.WriteString(strings.Repeat(" ", width))
	default:
		// Head sits at the rounded position; from the halfway mark on it
		// moves one cell past the filled part.
		ratio := float64(current) / float64(total)
		head := int(ratio*float64(width) + 0.5)
		head = max(1, min(head, width))

		equals := head - 1
		if ratio >= 0.5 {
			equals = head
		}
		equals = max(0, min(equals, width-1))
		spaces := max(0, width-equals-1)

		bar.WriteString(strings.Repeat("=", equals))
		bar.WriteString(">")
		bar.WriteString(strings.Repeat(" ", spaces))
	}

	bar.WriteString("]")
	return bar.String()
}

// BatchProgress prints per-file progress lines and the final summary.
// It implements ports.BatchObserver.
type BatchProgress struct {
	out       io.Writer
	total     int
	completed int
	failures  []ports.FileOutcome
	quiet     bool
	mu        sync.Mutex
}

// NewBatchProgress creates a new batch progress display
func NewBatchProgress(out io.Writer, total int, quiet bool) *BatchProgress {
	if total < 0 {
		total = 0
	}
	return &BatchProgress{
		out:      out,
		total:    total,
		failures: make([]ports.FileOutcome, 0),
		quiet:    quiet,
	}
}

// Header prints the batch parameters before any file is processed
func (bp *BatchProgress) Header(language, outputDir string) {
	if bp.quiet {
		return
	}
	fmt.Fprintln(bp.out)
	fmt.Fprintln(bp.out, titleStyle.Render(fmt.Sprintf("Transcribing %d file(s) [lang=%s]", bp.total, language)))
	fmt.Fprintf(bp.out, "Output directory: %s\n\n", outputDir)
}

// FileStarted prints the line announcing a file submission
func (bp *BatchProgress) FileStarted(index, total int, file domain.MediaFile) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.quiet {
		return
	}
	bar := renderProgressBar(bp.completed, total, 20)
	fmt.Fprintf(bp.out, "%s %s Transcribing: %s ...\n",
		dimStyle.Render(fmt.Sprintf("[%d/%d]", index+1, total)), bar, file.Name())
}

// FileFinished records an outcome and prints its result line
func (bp *BatchProgress) FileFinished(outcome ports.FileOutcome) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	bp.completed++
	if !outcome.Success {
		bp.failures = append(bp.failures, outcome)
	}

	if bp.quiet {
		return
	}
	if outcome.Success {
		fmt.Fprintf(bp.out, "  %s Done: %s (%s)\n",
			successStyle.Render("✓"), outcome.OutputPath, FormatDuration(outcome.Duration))
	} else {
		fmt.Fprintf(bp.out, "  %s ERROR: %s: %s\n",
			errorStyle.Render("✗"), outcome.File.Name(), outcome.Error)
	}
}

// Complete prints the final summary
func (bp *BatchProgress) Complete() {
	if bp.quiet {
		return
	}

	bp.mu.Lock()
	completed := bp.completed
	total := bp.total
	failures := make([]ports.FileOutcome, len(bp.failures))
	copy(failures, bp.failures)
	bp.mu.Unlock()

	succeeded := completed - len(failures)

	fmt.Fprintln(bp.out)
	fmt.Fprintf(bp.out, "Results: %d succeeded, %d failed out of %d total\n", succeeded, len(failures), total)

	if len(failures) > 0 {
		fmt.Fprintln(bp.out, "\nFailures:")
		for _, f := range failures {
			fmt.Fprintf(bp.out, "  %s %s: %s\n", errorStyle.Render("✗"), f.File.Path, f.Error)
		}
	}
}

// GetSuccessCount returns the number of successful results
func (bp *BatchProgress) GetSuccessCount() int {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	return bp.completed - len(bp.failures)
}

// GetFailureCount returns the number of failed results
func (bp *BatchProgress) GetFailureCount() int {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	return len(bp.failures)
}

var _ ports.BatchObserver = (*BatchProgress)(nil)
