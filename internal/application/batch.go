package application

import (
	"time"

	"github.com/samber/lo"

	"github.com/devbush/aai-transcribe/internal/ports"
)

// BatchSummary aggregates the outcomes of a batch run
type BatchSummary struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Results   []ports.FileOutcome
	Elapsed   time.Duration
}

// FailedResults returns only the failed outcomes
func (s *BatchSummary) FailedResults() []ports.FileOutcome {
	return lo.Filter(s.Results, func(r ports.FileOutcome, _ int) bool {
		return !r.Success
	})
}

// OutputPaths returns the transcript files written by the run
func (s *BatchSummary) OutputPaths() []string {
	return lo.FilterMap(s.Results, func(r ports.FileOutcome, _ int) (string, bool) {
		return r.OutputPath, r.Success
	})
}

// ExitCode is 0 only when every file succeeded
func (s *BatchSummary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

func (s *BatchSummary) add(outcome ports.FileOutcome) {
	s.Results = append(s.Results, outcome)
	if outcome.Success {
		s.Succeeded++
	} else {
		s.Failed++
	}
}
