package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/devbush/aai-transcribe/internal/domain"
	"github.com/devbush/aai-transcribe/internal/ports"
)

// BatchOptions configures a batch run
type BatchOptions struct {
	OutputDir     string
	SpeakerLabels bool // label paragraphs with their speaker in the output
	Transcribe    ports.TranscribeOpts
}

// BatchService transcribes files one at a time and writes a text
// transcript per successful file
type BatchService struct {
	transcriber ports.Transcriber
	fs          afero.Fs
	logger      *zap.Logger
	observer    ports.BatchObserver
}

// NewBatchService creates a new batch service. A nil observer disables
// progress notifications.
func NewBatchService(
	transcriber ports.Transcriber,
	fs afero.Fs,
	logger *zap.Logger,
	observer ports.BatchObserver,
) *BatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &BatchService{
		transcriber: transcriber,
		fs:          fs,
		logger:      logger,
		observer:    observer,
	}
}

// EnsureOutputDir creates the output directory and its parents
func (s *BatchService) EnsureOutputDir(dir string) error {
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// OutputPath returns where the transcript for file is written
func OutputPath(outputDir string, file domain.MediaFile) string {
	return filepath.Join(outputDir, file.Stem()+".txt")
}

// Run processes files sequentially. A failing file never stops the batch.
func (s *BatchService) Run(ctx context.Context, files []domain.MediaFile, opts BatchOptions) *BatchSummary {
	start := time.Now()
	summary := &BatchSummary{
		RunID: uuid.NewString(),
		Total: len(files),
	}
	log := s.logger.With(zap.String("run_id", summary.RunID))

	log.Info("batch started",
		zap.Int("files", len(files)),
		zap.String("output_dir", opts.OutputDir),
		zap.String("language", opts.Transcribe.LanguageCode),
		zap.String("model", opts.Transcribe.SpeechModel),
		zap.Bool("speaker_labels", opts.SpeakerLabels),
	)

	for i, file := range files {
		s.observer.FileStarted(i, len(files), file)
		outcome := s.processOne(ctx, log, file, opts)
		summary.add(outcome)
		s.observer.FileFinished(outcome)
	}

	summary.Elapsed = time.Since(start)
	log.Info("batch finished",
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", summary.Elapsed),
	)

	return summary
}

func (s *BatchService) processOne(ctx context.Context, log *zap.Logger, file domain.MediaFile, opts BatchOptions) ports.FileOutcome {
	start := time.Now()
	log = log.With(zap.String("file", file.Path))

	fail := func(err error) ports.FileOutcome {
		log.Warn("file failed", zap.Error(err))
		return ports.FileOutcome{
			File:     file,
			Success:  false,
			Error:    err.Error(),
			Duration: time.Since(start),
		}
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	log.Debug("submitting file")
	transcript, err := s.transcriber.Transcribe(ctx, file.Path, opts.Transcribe)
	if err != nil {
		return fail(err)
	}
	if transcript == nil {
		return fail(fmt.Errorf("%w: empty result", domain.ErrTranscriptionFailed))
	}
	if transcript.Failed() {
		return fail(fmt.Errorf("%w: %s", domain.ErrTranscriptionFailed, transcript.Error))
	}

	text := transcript.ToText(opts.SpeakerLabels)
	outputPath := OutputPath(opts.OutputDir, file)
	if err := afero.WriteFile(s.fs, outputPath, []byte(text), 0644); err != nil {
		return fail(fmt.Errorf("failed to write transcript: %w", err))
	}

	log.Debug("transcript written",
		zap.String("transcript_id", transcript.ID),
		zap.String("output", outputPath),
		zap.Int("paragraphs", len(transcript.Paragraphs)),
	)

	return ports.FileOutcome{
		File:       file,
		OutputPath: outputPath,
		Success:    true,
		Duration:   time.Since(start),
	}
}

type noopObserver struct{}

func (noopObserver) FileStarted(int, int, domain.MediaFile) {}
func (noopObserver) FileFinished(ports.FileOutcome)        {}
