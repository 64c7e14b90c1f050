// Package assemblyai implements ports.Transcriber on top of the AssemblyAI
// Go SDK.
package assemblyai

import (
	"context"
	"fmt"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/devbush/aai-transcribe/internal/domain"
	"github.com/devbush/aai-transcribe/internal/ports"
)

// DefaultSpeechModel is used when no model is requested
const DefaultSpeechModel = "universal"

// Transcriber implements ports.Transcriber using the AssemblyAI API
type Transcriber struct {
	client *aai.Client
	logger *zap.Logger
}

// NewTranscriber creates a transcriber authenticated with apiKey
func NewTranscriber(apiKey string, logger *zap.Logger) *Transcriber {
	return NewTranscriberWithClient(aai.NewClient(apiKey), logger)
}

// NewTranscriberWithClient wraps an existing SDK client
func NewTranscriberWithClient(client *aai.Client, logger *zap.Logger) *Transcriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transcriber{client: client, logger: logger}
}

// Transcribe uploads the file, waits for the transcript to finish and
// fetches its paragraphs
func (t *Transcriber) Transcribe(ctx context.Context, path string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	t.logger.Debug("uploading to assemblyai",
		zap.String("file", path),
		zap.String("speech_model", speechModel(opts)),
	)

	transcript, err := t.client.Transcripts.TranscribeFromReader(ctx, f, buildParams(opts))
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription request failed: %w", err)
	}

	result, err := toTranscript(transcript, opts.LanguageCode)
	if err != nil || result.Failed() {
		return result, err
	}

	resp, err := t.client.Transcripts.GetParagraphs(ctx, result.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paragraphs for transcript %s: %w", result.ID, err)
	}
	result.Paragraphs = toParagraphs(resp.Paragraphs)

	t.logger.Debug("assemblyai transcript completed",
		zap.String("transcript_id", result.ID),
		zap.Int("paragraphs", len(result.Paragraphs)),
	)

	return result, nil
}

// toTranscript maps the service status. An error status is a failed
// transcript, not a Go error; any other non-completed status is a fault.
func toTranscript(transcript aai.Transcript, language string) (*domain.Transcript, error) {
	result := &domain.Transcript{
		ID:       deref(transcript.ID),
		Language: language,
	}

	switch transcript.Status {
	case aai.TranscriptStatusCompleted:
		result.Status = domain.StatusCompleted
	case aai.TranscriptStatusError:
		result.Status = domain.StatusError
		result.Error = deref(transcript.Error)
		if result.Error == "" {
			result.Error = "service reported an error without a message"
		}
	default:
		return nil, fmt.Errorf("%w: transcript %s ended in status %q", domain.ErrTranscriptionFailed, result.ID, transcript.Status)
	}

	return result, nil
}

func speechModel(opts ports.TranscribeOpts) string {
	if opts.SpeechModel == "" {
		return DefaultSpeechModel
	}
	return opts.SpeechModel
}

func buildParams(opts ports.TranscribeOpts) *aai.TranscriptOptionalParams {
	params := &aai.TranscriptOptionalParams{
		SpeechModel:   aai.SpeechModel(speechModel(opts)),
		Punctuate:     ptr(opts.Punctuate),
		SpeakerLabels: ptr(opts.SpeakerLabels),
	}
	if opts.LanguageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(opts.LanguageCode)
	}
	return params
}

func toParagraphs(paragraphs []aai.TranscriptParagraph) []domain.Paragraph {
	result := make([]domain.Paragraph, 0, len(paragraphs))
	for _, p := range paragraphs {
		result = append(result, domain.Paragraph{
			Start:   derefInt(p.Start),
			End:     derefInt(p.End),
			Text:    deref(p.Text),
			Speaker: paragraphSpeaker(p.Words),
		})
	}
	return result
}

// paragraphSpeaker returns the speaker of the first diarized word. Words
// carry no speaker when diarization is disabled.
func paragraphSpeaker(words []aai.TranscriptWord) *string {
	for _, w := range words {
		if w.Speaker != nil && *w.Speaker != "" {
			speaker := *w.Speaker
			return &speaker
		}
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

var _ ports.Transcriber = (*Transcriber)(nil)
