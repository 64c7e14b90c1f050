// Package openai implements ports.Transcriber with the OpenAI audio
// transcription endpoint. Whisper returns timed segments without speaker
// attribution, so every paragraph comes back unlabelled.
package openai

import (
	"context"
	"fmt"
	"math"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/devbush/aai-transcribe/internal/domain"
	"github.com/devbush/aai-transcribe/internal/ports"
)

// DefaultModel is used when no model is requested
const DefaultModel = goopenai.Whisper1

// Transcriber implements ports.Transcriber using the OpenAI API
type Transcriber struct {
	client *goopenai.Client
	logger *zap.Logger
}

// NewTranscriber creates a transcriber authenticated with apiKey
func NewTranscriber(apiKey string, logger *zap.Logger) *Transcriber {
	return NewTranscriberWithConfig(goopenai.DefaultConfig(apiKey), logger)
}

// NewTranscriberWithConfig creates a transcriber from a client config,
// e.g. to point at a compatible server
func NewTranscriberWithConfig(cfg goopenai.ClientConfig, logger *zap.Logger) *Transcriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transcriber{client: goopenai.NewClientWithConfig(cfg), logger: logger}
}

// Transcribe sends the file and maps returned segments to paragraphs
func (t *Transcriber) Transcribe(ctx context.Context, path string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	model := opts.SpeechModel
	if model == "" {
		model = DefaultModel
	}

	t.logger.Debug("sending to openai", zap.String("file", path), zap.String("model", model))

	resp, err := t.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    model,
		FilePath: path,
		Language: opts.LanguageCode,
		Format:   goopenai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("openai transcription request failed: %w", err)
	}

	language := resp.Language
	if language == "" {
		language = opts.LanguageCode
	}

	return &domain.Transcript{
		Status:     domain.StatusCompleted,
		Language:   language,
		Paragraphs: toParagraphs(resp),
	}, nil
}

// toParagraphs maps verbose_json segments to paragraphs. A response
// without segments becomes a single paragraph spanning the audio.
func toParagraphs(resp goopenai.AudioResponse) []domain.Paragraph {
	if len(resp.Segments) == 0 {
		text := strings.TrimSpace(resp.Text)
		if text == "" {
			return nil
		}
		return []domain.Paragraph{{Start: 0, End: secondsToMillis(resp.Duration), Text: text}}
	}

	paragraphs := make([]domain.Paragraph, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		paragraphs = append(paragraphs, domain.Paragraph{
			Start: secondsToMillis(seg.Start),
			End:   secondsToMillis(seg.End),
			Text:  text,
		})
	}
	return paragraphs
}

func secondsToMillis(s float64) int64 {
	return int64(math.Round(s * 1000))
}

var _ ports.Transcriber = (*Transcriber)(nil)
