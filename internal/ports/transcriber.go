package ports

import (
	"context"

	"github.com/devbush/aai-transcribe/internal/domain"
)

// TranscribeOpts configures a single transcription request
type TranscribeOpts struct {
	LanguageCode  string
	Punctuate     bool
	SpeakerLabels bool   // enable diarization on the service side
	SpeechModel   string // provider-specific model identifier
}

// Transcriber submits a media file to a speech-to-text service
type Transcriber interface {
	// Transcribe blocks until the service finishes the file. A transcript
	// with StatusError is a service-side failure; a returned error is a
	// transport or client fault.
	Transcribe(ctx context.Context, path string, opts TranscribeOpts) (*domain.Transcript, error)
}
