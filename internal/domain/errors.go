package domain

import "errors"

var (
	// Configuration errors
	ErrMissingCredential = errors.New("API credential not set")
	ErrUnknownProvider   = errors.New("unknown transcription provider")

	// Input resolution errors
	ErrFileNotFound       = errors.New("file not found")
	ErrNoMediaFiles       = errors.New("no supported audio/video files found")
	ErrSelectionCancelled = errors.New("file selection cancelled")

	// Transcription errors
	ErrTranscriptionFailed = errors.New("transcription failed")
)
