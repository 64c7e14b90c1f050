package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// TranscriptStatus is the terminal state reported by the transcription service
type TranscriptStatus string

const (
	StatusCompleted TranscriptStatus = "completed"
	StatusError     TranscriptStatus = "error"
)

// Paragraph represents a timed, optionally speaker-attributed span of text.
// Start and End are in milliseconds.
type Paragraph struct {
	Start   int64
	End     int64
	Text    string
	Speaker *string
}

// HasSpeaker reports whether the paragraph carries a non-empty speaker label
func (p Paragraph) HasSpeaker() bool {
	return p.Speaker != nil && *p.Speaker != ""
}

// Transcript represents the result of transcribing a single file
type Transcript struct {
	ID         string
	Status     TranscriptStatus
	Error      string
	Language   string
	Paragraphs []Paragraph
}

// Failed reports whether the service finished the transcript with an error
func (t *Transcript) Failed() bool {
	return t.Status == StatusError
}

// ToText renders the transcript paragraphs as timestamped plain text
func (t *Transcript) ToText(speakerLabels bool) string {
	return RenderParagraphs(t.Paragraphs, speakerLabels)
}

// FormatTimestamp converts milliseconds to MM:SS, or HH:MM:SS once the
// value reaches an hour. Milliseconds are truncated, not rounded.
func FormatTimestamp(ms int64) string {
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// RenderParagraphs formats paragraphs in the order given, one block per
// paragraph. The result always ends with exactly one newline.
func RenderParagraphs(paragraphs []Paragraph, speakerLabels bool) string {
	var sb strings.Builder

	for _, p := range paragraphs {
		start := FormatTimestamp(p.Start)
		end := FormatTimestamp(p.End)

		if speakerLabels && p.HasSpeaker() {
			sb.WriteString(fmt.Sprintf("[%s - %s] Speaker %s:\n%s\n\n", start, end, *p.Speaker, p.Text))
		} else {
			sb.WriteString(fmt.Sprintf("[%s - %s]:\n%s\n\n", start, end, p.Text))
		}
	}

	return strings.TrimRightFunc(sb.String(), unicode.IsSpace) + "\n"
}
