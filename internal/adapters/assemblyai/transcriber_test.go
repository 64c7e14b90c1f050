package assemblyai

import (
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/devbush/aai-transcribe/internal/domain"
	"github.com/devbush/aai-transcribe/internal/ports"
)

func word(text, speaker string) aai.TranscriptWord {
	w := aai.TranscriptWord{Text: ptr(text)}
	if speaker != "" {
		w.Speaker = ptr(speaker)
	}
	return w
}

func TestToParagraphs(t *testing.T) {
	paragraphs := []aai.TranscriptParagraph{
		{
			Start: ptr(int64(0)),
			End:   ptr(int64(4_200)),
			Text:  ptr("Hello there."),
			Words: []aai.TranscriptWord{word("Hello", "A"), word("there.", "A")},
		},
		{
			Start: ptr(int64(4_200)),
			End:   ptr(int64(9_000)),
			Text:  ptr("No diarization here."),
			Words: []aai.TranscriptWord{word("No", ""), word("diarization", "")},
		},
		{},
	}

	got := toParagraphs(paragraphs)
	if len(got) != 3 {
		t.Fatalf("toParagraphs() returned %d paragraphs, want 3", len(got))
	}

	if got[0].Start != 0 || got[0].End != 4_200 || got[0].Text != "Hello there." {
		t.Errorf("first paragraph = %+v", got[0])
	}
	if got[0].Speaker == nil || *got[0].Speaker != "A" {
		t.Errorf("first paragraph speaker = %v, want A", got[0].Speaker)
	}
	if got[1].Speaker != nil {
		t.Errorf("second paragraph speaker = %q, want nil", *got[1].Speaker)
	}
	if got[2] != (domain.Paragraph{}) {
		t.Errorf("empty paragraph mapped to %+v, want zero value", got[2])
	}
}

func TestParagraphSpeaker(t *testing.T) {
	tests := []struct {
		name  string
		words []aai.TranscriptWord
		want  string
	}{
		{"no words", nil, ""},
		{"first word labelled", []aai.TranscriptWord{word("a", "B"), word("b", "C")}, "B"},
		{"skips unlabelled words", []aai.TranscriptWord{word("a", ""), word("b", "C")}, "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paragraphSpeaker(tt.words)
			if tt.want == "" {
				if got != nil {
					t.Errorf("paragraphSpeaker() = %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("paragraphSpeaker() = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildParams(t *testing.T) {
	params := buildParams(ports.TranscribeOpts{
		LanguageCode:  "ru",
		Punctuate:     true,
		SpeakerLabels: true,
	})

	if params.LanguageCode != aai.TranscriptLanguageCode("ru") {
		t.Errorf("LanguageCode = %q, want ru", params.LanguageCode)
	}
	if params.SpeechModel != aai.SpeechModel(DefaultSpeechModel) {
		t.Errorf("SpeechModel = %q, want %q", params.SpeechModel, DefaultSpeechModel)
	}
	if params.Punctuate == nil || !*params.Punctuate {
		t.Error("Punctuate should be true")
	}
	if params.SpeakerLabels == nil || !*params.SpeakerLabels {
		t.Error("SpeakerLabels should be true")
	}

	params = buildParams(ports.TranscribeOpts{SpeechModel: "slam-1"})
	if params.SpeechModel != aai.SpeechModel("slam-1") {
		t.Errorf("SpeechModel = %q, want slam-1", params.SpeechModel)
	}
	if params.LanguageCode != "" {
		t.Errorf("LanguageCode = %q, want empty", params.LanguageCode)
	}
	if params.SpeakerLabels == nil || *params.SpeakerLabels {
		t.Error("SpeakerLabels should be explicitly false")
	}
}
