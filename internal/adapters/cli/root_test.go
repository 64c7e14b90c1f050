package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devbush/aai-transcribe/internal/domain"
	"github.com/devbush/aai-transcribe/internal/ports"
)

type fakeTranscriber struct {
	calls []string
}

func (f *fakeTranscriber) Transcribe(_ context.Context, path string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	f.calls = append(f.calls, filepath.Base(path))
	if strings.Contains(filepath.Base(path), "bad") {
		return nil, errors.New("upload rejected")
	}
	return &domain.Transcript{
		ID:       "t-" + filepath.Base(path),
		Status:   domain.StatusCompleted,
		Language: opts.LanguageCode,
		Paragraphs: []domain.Paragraph{
			{Start: 0, End: 1500, Text: "hello from " + filepath.Base(path)},
		},
	}, nil
}

// isolate points HOME and the config file at a temp dir so no user files leak
// into the run, and installs fake as the transcriber factory.
func isolate(t *testing.T, fake ports.Transcriber) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	prev := newTranscriber
	newTranscriber = func(provider, apiKey string, logger *zap.Logger) (ports.Transcriber, error) {
		return fake, nil
	}
	t.Cleanup(func() { newTranscriber = prev })

	return dir
}

func writeMedia(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	var paths []string
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("audio"), 0644))
		paths = append(paths, p)
	}
	return paths
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_RequiresInput(t *testing.T) {
	dir := isolate(t, &fakeTranscriber{})
	t.Setenv("AAI_API_KEY", "key")

	_, err := execute(t, "--config", filepath.Join(dir, "config.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestRoot_FilesAndDirAreExclusive(t *testing.T) {
	dir := isolate(t, &fakeTranscriber{})
	t.Setenv("AAI_API_KEY", "key")

	_, err := execute(t, "--files", "a.mp3", "--dir", dir)
	require.Error(t, err)
}

func TestRoot_MissingCredential(t *testing.T) {
	dir := isolate(t, &fakeTranscriber{})
	t.Setenv("AAI_API_KEY", "")
	files := writeMedia(t, dir, "a.mp3")
	outDir := filepath.Join(dir, "out")

	_, err := execute(t,
		"--config", filepath.Join(dir, "config.yaml"),
		"--files", files[0],
		"--output", outDir,
	)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingCredential))
	assert.NoDirExists(t, outDir)
}

func TestRoot_BatchIsolatesFailures(t *testing.T) {
	fake := &fakeTranscriber{}
	dir := isolate(t, fake)
	t.Setenv("AAI_API_KEY", "key")

	mediaDir := filepath.Join(dir, "media")
	require.NoError(t, os.Mkdir(mediaDir, 0755))
	writeMedia(t, mediaDir, "1-first.mp3", "2-bad.wav", "3-third.mp4", "notes.txt")
	outDir := filepath.Join(dir, "out", "nested")

	out, err := execute(t,
		"--config", filepath.Join(dir, "config.yaml"),
		"--dir", mediaDir,
		"--output", outDir,
		"--lang", "en",
	)

	require.Error(t, err)
	assert.Equal(t, "1 of 3 files failed", err.Error())
	assert.Equal(t, []string{"1-first.mp3", "2-bad.wav", "3-third.mp4"}, fake.calls)

	assert.FileExists(t, filepath.Join(outDir, "1-first.txt"))
	assert.NoFileExists(t, filepath.Join(outDir, "2-bad.txt"))
	assert.FileExists(t, filepath.Join(outDir, "3-third.txt"))

	data, err := os.ReadFile(filepath.Join(outDir, "3-third.txt"))
	require.NoError(t, err)
	assert.Equal(t, "[00:00 - 00:01]:\nhello from 3-third.mp4\n", string(data))

	assert.Contains(t, out, "Found 3 file(s)")
	assert.Contains(t, out, "[lang=en]")
	assert.Contains(t, out, "Results: 2 succeeded, 1 failed out of 3 total")
}

func TestRoot_PositionalFilesExtendList(t *testing.T) {
	fake := &fakeTranscriber{}
	dir := isolate(t, fake)
	t.Setenv("AAI_API_KEY", "key")

	files := writeMedia(t, dir, "one.m4a", "two.ogg")
	outDir := filepath.Join(dir, "out")

	_, err := execute(t,
		"--config", filepath.Join(dir, "config.yaml"),
		"--output", outDir,
		"--quiet",
		"--files", files[0],
		files[1],
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"one.m4a", "two.ogg"}, fake.calls)
	assert.FileExists(t, filepath.Join(outDir, "one.txt"))
	assert.FileExists(t, filepath.Join(outDir, "two.txt"))
}

func TestRoot_FileNameWithComma(t *testing.T) {
	fake := &fakeTranscriber{}
	dir := isolate(t, fake)
	t.Setenv("AAI_API_KEY", "key")

	files := writeMedia(t, dir, "Meeting, part 1.mp3", "b.wav")
	outDir := filepath.Join(dir, "out")

	_, err := execute(t,
		"--config", filepath.Join(dir, "config.yaml"),
		"--output", outDir,
		"--quiet",
		"--files", files[0],
		"--files", files[1],
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"Meeting, part 1.mp3", "b.wav"}, fake.calls)
	assert.FileExists(t, filepath.Join(outDir, "Meeting, part 1.txt"))
}

func TestRoot_MissingExplicitFile(t *testing.T) {
	fake := &fakeTranscriber{}
	dir := isolate(t, fake)
	t.Setenv("AAI_API_KEY", "key")

	_, err := execute(t,
		"--config", filepath.Join(dir, "config.yaml"),
		"--output", filepath.Join(dir, "out"),
		"--files", filepath.Join(dir, "nope.mp3"),
	)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileNotFound))
	assert.Empty(t, fake.calls)
}

func TestConfigCmd_InitAndShow(t *testing.T) {
	dir := isolate(t, &fakeTranscriber{})
	path := filepath.Join(dir, "cfg", "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	assert.FileExists(t, path)

	_, err = execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force", "--config", path)
	require.NoError(t, err)

	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "provider: assemblyai")
	assert.Contains(t, out, "language: ru")
}
