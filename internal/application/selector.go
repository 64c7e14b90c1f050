package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/devbush/aai-transcribe/internal/domain"
)

// InputSource is either an explicit list of files or a directory to scan.
// Exactly one of Files or Dir is set.
type InputSource struct {
	Files []string
	Dir   string
}

// FileSelector resolves an InputSource into an ordered list of media files
type FileSelector struct {
	fs afero.Fs
}

// NewFileSelector creates a selector over the given filesystem
func NewFileSelector(fs afero.Fs) *FileSelector {
	return &FileSelector{fs: fs}
}

// Resolve dispatches to FromList or FromDir depending on the source
func (s *FileSelector) Resolve(src InputSource) ([]domain.MediaFile, error) {
	switch {
	case len(src.Files) > 0 && src.Dir != "":
		return nil, fmt.Errorf("both a file list and a directory were given")
	case len(src.Files) > 0:
		return s.FromList(src.Files)
	case src.Dir != "":
		return s.FromDir(src.Dir)
	default:
		return nil, fmt.Errorf("no input files or directory given")
	}
}

// FromList checks that every path exists as a file. The first missing
// path aborts the whole selection.
func (s *FileSelector) FromList(paths []string) ([]domain.MediaFile, error) {
	files := make([]domain.MediaFile, 0, len(paths))
	for _, p := range paths {
		info, err := s.fs.Stat(p)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, p)
		}
		files = append(files, domain.MediaFile{Path: p})
	}
	return files, nil
}

// FromDir lists the immediate regular files of dir that carry a recognised
// media extension, sorted by name
func (s *FileSelector) FromDir(dir string) ([]domain.MediaFile, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	media := lo.Filter(entries, func(info os.FileInfo, _ int) bool {
		return info.Mode().IsRegular() && domain.IsSupportedMedia(info.Name())
	})
	if len(media) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoMediaFiles, dir)
	}

	sort.Slice(media, func(i, j int) bool {
		return media[i].Name() < media[j].Name()
	})

	return lo.Map(media, func(info os.FileInfo, _ int) domain.MediaFile {
		return domain.MediaFile{Path: filepath.Join(dir, info.Name())}
	}), nil
}
