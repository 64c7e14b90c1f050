package domain

import (
	"path/filepath"
	"strings"
)

var (
	// AudioExtensions lists recognised audio containers
	AudioExtensions = []string{".mp3", ".wav", ".m4a", ".flac", ".ogg", ".wma", ".aac"}
	// VideoExtensions lists recognised video containers
	VideoExtensions = []string{".mp4", ".webm", ".mov", ".avi", ".mkv"}
)

var supportedExtensions = func() map[string]bool {
	m := make(map[string]bool, len(AudioExtensions)+len(VideoExtensions))
	for _, ext := range AudioExtensions {
		m[ext] = true
	}
	for _, ext := range VideoExtensions {
		m[ext] = true
	}
	return m
}()

// MediaFile is an input file submitted for transcription
type MediaFile struct {
	Path string
}

// Name returns the base file name
func (f MediaFile) Name() string {
	return filepath.Base(f.Path)
}

// Ext returns the lower-cased final extension including the dot.
// A dotfile such as ".mp3" has no extension.
func (f MediaFile) Ext() string {
	name := f.Name()
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.ToLower(ext)
}

// Stem returns the base name without its final extension
func (f MediaFile) Stem() string {
	name := f.Name()
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// IsSupportedMedia reports whether a file name has a recognised audio or
// video extension, ignoring case
func IsSupportedMedia(name string) bool {
	return supportedExtensions[MediaFile{Path: name}.Ext()]
}
