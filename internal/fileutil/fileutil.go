// Package fileutil has path helpers shared by the operations: derived
// output names, supported-extension checks and directory creation.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Kind groups the file extensions an operation accepts.
type Kind string

const (
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
	KindImage Kind = "image"
)

var supportedExtensions = map[Kind][]string{
	KindVideo: {".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv"},
	KindAudio: {".mp3", ".wav", ".m4a", ".ogg", ".flac", ".aac"},
	KindImage: {".jpg", ".jpeg", ".png", ".bmp", ".tiff"},
}

// IsSupported reports whether the path's extension belongs to the kind.
func IsSupported(path string, kind Kind) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range supportedExtensions[kind] {
		if ext == e {
			return true
		}
	}
	return false
}

// OutputPath derives an output file next to the input: the input name plus
// a suffix, keeping the extension unless newExt overrides it.
func OutputPath(inputPath, suffix, newExt string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if newExt != "" {
		ext = newExt
	}
	return filepath.Join(dir, name+suffix+ext)
}

// EnsureDir creates the directory (and parents) if needed.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
