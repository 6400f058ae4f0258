// Package ioutils provides file system utilities for audioprobe.
//
// This package contains functions for:
//   - Temp file creation with a preserved audio extension
//   - File writing
//   - Filename sanitization
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"
)

// TempFile creates a temporary file whose name ends with the given
// extension.
//
// Tag-reading libraries use the extension as a format-detection hint,
// so the downloaded payload must land in a file that keeps the suffix
// of the source URL.
//
// Parameters:
//   - dir: Directory to create the file in. Empty uses os.TempDir().
//   - ext: Extension including the dot, e.g. ".mp3". May be empty.
//
// The caller owns the returned *os.File and is responsible for closing
// and removing it.
//
// Example:
//
//	f, err := TempFile("", ".flac")
//	defer os.Remove(f.Name())
func TempFile(dir, ext string) (*os.File, error) {
	return os.CreateTemp(dir, "audioprobe-*"+ext)
}

// ExtFromURL extracts the lowercase file extension from a URL's path.
//
// The query string and fragment are ignored, only the path component
// is considered. Returns an empty string when the path has no
// extension or the URL cannot be parsed.
//
// Example:
//
//	ExtFromURL("https://cdn.example.com/song.MP3?token=abc") // ".mp3"
//	ExtFromURL("https://example.com/stream")                 // ""
func ExtFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(path.Ext(u.Path))
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation (currently unused but reserved for future use)
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	err := WriteFile(ctx, "/music/cover.jpg", jpegBytes)
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// This function ensures filenames are valid across different operating systems,
// particularly Windows which has the most restrictive naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")     // Returns "Song_ Part 1_2"
//	SanitizeFileName("Track...")           // Returns "Track"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	// Characters: < > : " / \ | ? * and control characters (0x00-0x1f)
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space for cleaner names
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/music/artwork")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
