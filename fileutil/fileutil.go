// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jongio/colorfmt/security"
)

// File permissions
const (
	// DirPermission is the default permission for creating directories (rwxr-x---)
	DirPermission = 0750
	// FilePermission is the default permission for creating files (rw-r--r--)
	FilePermission = 0644
)

// StdinPath is the path that selects standard input in ReadInput.
const StdinPath = "-"

// MaxInputSize bounds the number of bytes ReadInput accepts.
var MaxInputSize int64 = 64 << 20

var (
	// ErrUnknownFormat indicates a file extension with no known document syntax.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrInputTooLarge indicates an input larger than MaxInputSize.
	ErrInputTooLarge = errors.New("input too large")
)

// extensions maps file extensions to document syntax names.
var extensions = map[string]string{
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
	".toml": "toml",
}

// ReadInput reads a whole document from path, or from stdin when path is
// StdinPath. File paths are checked with security.ValidatePath first.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		return readLimited(stdin, "stdin")
	}

	if err := security.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path) // #nosec G304 -- path validated by security.ValidatePath
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readLimited(f, path)
}

func readLimited(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if int64(len(data)) > MaxInputSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInputTooLarge, name, MaxInputSize)
	}
	return data, nil
}

// DetectFormat returns the document syntax name ("yaml", "json" or "toml")
// for the extension of path, case-insensitively.
func DetectFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if syntax, ok := extensions[ext]; ok {
		return syntax, nil
	}
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, filepath.Base(path))
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// AtomicWriteFile writes raw bytes to a file atomically.
// It writes to a temporary file first, then renames it to the target path.
// This ensures the file is never left in a partial/corrupt state.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	// Create a unique temp file in the same directory to avoid concurrent
	// writers using the same temp filename and causing rename failures.
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	// Rename temp file to final file (atomic operation on most filesystems).
	// Retry a few times with a growing delay to ride out transient rename races.
	var renameErr error
	for attempt := 0; attempt < 5; attempt++ {
		renameErr = os.Rename(tmpPath, path)
		if renameErr == nil {
			break
		}
		if attempt < 4 {
			time.Sleep(time.Duration(20*(attempt+1)) * time.Millisecond)
		}
	}
	if renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", renameErr)
	}

	return nil
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
