// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/colorfmt/cliout"
)

// CaptureOutput captures everything cliout writes during fn, standard and
// error output interleaved, with color disabled. The previous writers and
// color mode are always restored.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    cliout.Success("done")
//	    return nil
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	prevOut, prevErr, prevMode := cliout.Output(), cliout.ErrorOutput(), cliout.GetColorMode()
	defer func() {
		cliout.SetOutput(prevOut)
		cliout.SetErrorOutput(prevErr)
		cliout.SetColorMode(prevMode)
	}()

	var buf bytes.Buffer
	cliout.SetOutput(&buf)
	cliout.SetErrorOutput(&buf)
	cliout.SetColorMode(cliout.ColorNever)

	if err := fn(); err != nil {
		t.Logf("Command error: %v", err)
	}
	return buf.String()
}

// FindTestData finds a test data directory relative to the current working
// directory, searching the working directory and up to three of its parents.
//
// Example:
//
//	dir := testutil.FindTestData(t, "testdata")
//	doc := filepath.Join(dir, "config.yaml")
func FindTestData(t *testing.T, subdirs ...string) string {
	t.Helper()

	if len(subdirs) == 0 {
		t.Fatal("FindTestData requires at least one subdirectory")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	target := filepath.Join(subdirs...)
	dir := cwd
	for range 4 {
		candidate := filepath.Join(dir, target)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	t.Fatalf("Test data directory not found: %s (searched from %s)", target, cwd)
	return ""
}

// TempDir creates a temporary directory that is removed when the test
// completes.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "colorfmt-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
