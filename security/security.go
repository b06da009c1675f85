// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attack attempt.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInsecureFilePermissions indicates a file has insecure (world-writable) permissions.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")
)

// ValidatePath checks if a path is safe to read.
// It rejects empty paths and parent directory references, before and after
// the path is made absolute and its symbolic links are resolved.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("%w: path contains a NUL byte", ErrInvalidPath)
	}

	// Check for path traversal attempts before resolving
	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}
	cleanPath := filepath.Clean(absPath)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("%w: cleaned path contains parent directory reference", ErrPathTraversal)
	}

	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		// A missing file is reported by the caller when it opens the path.
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		resolvedPath = cleanPath
	}

	if strings.Contains(resolvedPath, "..") {
		return fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	return nil
}

// ValidateFilePermissions checks that a file is not writable by group or
// others. The check is skipped on Windows, which uses ACLs.
func ValidateFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Mode().Perm()&0o022 != 0 {
		return ErrInsecureFilePermissions
	}

	return nil
}

// IsContainerEnvironment detects if the code is running in a containerized environment.
// It checks for:
// - GitHub Codespaces (CODESPACES=true)
// - VS Code Dev Containers (REMOTE_CONTAINERS=true)
// - Kubernetes pods (KUBERNETES_SERVICE_HOST set)
// - Docker containers (/.dockerenv file exists)
func IsContainerEnvironment() bool {
	if os.Getenv("CODESPACES") == "true" {
		return true
	}
	if os.Getenv("REMOTE_CONTAINERS") == "true" {
		return true
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	return false
}
