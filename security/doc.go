// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security validates user-supplied paths before colorfmt reads them.
//
// # Path Validation
//
// ValidatePath rejects:
//   - empty paths and paths containing NUL bytes
//   - ".." sequences, before and after the path is made absolute
//   - symbolic links that resolve to a path containing ".."
//
// A path that does not exist yet passes validation; opening it reports the
// missing file.
//
// # File Permissions
//
// ValidateFilePermissions returns ErrInsecureFilePermissions for files that
// are writable by group or others. Theme files are checked this way, and
// IsContainerEnvironment lets callers stay quiet in containers, where
// mounted files are commonly world-writable.
//
// All errors wrap one of the sentinel errors, so callers can use errors.Is:
//
//	if err := security.ValidatePath(path); errors.Is(err, security.ErrPathTraversal) {
//	    // reject input
//	}
package security
