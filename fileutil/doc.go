// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil reads documents for colorfmt and writes its theme files.
//
// # Reading Input
//
// ReadInput reads a file, or standard input for the path "-". File paths are
// validated with security.ValidatePath before they are opened, and inputs
// larger than MaxInputSize are rejected with ErrInputTooLarge:
//
//	data, err := fileutil.ReadInput(path, os.Stdin)
//
// DetectFormat maps a file extension to a document syntax name:
//
//	.yaml, .yml  -> "yaml"
//	.json        -> "json"
//	.toml        -> "toml"
//
// Any other extension fails with ErrUnknownFormat.
//
// # Atomic Write Operations
//
// AtomicWriteFile never leaves a file in a partial state: it writes to a
// uniquely named temporary file in the target directory, syncs it, sets its
// permissions, then renames it over the target. The rename is retried up to
// five times with a growing delay, and the temporary file is removed on any
// failure.
//
//	if err := fileutil.EnsureDir(dir); err != nil {
//	    return err
//	}
//	return fileutil.AtomicWriteFile(filepath.Join(dir, "theme.yaml"), data, fileutil.FilePermission)
package fileutil
