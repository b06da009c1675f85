// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package display

// WriteError reports that the sink refused or failed a write.
type WriteError struct {
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return "display: write failed: " + e.Err.Error()
}

// Unwrap returns the sink's error for errors.Is/As compatibility.
func (e *WriteError) Unwrap() error {
	return e.Err
}
