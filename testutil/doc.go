// Package testutil provides common testing utilities for the colorfmt
// packages.
//
// This package includes helpers for:
//   - Capturing cliout output during test execution (CaptureOutput)
//   - Locating test fixture directories (FindTestData)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Writing fixture files (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestRender(t *testing.T) {
//	    dir := testutil.TempDir(t)
//	    path := testutil.WriteFile(t, dir, "doc.yaml", "a: 1\n")
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return run(path)
//	    })
//	    assert.Contains(t, output, "a: 1")
//	}
package testutil
