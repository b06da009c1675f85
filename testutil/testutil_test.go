package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/colorfmt/cliout"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures status lines", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			cliout.Plain("line 1")
			cliout.Plain("line 2")
			return nil
		})

		if output != "line 1\nline 2\n" {
			t.Errorf("unexpected output: %q", output)
		}
	})

	t.Run("captures error output", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			cliout.Error("broken")
			return errors.New("broken")
		})

		if !strings.Contains(output, "broken") {
			t.Errorf("expected error output to be captured, got: %q", output)
		}
	})

	t.Run("disables color", func(t *testing.T) {
		cliout.SetColorMode(cliout.ColorAlways)
		t.Cleanup(func() { cliout.SetColorMode(cliout.ColorAuto) })

		output := CaptureOutput(t, func() error {
			cliout.Success("ok")
			return nil
		})
		if strings.Contains(output, "\x1b[") {
			t.Errorf("expected no escape sequences, got: %q", output)
		}
		if cliout.GetColorMode() != cliout.ColorAlways {
			t.Error("color mode was not restored")
		}
	})

	t.Run("restores writers", func(t *testing.T) {
		before := cliout.Output()
		_ = CaptureOutput(t, func() error { return nil })
		if cliout.Output() != before {
			t.Error("output writer was not restored")
		}
	})
}

func TestFindTestData(t *testing.T) {
	t.Run("finds directory from current location", func(t *testing.T) {
		dir := FindTestData(t, "testutil")
		if _, err := os.Stat(filepath.Join(dir, "testutil.go")); err != nil {
			t.Errorf("expected to find testutil.go in %s: %v", dir, err)
		}
	})

	t.Run("searches parent directories", func(t *testing.T) {
		tmpDir := TempDir(t)
		dataPath := filepath.Join(tmpDir, "testdata", "docs")
		deep := filepath.Join(tmpDir, "a", "b")
		for _, p := range []string{dataPath, deep} {
			if err := os.MkdirAll(p, 0o750); err != nil {
				t.Fatal(err)
			}
		}
		t.Chdir(deep)

		found := FindTestData(t, "testdata", "docs")
		if !strings.HasSuffix(found, filepath.Join("testdata", "docs")) {
			t.Errorf("unexpected path: %s", found)
		}
	})
}

func TestTempDir(t *testing.T) {
	var dir string
	t.Run("creates", func(t *testing.T) {
		dir = TempDir(t)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected a directory at %s: %v", dir, err)
		}
		if !strings.HasPrefix(filepath.Base(dir), "colorfmt-test-") {
			t.Errorf("unexpected name: %s", dir)
		}
	})

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed after the subtest, got %v", dir, err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := TempDir(t)
	path := WriteFile(t, dir, filepath.Join("nested", "doc.json"), `{"a": 1}`)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a": 1}` {
		t.Errorf("unexpected content: %q", data)
	}
}
