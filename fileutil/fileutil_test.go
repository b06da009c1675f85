// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/colorfmt/security"
)

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o600))

	data, err := ReadInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
}

func TestReadInput_Stdin(t *testing.T) {
	data, err := ReadInput(StdinPath, strings.NewReader(`{"a": 1}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))
}

func TestReadInput_Errors(t *testing.T) {
	_, err := ReadInput("../outside.yaml", nil)
	assert.ErrorIs(t, err, security.ErrPathTraversal)

	_, err = ReadInput("", nil)
	assert.ErrorIs(t, err, security.ErrInvalidPath)

	_, err = ReadInput(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadInput_TooLarge(t *testing.T) {
	old := MaxInputSize
	MaxInputSize = 8
	t.Cleanup(func() { MaxInputSize = old })

	data, err := ReadInput(StdinPath, strings.NewReader("12345678"))
	require.NoError(t, err)
	assert.Len(t, data, 8)

	_, err = ReadInput(StdinPath, strings.NewReader("123456789"))
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"doc.yaml", "yaml"},
		{"doc.YML", "yaml"},
		{"dir/data.json", "json"},
		{"Cargo.toml", "toml"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, path := range []string{"notes.txt", "Makefile", "-"} {
		_, err := DetectFormat(path)
		assert.ErrorIs(t, err, ErrUnknownFormat, path)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		data    []byte
		perm    os.FileMode
		wantErr bool
	}{
		{
			name: "simple write",
			path: filepath.Join(tmpDir, "simple.yaml"),
			data: []byte("indent: 1\n"),
			perm: 0644,
		},
		{
			name: "empty file",
			path: filepath.Join(tmpDir, "empty.yaml"),
			data: []byte{},
			perm: 0600,
		},
		{
			name:    "invalid directory",
			path:    filepath.Join(tmpDir, "nonexistent", "theme.yaml"),
			data:    []byte("data"),
			perm:    0644,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AtomicWriteFile(tt.path, tt.data, tt.perm)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(tt.path)
			require.NoError(t, err)
			assert.Equal(t, string(tt.data), string(data))

			leftovers, _ := filepath.Glob(tt.path + ".tmp.*")
			assert.Empty(t, leftovers)
		})
	}
}

func TestAtomicWriteFile_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, AtomicWriteFile(path, []byte("old"), FilePermission))
	require.NoError(t, AtomicWriteFile(path, []byte("new"), FilePermission))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAtomicWrite_Concurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.yaml")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = AtomicWriteFile(path, []byte("same"), FilePermission)
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "same", string(data))
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	for _, path := range []string{
		filepath.Join(tmpDir, "newdir"),
		filepath.Join(tmpDir, "nested", "deep", "path"),
		tmpDir,
	} {
		require.NoError(t, EnsureDir(path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing.yaml")))
}
