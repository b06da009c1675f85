// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/colorfmt/fileutil"
	"github.com/jongio/colorfmt/testutil"
	"github.com/jongio/colorfmt/theme"
)

func TestTheme_ShowBuiltIn(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "", "theme")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# source: built-in\n"), out)

	parsed, err := theme.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), parsed)
}

func TestTheme_ShowFile(t *testing.T) {
	isolate(t)
	path := testutil.WriteFile(t, testutil.TempDir(t), "t.yaml", "indent: 2\n")

	out, _, err := execute(t, "", "theme", "--theme", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# source: "+path)
	assert.Contains(t, out, "indent: 2")
}

func TestTheme_Init(t *testing.T) {
	home := isolate(t)
	want := filepath.Join(home, theme.AppName, theme.FileName)

	out, _, err := execute(t, "", "theme", "--init")
	require.NoError(t, err)
	assert.Contains(t, out, want)
	assert.True(t, fileutil.FileExists(want))

	_, _, err = execute(t, "", "theme", "--init")
	assert.ErrorIs(t, err, theme.ErrThemeExists)

	_, _, err = execute(t, "", "theme", "--init", "--force")
	assert.NoError(t, err)

	out, _, err = execute(t, "", "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "# source: "+want)
}

func TestTheme_InitExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(testutil.TempDir(t), "themes", "mine.yaml")

	_, _, err := execute(t, "", "theme", "--init", "--theme", path)
	require.NoError(t, err)

	th, err := theme.Load(path)
	require.NoError(t, err)
	assert.Equal(t, theme.Default(), th)
}

func TestTheme_Preview(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "", "theme", "--preview", "--color", "never")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `name: "colorfmt"`), out)
	assert.Contains(t, out, "tags:\n    - \"yaml\"")
	assert.Contains(t, out, "notes: null")
}

func TestTheme_FlagConflicts(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "", "theme", "--init", "--preview")
	assert.Error(t, err)

	_, _, err = execute(t, "", "theme", "extra")
	assert.Error(t, err)
}
