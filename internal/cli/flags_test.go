// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/colorfmt/cliout"
	"github.com/jongio/colorfmt/tree"
)

func TestSyntaxValue(t *testing.T) {
	var syn tree.Syntax
	v := syntaxValue{&syn}

	require.NoError(t, v.Set("YML"))
	assert.Equal(t, tree.YAML, syn)
	assert.Equal(t, "yaml", v.String())
	assert.Equal(t, "syntax", v.Type())

	assert.ErrorIs(t, v.Set("ini"), tree.ErrUnsupportedInput)
	assert.Equal(t, tree.YAML, syn)
	assert.Empty(t, syntaxValue{}.String())
}

func TestColorValue(t *testing.T) {
	mode := cliout.ColorAuto
	v := colorValue{&mode}

	require.NoError(t, v.Set("never"))
	assert.Equal(t, cliout.ColorNever, mode)
	assert.Equal(t, "never", v.String())
	assert.Error(t, v.Set("sometimes"))
	assert.Empty(t, colorValue{}.String())
}

func TestAddGlobalFlags(t *testing.T) {
	opts := &globalOptions{logFormat: "text", color: cliout.ColorAuto, output: "default"}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addGlobalFlags(fs, opts)

	require.NoError(t, fs.Parse([]string{"--debug", "--log-format", "json", "--color", "always", "-o", "json"}))
	assert.True(t, opts.debug)
	assert.Equal(t, "json", opts.logFormat)
	assert.Equal(t, cliout.ColorAlways, opts.color)
	assert.Equal(t, "json", opts.output)
	assert.Equal(t, "auto", fs.Lookup("color").DefValue)
}

func TestAddRenderFlags(t *testing.T) {
	opts := &renderOptions{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addRenderFlags(fs, opts)

	require.NoError(t, fs.Parse([]string{"-i", "toml", "--indent", "2", "-t", "mine.yaml"}))
	assert.Equal(t, tree.TOML, opts.syntax)
	assert.Equal(t, uint16(2), opts.indent)
	assert.Equal(t, "mine.yaml", opts.theme)
	assert.True(t, fs.Changed("indent"))

	assert.Error(t, fs.Parse([]string{"--indent", "-1"}))
}
