// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"github.com/spf13/pflag"

	"github.com/jongio/colorfmt/cliout"
	"github.com/jongio/colorfmt/tree"
)

// colorValue is a pflag.Value for --color.
type colorValue struct{ mode *cliout.ColorMode }

func (v colorValue) String() string {
	if v.mode == nil {
		return ""
	}
	return string(*v.mode)
}

func (v colorValue) Set(s string) error {
	m, err := cliout.ParseColorMode(s)
	if err != nil {
		return err
	}
	*v.mode = m
	return nil
}

func (colorValue) Type() string { return "when" }

// syntaxValue is a pflag.Value for --input.
type syntaxValue struct{ syntax *tree.Syntax }

func (v syntaxValue) String() string {
	if v.syntax == nil {
		return ""
	}
	return string(*v.syntax)
}

func (v syntaxValue) Set(s string) error {
	syn, err := tree.ParseSyntax(s)
	if err != nil {
		return err
	}
	*v.syntax = syn
	return nil
}

func (syntaxValue) Type() string { return "syntax" }

func addGlobalFlags(fs *pflag.FlagSet, o *globalOptions) {
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
	fs.StringVar(&o.logFormat, "log-format", o.logFormat, "log format: text or json")
	fs.Var(colorValue{&o.color}, "color", "colorize output: auto, always or never")
	fs.StringVarP(&o.output, "output", "o", o.output, "output format: default or json")
}

func addThemeFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVarP(path, "theme", "t", "", "theme file (default: $XDG_CONFIG_HOME/colorfmt/theme.yaml)")
}

func addRenderFlags(fs *pflag.FlagSet, o *renderOptions) {
	fs.VarP(syntaxValue{&o.syntax}, "input", "i", "input syntax: yaml, json or toml (default: from the file extension)")
	fs.Uint16Var(&o.indent, "indent", 0, "indentation level of the top-level document (default: from the theme)")
	addThemeFlag(fs, &o.theme)
}
