// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cli implements the colorfmt command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jongio/colorfmt/cliout"
	"github.com/jongio/colorfmt/logutil"
	"github.com/jongio/colorfmt/version"
)

// appName is the application name used for the root command and display.
const appName = "colorfmt"

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	debug     bool
	logFormat string
	color     cliout.ColorMode
	output    string
}

// apply configures logging and output from the flags.
func (o *globalOptions) apply(logs io.Writer) error {
	var structured bool
	switch o.logFormat {
	case "text", "":
	case "json":
		structured = true
	default:
		return fmt.Errorf("invalid log format: %s (valid options: text, json)", o.logFormat)
	}
	if err := cliout.SetFormat(o.output); err != nil {
		return err
	}
	logutil.SetupFromEnv(logs, o.debug, structured)
	cliout.SetColorMode(o.color)
	return nil
}

// NewRootCommand creates the root command with every subcommand registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{logFormat: "text", color: cliout.ColorAuto, output: string(cliout.FormatDefault)}
	info := version.New(appName)

	root := &cobra.Command{
		Use:   appName,
		Short: "colorfmt pretty-prints documents with configurable colors and layout",
		Long: `colorfmt renders YAML, JSON and TOML documents as indented, colored
trees. Colors, quotes, markers and spacing come from a theme file.`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply(cmd.ErrOrStderr())
		},
	}
	root.SetVersionTemplate(info.String() + "\n")
	addGlobalFlags(root.PersistentFlags(), opts)

	root.AddCommand(newRenderCommand())
	root.AddCommand(newDemoCommand())
	root.AddCommand(newThemeCommand())
	root.AddCommand(version.NewCommand(info))
	return root
}

// Execute runs the CLI with args.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
