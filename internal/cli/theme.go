// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/colorfmt/cliout"
	"github.com/jongio/colorfmt/theme"
	"github.com/jongio/colorfmt/tree"
)

type themeOptions struct {
	path    string
	create  bool
	force   bool
	preview bool
}

func newThemeCommand() *cobra.Command {
	opts := &themeOptions{}
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print, preview or create the theme file",
		Long: `Theme prints the effective theme as YAML. With --init it writes the
built-in theme to the user theme file (or to --theme) so it can be edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.create {
				return initTheme(opts)
			}
			return showTheme(opts)
		},
	}
	addThemeFlag(cmd.Flags(), &opts.path)
	cmd.Flags().BoolVar(&opts.create, "init", false, "write the built-in theme to the theme file")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing theme file with --init")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "render a sample document with the theme")
	cmd.MarkFlagsMutuallyExclusive("init", "preview")
	return cmd
}

func initTheme(opts *themeOptions) error {
	path := opts.path
	if path == "" {
		path = theme.UserPath()
	}
	if err := theme.WriteDefault(path, opts.force); err != nil {
		return err
	}
	cliout.Success("Wrote theme to %s", path)
	return nil
}

func showTheme(opts *themeOptions) error {
	th, source, err := theme.Resolve(opts.path)
	if err != nil {
		return err
	}
	if source == "" {
		source = "built-in"
	}

	if opts.preview {
		doc, err := tree.DecodeYAML(sampleDocument)
		if err != nil {
			return err
		}
		return renderDocument(cliout.Output(), doc, th)
	}

	data, err := th.Marshal()
	if err != nil {
		return err
	}
	cliout.Plain("# source: %s", source)
	_, err = fmt.Fprint(cliout.Output(), string(data))
	return err
}
