// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jongio/colorfmt/cliout"
	"github.com/jongio/colorfmt/display"
	"github.com/jongio/colorfmt/fileutil"
	"github.com/jongio/colorfmt/logutil"
	"github.com/jongio/colorfmt/theme"
	"github.com/jongio/colorfmt/tree"
)

type renderOptions struct {
	syntax tree.Syntax
	indent uint16
	theme  string
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a YAML, JSON or TOML document",
		Long: `Render decodes a document and prints it as an indented tree.

The syntax is taken from --input, else from the file extension. Standard
input ("-" or no argument) is read as YAML unless --input says otherwise.`,
		Example: `  colorfmt render config.yaml
  kubectl get pod web -o json | colorfmt render -i json
  colorfmt render pyproject.toml --theme mono.yaml --color never`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fileutil.StdinPath
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(cmd.InOrStdin(), path, opts, cmd.Flags().Changed("indent"))
		},
	}
	addRenderFlags(cmd.Flags(), opts)
	return cmd
}

func runRender(stdin io.Reader, path string, opts *renderOptions, indentSet bool) error {
	log := logutil.NewLogger("cli").WithOperation("render").WithInput(path)

	syntax, err := resolveSyntax(path, opts.syntax)
	if err != nil {
		return err
	}

	data, err := fileutil.ReadInput(path, stdin)
	if err != nil {
		return err
	}
	doc, err := tree.Decode(data, syntax)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	th, source, err := theme.Resolve(opts.theme)
	if err != nil {
		return err
	}
	if indentSet {
		th.Indent = opts.indent
	}
	log.Debug("rendering", "syntax", string(syntax), "theme", source, "color", cliout.ColorEnabled())

	return renderDocument(cliout.Output(), doc, th)
}

// resolveSyntax picks the syntax of path: the explicit one when set, YAML
// for stdin, else the file extension's.
func resolveSyntax(path string, explicit tree.Syntax) (tree.Syntax, error) {
	if explicit != "" {
		return explicit, nil
	}
	if path == fileutil.StdinPath {
		return tree.YAML, nil
	}
	name, err := fileutil.DetectFormat(path)
	if err != nil {
		return "", fmt.Errorf("%w (use --input to choose a syntax)", err)
	}
	return tree.ParseSyntax(name)
}

// renderDocument writes doc styled by th, followed by a newline.
func renderDocument(w io.Writer, doc tree.Value, th *theme.Theme) error {
	f, err := th.Format(cliout.ColorEnabled())
	if err != nil {
		return err
	}
	if err := display.Render(w, doc, f); err != nil {
		return err
	}
	return display.WriteNewlines(w, 1)
}
