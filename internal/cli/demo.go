// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/jongio/colorfmt/cliout"
	"github.com/jongio/colorfmt/display"
	"github.com/jongio/colorfmt/tree"
)

//go:embed sample.yaml
var sampleDocument []byte

// showcase is one entry of the demo command.
type showcase struct {
	name   string
	title  string
	render func(w io.Writer, colored bool) error
}

// preset returns the colored or monochrome default of F.
func preset[F display.Preset[F]](colored bool, indent uint16) F {
	if colored {
		return display.Colored[F](indent)
	}
	return display.Monochrome[F](indent)
}

func showcases() []showcase {
	return []showcase{
		{"bool", "Boolean", func(w io.Writer, c bool) error {
			return display.Render(w, true, preset[display.BoolFormat](c, 0))
		}},
		{"char", "Character", func(w io.Writer, c bool) error {
			return display.Render(w, 'λ', preset[display.CharFormat](c, 0))
		}},
		{"string", "String", func(w io.Writer, c bool) error {
			f := preset[display.StringFormat](c, 0)
			f.Delimiters = display.Quotes
			return display.Render(w, "hello, world", f)
		}},
		{"number", "Numbers", func(w io.Writer, c bool) error {
			if err := display.Render(w, int8(-42), preset[display.NumFormat[int8]](c, 0)); err != nil {
				return err
			}
			if err := display.WriteString(w, " "); err != nil {
				return err
			}
			if err := display.Render(w, uint64(18446744073709551615), preset[display.NumFormat[uint64]](c, 0)); err != nil {
				return err
			}
			if err := display.WriteString(w, " "); err != nil {
				return err
			}
			return display.Render(w, 3.25, preset[display.NumFormat[float64]](c, 0))
		}},
		{"slice", "Nested slice", func(w io.Writer, c bool) error {
			f := preset[display.SliceFormat[[]int, display.SliceFormat[int, display.NumFormat[int]]]](c, 0)
			f.IntersperseNewlines = 2
			f.Item = preset[display.SliceFormat[int, display.NumFormat[int]]](c, 1)
			return display.Render(w, [][]int{{1, 2}, {3}}, f)
		}},
		{"map", "Sorted map", func(w io.Writer, c bool) error {
			f := preset[display.SortedMapFormat[string, int, display.StringFormat, display.NumFormat[int]]](c, 0)
			return display.Render(w, map[string]int{"apples": 3, "pears": 0, "figs": 12}, f)
		}},
		{"linked", "Insertion-ordered map", func(w io.Writer, c bool) error {
			m := orderedmap.New[string, bool]()
			m.Set("zeta", true)
			m.Set("alpha", false)
			m.Set("mid", true)
			f := preset[display.LinkedMapFormat[string, bool, display.StringFormat, display.BoolFormat]](c, 0)
			return display.Render(w, m, f)
		}},
		{"set", "Sorted set", func(w io.Writer, c bool) error {
			f := preset[display.SortedSetFormat[string, display.StringFormat]](c, 0)
			return display.Render(w, display.NewSet("red", "green", "blue"), f)
		}},
		{"deque", "Deque", func(w io.Writer, c bool) error {
			d := display.NewDeque(3, 4)
			d.PushFront(2)
			d.PushFront(1)
			f := preset[display.DequeFormat[int, display.NumFormat[int]]](c, 0)
			f.DividerCount = 10
			return display.Render(w, d, f)
		}},
		{"result", "Result", func(w io.Writer, c bool) error {
			f := preset[display.ResultFormat[int, string, display.NumFormat[int], display.StringFormat]](c, 0)
			if err := display.Render(w, display.Ok[int, string](200), f); err != nil {
				return err
			}
			if err := display.WriteNewlines(w, 1); err != nil {
				return err
			}
			return display.Render(w, display.Err[int]("connection refused"), f)
		}},
		{"document", "Document", func(w io.Writer, c bool) error {
			doc, err := tree.DecodeYAML(sampleDocument)
			if err != nil {
				return err
			}
			return display.Render(w, doc, preset[tree.Format](c, 0))
		}},
	}
}

func showcaseNames() []string {
	var names []string
	for _, s := range showcases() {
		names = append(names, s.name)
	}
	return names
}

func newDemoCommand() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "demo [name...]",
		Short: "Show how each kind of value is rendered",
		Long:  "Demo renders a fixed set of values with the default styles. Names select entries: " + strings.Join(showcaseNames(), ", ") + ".",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return showcaseNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range showcaseNames() {
					cliout.Plain("%s", name)
				}
				return nil
			}
			return runDemo(cliout.Output(), args)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list the showcase names")
	return cmd
}

func runDemo(w io.Writer, names []string) error {
	all := showcases()
	for _, name := range names {
		if !slices.ContainsFunc(all, func(s showcase) bool { return s.name == name }) {
			return fmt.Errorf("unknown showcase %q (valid: %s)", name, strings.Join(showcaseNames(), ", "))
		}
	}

	colored := cliout.ColorEnabled()
	for _, s := range all {
		if len(names) > 0 && !slices.Contains(names, s.name) {
			continue
		}
		cliout.Section(s.title)
		if err := s.render(w, colored); err != nil {
			return err
		}
		if err := display.WriteNewlines(w, 1); err != nil {
			return err
		}
	}
	return nil
}
