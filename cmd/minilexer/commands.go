package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/ava12/minilexer/lexer"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse and verify grammar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, e := opts.loadGrammar()
			if e != nil {
				return e
			}
			if e = g.Verify(start); e != nil {
				return e
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productions, start %s\n", g.Name(), len(g.Productions()), start)
			return nil
		},
	}
}

func newDescribeCmd(opts *options) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print compiled productions, all of them if no start production is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, e := opts.loadGrammar()
			if e != nil {
				return e
			}

			names := g.Productions()
			if opts.start != "" {
				names = []string{start}
			}
			if pattern != "" {
				m, e := glob.Compile(pattern)
				if e != nil {
					return fmt.Errorf("match pattern: %w", e)
				}
				names = slices.DeleteFunc(names, func(name string) bool {
					return !m.Match(name)
				})
			}

			for _, name := range names {
				r, e := g.Definition(name)
				if e != nil {
					return e
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, r)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "match", "m", "", "glob pattern for production names")
	return cmd
}

func newRegexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "regex",
		Short: "Print regular expression equivalent to a non-recursive production",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, e := opts.loadGrammar()
			if e != nil {
				return e
			}

			r, e := g.Inline(start)
			if e != nil {
				return e
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Regex())
			return nil
		},
	}
}

func newMatchCmd(opts *options) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: "Match start production against text and print matched part",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, e := opts.loadGrammar()
			if e != nil {
				return e
			}
			s, e := opts.input(cmd, args)
			if e != nil {
				return e
			}

			r, _ := g.Rule(start)
			started := time.Now()
			matched, e := r.Consume(s)
			if e != nil {
				opts.log.Info("no match", "start", start, "error", e)
				return e
			}

			if full {
				s.SkipWhitespace()
				if !s.IsEOF() {
					return s.Unexpected("end of input")
				}
			}

			opts.log.Info("matched", "start", start, "length", utf8.RuneCountInString(matched),
				"elapsed", time.Since(started))
			fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(matched))
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "require the whole text (except trailing whitespace) to match")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "input text")
	return cmd
}

func newTokensCmd(opts *options) *cobra.Command {
	var (
		kinds  []string
		format string
	)

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Split text into tokens defined by productions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(formats, format) {
				return fmt.Errorf("unknown format %q, expecting one of %s", format, strings.Join(formats, ", "))
			}

			g, _, e := opts.loadGrammar()
			if e != nil {
				return e
			}
			rec, e := g.Recognizer(kinds...)
			if e != nil {
				return e
			}
			s, e := opts.input(cmd, args)
			if e != nil {
				return e
			}

			tz := lexer.New(s, rec)
			records := []tokenRecord{}
			for token := range tz.Tokens() {
				line, col := s.Source().LineCol(token.Start)
				records = append(records, tokenRecord{line, col, token.Kind, token.Text})
			}
			opts.log.Info("tokenized", "tokens", len(records))

			if e = writeTokens(cmd.OutOrStdout(), format, records); e != nil {
				return e
			}
			if !tz.AtEnd() {
				return s.Unexpected("token")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&kinds, "token", "k", nil, "token production name, earlier names win ties")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "input text")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: "+strings.Join(formats, ", "))
	_ = cmd.MarkFlagRequired("token")
	return cmd
}
