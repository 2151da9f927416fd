package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava12/minilexer/cursor"
	"github.com/ava12/minilexer/internal/logs"
	"github.com/ava12/minilexer/langdef"
	"github.com/ava12/minilexer/source"
)

type options struct {
	grammarFile string
	start       string
	text        string
	logLevel    string
	logFile     string

	log     *slog.Logger
	logSink io.Closer
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{log: logs.Discard()}

	cmd := &cobra.Command{
		Use:           "minilexer",
		Short:         "Check grammar files and run them against text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if e := applyEnvironment(cmd); e != nil {
				return e
			}
			return opts.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.grammarFile, "grammar", "g", "", "grammar file name")
	pf.StringVarP(&opts.start, "start", "s", "", "start production, default is the first one")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, or error")
	pf.StringVar(&opts.logFile, "log-file", "", "file to append JSON log records to")

	cmd.AddCommand(
		newCheckCmd(opts),
		newDescribeCmd(opts),
		newRegexCmd(opts),
		newMatchCmd(opts),
		newTokensCmd(opts),
	)
	return cmd, opts
}

// execute runs the command and closes the log file whether the command succeeds or not.
func execute(cmd *cobra.Command, opts *options) error {
	e := cmd.Execute()
	return errors.Join(e, opts.close())
}

func (o *options) setup(cmd *cobra.Command) error {
	if e := logs.SetLevel(o.logLevel); e != nil {
		return e
	}

	var sink io.Writer
	if o.logFile != "" {
		f, e := os.OpenFile(o.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
		if e != nil {
			return fmt.Errorf("open log file: %w", e)
		}
		o.logSink = f
		sink = f
	}

	o.log = logs.New(cmd.ErrOrStderr(), sink).With("command", cmd.Name())
	return nil
}

func (o *options) close() error {
	if o.logSink == nil {
		return nil
	}
	e := o.logSink.Close()
	o.logSink = nil
	return e
}

func (o *options) loadGrammar() (*langdef.Grammar, string, error) {
	if o.grammarFile == "" {
		return nil, "", errNoGrammar
	}

	started := time.Now()
	g, e := langdef.ParseFile(o.grammarFile)
	if e != nil {
		return nil, "", e
	}
	if g.First() == "" {
		return nil, "", fmt.Errorf("%s: %w", g.Name(), errEmptyGrammar)
	}

	start := o.start
	if start == "" {
		start = g.First()
	}
	if !g.Has(start) {
		_, e = g.Rule(start)
		return nil, "", e
	}

	o.log.Debug("grammar loaded", "file", o.grammarFile, "productions", len(g.Productions()),
		"start", start, "elapsed", time.Since(started))
	return g, start, nil
}

// input returns text given by -t flag, the content of file named by the only argument, or standard input.
func (o *options) input(cmd *cobra.Command, args []string) (*cursor.State, error) {
	if cmd.Flags().Changed("text") {
		return cursor.NewSource(source.New("", o.text)), nil
	}

	name := "stdin"
	var (
		text []byte
		e    error
	)
	if len(args) > 0 {
		name = args[0]
		text, e = os.ReadFile(name)
	} else {
		text, e = io.ReadAll(cmd.InOrStdin())
	}
	if e != nil {
		return nil, fmt.Errorf("read input: %w", e)
	}

	return cursor.NewSource(source.New(name, string(text))), nil
}

var (
	errNoGrammar    = errors.New("grammar file is not set, use --grammar flag or MINILEXER_GRAMMAR variable")
	errEmptyGrammar = errors.New("grammar has no productions")
)
