// Package cmd implements the prettylog command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/prettylog/config"
	"github.com/philipp01105/prettylog/formatter"
	"github.com/philipp01105/prettylog/handler"
	"github.com/philipp01105/prettylog/handler/consolehandler"
	"github.com/philipp01105/prettylog/handler/filehandler"
	"github.com/philipp01105/prettylog/handler/multihandler"
	"github.com/philipp01105/prettylog/logger"
	"github.com/philipp01105/prettylog/pipeline"
	"github.com/philipp01105/prettylog/source"
)

type options struct {
	cfgFile string
	color   bool
	noColor bool
}

// loggedError marks an error already reported through the diagnostic
// logger
type loggedError struct {
	err error
}

func (e *loggedError) Error() string { return e.err.Error() }
func (e *loggedError) Unwrap() error { return e.err }

// Execute runs the root command until it finishes or the process
// receives SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return ExecuteContext(ctx, NewRootCmd())
}

// ExecuteContext runs cmd and prints its error to the command's error
// stream, unless the diagnostic logger already reported it.
func ExecuteContext(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	var logged *loggedError
	if err != nil && !errors.As(err, &logged) {
		cmd.PrintErrln("Error:", err)
	}
	return err
}

// NewRootCmd builds the prettylog command. Input, output and error
// streams default to the process streams and can be replaced with
// SetIn, SetOut and SetErr.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "prettylog [flags] [file...]",
		Short: "Pretty-print bunyan/pino style JSON logs",
		Long: `prettylog reads one JSON log record per line and prints it as a
human-readable, optionally colored, text block.

Lines that are not valid log records are echoed unchanged by default.

Examples:
  # format a service log
  myservice | prettylog

  # follow a file in UTC, dropping undecodable lines
  prettylog -f --utc --on-error skip /var/log/myservice.log`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./.prettylog.yaml or $HOME/.prettylog.yaml)")
	flags.BoolVar(&opts.color, "color", false, "always color the output")
	flags.BoolVar(&opts.noColor, "no-color", false, "never color the output")
	flags.String(config.KeyColorMode, "auto", "when to color the output (auto, always, never)")
	flags.Bool(config.KeyUTC, false, "print timestamps in UTC")
	flags.String(config.KeyTimezone, "", "print timestamps in this IANA time zone")
	flags.String(config.KeyOnError, pipeline.Echo.String(), "what to do with undecodable lines (echo, skip, abort)")
	flags.BoolP(config.KeyFollow, "f", false, "keep reading files as they grow")
	flags.Bool(config.KeyAsync, true, "write output from a background goroutine")
	flags.Int(config.KeyBufferSize, 1024, "async output queue size")
	flags.String(config.KeyLogLevel, "warn", "diagnostic log level (debug, info, warn, error, off)")
	flags.StringP(config.KeyOutput, "o", "", "write the formatted stream to this file instead of stdout")
	flags.Int64(config.KeyMaxSize, 0, "rotate the output file after this many bytes (0 = never)")
	flags.Int(config.KeyMaxBackups, 0, "number of rotated output files to keep (0 = all)")
	flags.Bool(config.KeyTee, false, "with --output, write to stdout as well")
	cmd.MarkFlagsMutuallyExclusive("color", "no-color", config.KeyColorMode)

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	v := config.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := config.ReadFile(v, opts.cfgFile); err != nil {
		return err
	}
	switch {
	case opts.color:
		v.Set(config.KeyColorMode, string(config.ColorAlways))
	case opts.noColor:
		v.Set(config.KeyColorMode, string(config.ColorNever))
	}

	cfg, err := config.Resolve(v)
	if err != nil {
		return err
	}
	if cfg.Follow && len(args) > 1 {
		return fmt.Errorf("--%s takes a single file, got %d", config.KeyFollow, len(args))
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log := logger.NewBuilder().
		WithWriter(errOut).
		WithLevel(cfg.LogLevel).
		WithColor(isTerminal(errOut)).
		Build()
	defer func() { _ = log.Sync() }()

	h, err := newHandler(cfg, out)
	if err != nil {
		return err
	}
	p := pipeline.New(h, log, cfg.OnError)

	if len(args) == 0 {
		args = []string{"-"}
	}
	runErr := processAll(cmd.Context(), cmd.InOrStdin(), p, args, cfg.Follow)
	err = multierr.Append(runErr, h.Close())

	res := p.Result()
	fields := []zap.Field{
		zap.Int("lines", res.Lines),
		zap.Int("decoded", res.Decoded),
		zap.Int("failed", res.Failed),
		zap.Int("blank", res.Blank),
	}
	if sp, ok := h.(handler.StatsProvider); ok {
		snap := sp.Stats()
		fields = append(fields,
			zap.Uint64("formatted", snap.FormattedTotal),
			zap.Uint64("echoed", snap.EchoedTotal),
			zap.Uint64("write_failures", snap.FailedTotal),
		)
	}
	log.Debug("finished", fields...)

	if err != nil && log.Core().Enabled(zapcore.ErrorLevel) {
		log.Error("prettylog failed", zap.Error(err))
		return &loggedError{err: err}
	}
	return err
}

// newHandler builds the output handler: stdout, the output file, or
// both when tee is set.
func newHandler(cfg *config.Config, out io.Writer) (handler.Handler, error) {
	console := func() handler.Handler {
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer: out,
			Formatter: formatter.NewPrettyFormatter(formatter.Config{
				Color:    cfg.UseColor(isTerminal(out)),
				Location: cfg.Location(),
			}),
			Async:      cfg.Async,
			BufferSize: cfg.BufferSize,
		})
	}
	if cfg.Output == "" {
		return console(), nil
	}

	file, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Filename:   cfg.Output,
		Formatter:  formatter.NewPrettyFormatter(formatter.Config{Location: cfg.Location()}),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	if !cfg.Tee {
		return file, nil
	}
	return multihandler.NewMultiHandler(console(), file), nil
}

func processAll(ctx context.Context, stdin io.Reader, p *pipeline.Processor, paths []string, follow bool) error {
	for _, path := range paths {
		if err := processOne(ctx, stdin, p, path, follow); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
	return nil
}

func processOne(ctx context.Context, stdin io.Reader, p *pipeline.Processor, path string, follow bool) error {
	if source.IsStdin(path) {
		return p.Run(ctx, stdin)
	}
	if follow {
		return p.Follow(ctx, path)
	}

	f, err := source.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := p.Run(ctx, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
