// Package cli holds the dirhop command tree: the TUI on the root command and
// scriptable rm, ls and df subcommands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dirhop/internal/config"
	"dirhop/internal/deletion"
	"dirhop/internal/eventbus"
	"dirhop/internal/logging"
)

// options are the persistent flags shared by every command
type options struct {
	configPath string
	logFile    string
	logLevel   string
}

// NewRootCommand builds the dirhop command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "dirhop [dir]",
		Short:         "dirhop is a keyboard-driven terminal file manager",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runTUI(cmd.Context(), opts, dir)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newRmCommand(opts), newLsCommand(opts), newDfCommand(opts))
	return cmd
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// load reads the config file, applies flag overrides and starts logging.
// bus may be nil.
func (o *options) load(bus eventbus.EventBus) (*config.Config, config.Service, error) {
	svc := config.NewService(o.configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}

	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	err = logging.Init(logging.Config{
		FilePath:   cfg.Log.File,
		Level:      logging.ParseLevel(cfg.Log.Level),
		Format:     logging.ParseFormat(cfg.Log.Format),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("starting logger: %w", err)
	}
	return cfg, svc, nil
}

// newDeleter builds the escalating deleter the config asks for
func newDeleter(cfg *config.Config, noElevate bool) *deletion.Deleter {
	opts := []deletion.Option{
		deletion.WithStageTimeout(cfg.Delete.StageTimeout.Duration),
		deletion.WithLogger(logging.Get().With("component", "deletion")),
	}
	if noElevate || !cfg.Delete.Elevate {
		opts = append(opts, deletion.WithRemover(deletion.NoElevation{}))
	}
	return deletion.New(opts...)
}

// printer writes colored lines to a command's output
type printer struct {
	w     io.Writer
	ok    *color.Color
	fail  *color.Color
	dir   *color.Color
	label *color.Color
	dim   *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:     w,
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed, color.Bold),
		dir:   color.New(color.FgBlue, color.Bold),
		label: color.New(color.FgCyan),
		dim:   color.New(color.Faint),
	}
}
