package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jamesainslie/seek/pkg/seek/config"
	"github.com/jamesainslie/seek/pkg/seek/finder"
	"github.com/jamesainslie/seek/pkg/seek/logging"
	"github.com/jamesainslie/seek/pkg/seek/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = logging.Get("cli")

// app holds the state shared by the command tree: the viper instance flags
// are bound to, the loaded configuration, and per-invocation filter flags.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config

	types   []string
	names   []string
	verbose bool
	quiet   bool
}

// newRootCmd builds the seek command tree.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "seek [PATH...]",
		Short: "Find files and directories by type and name",
		Long: `Seek walks each PATH depth-first and prints every entry that passes the
type and name filters, one per line, in traversal order.

With no PATH, seek searches the current directory (or default_path from the
config file). Unreadable entries are reported on stderr and skipped.`,
		Example: `  seek                          # everything below .
  seek -t f src                 # regular files only
  seek -t d,l /etc              # directories and symlinks
  seek -n '\.go$' -n '^Makefile$'  # names matching either pattern
  seek -e .git -e node_modules  # prune subtrees
  seek -o null -t f | xargs -0 wc -l
  seek -o template --template '{{indent .Depth "  "}}{{.Name}}'`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSeek,
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&a.types, "type", "t", nil, "entry type to match: d (directory), f (file), l (symlink); repeat or comma-separate (-t f,d); in '-t f d' the d is a PATH")
	flags.StringArrayVarP(&a.names, "name", "n", nil, "regular expression matched against base names; repeatable, any may match")
	flags.StringSliceP("exclude", "e", nil, "glob of names or paths to prune; repeatable")
	flags.StringP("output", "o", config.DefaultOutput, fmt.Sprintf("output format (%s)", joinFormats()))
	flags.String("template", "", "text/template for -o template, e.g. '{{.Type.Token}} {{.Path}}'")
	flags.String("color", config.DefaultColor, "colorize output: auto, always, never")
	flags.Bool("strict", false, "exit with status 1 if any entry could not be read")
	flags.Bool("stats", false, "print a summary line to stderr when done")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&a.cfgFile, "config", "", "config file (default: ~/.config/seek/config.yaml)")
	persistent.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	persistent.BoolVarP(&a.quiet, "quiet", "q", false, "suppress diagnostics")

	_ = a.v.BindPFlag("exclude", flags.Lookup("exclude"))
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("template", flags.Lookup("template"))
	_ = a.v.BindPFlag("color", flags.Lookup("color"))
	_ = a.v.BindPFlag("strict", flags.Lookup("strict"))
	_ = a.v.BindPFlag("stats", flags.Lookup("stats"))

	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads configuration and initializes logging for every command.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.Config{
		Level:      cfg.Logging.Level,
		Path:       cfg.Logging.Path,
		Components: cfg.Logging.Components,
		Console:    cmd.ErrOrStderr(),
	}
	if a.verbose {
		logCfg.ConsoleLevel = "debug"
	}
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}
	return nil
}

// runSeek runs the traversal-filter pipeline over the given roots.
func (a *app) runSeek(cmd *cobra.Command, args []string) error {
	fcfg, err := buildConfig(a.cfg, args, a.types, a.names)
	if err != nil {
		return err
	}

	colorMode, err := output.ParseColorMode(a.cfg.Color)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	formatter, err := output.Get(a.cfg.Output, output.Options{
		Color:    colorMode.Enabled(fileOf(stdout)),
		Template: a.cfg.Template,
	})
	if err != nil {
		return err
	}

	diag := output.NewDiagnostics(stderr, output.DiagnosticsOptions{
		Quiet: a.quiet,
		Color: colorMode.Enabled(fileOf(stderr)),
	})

	logger.Debug("starting run",
		"paths", fcfg.Paths(),
		"types", fcfg.Types().String(),
		"names", len(fcfg.Names()),
		"exclude", len(fcfg.Exclude()),
		"output", a.cfg.Output)

	f := finder.New(finder.Options{
		Emitter:  output.NewEmitter(stdout, formatter),
		Reporter: diag,
	})
	stats, err := f.Run(cmd.Context(), fcfg)

	if a.cfg.Stats {
		diag.Summary(stats)
	}
	if err != nil {
		return err
	}

	if a.cfg.Strict && stats.Errors > 0 {
		return fmt.Errorf("%w: %d %s", finder.ErrTraversal, stats.Errors, pluralize(stats.Errors, "entry", "entries"))
	}
	return nil
}

// fileOf returns w as an *os.File for terminal detection, or nil.
func fileOf(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

func pluralize(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
