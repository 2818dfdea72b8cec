// Package cli wires the logcli command line: argument expansion, config
// and criteria assembly, and the per-file run loop.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TimelordUK/logcli/internal/config"
)

// ExitFailure is returned for every error: bad arguments, unreadable
// files and config problems alike.
const ExitFailure = 2

// BuildInfo is set via ldflags in main
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type options struct {
	keywords  []string
	lineRange []string
	head      countFlag
	tail      countFlag
	latest    countFlag
	all       bool
	any       bool

	color      string
	syntax     bool
	pager      bool
	exportDir  string
	configPath string
	logLevel   string
}

// Execute runs logcli with args (without the program name)
func Execute(args []string, stdout, stderr io.Writer, info BuildInfo) error {
	cmd := NewRootCommand(stdout, stderr, info)
	cmd.SetArgs(ExpandArgs(args))
	return cmd.Execute()
}

// ExitCode maps the result of Execute to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return ExitFailure
}

// NewRootCommand builds the logcli command
func NewRootCommand(stdout, stderr io.Writer, info BuildInfo) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "logcli [flags] <path>...",
		Short: "Print selected lines of log files",
		Long: `logcli prints a selection of the lines of one or more text files with
zero-padded, 0-based line numbers.

Selection is applied in a fixed order: --head/--tail, then --line-range,
then --keywords (combined with --all or --any), then --latest.`,
		Example: `  logcli app.log --keywords error timeout --any
  logcli app.log --tail 100 --keywords ERROR --latest 3
  logcli a.log b.log --line-range 10 20`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringArrayVar(&opts.keywords, "keywords", nil, "keep lines containing these words (values run until the next flag)")
	flags.StringArrayVar(&opts.lineRange, "line-range", nil, "keep original lines <a> to <b> inclusive; one value selects a single line")
	flags.Var(&opts.head, "head", "start from the first n lines")
	flags.Var(&opts.tail, "tail", "start from the last n lines")
	flags.BoolVar(&opts.all, "all", false, "a line must contain every keyword (default)")
	flags.BoolVar(&opts.any, "any", false, "a line must contain at least one keyword")
	flags.Var(&opts.latest, "latest", "keep only the last n selected lines")
	for _, name := range []string{"head", "tail", "latest"} {
		flags.Lookup(name).NoOptDefVal = useDefault
	}

	flags.StringVar(&opts.color, "color", "", "color mode: auto, always or never")
	flags.BoolVar(&opts.syntax, "syntax", false, "syntax highlight source-like files")
	flags.BoolVar(&opts.pager, "pager", false, "browse the selection interactively")
	flags.StringVar(&opts.exportDir, "export", "", "also write each file's selected lines to `dir`")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.GetConfigPath()+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "diagnostic log level on stderr: debug, info, warn, error")

	cmd.AddCommand(versionCmd(info))
	cmd.AddCommand(configCmd(opts))

	return cmd
}

func versionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "logcli version %s\n", info.Version)
			fmt.Fprintf(out, "  commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  built:  %s\n", info.Date)
		},
	}
}

// loadConfig resolves the config with flags over env over file
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	env, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg *config.Config
	if path := firstNonEmpty(opts.configPath, env.Config); path != "" {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("config: %w", statErr)
		}
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if err := env.Apply(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Display.Color = opts.color
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.syntax {
		cfg.Display.Syntax = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
