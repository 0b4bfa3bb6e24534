package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/lsf/internal/colors"
	"github.com/harrison/lsf/internal/config"
	"github.com/harrison/lsf/internal/executable"
	"github.com/harrison/lsf/internal/fsys"
	"github.com/harrison/lsf/internal/interrupt"
	"github.com/harrison/lsf/internal/layout"
	"github.com/harrison/lsf/internal/lister"
	"github.com/harrison/lsf/internal/logger"
	"github.com/harrison/lsf/internal/models"
	"github.com/harrison/lsf/internal/sink"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// runtime carries the process-level collaborators of one command run.
type runtime struct {
	fs        fsys.Supplier
	lookupEnv func(key string) (string, bool)
	notify    func(f *interrupt.Flag) (stop func())
}

func defaultRuntime() runtime {
	return runtime{
		fs:        fsys.OS{},
		lookupEnv: os.LookupEnv,
		notify:    interrupt.Notify,
	}
}

// NewRootCommand creates and returns the root cobra command for lsf
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultRuntime())
}

func newRootCommand(rt runtime) *cobra.Command {
	opts := &models.Options{}

	cmd := &cobra.Command{
		Use:   "lsf [flags] [path...]",
		Short: "List directory contents",
		Long: `lsf lists files and directories in a multi-column grid, one name
per line, or a long format with attributes, size and modification time.

Paths may contain wildcards (*, ? and [...]) and surrounding double quotes.
With no path the current directory is listed.

Colors come from LS_COLORS (fi, di, sy, hi, ex, ro, ec keys) and executable
suffixes from PATHEXT. Both fall back to the ls_colors and pathext keys of
the configuration file when unset.

Examples:
  lsf                  # grid listing of the current directory
  lsf -la src          # long format including dot names
  lsf -R -1 docs       # recursive, breadth first, one name per line
  lsf -tr "*.log"      # matching logs, newest first`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rt, *opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolP("long", "l", false, "Use the long listing format")
	flags.BoolP("all", "a", false, "Include names starting with a dot")
	flags.BoolP("one-per-line", "1", false, "List one name per line")
	flags.BoolP("recursive", "R", false, "List subdirectories breadth first")
	flags.BoolVarP(&opts.Reverse, "reverse", "r", false, "Reverse the sort order")
	sortFlag(cmd, &opts.SortKey, "time", "t", models.SortByTime, "Sort by modification time, oldest first")
	sortFlag(cmd, &opts.SortKey, "size", "S", models.SortBySize, "Sort by size, largest first")
	flags.Int("width", 0, "Screen width for the grid layout (0 = ask the terminal)")
	flags.String("config", "", "Path to config file (default: $LSF_CONFIG or <config dir>/lsf/config.yaml)")
	flags.String("log-level", "", "Diagnostic log level: trace, debug, info, warn, error")

	// An unknown option is reported on one line and the command still
	// succeeds without listing anything.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		lister.Report(sink.New(c.ErrOrStderr()), err.Error())
		return nil
	})

	return cmd
}

// runList implements the root command logic
func runList(cmd *cobra.Command, rt runtime, opts models.Options, args []string) error {
	out := sink.New(cmd.OutOrStdout())
	errOut := sink.New(cmd.ErrOrStderr())

	cfg, cfgErr := loadConfig(cmd)
	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	if cfgErr != nil {
		log.LogWarn(cfgErr.Error())
	}
	log.LogDebug(fmt.Sprintf("log level %s, width override %d", log.Level(), cfg.Width))

	opts.Flags = collectFlags(cmd)

	raw, set := rt.lookupEnv(colors.EnvVar)
	if !set && cfg.LSColors != "" {
		raw, set = cfg.LSColors, true
	}
	table, err := colors.Configure(raw, set)
	if err != nil {
		lister.Report(errOut, err.Error())
	}

	pathext, set := rt.lookupEnv(executable.EnvVar)
	if !set && cfg.PathExt != "" {
		pathext, set = cfg.PathExt, true
	}
	classifier := executable.New(pathext, set, cfg.Suffixes)

	width := layout.ScreenWidth(cfg.Width, out.Width)
	log.LogDebug(fmt.Sprintf("screen width %d", width))

	flag := &interrupt.Flag{}
	if rt.notify != nil {
		stop := rt.notify(flag)
		defer stop()
	}

	l := &lister.Lister{
		FS:        rt.fs,
		Renderer:  layout.NewRenderer(table, classifier, width),
		Options:   opts,
		Out:       out,
		Err:       errOut,
		Interrupt: flag,
		Log:       log,
	}
	if err := l.Run(args); err != nil {
		var notFound *lister.NotFoundError
		if errors.As(err, &notFound) || errors.Is(err, lister.ErrInterrupted) {
			// Already reported on the error stream.
			log.LogDebug(fmt.Sprintf("listing ended early: %v", err))
		} else {
			log.LogError(err.Error())
		}
	}
	return nil
}

// loadConfig reads the configuration file and applies flag overrides. The
// returned config is always usable; the error describes what was ignored.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")

	var problem error
	cfg := config.DefaultConfig()
	if path, err := config.ResolvePath(explicit); err != nil {
		problem = err
	} else if loaded, err := config.LoadConfig(path); err != nil {
		problem = err
	} else if err := loaded.Validate(); err != nil {
		problem = fmt.Errorf("config %s: %w", path, err)
	} else {
		cfg = loaded
	}

	var width *int
	var level *string
	if cmd.Flags().Changed("width") {
		w, _ := cmd.Flags().GetInt("width")
		width = &w
	}
	if cmd.Flags().Changed("log-level") {
		l, _ := cmd.Flags().GetString("log-level")
		level = &l
	}
	cfg.MergeWithFlags(width, level)

	if problem == nil {
		if err := cfg.Validate(); err != nil {
			problem = fmt.Errorf("flags: %w", err)
		}
	}
	return cfg, problem
}

func collectFlags(cmd *cobra.Command) models.Flag {
	var f models.Flag
	for name, bit := range map[string]models.Flag{
		"long":         models.FlagLong,
		"all":          models.FlagAll,
		"one-per-line": models.FlagOnePerLine,
		"recursive":    models.FlagRecursive,
	} {
		if on, _ := cmd.Flags().GetBool(name); on {
			f |= bit
		}
	}
	return f
}
