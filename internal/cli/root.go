package cli

import (
	"fmt"

	"github.com/GriffinCanCode/AgentOS/desktop/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/desktop/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/AgentOS/desktop/internal/logging"
	"github.com/GriffinCanCode/AgentOS/desktop/internal/providers/filesystem"
	"github.com/GriffinCanCode/AgentOS/desktop/internal/shared/paths"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// state holds what every subcommand needs. It is populated by the root
// command's PersistentPreRunE, after flags are parsed.
type state struct {
	cfg      *config.Config
	logger   *logging.Logger
	manager  *paths.Manager
	registry *prometheus.Registry

	logLevel    string
	logDev      bool
	showMetrics bool
}

// Execute runs pathctl with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the pathctl command tree.
func NewRootCommand() *cobra.Command {
	rt := &state{}

	root := &cobra.Command{
		Use:   "pathctl",
		Short: "Inspect and prepare AgentOS desktop paths",
		Long: `pathctl resolves home-aliased paths, checks existence, creates directories
and prepares the per-user application tree (~/.agentos by default).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.finish(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&rt.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	flags.BoolVar(&rt.logDev, "log-dev", false, "colored console logs; overrides LOG_DEV")
	flags.BoolVar(&rt.showMetrics, "metrics", false, "print path metrics to stderr after the command")

	root.AddCommand(
		newResolveCmd(rt),
		newCanonicalCmd(rt),
		newExistsCmd(rt),
		newMkdirCmd(rt),
		newCwdCmd(rt),
		newChdirCmd(rt),
		newLayoutCmd(rt),
	)
	return root
}

func (rt *state) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = rt.logLevel
	}
	if cmd.Flags().Changed("log-dev") {
		cfg.Logging.Development = rt.logDev
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	var opts []paths.Option
	if cfg.Metrics.Enabled {
		rt.registry = prometheus.NewRegistry()
		opts = append(opts, paths.WithObserver(monitoring.NewPathMetrics(rt.registry, cfg.Metrics.Namespace)))
	}

	provider := filesystem.NewLocal(
		filesystem.WithHome(cfg.Paths.Home),
		filesystem.WithDirPerm(cfg.Paths.DirPerm.Perm()),
	)

	rt.cfg = cfg
	rt.logger = logger
	rt.manager = paths.NewManager(provider, logger, opts...)
	return nil
}

func (rt *state) finish(cmd *cobra.Command) error {
	// Sync on a terminal stderr reports EINVAL on some platforms.
	_ = rt.logger.Sync()

	if !rt.showMetrics || rt.registry == nil {
		return nil
	}
	families, err := rt.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
			return err
		}
	}
	return nil
}

// resolve expands an aliased argument against the home directory.
func (rt *state) resolve(arg string) paths.FilePath {
	return rt.manager.ResolveAliasedPath(arg, rt.manager.HomePath())
}
