package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"contexto/pkg/console"
	"contexto/pkg/logging"
	"contexto/pkg/profile"
	"contexto/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	Root   string
	Config string
	Debug  bool
}

var global globalOptions

// RootCmd is the base command. Without a subcommand it writes the full
// project context dump.
var RootCmd = &cobra.Command{
	Use:   "contexto",
	Short: "contexto dumps a project's source files into a single text file",
	Long: `contexto walks a project tree, keeps the files whose extension is allowed,
and concatenates them into one text file with a "RUTA:" header per file,
ready to paste into an LLM chat.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Setup(global.Debug, version.AppName, version.Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAggregate(cmd, profile.ContextoName, &contextoFlags)
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&global.Root, "root", "r", ".", "Project root to read from")
	RootCmd.PersistentFlags().StringVarP(&global.Config, "config", "c", "", "Profile overrides file (default <root>/"+profile.DefaultConfigFile+" when present)")
	RootCmd.PersistentFlags().BoolVar(&global.Debug, "debug", false, "Enable development logging on stderr")

	addAggregateFlags(RootCmd, &contextoFlags)
}

// logger returns the process logger, falling back to a no-op one when the
// command runs without the persistent pre-run hook.
func logger() *zap.Logger {
	if logging.Logger == nil {
		return zap.NewNop()
	}
	return logging.Logger
}

// newConsole binds progress output to the command's streams.
func newConsole(cmd *cobra.Command) *console.Console {
	return console.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// resolveProfile loads optional overrides and returns the named profile.
func resolveProfile(name string) (profile.Profile, error) {
	path, explicit := global.Config, true
	if path == "" {
		path, explicit = filepath.Join(global.Root, profile.DefaultConfigFile), false
	}

	cfg, err := profile.NewLoader(logger()).Load(path, explicit)
	if err != nil {
		return profile.Profile{}, err
	}
	return cfg.Resolve(name)
}
