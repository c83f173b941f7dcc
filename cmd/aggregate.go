package cmd

import (
	"errors"

	"contexto/pkg/aggregate"
	"contexto/pkg/ignore"
	"contexto/pkg/profile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// aggregateOptions holds the flags of the dump commands.
type aggregateOptions struct {
	Output    string
	GitIgnore bool
	Tree      string
}

var (
	contextoFlags aggregateOptions
	pagesFlags    aggregateOptions
)

// pagesCmd dumps only src/pages.
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Dump only the views under src/pages",
	Long:  `Dump the .js, .jsx and .css files under src/pages into pages_completo.txt.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAggregate(cmd, profile.PagesName, &pagesFlags)
	},
}

func init() {
	addAggregateFlags(pagesCmd, &pagesFlags)
	RootCmd.AddCommand(pagesCmd)
}

func addAggregateFlags(cmd *cobra.Command, opts *aggregateOptions) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (defaults to the profile's)")
	cmd.Flags().BoolVar(&opts.GitIgnore, "gitignore", false, "Also skip paths matched by <root>/.gitignore")
	cmd.Flags().StringVar(&opts.Tree, "tree", "", "Also write a tree of the included files to this path")
}

func runAggregate(cmd *cobra.Command, name string, opts *aggregateOptions) error {
	log := logger()

	p, err := resolveProfile(name)
	if err != nil {
		return err
	}
	if opts.Output != "" {
		p.Output = opts.Output
	}

	rules := ignore.NewRules(p.IgnoreDirs, p.IgnoreFiles, log)
	if opts.GitIgnore {
		if err := rules.LoadGitIgnore(global.Root); err != nil {
			return err
		}
	}

	_, err = aggregate.Run(cmd.Context(), aggregate.Options{
		Root:    global.Root,
		Profile: p,
		Rules:   rules,
		Tree:    opts.Tree,
		Console: newConsole(cmd),
		Logger:  log,
	})
	if errors.Is(err, aggregate.ErrTargetNotFound) {
		// Already reported on the console.
		log.Debug("Nothing to dump", zap.String("profile", name))
		return nil
	}
	return err
}
