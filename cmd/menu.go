package cmd

import (
	"contexto/pkg/aggregate"
	"contexto/pkg/profile"

	"github.com/spf13/cobra"
)

var menuOutput string

// menuCmd collects the sidebar pages in menu order.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Collect the pages linked from the sidebar menu",
	Long: `Concatenate the fixed list of sidebar pages into archivos_del_menu.txt,
marking the ones that do not exist yet.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveProfile(profile.MenuName)
		if err != nil {
			return err
		}
		if menuOutput != "" {
			p.Output = menuOutput
		}

		_, err = aggregate.Collect(cmd.Context(), aggregate.Options{
			Root:    global.Root,
			Profile: p,
			Console: newConsole(cmd),
			Logger:  logger(),
		})
		return err
	},
}

func init() {
	menuCmd.Flags().StringVarP(&menuOutput, "output", "o", "", "Output file (default archivos_del_menu.txt)")
	RootCmd.AddCommand(menuCmd)
}
