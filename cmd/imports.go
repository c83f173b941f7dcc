package cmd

import (
	"errors"

	"contexto/pkg/imports"

	"github.com/spf13/cobra"
)

var (
	deptreeOutput string
	usageOutput   string
)

// deptreeCmd writes the relative-import tree of every page.
var deptreeCmd = &cobra.Command{
	Use:   "deptree",
	Short: "Write the import tree of every page under src/pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return imports.DependencyTree(cmd.Context(), imports.Options{
			Root:    global.Root,
			Output:  deptreeOutput,
			Console: newConsole(cmd),
			Logger:  logger(),
		})
	},
}

// usageCmd reports which files import each source file.
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Report which files import each source file under src",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := imports.UsageReport(cmd.Context(), imports.Options{
			Root:    global.Root,
			Output:  usageOutput,
			Console: newConsole(cmd),
			Logger:  logger(),
		})
		if errors.Is(err, imports.ErrSourceNotFound) {
			return nil
		}
		return err
	},
}

func init() {
	deptreeCmd.Flags().StringVarP(&deptreeOutput, "output", "o", imports.DefaultTreeOutput, "Report file")
	usageCmd.Flags().StringVarP(&usageOutput, "output", "o", imports.DefaultUsageOutput, "Report file")
	RootCmd.AddCommand(deptreeCmd, usageCmd)
}
