// Command xmatrix answers natural-language lookups against a MISMO
// UniqueID Matrix. The root command takes the query directly:
//
//	xmatrix "get the xpath for ID MC000001.00001"
//	xmatrix setup UniqueID-Matrix.xlsx
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/xmatrix/cmd/xmatrix/commands"
	"github.com/teranos/xmatrix/errors"
	"github.com/teranos/xmatrix/logger"
)

var (
	jsonOutput bool
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:   "xmatrix [QUERY...]",
	Short: "Natural-language lookups over the MISMO UniqueID Matrix",
	Long: `xmatrix resolves free-text questions about MISMO unique IDs, reference
IDs and container/datapoint XPaths against a local lookup database built
from the UniqueID Matrix workbook.

Run 'xmatrix setup <matrix.xlsx>' once to build the database, then query:

  xmatrix "get the xpath for ID MC000001.00001"
  xmatrix "show all instances of MC000001"
  xmatrix "find the ID for MESSAGE/DEAL_SETS/DEAL_SET"`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(jsonOutput, verbosity)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		query := strings.Join(args, " ")
		return commands.RunQuery(cmd.Context(), query, jsonOutput)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(commands.SetupCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.DBCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hints)
		}
		os.Exit(commands.ExitCode(err))
	}
}
