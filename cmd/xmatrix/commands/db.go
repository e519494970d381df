package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/xmatrix/config"
	"github.com/teranos/xmatrix/display"
	"github.com/teranos/xmatrix/errors"
	"github.com/teranos/xmatrix/logger"
	"github.com/teranos/xmatrix/matrix"
)

// DBCmd groups record store subcommands
var DBCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect the lookup database",
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record counts by source sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		database, err := openExistingDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		store := matrix.NewStore(database, logger.Named("store"))

		total, err := store.Count(cmd.Context())
		if err != nil {
			return err
		}
		bySheet, err := store.CountBySheet(cmd.Context())
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return display.OutputJSON(map[string]interface{}{
				"path":     cfg.Database.Path,
				"total":    total,
				"by_sheet": bySheet,
			})
		}

		fmt.Printf("Database: %s\n", cfg.Database.Path)
		fmt.Printf("Records:  %d\n", total)
		for sheet, count := range bySheet {
			fmt.Printf("  %s: %d\n", sheet, count)
		}
		return nil
	},
}

func init() {
	DBCmd.AddCommand(dbStatsCmd)
}
