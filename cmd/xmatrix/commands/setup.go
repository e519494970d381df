package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/xmatrix/config"
	"github.com/teranos/xmatrix/errors"
	"github.com/teranos/xmatrix/logger"
	"github.com/teranos/xmatrix/matrix"
)

// SetupCmd builds the record store from a matrix workbook
var SetupCmd = &cobra.Command{
	Use:   "setup <matrix.xlsx>",
	Short: "Build the lookup database from a matrix workbook",
	Long: `Reads the configured sheets from a MISMO UniqueID Matrix workbook and
rebuilds the lookup database from scratch. Any previously imported data
is replaced in a single transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSetup(args[0]); err != nil {
			// Mark for exit-code mapping without losing the chain
			return errors.Mark(err, ErrSetupFailed)
		}
		return nil
	},
}

func runSetup(workbookPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	database, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	store := matrix.NewStore(database, logger.Named("store"))
	importer := matrix.NewImporter(store, cfg.Import.Sheets, logger.Named("import"))

	count, err := importer.Run(workbookPath)
	if err != nil {
		return errors.Wrapf(err, "import of %s failed", workbookPath)
	}

	pterm.Success.Printfln("Imported %d records into %s", count, cfg.Database.Path)
	return nil
}
