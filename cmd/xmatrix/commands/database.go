package commands

import (
	"database/sql"

	"github.com/teranos/xmatrix/config"
	"github.com/teranos/xmatrix/db"
	"github.com/teranos/xmatrix/errors"
	"github.com/teranos/xmatrix/logger"
)

// openDatabase opens the record store database at the configured path
func openDatabase(cfg *config.Config) (*sql.DB, error) {
	database, err := db.Open(cfg.Database.Path, logger.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database at %s", cfg.Database.Path)
	}
	return database, nil
}

// openExistingDatabase opens the record store for the query path. A store
// that was never built is reported with guidance, not a driver error
// against a freshly created empty file.
func openExistingDatabase(cfg *config.Config) (*sql.DB, error) {
	if !db.Exists(cfg.Database.Path) {
		err := errors.Wrapf(errors.ErrStoreUnavailable, "no database at %s", cfg.Database.Path)
		return nil, errors.WithHint(err, "run 'xmatrix setup <matrix.xlsx>' first")
	}
	return openDatabase(cfg)
}
