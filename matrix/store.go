package matrix

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/teranos/xmatrix/errors"
)

// Query constants
const (
	recordDropQuery = `DROP TABLE IF EXISTS xpath_records`

	recordCreateQuery = `
		CREATE TABLE xpath_records (
			sheet_source TEXT NOT NULL,
			unique_id    TEXT NOT NULL,
			name         TEXT,
			xpath        TEXT,
			reference_id TEXT,
			all_versions TEXT
		)`

	recordReferenceIndexQuery = `
		CREATE INDEX idx_xpath_records_reference_id ON xpath_records(reference_id)`

	recordInsertQuery = `
		INSERT INTO xpath_records (sheet_source, unique_id, name, xpath, reference_id, all_versions)
		VALUES (?, ?, ?, ?, ?, ?)`

	recordSelectColumns = `sheet_source, unique_id, name, xpath, reference_id, all_versions`

	// Duplicate unique IDs are not rejected at the storage layer; the
	// sheet_source ordering makes the single-result lookup deterministic.
	recordByUniqueIDQuery = `
		SELECT ` + recordSelectColumns + ` FROM xpath_records
		WHERE LOWER(unique_id) = ?
		ORDER BY sheet_source, unique_id
		LIMIT 1`

	recordByXPathQuery = `
		SELECT ` + recordSelectColumns + ` FROM xpath_records
		WHERE LOWER(xpath) = ?
		ORDER BY unique_id`

	recordByReferenceIDQuery = `
		SELECT ` + recordSelectColumns + ` FROM xpath_records
		WHERE reference_id = ?
		ORDER BY unique_id`

	recordCountQuery = `SELECT COUNT(*) FROM xpath_records`

	recordCountBySheetQuery = `
		SELECT sheet_source, COUNT(*) FROM xpath_records
		GROUP BY sheet_source
		ORDER BY sheet_source`
)

// Store persists Records in SQLite and answers the three lookup shapes.
// Records are written once by Rebuild and read-only afterwards.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewStore creates a record store on an open database handle
func NewStore(db *sql.DB, logger *zap.SugaredLogger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// Rebuild atomically replaces all stored records: the table is dropped,
// recreated and repopulated inside a single transaction, so a failed
// import never leaves partial state behind.
func (s *Store) Rebuild(records []*Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin rebuild transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(recordDropQuery); err != nil {
		return errors.Wrap(err, "failed to drop xpath_records")
	}
	if _, err := tx.Exec(recordCreateQuery); err != nil {
		return errors.Wrap(err, "failed to create xpath_records")
	}
	if _, err := tx.Exec(recordReferenceIndexQuery); err != nil {
		return errors.Wrap(err, "failed to create reference_id index")
	}

	stmt, err := tx.Prepare(recordInsertQuery)
	if err != nil {
		return errors.Wrap(err, "failed to prepare record insert")
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(
			rec.SheetSource,
			rec.UniqueID,
			rec.Name,
			rec.XPath,
			rec.ReferenceID,
			rec.AllVersions,
		); err != nil {
			return errors.Wrapf(err, "failed to insert record %s", rec.UniqueID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit rebuild")
	}

	if s.logger != nil {
		s.logger.Infow("Record store rebuilt", "records", len(records))
	}
	return nil
}

// FindByUniqueID returns the record with the given unique ID, or nil when
// no record matches. Comparison is case-insensitive; the stored value is
// never modified.
func (s *Store) FindByUniqueID(ctx context.Context, uniqueID string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, recordByUniqueIDQuery, CanonicalizeIdentifier(uniqueID))

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up unique ID %q", uniqueID)
	}
	return rec, nil
}

// FindByXPath returns every record stored under the given xpath, ordered by
// unique ID. The input accepts "//"-, "/"- and bare-form paths; see
// CanonicalizePath. An empty result is a valid outcome, not an error.
func (s *Store) FindByXPath(ctx context.Context, xpath string) ([]*Record, error) {
	records, err := s.queryRecords(ctx, recordByXPathQuery, CanonicalizePath(xpath))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up xpath %q", xpath)
	}
	return records, nil
}

// FindByReferenceID returns all instances of a reference ID sorted by
// unique ID ascending. Reference IDs are exact tokens produced at import
// time, so no canonicalization is applied.
func (s *Store) FindByReferenceID(ctx context.Context, referenceID string) ([]*Record, error) {
	records, err := s.queryRecords(ctx, recordByReferenceIDQuery, referenceID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up reference ID %q", referenceID)
	}
	return records, nil
}

// Count returns the total number of stored records
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, recordCountQuery).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count records")
	}
	return count, nil
}

// CountBySheet returns record counts grouped by source sheet
func (s *Store) CountBySheet(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, recordCountBySheetQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count records by sheet")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var sheet string
		var count int
		if err := rows.Scan(&sheet, &count); err != nil {
			return nil, errors.Wrap(err, "failed to scan sheet count")
		}
		counts[sheet] = count
	}
	return counts, rows.Err()
}

func (s *Store) queryRecords(ctx context.Context, query string, arg string) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var name, xpath, referenceID, allVersions sql.NullString

	if err := row.Scan(
		&rec.SheetSource,
		&rec.UniqueID,
		&name,
		&xpath,
		&referenceID,
		&allVersions,
	); err != nil {
		return nil, err
	}

	rec.Name = name.String
	rec.XPath = xpath.String
	rec.ReferenceID = referenceID.String
	rec.AllVersions = allVersions.String
	return &rec, nil
}
