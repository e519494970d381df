package matrix

import (
	"encoding/json"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/teranos/xmatrix/errors"
)

// Fixed source columns shared by every sheet kind
const (
	uniqueIDColumn    = "Unique ID"
	referenceIDColumn = "Reference ID"

	// versionColumnPrefix identifies version-history columns. Their count
	// and labels change between matrix releases, so they are discovered
	// per sheet rather than hard-coded.
	versionColumnPrefix = "Version"
)

// sheetLayout describes where a sheet kind keeps its path and name, and
// whether rows are leaf values (data points embed their own name in the
// stored xpath) or structural containers (path is stored verbatim).
type sheetLayout struct {
	PathColumn string
	NameColumn string
	Leaf       bool
}

var sheetLayouts = map[string]sheetLayout{
	"container": {PathColumn: "XPath", NameColumn: "Container Name", Leaf: false},
	"datapoint": {PathColumn: "DatapointUsageXPath", NameColumn: "Data Point Name", Leaf: true},
}

// layoutFor classifies a sheet by name and resolves its layout once,
// before any row is transformed.
func layoutFor(sheetName string) sheetLayout {
	if strings.Contains(sheetName, "Data Point") {
		return sheetLayouts["datapoint"]
	}
	return sheetLayouts["container"]
}

// Importer transforms the UniqueID Matrix workbook into Records and
// replaces the store's contents in one rebuild.
type Importer struct {
	store  *Store
	sheets []string
	logger *zap.SugaredLogger
}

// NewImporter creates an importer for the configured sheet names
func NewImporter(store *Store, sheets []string, logger *zap.SugaredLogger) *Importer {
	return &Importer{
		store:  store,
		sheets: sheets,
		logger: logger,
	}
}

// Run imports the workbook at path and rebuilds the record store.
// Missing sheets are skipped with a warning; a missing required column in a
// present sheet aborts the whole run before anything is committed.
// Returns the total number of imported records.
func (imp *Importer) Run(path string) (int, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer workbook.Close()

	available := make(map[string]bool)
	for _, name := range workbook.GetSheetList() {
		available[name] = true
	}

	var all []*Record
	found := 0
	for _, sheetName := range imp.sheets {
		if !available[sheetName] {
			imp.logger.Warnw("Sheet not found in workbook, skipping",
				"sheet", sheetName,
				"workbook", path,
			)
			continue
		}
		found++

		records, err := imp.importSheet(workbook, sheetName)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to import sheet %q", sheetName)
		}

		imp.logger.Infow("Imported sheet", "sheet", sheetName, "rows", len(records))
		all = append(all, records...)
	}

	// A workbook with none of the configured sheets would silently produce
	// an empty store; treat it as the wrong file instead.
	if found == 0 {
		return 0, errors.Wrapf(errors.ErrSheetMissing, "no configured sheet present in %s", path)
	}

	if err := imp.store.Rebuild(all); err != nil {
		return 0, err
	}
	return len(all), nil
}

// importSheet transforms one sheet's rows into Records
func (imp *Importer) importSheet(workbook *excelize.File, sheetName string) ([]*Record, error) {
	rows, err := workbook.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rows")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Header cells carry stray whitespace that varies between matrix
	// releases; trim before any column resolution.
	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.TrimSpace(header)] = i
	}

	layout := layoutFor(sheetName)
	for _, required := range []string{layout.PathColumn, layout.NameColumn, uniqueIDColumn, referenceIDColumn} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Wrapf(errors.ErrColumnMissing, "column %q", required)
		}
	}

	type versionColumn struct {
		label string
		index int
	}
	var versionColumns []versionColumn
	for i, header := range rows[0] {
		label := strings.TrimSpace(header)
		if strings.HasPrefix(label, versionColumnPrefix) {
			versionColumns = append(versionColumns, versionColumn{label: label, index: i})
		}
	}

	cell := func(row []string, idx int) string {
		// excelize omits trailing empty cells
		if idx < len(row) {
			return row[idx]
		}
		return ""
	}

	records := make([]*Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		uniqueID := cell(row, columns[uniqueIDColumn])
		name := cell(row, columns[layout.NameColumn])
		path := cell(row, columns[layout.PathColumn])

		// Trailing padding rows in exported sheets
		if strings.TrimSpace(uniqueID) == "" && strings.TrimSpace(name) == "" && strings.TrimSpace(path) == "" {
			continue
		}

		xpath := path
		if layout.Leaf {
			xpath = path + "/" + name
		}

		versions := make(map[string]string, len(versionColumns))
		for _, vc := range versionColumns {
			versions[vc.label] = cell(row, vc.index)
		}
		versionsJSON, err := json.Marshal(versions)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to serialize version history for %q", uniqueID)
		}

		records = append(records, &Record{
			SheetSource: sheetName,
			UniqueID:    uniqueID,
			Name:        name,
			XPath:       xpath,
			ReferenceID: cell(row, columns[referenceIDColumn]),
			AllVersions: string(versionsJSON),
		})
	}

	return records, nil
}
