package matrix

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/teranos/xmatrix/errors"
)

// Record is one normalized row of the UniqueID Matrix: a specific instance
// of a container or data point, located by its xpath, with the full version
// history of when that instance existed.
type Record struct {
	// SheetSource names the workbook sheet the record came from. Kept for
	// provenance; lookups never dispatch on it.
	SheetSource string `json:"sheet_source"`

	// UniqueID identifies one instance, e.g. "MC000001.00001"
	UniqueID string `json:"unique_id"`

	// Name is the container or data point name
	Name string `json:"name"`

	// XPath locates the instance in the MISMO document schema. Data point
	// records have their name appended at import time; containers keep the
	// source path verbatim. Stored exactly as constructed; normalization
	// happens only at query time.
	XPath string `json:"xpath"`

	// ReferenceID is the UniqueID without its instance suffix,
	// e.g. "MC000001" — shared by every instance of the same entity
	ReferenceID string `json:"reference_id"`

	// AllVersions is a JSON-serialized label→value map covering every
	// version column of the source sheet
	AllVersions string `json:"all_versions"`
}

// Versions decodes the serialized version history. An empty AllVersions
// yields an empty map, not an error.
func (r *Record) Versions() (map[string]string, error) {
	if r.AllVersions == "" {
		return map[string]string{}, nil
	}

	var versions map[string]string
	if err := json.Unmarshal([]byte(r.AllVersions), &versions); err != nil {
		return nil, errors.Wrapf(err, "record %s: malformed version history", r.UniqueID)
	}
	return versions, nil
}

// VersionLabelsDesc returns the labels of a version history sorted
// descending, newest matrix release first.
func VersionLabelsDesc(versions map[string]string) []string {
	labels := make([]string, 0, len(versions))
	for label := range versions {
		labels = append(labels, label)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(labels)))
	return labels
}

// IsNotApplicable reports whether a version cell means "did not exist in
// this version". Source sheets express that three ways: an empty cell,
// whitespace, or the literal "nan" a numeric export writes for missing
// values. All render identically downstream.
func IsNotApplicable(v string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || strings.EqualFold(trimmed, "nan")
}
