// Package display renders lookup results for humans. All formatting
// decisions live here; the record store and router hand over records
// untouched.
package display

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/teranos/xmatrix/matrix"
)

// NotApplicable is rendered for version cells where the record did not
// exist: blank cells, whitespace and the "nan" numeric placeholder all
// display the same way.
const NotApplicable = "N/A"

// PrintResult renders a lookup result in human-readable form
func PrintResult(result *matrix.LookupResult) {
	if len(result.Records) == 0 {
		pterm.Info.Println("No results found.")
		return
	}

	pterm.Success.Printfln("Found %d result(s)", len(result.Records))
	fmt.Println()

	for i, rec := range result.Records {
		printRecord(i+1, rec)
	}
}

func printRecord(index int, rec *matrix.Record) {
	pterm.DefaultSection.Printfln("Result %d", index)

	fmt.Printf("  Unique ID:    %s\n", rec.UniqueID)
	fmt.Printf("  Name:         %s\n", rec.Name)
	fmt.Printf("  Reference ID: %s\n", rec.ReferenceID)
	fmt.Printf("  Source:       %s\n", rec.SheetSource)
	fmt.Printf("\n  XPath:\n    %s\n", rec.XPath)

	versions, err := rec.Versions()
	if err != nil {
		pterm.Warning.Println("Versions: unable to parse version history")
		fmt.Println()
		return
	}
	if len(versions) == 0 {
		fmt.Println()
		return
	}

	fmt.Printf("\n  Versions:\n")
	// Newest matrix release first
	for _, label := range matrix.VersionLabelsDesc(versions) {
		fmt.Printf("    %s: %s\n", label, renderVersionValue(versions[label]))
	}
	fmt.Println()
}

func renderVersionValue(v string) string {
	if matrix.IsNotApplicable(v) {
		return NotApplicable
	}
	return v
}
