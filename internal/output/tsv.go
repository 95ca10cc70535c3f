// # internal/output/tsv.go
package output

import (
	"fmt"
	"strings"

	"gfxlens/internal/analysis"
	"gfxlens/internal/util"
)

// FindingsTSV renders every analysis finding as one tab-separated row.
// Rows are sorted by (type, name) so repeated runs diff cleanly.
func FindingsTSV(res *analysis.Result) string {
	var buf strings.Builder

	buf.WriteString("Type\tName\tFiles\n")

	for _, name := range util.SortedSet(res.Orphaned) {
		buf.WriteString(fmt.Sprintf("orphaned\t%s\t\n", name))
	}
	for _, name := range util.SortedSet(res.Missing) {
		buf.WriteString(fmt.Sprintf("missing\t%s\t\n", name))
	}
	for _, name := range util.SortedStringKeys(res.Duplicates) {
		buf.WriteString(fmt.Sprintf("duplicate\t%s\t%s\n", name, strings.Join(res.Duplicates[name], ";")))
	}

	return buf.String()
}

// UsageTSV renders the name -> referencing-files map.
func UsageTSV(res *analysis.Result) string {
	var buf strings.Builder

	buf.WriteString("Name\tReferencedBy\n")
	for _, name := range util.SortedStringKeys(res.UsageLocations) {
		buf.WriteString(fmt.Sprintf("%s\t%s\n", name, strings.Join(res.UsageLocations[name], ";")))
	}

	return buf.String()
}
