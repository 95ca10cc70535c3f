// # internal/output/summary.go
package output

import (
	"fmt"
	"strings"

	"gfxlens/internal/analysis"
	"gfxlens/internal/assets"
	"gfxlens/internal/util"
)

// Summary renders a plain-text report of one analysis run.
func Summary(table *assets.Table, res *analysis.Result) string {
	var b strings.Builder

	b.WriteString("Asset Usage Analysis\n")
	b.WriteString("====================\n")
	b.WriteString(fmt.Sprintf("Defined assets: %d\n", table.Len()))
	b.WriteString(fmt.Sprintf("Used assets: %d\n", len(res.Used)))
	b.WriteString(fmt.Sprintf("Files scanned: %d\n", res.FilesScanned))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Orphaned (%d)\n", len(res.Orphaned)))
	for _, name := range util.SortedSet(res.Orphaned) {
		b.WriteString(fmt.Sprintf("- %s\n", name))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Missing definitions (%d)\n", len(res.Missing)))
	for _, name := range util.SortedSet(res.Missing) {
		b.WriteString(fmt.Sprintf("- %s\n", name))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Duplicate definitions (%d)\n", len(res.Duplicates)))
	for _, name := range util.SortedStringKeys(res.Duplicates) {
		b.WriteString(fmt.Sprintf("- %s: %s\n", name, strings.Join(res.Duplicates[name], ", ")))
	}

	return b.String()
}
