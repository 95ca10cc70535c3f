// # internal/output/output_test.go
package output

import (
	"strings"
	"testing"

	"gfxlens/internal/analysis"
	"gfxlens/internal/assets"
)

func sampleResult() *analysis.Result {
	return &analysis.Result{
		Orphaned: map[string]struct{}{
			"GFX_zeta_orphan":  {},
			"GFX_alpha_orphan": {},
		},
		Missing: map[string]struct{}{
			"GFX_missing": {},
		},
		Duplicates: map[string][]string{
			"GFX_dup": {"a.gfx", "b.gfx"},
		},
		Used: map[string]struct{}{
			"GFX_used": {},
		},
		UsageLocations: map[string][]string{
			"GFX_used": {"gui/panel.gui", "events/x.txt"},
		},
		FilesScanned: 42,
	}
}

func TestFindingsTSV(t *testing.T) {
	got := FindingsTSV(sampleResult())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	if lines[0] != "Type\tName\tFiles" {
		t.Errorf("Unexpected header %q", lines[0])
	}
	want := []string{
		"orphaned\tGFX_alpha_orphan\t",
		"orphaned\tGFX_zeta_orphan\t",
		"missing\tGFX_missing\t",
		"duplicate\tGFX_dup\ta.gfx;b.gfx",
	}
	if len(lines) != len(want)+1 {
		t.Fatalf("Expected %d rows, got %d:\n%s", len(want), len(lines)-1, got)
	}
	for i, w := range want {
		if lines[i+1] != w {
			t.Errorf("Row %d: got %q, want %q", i, lines[i+1], w)
		}
	}
}

func TestUsageTSV(t *testing.T) {
	got := UsageTSV(sampleResult())
	if !strings.Contains(got, "GFX_used\tgui/panel.gui;events/x.txt") {
		t.Errorf("Missing usage row:\n%s", got)
	}
}

func TestSummary(t *testing.T) {
	table := assets.NewTable()
	table.Add(&assets.Definition{Name: "GFX_used", Source: "defs.gfx"})

	got := Summary(table, sampleResult())

	for _, want := range []string{
		"Defined assets: 1",
		"Used assets: 1",
		"Files scanned: 42",
		"Orphaned (2)",
		"- GFX_alpha_orphan",
		"Missing definitions (1)",
		"- GFX_missing",
		"Duplicate definitions (1)",
		"- GFX_dup: a.gfx, b.gfx",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary missing %q:\n%s", want, got)
		}
	}
}
