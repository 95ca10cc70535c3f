// # internal/analysis/analyzer_test.go
package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"gfxlens/internal/assets"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzerClassification(t *testing.T) {
	dir := t.TempDir()
	defPath := filepath.Join(dir, "interface", "defs.gfx")
	uiPath := writeFile(t, dir, "interface/panel.gui", `
guiTypes = {
	iconType = {
		name = "flag"
		spriteType = "GFX_used_icon"
	}
	iconType = {
		name = "banner"
		spriteType = "GFX_banner_large"
	}
	buttonType = {
		name = "b"
		icon = GFX_phantom
	}
}
`)

	table := assets.NewTable()
	table.Add(&assets.Definition{Name: "GFX_used_icon", Source: defPath})
	table.Add(&assets.Definition{Name: "GFX_banner_large", Source: defPath})
	table.Add(&assets.Definition{Name: "GFX_banner", Source: defPath})
	table.Add(&assets.Definition{Name: "GFX_orphan_thing", Source: defPath})

	w := NewWorker(dir, table)
	res := w.Run()

	if _, ok := res.Used["GFX_used_icon"]; !ok {
		t.Errorf("Expected GFX_used_icon used, got %v", res.Used)
	}
	if _, ok := res.Used["GFX_banner_large"]; !ok {
		t.Errorf("Expected GFX_banner_large used, got %v", res.Used)
	}

	if _, ok := res.Orphaned["GFX_orphan_thing"]; !ok {
		t.Errorf("Expected GFX_orphan_thing orphaned, got %v", res.Orphaned)
	}

	// GFX_banner is unused but reconciles against GFX_banner_large by
	// substring containment and borrows its usage locations.
	if _, ok := res.Orphaned["GFX_banner"]; ok {
		t.Error("GFX_banner must be reconciled, not orphaned")
	}
	locs := res.UsageLocations["GFX_banner"]
	if len(locs) != 1 || locs[0] != uiPath {
		t.Errorf("Expected borrowed usage location %s, got %v", uiPath, locs)
	}

	if _, ok := res.Missing["GFX_phantom"]; !ok {
		t.Errorf("Expected GFX_phantom missing, got %v", res.Missing)
	}
	if _, ok := res.Missing["GFX_used_icon"]; ok {
		t.Error("Defined names must never be reported missing")
	}

	if res.FilesScanned != 1 {
		t.Errorf("Expected 1 corpus file, got %d", res.FilesScanned)
	}
}

func TestAnalyzerSelfReferenceExcluded(t *testing.T) {
	dir := t.TempDir()
	defPath := writeFile(t, dir, "interface/self.gfx", `
spriteTypes = {
	spriteType = {
		name = "GFX_self"
		texturefile = "gfx/GFX_self.dds"
	}
}
`)

	table := assets.NewTable()
	table.Add(&assets.Definition{Name: "GFX_self", Source: defPath})

	res := NewWorker(dir, table).Run()

	if _, ok := res.Used["GFX_self"]; ok {
		t.Error("A reference inside the defining file must not count as usage")
	}
	if _, ok := res.Orphaned["GFX_self"]; !ok {
		t.Errorf("Expected GFX_self orphaned, got %v", res.Orphaned)
	}
	if _, ok := res.Missing["GFX_self"]; ok {
		t.Error("A defined name must not be reported missing")
	}
}

func TestAnalyzerDuplicatesCarriedOver(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "events/ref.txt", `icon = GFX_twice`)

	table := assets.NewTable()
	table.Add(&assets.Definition{Name: "GFX_twice", Source: "a.gfx"})
	table.Add(&assets.Definition{Name: "GFX_twice", Source: "b.gfx"})

	res := NewWorker(dir, table).Run()

	files, ok := res.Duplicates["GFX_twice"]
	if !ok || len(files) != 2 || files[0] != "a.gfx" || files[1] != "b.gfx" {
		t.Errorf("Expected duplicate sources in discovery order, got %v", files)
	}
}

func TestAnalyzerPathReferencesReduceToStem(t *testing.T) {
	dir := t.TempDir()
	refPath := writeFile(t, dir, "gui/flags.gui", `texturefile = "gfx\\flags\\GFX_flag_big.tga"`)

	table := assets.NewTable()
	table.Add(&assets.Definition{Name: "GFX_flag_big", Source: filepath.Join(dir, "flags.gfx")})

	res := NewWorker(dir, table).Run()

	if _, ok := res.Used["GFX_flag_big"]; !ok {
		t.Errorf("Expected path reference reduced to stem, got %v", res.Used)
	}
	if locs := res.UsageLocations["GFX_flag_big"]; len(locs) != 1 || locs[0] != refPath {
		t.Errorf("Unexpected usage locations %v", locs)
	}
}

func TestAnalyzerCommentAndStringHandling(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "events/demo.txt", `
icon = GFX_live # icon = GFX_dead
text = "a # b" sprite = GFX_quoted_line
`)

	table := assets.NewTable()
	res := NewWorker(dir, table).Run()

	if _, ok := res.Missing["GFX_live"]; !ok {
		t.Errorf("Expected GFX_live referenced, got %v", res.Missing)
	}
	if _, ok := res.Missing["GFX_dead"]; ok {
		t.Error("Commented-out reference must be ignored")
	}
	// The '#' inside the quoted string must not cut the line short.
	if _, ok := res.Missing["GFX_quoted_line"]; !ok {
		t.Errorf("Expected reference after quoted '#' kept, got %v", res.Missing)
	}
}

func TestAnalyzerProgressTicks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", `icon = GFX_a`)

	table := assets.NewTable()
	w := NewWorker(dir, table)

	var ticks []int
	w.Progress = func(pct int) { ticks = append(ticks, pct) }
	w.Run()

	if len(ticks) < 4 {
		t.Fatalf("Expected at least 4 ticks, got %v", ticks)
	}
	if ticks[0] != 10 {
		t.Errorf("First tick must be 10, got %d", ticks[0])
	}
	if ticks[len(ticks)-1] != 100 {
		t.Errorf("Last tick must be 100, got %d", ticks[len(ticks)-1])
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] < ticks[i-1] {
			t.Errorf("Ticks must be monotonic, got %v", ticks)
		}
	}
}

func TestAnalyzerExcludeDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "kept/a.txt", `icon = GFX_kept_ref`)
	writeFile(t, dir, "node_modules/b.txt", `icon = GFX_skipped_ref`)

	table := assets.NewTable()
	w := NewWorker(dir, table)
	if err := w.SetExcludeDirs([]string{"node_modules"}); err != nil {
		t.Fatal(err)
	}
	res := w.Run()

	if _, ok := res.Missing["GFX_kept_ref"]; !ok {
		t.Errorf("Expected GFX_kept_ref found, got %v", res.Missing)
	}
	if _, ok := res.Missing["GFX_skipped_ref"]; ok {
		t.Error("Excluded directory must not be scanned")
	}
	if res.FilesScanned != 1 {
		t.Errorf("Expected 1 file scanned, got %d", res.FilesScanned)
	}
}

func TestAnalyzerUsageDeduplicated(t *testing.T) {
	dir := t.TempDir()
	refPath := writeFile(t, dir, "x.txt", `
icon = GFX_multi
sprite = GFX_multi
"GFX_multi"
`)

	table := assets.NewTable()
	table.Add(&assets.Definition{Name: "GFX_multi", Source: filepath.Join(dir, "defs.gfx")})

	res := NewWorker(dir, table).Run()

	if locs := res.UsageLocations["GFX_multi"]; len(locs) != 1 || locs[0] != refPath {
		t.Errorf("Expected one deduplicated location, got %v", locs)
	}
}

func TestNormalizeCandidate(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"GFX_plain", "GFX_plain", true},
		{`"GFX_quoted"`, "GFX_quoted", true},
		{`gfx/flags/GFX_flag.dds`, "GFX_flag", true},
		{`gfx\flags\GFX_flag.tga`, "GFX_flag", true},
		{"no_convention", "", false},
		{"gfx/path/plain.dds", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := normalizeCandidate(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("normalizeCandidate(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}
