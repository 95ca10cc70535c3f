// # internal/analysis/analyzer.go
//
// Two-phase batch job over the asset-definition table and a mod corpus:
// first duplicate grouping, then reference extraction with a heuristic regex
// bank, followed by fuzzy orphan reconciliation and missing-definition
// detection. Designed to run off the interactive goroutine; progress is
// reported as an integer percentage 0-100 via the Progress callback.
package analysis

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"gfxlens/internal/assets"
	"gfxlens/internal/observability"
)

// Result holds the four classification collections of one run.
type Result struct {
	// Orphaned: defined, never referenced, not reconcilable by name.
	Orphaned map[string]struct{}
	// Missing: referenced by the corpus but absent from the table.
	Missing map[string]struct{}
	// Duplicates: name -> contributing definition files, discovery order.
	Duplicates map[string][]string
	// Used: table-backed names with at least one non-self reference.
	Used map[string]struct{}
	// UsageLocations: name -> referencing files, deduplicated, self excluded.
	UsageLocations map[string][]string

	FilesScanned int
}

// Worker owns an immutable snapshot of its inputs for the duration of one
// run. It holds no locks and emits a single terminal result; per-file read
// failures are logged and skipped, never aborting the batch. There is no
// cancellation: a started run goes to completion.
type Worker struct {
	Root       string
	Table      *assets.Table
	Extensions []string
	// Progress receives monotonic percentage ticks; nil disables reporting.
	Progress func(int)

	excludeDirs []glob.Glob
}

func NewWorker(root string, table *assets.Table) *Worker {
	return &Worker{Root: root, Table: table, Extensions: DefaultExtensions}
}

// SetExcludeDirs compiles directory exclusion globs for corpus enumeration.
func (w *Worker) SetExcludeDirs(patterns []string) error {
	w.excludeDirs = w.excludeDirs[:0]
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return err
		}
		w.excludeDirs = append(w.excludeDirs, g)
	}
	return nil
}

// Run executes the full analysis and returns the classification sets.
func (w *Worker) Run() *Result {
	start := time.Now()
	res := &Result{
		Orphaned:       make(map[string]struct{}),
		Missing:        make(map[string]struct{}),
		Duplicates:     make(map[string][]string),
		Used:           make(map[string]struct{}),
		UsageLocations: make(map[string][]string),
	}

	for name, files := range w.Table.Duplicates() {
		res.Duplicates[name] = files
	}

	w.emit(10)

	files := w.enumerateCorpus()
	res.FilesScanned = len(files)

	w.emit(30)

	// referenced collects every normalized convention-matching candidate,
	// table-backed or not; it feeds missing-definition detection.
	referenced := make(map[string]struct{})

	for i, path := range files {
		if err := w.scanFile(path, res, referenced); err != nil {
			slog.Warn("failed to read corpus file", "path", path, "error", err)
		}
		observability.CorpusFilesScanned.Inc()
		if i%10 == 0 {
			w.emit(30 + int(float64(i)/float64(len(files))*50))
		}
	}

	w.emit(80)

	w.reconcileOrphans(res)

	for name := range referenced {
		if _, ok := w.Table.Get(name); !ok {
			res.Missing[name] = struct{}{}
		}
	}

	observability.AnalysisDuration.Observe(time.Since(start).Seconds())
	observability.OrphanedAssets.Set(float64(len(res.Orphaned)))
	observability.MissingAssets.Set(float64(len(res.Missing)))
	observability.DuplicateAssets.Set(float64(len(res.Duplicates)))

	slog.Info("usage analysis complete",
		"defined", w.Table.Len(),
		"used", len(res.Used),
		"orphaned", len(res.Orphaned),
		"missing", len(res.Missing),
		"files", res.FilesScanned)

	w.emit(100)
	return res
}

func (w *Worker) emit(pct int) {
	if w.Progress != nil {
		w.Progress(pct)
	}
}

func (w *Worker) enumerateCorpus() []string {
	extensions := w.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			base := filepath.Base(path)
			for _, g := range w.excludeDirs {
				if g.Match(base) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if wanted[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		slog.Warn("corpus enumeration incomplete", "root", w.Root, "error", err)
	}
	return files
}

func (w *Worker) scanFile(path string, res *Result, referenced map[string]struct{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	content := stripCommentsStringAware(string(data))

	for _, re := range referencePatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			candidate := m[0]
			if len(m) > 1 && m[1] != "" {
				candidate = m[1]
			}
			name, ok := normalizeCandidate(candidate)
			if !ok {
				continue
			}
			referenced[name] = struct{}{}

			def, defined := w.Table.Get(name)
			if !defined || def.Source == path {
				// Self-reference in the defining file is not usage evidence.
				continue
			}
			res.Used[name] = struct{}{}
			res.UsageLocations[name] = appendUnique(res.UsageLocations[name], path)
		}
	}
	return nil
}

// normalizeCandidate applies the naming-convention filter, reduces path-like
// matches to their filename stem, and strips quotes.
func normalizeCandidate(candidate string) (string, bool) {
	if candidate == "" || !strings.Contains(candidate, "GFX") {
		return "", false
	}
	if strings.ContainsAny(candidate, `/\`) {
		stem := filepath.Base(strings.ReplaceAll(candidate, `\`, "/"))
		stem = strings.TrimSuffix(stem, filepath.Ext(stem))
		if !strings.Contains(stem, "GFX") {
			return "", false
		}
		candidate = stem
	}
	candidate = strings.Trim(candidate, `"'`)
	if candidate == "" {
		return "", false
	}
	return candidate, true
}

// reconcileOrphans gives every unused defined name a second chance: the
// GFX_ prefix is stripped from both sides and substring containment is
// accepted. A reconciled name borrows its match's usage locations (self
// references excluded) instead of being flagged orphaned.
func (w *Worker) reconcileOrphans(res *Result) {
	for _, name := range w.Table.Names() {
		if _, used := res.Used[name]; used {
			continue
		}

		base := strings.TrimPrefix(name, "GFX_")
		reconciled := false
		for used := range res.Used {
			usedBase := strings.TrimPrefix(used, "GFX_")
			if base != usedBase && !strings.Contains(used, name) && !strings.Contains(name, used) {
				continue
			}
			reconciled = true
			if locations, ok := res.UsageLocations[used]; ok {
				def, _ := w.Table.Get(name)
				for _, loc := range locations {
					if def == nil || loc != def.Source {
						res.UsageLocations[name] = append(res.UsageLocations[name], loc)
					}
				}
			}
			break
		}

		if !reconciled {
			res.Orphaned[name] = struct{}{}
		}
	}
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
