// # cmd/gfxlens/app.go
package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gfxlens/internal/analysis"
	"gfxlens/internal/assets"
	"gfxlens/internal/config"
	"gfxlens/internal/history"
	"gfxlens/internal/output"
	"gfxlens/internal/util"
	"gfxlens/internal/watcher"
)

type App struct {
	Config *config.Config
	Table  *assets.Table

	store      *history.Store
	limiter    *util.Limiter
	teaProgram *tea.Program
	fsWatcher  *watcher.Watcher

	// runMu serializes full analysis runs; watch events and the initial
	// scan must never interleave their table rebuilds.
	runMu sync.Mutex
}

func NewApp(cfg *config.Config) (*App, error) {
	a := &App{
		Config:  cfg,
		limiter: util.NewLimiter(cfg.Watch.MaxRunsPerMinute/60.0, 1),
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open run history: %w", err)
		}
		a.store = store
	}

	return a, nil
}

func (a *App) Close() {
	if a.fsWatcher != nil {
		_ = a.fsWatcher.Close()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
}

// RunAnalysis rebuilds the asset table from the mod folder and runs the full
// usage analysis over the corpus.
func (a *App) RunAnalysis() (*analysis.Result, error) {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	scanner, err := assets.NewScanner(a.Config.ModPath, a.Config.Exclude.Dirs)
	if err != nil {
		return nil, err
	}
	table, err := scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("asset scan: %w", err)
	}
	a.Table = table

	worker := analysis.NewWorker(a.Config.ModPath, table)
	worker.Extensions = a.Config.Extensions
	if err := worker.SetExcludeDirs(a.Config.Exclude.Dirs); err != nil {
		return nil, err
	}
	worker.Progress = func(pct int) {
		slog.Debug("analysis progress", "pct", pct)
	}

	res := worker.Run()
	a.saveHistory(res)
	return res, nil
}

func (a *App) saveHistory(res *analysis.Result) {
	if a.store == nil {
		return
	}
	err := a.store.SaveRun(history.Run{
		ProjectKey:     a.Config.History.ProjectKey,
		Root:           a.Config.ModPath,
		DefinedCount:   a.Table.Len(),
		UsedCount:      len(res.Used),
		OrphanedCount:  len(res.Orphaned),
		MissingCount:   len(res.Missing),
		DuplicateCount: len(res.Duplicates),
		FilesScanned:   res.FilesScanned,
	})
	if err != nil {
		slog.Warn("failed to persist run history", "error", err)
	}
}

// FormatHistory renders every recorded run for the configured project key.
func (a *App) FormatHistory() (string, error) {
	if a.store == nil {
		return "", fmt.Errorf("no history store configured (set history.path)")
	}
	runs, err := a.store.LoadRuns(a.Config.History.ProjectKey, time.Time{})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Recorded runs for %q (%d)\n", a.Config.History.ProjectKey, len(runs)))
	for _, run := range runs {
		b.WriteString(fmt.Sprintf("%s defined=%d used=%d orphaned=%d missing=%d duplicates=%d files=%d\n",
			run.Timestamp.Format(time.RFC3339),
			run.DefinedCount,
			run.UsedCount,
			run.OrphanedCount,
			run.MissingCount,
			run.DuplicateCount,
			run.FilesScanned))
	}
	return b.String(), nil
}

func (a *App) GenerateOutputs(res *analysis.Result) error {
	if a.Config.Output.TSV != "" {
		tsv := output.FindingsTSV(res)
		if len(res.UsageLocations) > 0 {
			tsv += "\n" + output.UsageTSV(res)
		}
		if err := util.WriteStringWithDirs(a.Config.Output.TSV, tsv, 0644); err != nil {
			return err
		}
	}

	if a.Config.Output.Summary != "" {
		if err := util.WriteStringWithDirs(a.Config.Output.Summary, output.Summary(a.Table, res), 0644); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) PrintSummary(res *analysis.Result) {
	fmt.Print(output.Summary(a.Table, res))
}

// HandleChanges re-runs the full analysis after a debounced batch of file
// changes, subject to the watch-mode rate cap.
func (a *App) HandleChanges(paths []string) {
	slog.Info("detected changes", "count", len(paths))

	if !a.limiter.Allow(1) {
		slog.Debug("re-analysis rate limited, skipping batch")
		return
	}

	start := time.Now()
	res, err := a.RunAnalysis()
	if err != nil {
		slog.Error("re-analysis failed", "error", err)
		return
	}

	if err := a.GenerateOutputs(res); err != nil {
		slog.Error("failed to generate outputs", "error", err)
	}

	slog.Info("re-analysis complete", "files", res.FilesScanned, "duration", time.Since(start))

	if a.teaProgram != nil {
		a.teaProgram.Send(updateMsg{
			result:       res,
			definedCount: a.Table.Len(),
		})
	} else {
		a.PrintSummary(res)
	}
}

func (a *App) StartWatcher() error {
	// .gfx changes must retrigger too, so the watch extension list is the
	// corpus list plus the definition extension.
	extensions := append([]string{".gfx"}, a.Config.Extensions...)

	w, err := watcher.NewWatcher(
		a.Config.Watch.Debounce,
		extensions,
		a.Config.Exclude.Dirs,
		a.Config.Exclude.Files,
		a.HandleChanges,
	)
	if err != nil {
		return err
	}
	a.fsWatcher = w
	return w.Watch([]string{a.Config.ModPath})
}

func (a *App) RunUI(initial *analysis.Result) error {
	m := initialModel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	a.teaProgram = p

	go func() {
		a.teaProgram.Send(updateMsg{
			result:       initial,
			definedCount: a.Table.Len(),
		})
	}()

	_, err := p.Run()
	return err
}
