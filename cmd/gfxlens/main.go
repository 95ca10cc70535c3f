// # cmd/gfxlens/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gfxlens/internal/config"
)

var (
	configPath   = flag.String("config", "./gfxlens.toml", "Path to config file")
	once         = flag.Bool("once", false, "Run single analysis and exit")
	ui           = flag.Bool("ui", false, "Enable terminal UI mode")
	guiFile      = flag.String("gui", "", "Parse a single .gui file and print its elements")
	scriptedFile = flag.String("scripted", "", "Parse a single scripted_gui file and print its definitions")
	showHistory  = flag.Bool("history", false, "Print recorded analysis runs and exit")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	version      = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("gfxlens v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	output := os.Stdout
	if *ui {
		// In UI mode, avoid stdout logs corrupting the TUI.
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to create log dir for %s: %v\n", logPath, err)
		} else {
			if fi, err := os.Lstat(logPath); err == nil && (fi.Mode()&os.ModeSymlink) != 0 {
				fmt.Fprintf(os.Stderr, "warning: refusing to write logs to symlink path %s\n", logPath)
			} else {
				f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
				if err == nil {
					output = f
				} else {
					fmt.Fprintf(os.Stderr, "warning: failed to open log file %s: %v\n", logPath, err)
				}
			}
		}
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Single-file inspection modes bypass the corpus pipeline entirely.
	// --scripted alongside --gui merges dynamic bindings into the elements.
	if *guiFile != "" {
		out, failed := inspectGUI(*guiFile, *scriptedFile)
		fmt.Print(out)
		if failed {
			os.Exit(1)
		}
		os.Exit(0)
	}
	if *scriptedFile != "" {
		out, failed := inspectScripted(*scriptedFile)
		fmt.Print(out)
		if failed {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		if *configPath == "./gfxlens.toml" {
			cfg, err = config.Load("./gfxlens.example.toml")
		}
		if err != nil {
			slog.Warn("no config file found, using defaults", "path", *configPath)
			cfg = config.Default()
		}
	}

	if flag.NArg() > 0 {
		cfg.ModPath = flag.Arg(0)
	}
	if !filepath.IsAbs(cfg.ModPath) {
		cwd, _ := os.Getwd()
		cfg.ModPath = filepath.Join(cwd, cfg.ModPath)
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	if *showHistory {
		out, err := app.FormatHistory()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		fmt.Print(out)
		os.Exit(0)
	}

	res, err := app.RunAnalysis()
	if err != nil {
		slog.Error("initial analysis failed", "error", err)
		os.Exit(1)
	}

	if err := app.GenerateOutputs(res); err != nil {
		slog.Error("failed to generate outputs", "error", err)
	}

	if !*ui {
		app.PrintSummary(res)
	}

	if *once {
		os.Exit(0)
	}

	// Watch mode
	if err := app.StartWatcher(); err != nil {
		slog.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	if *ui {
		if err := app.RunUI(res); err != nil {
			slog.Error("failed to run UI", "error", err)
			os.Exit(1)
		}
	} else {
		// Block forever
		select {}
	}
}

func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "gfxlens", "gfxlens.log")
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "gfxlens", "gfxlens.log")
	}

	return "gfxlens.log"
}
