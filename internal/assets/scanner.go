// # internal/assets/scanner.go
package assets

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"gfxlens/internal/observability"
	"gfxlens/internal/paradox"
)

var (
	spriteBlockRe = regexp.MustCompile(`(?is)spriteType\s*=\s*\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}`)
	spriteNameRe  = regexp.MustCompile(`(?i)name\s*=\s*["']?([^"'}\s]+)["']?`)
	textureFileRe = regexp.MustCompile(`(?i)texturefile\s*=\s*["']?([^"'}\s]+)["']?`)
)

// Scanner walks a mod folder for .gfx files and builds the asset-definition
// table consumed by the analyzer.
type Scanner struct {
	Root        string
	excludeDirs []glob.Glob
}

func NewScanner(root string, excludeDirs []string) (*Scanner, error) {
	s := &Scanner{Root: root}
	for _, pattern := range excludeDirs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", pattern, err)
		}
		s.excludeDirs = append(s.excludeDirs, g)
	}
	return s, nil
}

// Scan parses every .gfx file under the root. A single file's failure is
// logged and skipped; it never aborts the scan.
func (s *Scanner) Scan() (*Table, error) {
	start := time.Now()
	table := NewTable()

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			base := filepath.Base(path)
			for _, g := range s.excludeDirs {
				if g.Match(base) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".gfx") {
			return nil
		}
		if err := s.scanFile(table, path); err != nil {
			slog.Warn("failed to scan gfx file", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	observability.AssetScanDuration.Observe(time.Since(start).Seconds())
	observability.DefinedAssets.Set(float64(table.Len()))
	return table, nil
}

func (s *Scanner) scanFile(table *Table, path string) error {
	content, err := paradox.DecodeFile(path)
	if err != nil {
		return err
	}
	content = paradox.StripComments(content)

	for _, m := range spriteBlockRe.FindAllStringSubmatch(content, -1) {
		body := m[1]
		nameMatch := spriteNameRe.FindStringSubmatch(body)
		textureMatch := textureFileRe.FindStringSubmatch(body)
		if nameMatch == nil || textureMatch == nil {
			continue
		}

		name := strings.Trim(nameMatch[1], `"'`)
		relative := strings.Trim(textureMatch[1], `"'`)
		full := filepath.Join(s.Root, filepath.FromSlash(relative))

		status := StatusValid
		if _, err := os.Stat(full); err != nil {
			status = StatusMissingFile
		}

		table.Add(&Definition{
			Name:         name,
			TexturePath:  full,
			RelativePath: relative,
			Source:       path,
			Status:       status,
		})
	}
	return nil
}
