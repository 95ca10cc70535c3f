// # cmd/gfxlens/inspect.go
package main

import (
	"fmt"
	"strings"

	"gfxlens/internal/gui"
	"gfxlens/internal/scripted"
)

// inspectGUI parses one .gui file, optionally merges a scripted_gui file into
// it, and renders a plain-text element listing. The second return value
// reports whether any parse diagnostics were produced.
func inspectGUI(guiPath, scriptedPath string) (string, bool) {
	res := gui.ParseFile(guiPath)

	var scriptedErrors []string
	if scriptedPath != "" {
		sres := scripted.ParseFile(scriptedPath)
		scriptedErrors = sres.Errors
		gui.ApplyScripted(res.Elements, sres.Definitions)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("GUI: %s\n", guiPath))
	b.WriteString(fmt.Sprintf("Canvas: %dx%d\n", res.Canvas.Width, res.Canvas.Height))
	b.WriteString(fmt.Sprintf("Elements (%d)\n", len(res.Elements)))
	for _, el := range res.Elements {
		b.WriteString(fmt.Sprintf("- %s %q at (%d,%d)", el.Type, el.Name, el.Position.X, el.Position.Y))
		if el.Size != nil {
			b.WriteString(fmt.Sprintf(" size %dx%d", el.Size.Width, el.Size.Height))
		}
		if el.SpriteType != "" {
			b.WriteString(fmt.Sprintf(" sprite=%s", el.SpriteType))
		}
		if el.IsDynamic {
			b.WriteString(" dynamic")
		}
		if el.VisibleCondition != "" {
			b.WriteString(fmt.Sprintf(" visible=[%s]", strings.TrimSpace(el.VisibleCondition)))
		}
		if el.ClickEffect != "" {
			b.WriteString(fmt.Sprintf(" click=[%s]", strings.TrimSpace(el.ClickEffect)))
		}
		b.WriteString("\n")
	}

	failed := false
	for _, msg := range append(res.Errors, scriptedErrors...) {
		b.WriteString(fmt.Sprintf("error: %s\n", msg))
		failed = true
	}
	return b.String(), failed
}

// inspectScripted parses one scripted_gui file and renders its definitions.
func inspectScripted(path string) (string, bool) {
	res := scripted.ParseFile(path)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Scripted GUI: %s\n", path))
	b.WriteString(fmt.Sprintf("Definitions (%d)\n", len(res.Definitions)))
	for _, def := range res.Definitions {
		b.WriteString(fmt.Sprintf("- %s -> window %q", def.Name, def.WindowName))
		if def.ParentWindowName != "" {
			b.WriteString(fmt.Sprintf(" parent %q", def.ParentWindowName))
		}
		if def.ContextType != "" {
			b.WriteString(fmt.Sprintf(" context=%s", def.ContextType))
		}
		b.WriteString("\n")
		if def.VisibleCondition != "" {
			b.WriteString(fmt.Sprintf("    visible: %s\n", strings.TrimSpace(def.VisibleCondition)))
		}
		for key, body := range def.Triggers {
			b.WriteString(fmt.Sprintf("    trigger %s: %s\n", key, strings.TrimSpace(body)))
		}
		for key, body := range def.Effects {
			b.WriteString(fmt.Sprintf("    effect %s: %s\n", key, strings.TrimSpace(body)))
		}
		if len(def.NestedElements) > 0 {
			total := 0
			for _, group := range def.NestedElements {
				total += len(group)
			}
			b.WriteString(fmt.Sprintf("    nested elements: %d\n", total))
		}
	}

	failed := false
	for _, msg := range res.Errors {
		b.WriteString(fmt.Sprintf("error: %s\n", msg))
		failed = true
	}
	return b.String(), failed
}
