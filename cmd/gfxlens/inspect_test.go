// # cmd/gfxlens/inspect_test.go
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInspectGUI(t *testing.T) {
	guiPath := writeTempFile(t, "panel.gui", `
guiTypes = {
	containerWindowType = {
		name = "panel"
		size = { width = 320 height = 200 }
	}
}
`)

	out, failed := inspectGUI(guiPath, "")
	if failed {
		t.Fatalf("Unexpected failure:\n%s", out)
	}
	if !strings.Contains(out, "Canvas: 320x200") {
		t.Errorf("Missing canvas line:\n%s", out)
	}
	if !strings.Contains(out, `containerWindowType "panel"`) {
		t.Errorf("Missing element line:\n%s", out)
	}
}

func TestInspectGUIWithScripted(t *testing.T) {
	guiPath := writeTempFile(t, "panel.gui", `
guiTypes = {
	containerWindowType = {
		name = "panel"
	}
}
`)
	scriptedPath := writeTempFile(t, "panel_sg.txt", `
scripted_gui = {
	panel_sg = {
		window_name = "panel"
		visible = { always = yes }
	}
}
`)

	out, failed := inspectGUI(guiPath, scriptedPath)
	if failed {
		t.Fatalf("Unexpected failure:\n%s", out)
	}
	if !strings.Contains(out, "dynamic") {
		t.Errorf("Expected merged element marked dynamic:\n%s", out)
	}
	if !strings.Contains(out, "always = yes") {
		t.Errorf("Expected visible condition in output:\n%s", out)
	}
}

func TestInspectGUIReportsErrors(t *testing.T) {
	guiPath := writeTempFile(t, "broken.gui", `spriteTypes = { }`)

	out, failed := inspectGUI(guiPath, "")
	if !failed {
		t.Fatalf("Expected failure for missing root:\n%s", out)
	}
	if !strings.Contains(out, "guiTypes block not found") {
		t.Errorf("Expected diagnostic in output:\n%s", out)
	}
}

func TestInspectScripted(t *testing.T) {
	path := writeTempFile(t, "sg.txt", `
scripted_gui = {
	my_sg = {
		window_name = "target"
		context_type = player_context
		effects = {
			go_click = { set_flag = went }
		}
	}
}
`)

	out, failed := inspectScripted(path)
	if failed {
		t.Fatalf("Unexpected failure:\n%s", out)
	}
	if !strings.Contains(out, `my_sg -> window "target"`) {
		t.Errorf("Missing definition line:\n%s", out)
	}
	if !strings.Contains(out, "effect go_click: set_flag = went") {
		t.Errorf("Missing effect line:\n%s", out)
	}
}
