// # internal/paradox/props_test.go
package paradox

import (
	"testing"
)

func TestScalarPrefersQuoted(t *testing.T) {
	if got, ok := Scalar(`name = "quoted value"`, "name"); !ok || got != "quoted value" {
		t.Errorf("Quoted form: got %q ok=%v", got, ok)
	}
	if got, ok := Scalar(`name = bare_token`, "name"); !ok || got != "bare_token" {
		t.Errorf("Bare form: got %q ok=%v", got, ok)
	}
	if _, ok := Scalar(`other = x`, "name"); ok {
		t.Error("Expected absent key to report false")
	}
}

func TestScalarAnchoredSkipsSuffixedKeys(t *testing.T) {
	content := "parent_window_name = \"outer\"\nwindow_name = \"inner\"\n"

	if got, _ := ScalarAnchored(content, "window_name"); got != "inner" {
		t.Errorf("Anchored lookup matched inside parent_window_name: got %q", got)
	}
	if got, _ := ScalarAnchored(content, "parent_window_name"); got != "outer" {
		t.Errorf("Expected outer, got %q", got)
	}
}

func TestBool(t *testing.T) {
	cases := []struct {
		content string
		want    bool
	}{
		{"moveable = yes", true},
		{"moveable = no", false},
		{"moveable = TRUE", true},
		{"moveable = false", false},
	}
	for _, c := range cases {
		got, ok := Bool(c.content, "moveable")
		if !ok || got != c.want {
			t.Errorf("Bool(%q): got %v ok=%v", c.content, got, ok)
		}
	}
	if _, ok := Bool("moveable = maybe", "moveable"); ok {
		t.Error("Expected non-boolean value to report false")
	}
}

func TestFloatAndInt(t *testing.T) {
	if got, ok := Float("animation_time = 0.25", "animation_time"); !ok || got != 0.25 {
		t.Errorf("Float: got %v ok=%v", got, ok)
	}
	if got, ok := Float("animation_time = -3", "animation_time"); !ok || got != -3 {
		t.Errorf("Float negative: got %v ok=%v", got, ok)
	}
	if got, ok := Int("maxWidth = 240", "maxWidth"); !ok || got != 240 {
		t.Errorf("Int: got %v ok=%v", got, ok)
	}
}

func TestPositionOf(t *testing.T) {
	if got := PositionOf("position = { x = 12 y = -4 }"); got.X != 12 || got.Y != -4 {
		t.Errorf("Named form: got %v", got)
	}
	if got := PositionOf("position = { 5 9 }"); got.X != 5 || got.Y != 9 {
		t.Errorf("Bare form: got %v", got)
	}
	if got := PositionOf("name = x"); got.X != 0 || got.Y != 0 {
		t.Errorf("Default: got %v", got)
	}
}

func TestSizeOfReportsAbsence(t *testing.T) {
	if got, ok := SizeOf("size = { width = 100 height = 50 }"); !ok || got.Width != 100 || got.Height != 50 {
		t.Errorf("Named form: got %v ok=%v", got, ok)
	}
	if got, ok := SizeOf("size = { 30 40 }"); !ok || got.Width != 30 || got.Height != 40 {
		t.Errorf("Bare form: got %v ok=%v", got, ok)
	}
	if _, ok := SizeOf("position = { x = 1 y = 2 }"); ok {
		t.Error("Expected missing size to report false")
	}
}

func TestMarginOf(t *testing.T) {
	m, ok := MarginOf("margin = { top = 2 left = 4 right = 8 }")
	if !ok || m.Left != 4 || m.Right != 8 {
		t.Errorf("MarginOf: got %+v ok=%v", m, ok)
	}
}

func TestBlockPropertyStopsAtFirstCloseBrace(t *testing.T) {
	content := `visible = {
	has_flag = ready
	NOT = { has_flag = hidden }
}`
	got, ok := BlockProperty(content, "visible")
	if !ok {
		t.Fatal("Expected match")
	}
	// Single-level match truncates at the inner close brace.
	want := "has_flag = ready\n\tNOT = { has_flag = hidden"
	if got != want {
		t.Errorf("BlockProperty mismatch:\ngot  %q\nwant %q", got, want)
	}
}
