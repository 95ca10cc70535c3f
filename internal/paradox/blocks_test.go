// # internal/paradox/blocks_test.go
package paradox

import (
	"testing"
)

func TestBlocksBalancesNestedBraces(t *testing.T) {
	content := `
containerWindowType = {
	name = "outer"
	background = {
		spriteType = "GFX_bg"
	}
}
`
	blocks := Blocks(content, "containerWindowType", false)
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if got, _ := Scalar(blocks[0], "name"); got != "outer" {
		t.Errorf("Expected name outer, got %q", got)
	}
	// The nested background block must be preserved verbatim inside the match.
	if _, ok := Scalar(blocks[0], "spriteType"); !ok {
		t.Error("Nested block content lost")
	}
}

func TestBlocksDoesNotYieldNestedSameTag(t *testing.T) {
	content := `
containerWindowType = {
	name = "parent"
	containerWindowType = {
		name = "child"
	}
}
containerWindowType = {
	name = "sibling"
}
`
	blocks := Blocks(content, "containerWindowType", false)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 top-level blocks, got %d", len(blocks))
	}

	// The nested child is reachable by recursing into the first match.
	inner := Blocks(blocks[0], "containerWindowType", false)
	if len(inner) != 1 {
		t.Fatalf("Expected 1 nested block, got %d", len(inner))
	}
	if got, _ := Scalar(inner[0], "name"); got != "child" {
		t.Errorf("Expected nested name child, got %q", got)
	}
}

func TestBlocksDropsUnbalanced(t *testing.T) {
	content := `iconType = { name = "broken"`
	if blocks := Blocks(content, "iconType", false); len(blocks) != 0 {
		t.Errorf("Expected unbalanced block to be dropped, got %d", len(blocks))
	}
}

func TestBlocksCaseInsensitive(t *testing.T) {
	content := `instantTextboxType = { name = "a" } instantTextBoxType = { name = "b" }`

	if got := len(Blocks(content, "instantTextboxType", false)); got != 1 {
		t.Errorf("Case-sensitive match: expected 1, got %d", got)
	}
	if got := len(Blocks(content, "instantTextboxType", true)); got != 2 {
		t.Errorf("Case-insensitive match: expected 2, got %d", got)
	}
}

func TestNamedBlocks(t *testing.T) {
	content := `
my_window = {
	window_name = "alpha"
	triggers = { x = { always = yes } }
}
other_window = {
	window_name = "beta"
}
`
	blocks := NamedBlocks(content)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 named blocks, got %d", len(blocks))
	}
	if blocks[0].Name != "my_window" || blocks[1].Name != "other_window" {
		t.Errorf("Unexpected names: %s, %s", blocks[0].Name, blocks[1].Name)
	}
	if got, _ := ScalarAnchored(blocks[0].Body, "window_name"); got != "alpha" {
		t.Errorf("Expected window_name alpha, got %q", got)
	}
}

func TestStripComments(t *testing.T) {
	content := "name = \"x\" # trailing\n# full line\nvalue = 1"
	got := StripComments(content)
	want := "name = \"x\" \n\nvalue = 1"
	if got != want {
		t.Errorf("StripComments mismatch:\ngot  %q\nwant %q", got, want)
	}
}
