// # internal/gui/types.go
package gui

import (
	"fmt"

	"gfxlens/internal/paradox"
	"gfxlens/internal/scripted"
)

// Element type tags as they appear in .gui files.
const (
	TypeContainerWindow = "containerWindowType"
	TypeWindow          = "windowType"
	TypeIcon            = "iconType"
	TypeButton          = "buttonType"
	TypeInstantTextBox  = "instantTextBoxType"
	TypeCheckbox        = "checkboxType"
	TypeScrollbar       = "scrollbarType"
	TypeGridBox         = "gridBoxType"
	TypeListbox         = "listboxType"
	TypeEditbox         = "editboxType"
)

// Default sizes the renderer applies when an element declares none.
var (
	DefaultCanvas        = paradox.Size{Width: 800, Height: 600}
	DefaultCheckboxSize  = paradox.Size{Width: 24, Height: 24}
	DefaultScrollbarSize = paradox.Size{Width: 20, Height: 200}
	DefaultGridBoxSize   = paradox.Size{Width: 300, Height: 200}
	DefaultListboxSize   = paradox.Size{Width: 200, Height: 100}
	DefaultEditboxSize   = paradox.Size{Width: 150, Height: 25}
)

// Element is the canonical parsed UI node. Instances are created once per
// parse pass and never mutated after the merger step.
type Element struct {
	Name       string
	Type       string
	Position   paradox.Position
	Size       *paradox.Size
	SpriteType string

	Text string
	Font string

	Properties map[string]map[string]string

	// HOI4 layout attributes.
	Orientation string
	Origo       string
	Margin      *paradox.Margin
	Clipping    *bool
	ButtonText  string
	ButtonFont  string
	MaxWidth    *int
	MaxHeight   *int
	FormatAlign string

	// Dynamic-binding attributes, populated only by ApplyScripted.
	VisibleCondition string
	ClickEffect      string
	IsDynamic        bool
	Scripted         *scripted.Metadata
}

// Key is the element's identity for deduplication: two elements with the
// same (type, name, x, y) tuple are the same element.
func (e *Element) Key() string {
	return fmt.Sprintf("%s:%s:%d:%d", e.Type, e.Name, e.Position.X, e.Position.Y)
}

// Result is the outcome of one .gui file parse: elements in discovery order,
// the derived canvas size, and accumulated diagnostics.
type Result struct {
	Elements []*Element
	Canvas   paradox.Size
	Errors   []string
}
