// # internal/gui/parser.go
//
// Heuristic parser for HOI4 .gui files. The input grammar is undocumented
// and loosely structured, so extraction is two-layered: brace-balanced block
// scanning as the primitive, then per-field regex lookups on each block's raw
// text. This deliberately is not a full grammar; it pattern-matches the
// shapes the real corpus uses.
package gui

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gfxlens/internal/observability"
	"gfxlens/internal/paradox"
)

var (
	// One-level-nesting-tolerant block bodies for top-level singles. These
	// tags are not expected to nest; containers go through paradox.Blocks.
	windowRe    = flatBlockRe(TypeWindow)
	checkboxRe  = flatBlockRe(TypeCheckbox)
	scrollbarRe = flatBlockRe(TypeScrollbar)
	gridBoxRe   = flatBlockRe(TypeGridBox)
	listboxRe   = flatBlockRe(TypeListbox)
	editboxRe   = flatBlockRe(TypeEditbox)

	// Background sprite reference, three syntactic forms in precedence order.
	bgSpriteRe = regexp.MustCompile(`background\s*=\s*\{\s*spriteType\s*=\s*["']?([^"'}\s]+)["']?[^}]*\}`)
	bgQuadRe   = regexp.MustCompile(`background\s*=\s*\{\s*quadTextureSprite\s*=\s*["']?([^"'}\s]+)["']?[^}]*\}`)
	bgBareRe   = regexp.MustCompile(`background\s*=\s*["']?([^"'}\s]+)["']?`)
)

func flatBlockRe(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + tag + `\s*=\s*\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}`)
}

// ParseFile reads and parses one .gui file. Missing files, undecodable
// encodings, empty content, and a missing guiTypes root each yield an empty
// element list plus a diagnostic in Result.Errors; the parser never returns
// a hard error for malformed input.
func ParseFile(path string) *Result {
	defer func(start time.Time) {
		observability.ParseDuration.WithLabelValues("gui").Observe(time.Since(start).Seconds())
	}(time.Now())

	if _, err := os.Stat(path); err != nil {
		return &Result{Canvas: DefaultCanvas, Errors: []string{fmt.Sprintf("File not found: %s", path)}}
	}
	content, err := paradox.DecodeFile(path)
	if err != nil {
		return &Result{Canvas: DefaultCanvas, Errors: []string{fmt.Sprintf("File encoding error: %v", err)}}
	}
	return Parse(content)
}

// Parse extracts every GUI element from content.
func Parse(content string) *Result {
	p := &parser{
		result: &Result{Canvas: DefaultCanvas},
		seen:   make(map[string]struct{}),
	}

	if strings.TrimSpace(content) == "" {
		p.result.Errors = append(p.result.Errors, "File is empty.")
		return p.result
	}

	content = paradox.StripComments(content)

	roots := paradox.Blocks(content, "guiTypes", false)
	if len(roots) == 0 {
		p.result.Errors = append(p.result.Errors, "guiTypes block not found. Please check if this is a valid HOI4 GUI file.")
		return p.result
	}

	p.parseContainers(roots[0])
	p.parseTopLevel(roots[0])
	return p.result
}

type parser struct {
	result    *Result
	seen      map[string]struct{}
	canvasSet bool
}

// add appends an element unless its (type, name, x, y) key was already
// emitted. The first sized container or window fixes the canvas; widgets
// never do, so a checkbox's fallback size cannot become the canvas.
func (p *parser) add(el *Element) {
	if el == nil {
		return
	}
	key := el.Key()
	if _, dup := p.seen[key]; dup {
		return
	}
	p.seen[key] = struct{}{}
	p.result.Elements = append(p.result.Elements, el)
	if !p.canvasSet && el.Size != nil &&
		(el.Type == TypeContainerWindow || el.Type == TypeWindow) {
		p.result.Canvas = *el.Size
		p.canvasSet = true
	}
}

func (p *parser) parseContainers(content string) {
	for _, body := range paradox.Blocks(content, TypeContainerWindow, false) {
		p.add(parseContainerElement(body))
		p.parseNested(body)
	}
}

// parseNested walks a container's body for nested containers (recursively),
// icons, buttons, and text boxes. The dedup key guards against re-emitting
// elements when overlapping text is traversed more than once.
func (p *parser) parseNested(content string) {
	for _, body := range paradox.Blocks(content, TypeContainerWindow, false) {
		before := len(p.result.Elements)
		p.add(parseContainerElement(body))
		if len(p.result.Elements) > before {
			p.parseNested(body)
		}
	}
	p.parseWidgets(content)
}

// parseWidgets scans a container body for icons, buttons, and text boxes.
// Widgets outside any container are not collected.
func (p *parser) parseWidgets(content string) {
	for _, body := range paradox.Blocks(content, TypeIcon, false) {
		p.add(parseIconElement(body))
	}
	for _, body := range paradox.Blocks(content, TypeButton, false) {
		p.add(parseButtonElement(body))
	}
	// Both instantTextBoxType and instantTextboxType occur in the wild.
	for _, body := range paradox.Blocks(content, "instantTextboxType", true) {
		p.add(parseTextBoxElement(body))
	}
}

func (p *parser) parseTopLevel(content string) {
	for _, m := range windowRe.FindAllStringSubmatch(content, -1) {
		p.add(parseWindowElement(m[1]))
	}
	for _, m := range checkboxRe.FindAllStringSubmatch(content, -1) {
		p.add(parseCheckboxElement(m[1]))
	}
	for _, m := range scrollbarRe.FindAllStringSubmatch(content, -1) {
		p.add(parseScrollbarElement(m[1]))
	}
	for _, m := range gridBoxRe.FindAllStringSubmatch(content, -1) {
		p.add(parseGridBoxElement(m[1]))
	}
	for _, m := range listboxRe.FindAllStringSubmatch(content, -1) {
		p.add(parseListboxElement(m[1]))
	}
	for _, m := range editboxRe.FindAllStringSubmatch(content, -1) {
		p.add(parseEditboxElement(m[1]))
	}
}

func parseContainerElement(content string) *Element {
	name, ok := paradox.Scalar(content, "name")
	if !ok {
		return nil
	}
	el := &Element{
		Name:       name,
		Type:       TypeContainerWindow,
		Position:   paradox.PositionOf(content),
		SpriteType: extractBackgroundSprite(content),
	}
	if size, ok := paradox.SizeOf(content); ok {
		el.Size = &size
	}
	el.Orientation, _ = paradox.Scalar(content, "orientation")
	el.Origo, _ = paradox.Scalar(content, "origo")
	if margin, ok := paradox.MarginOf(content); ok {
		el.Margin = &margin
	}
	if clipping, ok := paradox.Bool(content, "clipping"); ok {
		el.Clipping = &clipping
	}
	return el
}

func parseWindowElement(content string) *Element {
	name, ok := paradox.Scalar(content, "name")
	if !ok {
		return nil
	}
	el := &Element{
		Name:     name,
		Type:     TypeWindow,
		Position: paradox.PositionOf(content),
	}
	if size, ok := paradox.SizeOf(content); ok {
		el.Size = &size
	}
	if m := bgSpriteRe.FindStringSubmatch(content); m != nil {
		el.SpriteType = m[1]
	}
	return el
}

func parseIconElement(content string) *Element {
	name, ok := paradox.Scalar(content, "name")
	if !ok {
		return nil
	}
	sprite, ok := paradox.Scalar(content, "spriteType")
	if !ok {
		sprite, _ = paradox.Scalar(content, "quadTextureSprite")
	}
	return &Element{
		Name:       name,
		Type:       TypeIcon,
		Position:   paradox.PositionOf(content),
		SpriteType: sprite,
	}
}

func parseButtonElement(content string) *Element {
	name, ok := paradox.Scalar(content, "name")
	if !ok {
		return nil
	}
	sprite, ok := paradox.Scalar(content, "quadTextureSprite")
	if !ok {
		sprite, _ = paradox.Scalar(content, "spriteType")
	}
	el := &Element{
		Name:       name,
		Type:       TypeButton,
		Position:   paradox.PositionOf(content),
		SpriteType: sprite,
	}
	if size, ok := paradox.SizeOf(content); ok {
		el.Size = &size
	}
	el.ButtonText, _ = paradox.Scalar(content, "buttonText")
	el.ButtonFont, _ = paradox.Scalar(content, "buttonFont")
	el.Orientation, _ = paradox.Scalar(content, "orientation")
	return el
}

func parseTextBoxElement(content string) *Element {
	name, ok := paradox.Scalar(content, "name")
	if !ok {
		return nil
	}
	el := &Element{
		Name:     name,
		Type:     TypeInstantTextBox,
		Position: paradox.PositionOf(content),
	}
	el.Text, _ = paradox.Scalar(content, "text")
	el.Font, _ = paradox.Scalar(content, "font")
	if w, ok := paradox.Int(content, "maxWidth"); ok {
		el.MaxWidth = &w
	}
	if h, ok := paradox.Int(content, "maxHeight"); ok {
		el.MaxHeight = &h
	}
	el.FormatAlign, _ = paradox.Scalar(content, "format")
	el.Orientation, _ = paradox.Scalar(content, "orientation")
	return el
}

func parseCheckboxElement(content string) *Element {
	name, ok := paradox.Scalar(content, "name")
	if !ok {
		return nil
	}
	size := DefaultCheckboxSize
	el := &Element{
		Name:     name,
		Type:     TypeCheckbox,
		Position: paradox.PositionOf(content),
		Size:     &size,
	}
	el.SpriteType, _ = paradox.Scalar(content, "spriteType")
	return el
}

func parseScrollbarElement(content string) *Element {
	return parseSizedElement(content, TypeScrollbar, DefaultScrollbarSize)
}

func parseGridBoxElement(content string) *Element {
	return parseSizedElement(content, TypeGridBox, DefaultGridBoxSize)
}

func parseListboxElement(content string) *Element {
	return parseSizedElement(content, TypeListbox, DefaultListboxSize)
}

func parseEditboxElement(content string) *Element {
	el := parseSizedElement(content, TypeEditbox, DefaultEditboxSize)
	if el != nil {
		el.Text, _ = paradox.Scalar(content, "text")
	}
	return el
}

func parseSizedElement(content, elementType string, fallback paradox.Size) *Element {
	name, ok := paradox.Scalar(content, "name")
	if !ok {
		return nil
	}
	size := fallback
	if parsed, ok := paradox.SizeOf(content); ok {
		size = parsed
	}
	return &Element{
		Name:     name,
		Type:     elementType,
		Position: paradox.PositionOf(content),
		Size:     &size,
	}
}

// extractBackgroundSprite resolves the three background forms in precedence
// order: nested spriteType, nested quadTextureSprite, bare assignment.
func extractBackgroundSprite(content string) string {
	if m := bgSpriteRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := bgQuadRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	if m := bgBareRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}
