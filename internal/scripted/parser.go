// # internal/scripted/parser.go
package scripted

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gfxlens/internal/observability"
	"gfxlens/internal/paradox"
)

// Result is the outcome of one scripted-GUI file parse. Errors collects
// human-readable diagnostics; the parser never fails hard on malformed input.
type Result struct {
	Definitions []*Definition
	Errors      []string
}

var (
	// Nested-tolerant pass first, flat pass as a supplement for entries the
	// first pattern missed. First-pass entries win.
	entryNestedRe = regexp.MustCompile(`(?s)(\w+)\s*=\s*\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}`)
	entryFlatRe   = regexp.MustCompile(`(\w+)\s*=\s*\{([^{}]+)\}`)

	propEntryRe = regexp.MustCompile(`(\w+)\s*=\s*\{([^{}]*)\}`)
	propKVRe    = regexp.MustCompile(`(\w+)\s*=\s*["']?([^"'}\s]+)["']?`)
)

// Fixed probe lists; extending support means extending these.
var (
	inputHandlerKeys = []string{
		"on_click", "on_hover", "on_focus", "on_key_down", "on_key_up",
		"shortcut", "clicksound", "over_sound", "on_text_changed",
	}
	scopeConditionKeys = []string{
		"THIS", "ROOT", "PREV", "FROM", "FROMFROM",
		"scope_conditions", "limit", "any_of", "all_of",
		"has_variable", "check_variable", "is_valid",
	}
	dynamicListKeys = []string{
		"for_each", "iterate", "dynamic_list", "list_entry",
		"template", "data_source", "item_template",
	}
	nestedElementTags = []string{
		"containerWindowType", "windowType", "buttonType", "iconType",
		"instantTextBoxType", "editBoxType", "checkboxType", "scrollbarType",
		"listboxType", "gridBoxType", "positionType",
	}
)

// ParseFile reads and parses one scripted-GUI file. File-access and
// grammar-absence failures are recorded in Result.Errors with an empty
// definition list; no error is returned for malformed input.
func ParseFile(path string) *Result {
	defer func(start time.Time) {
		observability.ParseDuration.WithLabelValues("scripted").Observe(time.Since(start).Seconds())
	}(time.Now())

	if _, err := os.Stat(path); err != nil {
		return &Result{Errors: []string{fmt.Sprintf("File not found: %s", path)}}
	}
	content, err := paradox.DecodeFile(path)
	if err != nil {
		return &Result{Errors: []string{fmt.Sprintf("File encoding error: %v", err)}}
	}
	return Parse(content)
}

// Parse extracts every scripted-GUI definition from content.
func Parse(content string) *Result {
	res := &Result{}

	if strings.TrimSpace(content) == "" {
		res.Errors = append(res.Errors, "File is empty.")
		return res
	}

	content = paradox.StripComments(content)

	roots := paradox.Blocks(content, "scripted_gui", false)
	if len(roots) == 0 {
		res.Errors = append(res.Errors, "scripted_gui block not found. Please check if this is a valid scripted_gui file.")
		return res
	}

	// Definitions are keyed by identifier: a repeated identifier replaces the
	// earlier body but keeps its original position.
	var order []string
	bodies := make(map[string]string)
	for _, nb := range paradox.NamedBlocks(roots[0]) {
		if _, seen := bodies[nb.Name]; !seen {
			order = append(order, nb.Name)
		}
		bodies[nb.Name] = nb.Body
	}

	for _, name := range order {
		if def := parseDefinition(name, bodies[name]); def != nil {
			res.Definitions = append(res.Definitions, def)
		}
	}
	return res
}

func parseDefinition(name, content string) *Definition {
	windowName, ok := paradox.ScalarAnchored(content, "window_name")
	if !ok {
		return nil
	}

	def := &Definition{Name: name, WindowName: windowName}
	def.ParentWindowName, _ = paradox.ScalarAnchored(content, "parent_window_name")
	def.ContextType, _ = paradox.ScalarAnchored(content, "context_type")
	def.VisibleCondition, _ = paradox.BlockProperty(content, "visible")

	def.Triggers = parseEntryMap(content, "triggers")
	def.Effects = parseEntryMap(content, "effects")
	def.Properties = parseProperties(content)

	def.AIEnabled, _ = paradox.BlockProperty(content, "ai_enabled")
	def.Dirty, _ = paradox.ScalarAnchored(content, "dirty")
	def.Moveable = boolPtr(content, "moveable")
	def.Resizable = boolPtr(content, "resizable")
	def.Orientation, _ = paradox.ScalarAnchored(content, "orientation")

	def.AnimationType, _ = paradox.ScalarAnchored(content, "animation_type")
	if t, ok := paradox.Float(content, "animation_time"); ok {
		def.AnimationTime = &t
	}
	def.Upsound, _ = paradox.ScalarAnchored(content, "upsound")
	def.Downsound, _ = paradox.ScalarAnchored(content, "downsound")

	def.HorizontalScrollbar, _ = paradox.ScalarAnchored(content, "horizontalScrollbar")
	def.VerticalScrollbar, _ = paradox.ScalarAnchored(content, "verticalScrollbar")
	def.SmoothScrolling = boolPtr(content, "smooth_scrolling")

	def.Keyframe = parseKeyframes(content)
	def.InputHandler = probeScalars(content, inputHandlerKeys)
	def.ScopeConditions = parseScopeConditions(content)
	def.DynamicLists = probeBlocks(content, dynamicListKeys)
	def.NestedElements = parseNestedElements(content)

	return def
}

// parseEntryMap extracts the first `tag = { ... }` sub-block (triggers or
// effects) and collects its `identifier = { ... }` entries in two passes.
func parseEntryMap(content, tag string) map[string]string {
	blocks := paradox.Blocks(content, tag, false)
	if len(blocks) == 0 {
		return nil
	}
	body := blocks[0]

	entries := make(map[string]string)
	for _, m := range entryNestedRe.FindAllStringSubmatch(body, -1) {
		entries[m[1]] = strings.TrimSpace(m[2])
	}
	for _, m := range entryFlatRe.FindAllStringSubmatch(body, -1) {
		if _, ok := entries[m[1]]; !ok {
			entries[m[1]] = strings.TrimSpace(m[2])
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

// parseProperties needs the balanced-brace extractor: the properties block
// always contains one sub-block per element, so a single-level match would
// truncate before the first entry.
func parseProperties(content string) map[string]map[string]string {
	blocks := paradox.Blocks(content, "properties", false)
	if len(blocks) == 0 {
		return nil
	}
	body := blocks[0]

	props := make(map[string]map[string]string)
	for _, m := range propEntryRe.FindAllStringSubmatch(body, -1) {
		elementName := m[1]
		overrides := make(map[string]string)
		for _, kv := range propKVRe.FindAllStringSubmatch(strings.TrimSpace(m[2]), -1) {
			overrides[kv[1]] = kv[2]
		}
		props[elementName] = overrides
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

// parseKeyframes flattens every keyframe block into one map; later blocks
// overwrite earlier keys on collision.
func parseKeyframes(content string) map[string]string {
	frames := make(map[string]string)
	for _, block := range paradox.Blocks(content, "keyframe", false) {
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, value, found := strings.Cut(line, "=")
			if !found {
				continue
			}
			frames[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	if len(frames) == 0 {
		return nil
	}
	return frames
}

func parseScopeConditions(content string) map[string]string {
	conditions := make(map[string]string)
	for _, key := range scopeConditionKeys {
		if block, ok := paradox.BlockProperty(content, key); ok {
			conditions[key] = block
		} else if value, ok := paradox.ScalarAnchored(content, key); ok {
			conditions[key] = value
		}
	}
	if len(conditions) == 0 {
		return nil
	}
	return conditions
}

func parseNestedElements(content string) map[string]map[string]NestedElement {
	elements := make(map[string]map[string]NestedElement)
	for _, tag := range nestedElementTags {
		blocks := paradox.Blocks(content, tag, false)
		if len(blocks) == 0 {
			continue
		}
		byName := make(map[string]NestedElement, len(blocks))
		for i, body := range blocks {
			key, ok := paradox.ScalarAnchored(body, "name")
			if !ok {
				key = fmt.Sprintf("%s_%d", tag, i)
			}
			byName[key] = NestedElement{Type: tag, Content: body}
		}
		elements[tag] = byName
	}
	if len(elements) == 0 {
		return nil
	}
	return elements
}

func probeScalars(content string, keys []string) map[string]string {
	found := make(map[string]string)
	for _, key := range keys {
		if value, ok := paradox.ScalarAnchored(content, key); ok {
			found[key] = value
		}
	}
	if len(found) == 0 {
		return nil
	}
	return found
}

func probeBlocks(content string, keys []string) map[string]string {
	found := make(map[string]string)
	for _, key := range keys {
		if block, ok := paradox.BlockProperty(content, key); ok {
			found[key] = block
		}
	}
	if len(found) == 0 {
		return nil
	}
	return found
}

func boolPtr(content, key string) *bool {
	if v, ok := paradox.Bool(content, key); ok {
		return &v
	}
	return nil
}
