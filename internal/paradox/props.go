// # internal/paradox/props.go
package paradox

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Position is a 2D offset inside the canvas coordinate space.
type Position struct {
	X int
	Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Margin holds the left/right margin pair of a container.
type Margin struct {
	Left  int
	Right int
}

var (
	positionNamedRe = regexp.MustCompile(`position\s*=\s*\{\s*x\s*=\s*([+-]?\d+)\s*y\s*=\s*([+-]?\d+)\s*\}`)
	positionBareRe  = regexp.MustCompile(`position\s*=\s*\{\s*([+-]?\d+)\s+([+-]?\d+)\s*\}`)
	sizeNamedRe     = regexp.MustCompile(`size\s*=\s*\{\s*width\s*=\s*(\d+)\s*height\s*=\s*(\d+)\s*\}`)
	sizeBareRe      = regexp.MustCompile(`size\s*=\s*\{\s*(\d+)\s+(\d+)\s*\}`)
	marginRe        = regexp.MustCompile(`margin\s*=\s*\{[^}]*left\s*=\s*(\d+)[^}]*right\s*=\s*(\d+)[^}]*\}`)
)

// Scalar extracts `key = value`, preferring the quoted form and falling back
// to a bare token (any run of non-whitespace, non-brace characters).
// Surrounding matching quotes are stripped from bare tokens.
func Scalar(content, key string) (string, bool) {
	quoted := regexp.MustCompile(regexp.QuoteMeta(key) + `\s*=\s*["']([^"'}]+)["']`)
	if m := quoted.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	bare := regexp.MustCompile(regexp.QuoteMeta(key) + `\s*=\s*([^\s}]+)`)
	if m := bare.FindStringSubmatch(content); m != nil {
		return trimQuotes(strings.TrimSpace(m[1])), true
	}
	return "", false
}

// ScalarAnchored is Scalar with the key anchored at the start of a line.
// The scripted-GUI parser relies on it so that window_name never matches
// inside parent_window_name.
func ScalarAnchored(content, key string) (string, bool) {
	quoted := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(key) + `\s*=\s*["']([^"'}]+)["']`)
	if m := quoted.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	bare := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(key) + `\s*=\s*([^\s}]+)`)
	if m := bare.FindStringSubmatch(content); m != nil {
		return trimQuotes(strings.TrimSpace(m[1])), true
	}
	return "", false
}

// Bool extracts `key = yes|no|true|false` case-insensitively.
func Bool(content, key string) (bool, bool) {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(key) + `\s*=\s*(yes|no|true|false)`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return false, false
	}
	v := strings.ToLower(m[1])
	return v == "yes" || v == "true", true
}

// Float extracts an optionally signed integer or decimal literal.
func Float(content, key string) (float64, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(key) + `\s*=\s*([+-]?(?:\d+\.?\d*|\.\d+))`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int extracts an unsigned whole-number literal, used where the domain
// requires pixel values.
func Int(content, key string) (int, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(key) + `\s*=\s*(\d+)`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// PositionOf extracts `position = { x = N y = N }` or the bare
// `position = { N N }` form. x must precede y. Defaults to (0,0).
func PositionOf(content string) Position {
	if m := positionNamedRe.FindStringSubmatch(content); m != nil {
		return Position{X: atoi(m[1]), Y: atoi(m[2])}
	}
	if m := positionBareRe.FindStringSubmatch(content); m != nil {
		return Position{X: atoi(m[1]), Y: atoi(m[2])}
	}
	return Position{}
}

// SizeOf extracts `size = { width = N height = N }` or the bare pair form.
// Unlike PositionOf it reports absence instead of defaulting, so callers can
// apply type-specific fallback sizes.
func SizeOf(content string) (Size, bool) {
	if m := sizeNamedRe.FindStringSubmatch(content); m != nil {
		return Size{Width: atoi(m[1]), Height: atoi(m[2])}, true
	}
	if m := sizeBareRe.FindStringSubmatch(content); m != nil {
		return Size{Width: atoi(m[1]), Height: atoi(m[2])}, true
	}
	return Size{}, false
}

// MarginOf extracts the left/right pair from `margin = { left = N right = N }`.
func MarginOf(content string) (Margin, bool) {
	m := marginRe.FindStringSubmatch(content)
	if m == nil {
		return Margin{}, false
	}
	return Margin{Left: atoi(m[1]), Right: atoi(m[2])}, true
}

// BlockProperty returns the raw inner text of the first `key = { ... }`
// match using a single-level, non-nesting brace match. A value containing
// its own sub-block is truncated at the first inner close brace; this
// mirrors the observed behavior of the format's real-world consumers and is
// kept deliberately (Blocks is the nesting-aware primitive).
func BlockProperty(content, key string) (string, bool) {
	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(key) + `\s*=\s*\{([^}]*)\}`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }
func (s Size) String() string     { return fmt.Sprintf("%dx%d", s.Width, s.Height) }
