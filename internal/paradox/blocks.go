// # internal/paradox/blocks.go
package paradox

import (
	"regexp"
	"strings"
)

// NamedBlock is one `identifier = { ... }` occurrence with its inner text.
type NamedBlock struct {
	Name string
	Body string
}

// Blocks returns the inner text of every top-level `tag = { ... }` occurrence
// in content, in source order. Braces are matched with a depth counter, so
// nested blocks of other tags are preserved verbatim inside each match.
// Nested occurrences of the same tag inside a match are not yielded; callers
// recurse into the returned text when they need them. A block whose braces
// never rebalance is dropped.
func Blocks(content, tag string, caseInsensitive bool) []string {
	expr := regexp.QuoteMeta(tag) + `\s*=\s*\{`
	if caseInsensitive {
		expr = `(?i)` + expr
	}
	re := regexp.MustCompile(expr)

	var blocks []string
	pos := 0
	for pos < len(content) {
		loc := re.FindStringIndex(content[pos:])
		if loc == nil {
			break
		}
		open := pos + loc[1] - 1 // index of '{'
		end, ok := matchBrace(content, open)
		if ok {
			blocks = append(blocks, content[open+1:end])
			pos = end + 1
		} else {
			pos = len(content)
		}
	}
	return blocks
}

var namedBlockRe = regexp.MustCompile(`(\w+)\s*=\s*\{`)

// NamedBlocks is the generic variant used by the scripted-GUI parser: every
// `identifier = { ... }` occurrence is returned keyed by its identifier,
// regardless of tag name. Matching is sequential, so blocks nested inside a
// prior match are skipped along with it.
func NamedBlocks(content string) []NamedBlock {
	var blocks []NamedBlock
	pos := 0
	for pos < len(content) {
		m := namedBlockRe.FindStringSubmatchIndex(content[pos:])
		if m == nil {
			break
		}
		name := content[pos+m[2] : pos+m[3]]
		open := pos + m[1] - 1
		end, ok := matchBrace(content, open)
		if ok {
			blocks = append(blocks, NamedBlock{Name: name, Body: content[open+1 : end]})
			pos = end + 1
		} else {
			pos = len(content)
		}
	}
	return blocks
}

// matchBrace scans from the opening brace at open and returns the index of
// its balancing close brace.
func matchBrace(content string, open int) (int, bool) {
	depth := 1
	for i := open + 1; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// StripComments removes everything from '#' to end of line. It has no
// awareness of '#' inside quoted strings; the analyzer carries its own
// string-aware stripper for corpus files.
func StripComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}
