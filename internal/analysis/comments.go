// # internal/analysis/comments.go
package analysis

import "strings"

// stripCommentsStringAware removes '#' comments line by line while keeping a
// '#' that appears inside a matched quote pair, so file paths and expressions
// containing the character survive. An unescaped quote toggles string state;
// the comment check only fires outside strings.
func stripCommentsStringAware(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = stripLine(line)
	}
	return strings.Join(lines, "\n")
}

func stripLine(line string) string {
	inString := false
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if !inString && c == '#' {
			return line[:i]
		}
		if (c == '"' || c == '\'') && (i == 0 || line[i-1] != '\\') {
			if !inString {
				inString = true
				quote = c
			} else if c == quote {
				inString = false
			}
		}
	}
	return line
}
