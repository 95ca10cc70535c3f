// # internal/analysis/patterns.go
package analysis

import "regexp"

// DefaultExtensions is the corpus file set searched for asset references.
var DefaultExtensions = []string{
	".txt", ".gui", ".mod", ".pdx", ".interface", ".gfx", ".lua", ".yml", ".yaml",
}

// referencePatterns is the ordered bank of heuristic extraction patterns.
// Each pattern either captures the candidate in group 1 or matches it whole.
// Over-matching is tolerated: candidates are filtered by naming convention
// and checked against the definition table before they count as usages.
var referencePatterns = []*regexp.Regexp{
	// Direct property references.
	regexp.MustCompile(`(?i)icon\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
	regexp.MustCompile(`(?i)texture\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
	regexp.MustCompile(`(?i)spriteType\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
	regexp.MustCompile(`(?i)texturefile\s*=\s*["']?([A-Za-z0-9_./\\]+)["']?`),
	regexp.MustCompile(`(?i)sprite\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
	regexp.MustCompile(`(?i)frame\s*=\s*["']?([A-Za-z0-9_]+)["']?`),

	// References scoped inside GUI element blocks.
	regexp.MustCompile(`(?is)buttonType\s*=\s*\{[^}]*?quadTextureSprite\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
	regexp.MustCompile(`(?is)iconType\s*=\s*\{[^}]*?spriteType\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
	regexp.MustCompile(`(?is)instantTextBoxType\s*=\s*\{[^}]*?font\s*=\s*["']?([A-Za-z0-9_]+)["']?`),

	// Bare and quoted naming-convention literals.
	regexp.MustCompile(`(?i)GFX_[A-Za-z0-9_]+`),
	regexp.MustCompile(`(?i)"(GFX_[^"]+)"`),
	regexp.MustCompile(`(?i)'(GFX_[^']+)'`),

	// Variable and macro references.
	regexp.MustCompile(`(?i)@\[?([A-Za-z0-9_]*GFX[A-Za-z0-9_]*)\]?`),
	regexp.MustCompile(`(?i)\$([A-Za-z0-9_]*GFX[A-Za-z0-9_]*)\$`),

	// Preprocessor directives.
	regexp.MustCompile(`(?i)@sprite\s*=\s*([A-Za-z0-9_]+)`),
	regexp.MustCompile(`(?i)@texture\s*=\s*([A-Za-z0-9_]+)`),

	// Effect and animation file references.
	regexp.MustCompile(`(?i)effectFile\s*=\s*["']?([A-Za-z0-9_./\\]+)["']?`),
	regexp.MustCompile(`(?i)animationmaskfile\s*=\s*["']?([A-Za-z0-9_./\\]+)["']?`),
	regexp.MustCompile(`(?i)animationtexturefile\s*=\s*["']?([A-Za-z0-9_./\\]+)["']?`),

	// Scripting calls.
	regexp.MustCompile(`(?i)GetSprite\s*\(\s*["']([^"')]+)["']\s*\)`),
	regexp.MustCompile(`(?i)SetSprite\s*\(\s*["']([^"')]+)["']\s*\)`),

	// Newer syntax variants.
	regexp.MustCompile(`(?i)background\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
	regexp.MustCompile(`(?i)highlight\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
	regexp.MustCompile(`(?i)glow\s*=\s*["']?([A-Za-z0-9_]+)["']?`),
}
