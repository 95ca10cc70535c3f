// # internal/assets/table.go
package assets

import "sort"

// Status classifies a sprite definition after scanning.
type Status string

const (
	StatusValid       Status = "valid"
	StatusMissingFile Status = "missing_file"
	StatusDuplicate   Status = "duplicate"
)

// Definition is one `spriteType = { name texturefile }` entry resolved
// against the mod root.
type Definition struct {
	Name         string
	TexturePath  string // absolute path under the mod root
	RelativePath string // texturefile value as written
	Source       string // .gfx file that defines the name
	Status       Status
}

// Table is the single source of truth for defined asset identifiers. It is
// treated as a frozen snapshot for the duration of one analysis run.
type Table struct {
	byName     map[string]*Definition
	duplicates map[string][]string
}

func NewTable() *Table {
	return &Table{
		byName:     make(map[string]*Definition),
		duplicates: make(map[string][]string),
	}
}

// Add records a definition. A name seen twice transitions to duplicate
// status, with every contributing source file kept in discovery order; the
// latest definition's texture wins, as the game loads it last.
func (t *Table) Add(def *Definition) {
	if existing, ok := t.byName[def.Name]; ok {
		def.Status = StatusDuplicate
		if files, ok := t.duplicates[def.Name]; ok {
			t.duplicates[def.Name] = append(files, def.Source)
		} else {
			t.duplicates[def.Name] = []string{existing.Source, def.Source}
		}
	}
	t.byName[def.Name] = def
}

// Get returns the definition for name, if any.
func (t *Table) Get(name string) (*Definition, bool) {
	def, ok := t.byName[name]
	return def, ok
}

// Names returns all defined names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Duplicates maps each multiply-defined name to its source files in
// discovery order.
func (t *Table) Duplicates() map[string][]string {
	return t.duplicates
}

func (t *Table) Len() int { return len(t.byName) }
