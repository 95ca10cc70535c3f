// # internal/scripted/types.go
package scripted

// Definition is one named dynamic-behavior declaration from a scripted_gui
// block. WindowName is the join key against parsed GUI element names;
// declarations without it are discarded by the parser.
type Definition struct {
	Name             string
	WindowName       string
	ParentWindowName string
	ContextType      string

	VisibleCondition string
	Triggers         map[string]string
	Effects          map[string]string
	Properties       map[string]map[string]string

	AIEnabled   string
	Dirty       string
	Moveable    *bool
	Resizable   *bool
	Orientation string

	AnimationType string
	AnimationTime *float64
	Upsound       string
	Downsound     string

	HorizontalScrollbar string
	VerticalScrollbar   string
	SmoothScrolling     *bool

	Keyframe        map[string]string
	InputHandler    map[string]string
	ScopeConditions map[string]string
	DynamicLists    map[string]string

	NestedElements map[string]map[string]NestedElement
}

// NestedElement is a raw UI element block found inside a scripted-GUI
// definition, kept unparsed for downstream re-parsing.
type NestedElement struct {
	Type    string
	Content string
}

// Metadata is the free-form bundle the merger attaches to a dynamic element.
// Only fields the renderer consumes are carried over from the definition.
type Metadata struct {
	AIEnabled     string
	Dirty         string
	Moveable      *bool
	Orientation   string
	AnimationType string
	AnimationTime *float64
	Upsound       string
	Downsound     string

	Keyframe        map[string]string
	InputHandler    map[string]string
	ScopeConditions map[string]string
	DynamicLists    map[string]string
	NestedElements  map[string]map[string]NestedElement
}

// Metadata bundles the definition's renderer-facing fields.
func (d *Definition) Metadata() *Metadata {
	return &Metadata{
		AIEnabled:       d.AIEnabled,
		Dirty:           d.Dirty,
		Moveable:        d.Moveable,
		Orientation:     d.Orientation,
		AnimationType:   d.AnimationType,
		AnimationTime:   d.AnimationTime,
		Upsound:         d.Upsound,
		Downsound:       d.Downsound,
		Keyframe:        d.Keyframe,
		InputHandler:    d.InputHandler,
		ScopeConditions: d.ScopeConditions,
		DynamicLists:    d.DynamicLists,
		NestedElements:  d.NestedElements,
	}
}
