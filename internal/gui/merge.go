// # internal/gui/merge.go
package gui

import "gfxlens/internal/scripted"

// ApplyScripted cross-links scripted-GUI definitions onto parsed elements.
//
// Containers are matched twice: first by direct lookup of the element name in
// the window-name index, then by a scan over all definitions for a matching
// window_name. Both paths can fire for the same element and the scan result
// overwrites fields the index hit set; this double-detection behavior is kept
// for compatibility with existing mod tooling.
//
// Buttons, icons, and text boxes are matched by trigger naming convention
// ({name}_click_enabled, {name}_visible), then by effect convention
// ({name}_click). The first definition producing any match wins and its
// metadata is attached.
func ApplyScripted(elements []*Element, defs []*scripted.Definition) {
	if len(defs) == 0 {
		return
	}

	// Index by window_name: a later definition for the same window replaces
	// the earlier one but keeps its position.
	var ordered []*scripted.Definition
	index := make(map[string]*scripted.Definition, len(defs))
	for _, def := range defs {
		if existing, ok := index[def.WindowName]; ok {
			for i, d := range ordered {
				if d == existing {
					ordered[i] = def
					break
				}
			}
		} else {
			ordered = append(ordered, def)
		}
		index[def.WindowName] = def
	}

	for _, el := range elements {
		switch el.Type {
		case TypeContainerWindow:
			mergeContainer(el, index, ordered)
		case TypeButton, TypeIcon, TypeInstantTextBox:
			mergeByConvention(el, ordered)
		}
	}
}

func mergeContainer(el *Element, index map[string]*scripted.Definition, ordered []*scripted.Definition) {
	if def, ok := index[el.Name]; ok {
		el.VisibleCondition = def.VisibleCondition
		el.IsDynamic = true
		el.Scripted = def.Metadata()

		if def.Properties != nil {
			if el.Properties == nil {
				el.Properties = make(map[string]map[string]string, len(def.Properties))
			}
			for name, overrides := range def.Properties {
				el.Properties[name] = overrides
			}
		}
	}

	// Independent window-name scan; runs even after an index hit and may
	// overwrite what it set.
	for _, def := range ordered {
		if def.WindowName == el.Name {
			el.VisibleCondition = def.VisibleCondition
			el.IsDynamic = true
			el.Scripted = def.Metadata()
			break
		}
	}
}

func mergeByConvention(el *Element, ordered []*scripted.Definition) {
	triggerKeys := []string{el.Name + "_click_enabled", el.Name + "_visible"}
	effectKeys := []string{el.Name + "_click"}

	for _, def := range ordered {
		matched := false

		if def.Triggers != nil {
			for _, key := range triggerKeys {
				if condition, ok := def.Triggers[key]; ok {
					el.VisibleCondition = condition
					el.IsDynamic = true
					matched = true
					break
				}
			}
		}

		if def.Effects != nil && !matched {
			for _, key := range effectKeys {
				if effect, ok := def.Effects[key]; ok {
					el.ClickEffect = effect
					el.IsDynamic = true
					matched = true
					break
				}
			}
		}

		if matched {
			el.Scripted = def.Metadata()
			return
		}
	}
}
