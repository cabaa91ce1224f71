package layout

import "strings"

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Style is an ordered list of declarations.
type Style []Declaration

// Get returns the value set for property.
func (s Style) Get(property string) (string, bool) {
	for _, decl := range s {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// String renders the declarations as an inline style attribute value.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s))
	for _, decl := range s {
		parts = append(parts, decl.Property+": "+decl.Value)
	}
	return strings.Join(parts, "; ") + ";"
}

func appendDecl(style Style, property, value string) Style {
	if value == "" {
		return style
	}
	return append(style, Declaration{Property: property, Value: value})
}
