// Package settings holds the global defaults that feed the layout cascade and
// persists them as YAML.
package settings

// Settings are the global defaults applied when a block leaves a key out.
// Padding is not a block fallback: it is only applied when a column has a
// visible border or shadow.
type Settings struct {
	Gap     string `json:"defaultGap" yaml:"defaultGap"`
	Align   string `json:"defaultAlign" yaml:"defaultAlign"`
	Border  string `json:"defaultBorder" yaml:"defaultBorder"`
	Radius  string `json:"defaultRadius" yaml:"defaultRadius"`
	Shadow  string `json:"defaultShadow" yaml:"defaultShadow"`
	Padding string `json:"defaultPadding" yaml:"defaultPadding"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Gap:     "1rem",
		Align:   "stretch",
		Border:  "1px solid var(--background-modifier-border)",
		Radius:  "8px",
		Shadow:  "0 4px 8px rgba(0, 0, 0, 0.5)",
		Padding: "1.2em",
	}
}

// Field describes one editable setting for settings surfaces.
type Field struct {
	Name        string
	Description string
	Placeholder string
	Get         func(Settings) string
	Set         func(*Settings, string)
}

// Fields lists the editable settings in display order.
func Fields() []Field {
	return []Field{
		{
			Name:        "Default border",
			Description: "The default CSS `border` style for columns. Set to `none` to disable.",
			Placeholder: "e.g., 1px solid #ccc",
			Get:         func(s Settings) string { return s.Border },
			Set:         func(s *Settings, v string) { s.Border = v },
		},
		{
			Name:        "Default shadow",
			Description: "The default CSS `box-shadow` style. Set to `none` to disable.",
			Placeholder: "e.g., 0 2px 8px #0005",
			Get:         func(s Settings) string { return s.Shadow },
			Set:         func(s *Settings, v string) { s.Shadow = v },
		},
		{
			Name:        "Default radius",
			Description: "The default CSS `border-radius` for rounding corners.",
			Placeholder: "e.g., 8px",
			Get:         func(s Settings) string { return s.Radius },
			Set:         func(s *Settings, v string) { s.Radius = v },
		},
		{
			Name:        "Default padding",
			Description: "The default CSS `padding` (inner space).",
			Placeholder: "e.g., 1.2em",
			Get:         func(s Settings) string { return s.Padding },
			Set:         func(s *Settings, v string) { s.Padding = v },
		},
		{
			Name:        "Default gap",
			Description: "The default CSS `gap` between columns.",
			Placeholder: "e.g., 1.5rem",
			Get:         func(s Settings) string { return s.Gap },
			Set:         func(s *Settings, v string) { s.Gap = v },
		},
		{
			Name:        "Default align",
			Description: "The default CSS `align-items` for the column row.",
			Placeholder: "e.g., start",
			Get:         func(s Settings) string { return s.Align },
			Set:         func(s *Settings, v string) { s.Align = v },
		},
	}
}
