package settings

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token names read by WithTheme.
const (
	TokenGap     = "columns.gap"
	TokenAlign   = "columns.align"
	TokenBorder  = "columns.border"
	TokenRadius  = "columns.radius"
	TokenShadow  = "columns.shadow"
	TokenPadding = "columns.padding"
)

// WithTheme overlays the column tokens of a theme selection on base. Tokens
// that are missing or blank leave the base value untouched.
func WithTheme(base Settings, selection *theme.Selection) Settings {
	if selection == nil || selection.Manifest == nil || len(selection.Manifest.Tokens) == 0 {
		return base
	}
	tokens := selection.Manifest.Tokens
	overlay := func(dst *string, key string) {
		if value := strings.TrimSpace(tokens[key]); value != "" {
			*dst = value
		}
	}

	out := base
	overlay(&out.Gap, TokenGap)
	overlay(&out.Align, TokenAlign)
	overlay(&out.Border, TokenBorder)
	overlay(&out.Radius, TokenRadius)
	overlay(&out.Shadow, TokenShadow)
	overlay(&out.Padding, TokenPadding)
	return out
}

// ResolveTheme asks selector for the named theme and variant and overlays the
// result on base.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, base Settings) (Settings, error) {
	if selector == nil {
		return base, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return base, fmt.Errorf("settings: select theme %q/%q: %w", name, variant, err)
	}
	return WithTheme(base, selection), nil
}
