package block

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-columns/pkg/settings"
)

// Key names one recognised configuration entry.
type Key string

const (
	KeyWidths  Key = "widths"
	KeyGap     Key = "gap"
	KeyAlign   Key = "align"
	KeyBorder  Key = "border"
	KeyRadius  Key = "radius"
	KeyPadding Key = "padding"
	KeyShadow  Key = "shadow"
)

// DefaultWidths is the grid template used when a block omits `widths`.
const DefaultWidths = "1fr 1fr"

// Keys lists the closed key set in lookup order.
func Keys() []Key {
	return []Key{KeyWidths, KeyGap, KeyAlign, KeyBorder, KeyRadius, KeyPadding, KeyShadow}
}

// Config holds the resolved value of every key. Padding has no default and
// stays absent unless the block writes it.
type Config struct {
	Widths  Value
	Gap     Value
	Align   Value
	Border  Value
	Radius  Value
	Padding Value
	Shadow  Value
}

// Get returns the value stored for key.
func (c Config) Get(key Key) Value {
	switch key {
	case KeyWidths:
		return c.Widths
	case KeyGap:
		return c.Gap
	case KeyAlign:
		return c.Align
	case KeyBorder:
		return c.Border
	case KeyRadius:
		return c.Radius
	case KeyPadding:
		return c.Padding
	case KeyShadow:
		return c.Shadow
	default:
		return Value{}
	}
}

// Segment is the trimmed, non-empty markdown of one column.
type Segment string

var separatorPattern = regexp.MustCompile(`(?m)^\s*---\s*$`)

// IsConfigLine reports whether line is treated as configuration. Any colon
// qualifies, so prose such as "Note: see below" is configuration too.
func IsConfigLine(line string) bool {
	return strings.Contains(line, ":")
}

// Split parses raw block text into its configuration and column segments,
// applying defaults for keys the block leaves out. It never fails.
func Split(raw string, defaults settings.Settings) (Config, []Segment) {
	lines := strings.Split(raw, "\n")

	configLines := make([]string, 0, len(lines))
	bodyLines := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsConfigLine(line) {
			configLines = append(configLines, line)
			continue
		}
		bodyLines = append(bodyLines, line)
	}

	cfg := Config{
		Widths:  Lookup(configLines, KeyWidths).OrDefault(Scalar(DefaultWidths)),
		Gap:     Lookup(configLines, KeyGap).OrDefault(Scalar(defaults.Gap)),
		Align:   Lookup(configLines, KeyAlign).OrDefault(Scalar(defaults.Align)),
		Border:  Lookup(configLines, KeyBorder).OrDefault(Scalar(defaults.Border)),
		Radius:  Lookup(configLines, KeyRadius).OrDefault(Scalar(defaults.Radius)),
		Padding: Lookup(configLines, KeyPadding),
		Shadow:  Lookup(configLines, KeyShadow).OrDefault(Scalar(defaults.Shadow)),
	}

	return cfg, SplitContent(strings.Join(bodyLines, "\n"))
}

// Lookup returns the value of the first line whose trimmed text starts with
// "<key>:". Only the first colon separates key from value.
func Lookup(lines []string, key Key) Value {
	prefix := string(key) + ":"
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, prefix) {
			continue
		}
		_, value, _ := strings.Cut(trimmed, ":")
		return ParseValue(value)
	}
	return Value{}
}

// SplitContent splits body text on `---` separator lines and returns the
// trimmed, non-empty segments in order.
func SplitContent(body string) []Segment {
	parts := separatorPattern.Split(body, -1)
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		segments = append(segments, Segment(trimmed))
	}
	return segments
}
