package layout

import (
	"strings"

	"github.com/goliatone/go-columns/pkg/block"
	"github.com/goliatone/go-columns/pkg/settings"
)

const (
	// ContainerClass is the class carried by the grid container.
	ContainerClass = "columns-container"
	// ColumnClass is the class carried by each column.
	ColumnClass = "column-content"

	noneValue        = "none"
	zeroPaddingValue = "0px"
)

// Container describes the grid wrapping all columns. Empty fields are unset.
type Container struct {
	GridTemplateColumns string `json:"gridTemplateColumns"`
	Gap                 string `json:"gap"`
	AlignItems          string `json:"alignItems,omitempty"`
}

// Style returns the container's inline declarations.
func (c Container) Style() Style {
	style := Style{{Property: "display", Value: "grid"}}
	style = appendDecl(style, "grid-template-columns", c.GridTemplateColumns)
	style = appendDecl(style, "gap", c.Gap)
	style = appendDecl(style, "align-items", c.AlignItems)
	return style
}

// ColumnStyle is the final style of one column. Empty fields are unset.
type ColumnStyle struct {
	Border       string `json:"border,omitempty"`
	Padding      string `json:"padding,omitempty"`
	BoxShadow    string `json:"boxShadow,omitempty"`
	BorderRadius string `json:"borderRadius,omitempty"`
	AlignSelf    string `json:"alignSelf,omitempty"`
	MarginRight  string `json:"marginRight,omitempty"`
}

// Style returns the column's inline declarations.
func (c ColumnStyle) Style() Style {
	var style Style
	style = appendDecl(style, "border", c.Border)
	style = appendDecl(style, "padding", c.Padding)
	style = appendDecl(style, "box-shadow", c.BoxShadow)
	style = appendDecl(style, "border-radius", c.BorderRadius)
	style = appendDecl(style, "align-self", c.AlignSelf)
	style = appendDecl(style, "margin-right", c.MarginRight)
	return style
}

// Column pairs a segment with its derived style and the element its rendered
// markdown is written to.
type Column struct {
	Index    int           `json:"index"`
	Markdown block.Segment `json:"markdown"`
	Style    ColumnStyle   `json:"style"`
	Element  *Element      `json:"-"`
}

// Result is the full layout of one block.
type Result struct {
	Container Container `json:"container"`
	Columns   []Column  `json:"columns"`
}

// Derive computes the container and per-column styles without rendering
// anything. It is pure and never fails; zero segments yield zero columns.
func Derive(cfg block.Config, segments []block.Segment, defaults settings.Settings) Result {
	result := Result{
		Container: deriveContainer(cfg),
		Columns:   make([]Column, 0, len(segments)),
	}
	for i, segment := range segments {
		style := deriveColumn(cfg, defaults, i, len(segments))
		result.Columns = append(result.Columns, Column{
			Index:    i,
			Markdown: segment,
			Style:    style,
			Element:  NewElement(ColumnClass, style.Style()),
		})
	}
	return result
}

func deriveContainer(cfg block.Config) Container {
	var container Container

	if widths, ok := cfg.Widths.List(); ok {
		container.GridTemplateColumns = strings.Join(widths, " ")
	} else {
		container.GridTemplateColumns, _ = cfg.Widths.Scalar()
	}

	if gap, ok := cfg.Gap.Scalar(); ok {
		container.Gap = gap
	} else {
		container.Gap = "0"
	}

	if align, ok := cfg.Align.Scalar(); ok {
		container.AlignItems = align
	}
	return container
}

func deriveColumn(cfg block.Config, defaults settings.Settings, index, total int) ColumnStyle {
	var style ColumnStyle

	border := dropNone(cfg.Border)
	shadow := dropNone(cfg.Shadow)
	visible := border.Truthy() || shadow.Truthy()

	padding := cfg.Padding
	if visible && !cfg.Padding.Truthy() {
		padding = block.Scalar(defaults.Padding)
	}

	style.Border, _ = border.Scalar()
	if value, ok := padding.Scalar(); ok && value != zeroPaddingValue {
		style.Padding = value
	}
	style.BoxShadow, _ = shadow.Scalar()
	style.BorderRadius, _ = cfg.Radius.Scalar()

	if align, ok := cfg.Align.At(index); ok {
		style.AlignSelf = align
	}
	if gap, ok := cfg.Gap.At(index); ok && index < total-1 {
		style.MarginRight = gap
	}
	return style
}

// dropNone clears a scalar `none` so the style is not emitted.
func dropNone(value block.Value) block.Value {
	if scalar, ok := value.Scalar(); ok && scalar == noneValue {
		return block.Value{}
	}
	return value
}
