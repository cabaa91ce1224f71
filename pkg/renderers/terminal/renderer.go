// Package terminal previews a composed block in a terminal by drawing each
// column as a lipgloss box laid out on a character grid.
package terminal

import (
	"context"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/goliatone/go-columns/pkg/layout"
	"github.com/goliatone/go-columns/pkg/render"
)

// Name is the registry name of the terminal renderer.
const Name = "terminal"

const defaultWidth = 80

// Option configures the terminal renderer.
type Option func(*Renderer)

// WithWidth sets the number of cells available when RenderOptions.Width is
// zero.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithBorderColor sets the colour used for column borders.
func WithBorderColor(color string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(color) != "" {
			r.borderColor = color
		}
	}
}

// Renderer draws blocks as side by side boxes.
type Renderer struct {
	width       int
	borderColor string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a terminal renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{width: defaultWidth, borderColor: "240"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// RenderMarkdown writes the markdown source as is; the terminal has no richer
// representation.
func (r *Renderer) RenderMarkdown(_ context.Context, markdown string, el *layout.Element, _ string, _ layout.Owner) {
	if el == nil {
		return
	}
	_, _ = el.WriteString(markdown)
}

// Render lays columns out in rows of as many tracks as the grid template
// declares, the way a CSS grid wraps surplus children.
func (r *Renderer) Render(_ context.Context, result layout.Result, options render.RenderOptions) ([]byte, error) {
	if len(result.Columns) == 0 {
		return nil, nil
	}
	width := options.Width
	if width <= 0 {
		width = r.width
	}

	tracks := trackWeights(result.Container.GridTemplateColumns)
	gap := spacing(result.Container.Gap)

	var rows []string
	for start := 0; start < len(result.Columns); start += len(tracks) {
		end := min(start+len(tracks), len(result.Columns))
		rows = append(rows, r.renderRow(result.Container, result.Columns[start:end], tracks, width, gap))
	}
	return []byte(lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"), nil
}

func (r *Renderer) renderRow(container layout.Container, columns []layout.Column, tracks []int, width, gap int) string {
	widths := distribute(width-gap*(len(columns)-1), tracks[:len(columns)])

	height := 0
	for i, column := range columns {
		if h := lipgloss.Height(r.boxStyle(column.Style, widths[i]).Render(column.Element.Content())); h > height {
			height = h
		}
	}

	boxes := make([]string, 0, len(columns)*2)
	for i, column := range columns {
		style := r.boxStyle(column.Style, widths[i])
		align := column.Style.AlignSelf
		if align == "" {
			align = container.AlignItems
		}
		if align == "" || align == "stretch" || align == "normal" {
			style = style.Height(height)
		}
		box := style.Render(column.Element.Content())
		box = lipgloss.PlaceVertical(height, position(align), box)
		boxes = append(boxes, box)
		if i < len(columns)-1 && gap > 0 {
			boxes = append(boxes, strings.Repeat(" ", gap))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (r *Renderer) boxStyle(style layout.ColumnStyle, width int) lipgloss.Style {
	// Width covers border and padding but not the margin.
	box := lipgloss.NewStyle()
	inner := width
	if style.Border != "" {
		border := lipgloss.NormalBorder()
		if style.BorderRadius != "" && style.BorderRadius != "0" && style.BorderRadius != "0px" {
			border = lipgloss.RoundedBorder()
		}
		box = box.Border(border).BorderForeground(lipgloss.Color(r.borderColor))
	}
	if style.Padding != "" {
		box = box.Padding(0, 1)
	}
	if style.MarginRight != "" {
		box = box.MarginRight(spacing(style.MarginRight))
		inner -= spacing(style.MarginRight)
	}
	return box.Width(max(inner, 1))
}

// trackWeights reads fr units as weights. Any other track counts as 1fr.
func trackWeights(template string) []int {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return []int{1}
	}
	weights := make([]int, 0, len(fields))
	for _, field := range fields {
		weight := 1
		if number, ok := strings.CutSuffix(field, "fr"); ok {
			if value, err := strconv.ParseFloat(number, 64); err == nil && value > 0 {
				weight = max(int(value*2+0.5), 1)
			}
		}
		weights = append(weights, weight)
	}
	return weights
}

func distribute(total int, weights []int) []int {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	out := make([]int, len(weights))
	used := 0
	for i, w := range weights {
		out[i] = max(total*w/sum, 1)
		used += out[i]
	}
	if len(out) > 0 && used < total {
		out[len(out)-1] += total - used
	}
	return out
}

// spacing maps a CSS length to terminal cells: nothing for zero, one cell for
// anything else.
func spacing(value string) int {
	switch strings.TrimSpace(value) {
	case "", "0", "0px", "0rem", "0em":
		return 0
	default:
		return 1
	}
}

func position(align string) lipgloss.Position {
	switch align {
	case "center":
		return lipgloss.Center
	case "end", "flex-end", "self-end":
		return lipgloss.Bottom
	default:
		return lipgloss.Top
	}
}

// RenderProse returns document text unchanged.
func (r *Renderer) RenderProse(_ context.Context, markdown, _ string) ([]byte, error) {
	return []byte(markdown), nil
}
