package layout

import (
	"context"
	"strings"
	"sync"

	"github.com/goliatone/go-columns/pkg/block"
	"github.com/goliatone/go-columns/pkg/settings"
)

// Element is the target a MarkdownRenderer writes a column's output into.
// Writes are serialised so renderers may finish asynchronously.
type Element struct {
	Class string
	Style Style

	mu      sync.Mutex
	content strings.Builder
}

// NewElement creates an empty element.
func NewElement(class string, style Style) *Element {
	return &Element{Class: class, Style: style}
}

// Write appends rendered output.
func (e *Element) Write(p []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content.Write(p)
}

// WriteString appends rendered output.
func (e *Element) WriteString(s string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content.WriteString(s)
}

// Content returns everything written so far.
func (e *Element) Content() string {
	if e == nil {
		return ""
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content.String()
}

// Owner scopes resources a renderer allocates (pending embeds, timers) to the
// lifetime of the component that asked for the render.
type Owner interface {
	Register(cleanup func())
}

// MarkdownRenderer renders one column's markdown into el. Calls are fire and
// forget: the compositor neither waits for nor inspects the output.
type MarkdownRenderer interface {
	RenderMarkdown(ctx context.Context, markdown string, el *Element, sourcePath string, owner Owner)
}

// MarkdownRendererFunc adapts a function to MarkdownRenderer.
type MarkdownRendererFunc func(ctx context.Context, markdown string, el *Element, sourcePath string, owner Owner)

// RenderMarkdown calls f.
func (f MarkdownRendererFunc) RenderMarkdown(ctx context.Context, markdown string, el *Element, sourcePath string, owner Owner) {
	f(ctx, markdown, el, sourcePath, owner)
}

// Target carries what Compose needs to delegate rendering.
type Target struct {
	Renderer   MarkdownRenderer
	SourcePath string
	Owner      Owner
}

// Compose derives the layout and then hands every column's trimmed markdown to
// target.Renderer in column order.
func Compose(ctx context.Context, cfg block.Config, segments []block.Segment, defaults settings.Settings, target Target) Result {
	result := Derive(cfg, segments, defaults)
	if target.Renderer == nil {
		return result
	}
	for _, column := range result.Columns {
		target.Renderer.RenderMarkdown(ctx, strings.TrimSpace(string(column.Markdown)), column.Element, target.SourcePath, target.Owner)
	}
	return result
}
