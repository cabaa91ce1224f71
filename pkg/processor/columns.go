package processor

import (
	"context"
	"fmt"

	"github.com/goliatone/go-columns/pkg/block"
	"github.com/goliatone/go-columns/pkg/layout"
	"github.com/goliatone/go-columns/pkg/render"
	"github.com/goliatone/go-columns/pkg/settings"
)

// Language is the fence language handled by Columns.
const Language = "columns"

// SettingsSource supplies the defaults for one render pass. *settings.Store
// satisfies it.
type SettingsSource interface {
	Current() settings.Settings
}

// StaticSettings is a SettingsSource that always returns itself.
type StaticSettings settings.Settings

// Current returns s.
func (s StaticSettings) Current() settings.Settings {
	return settings.Settings(s)
}

// ColumnsOption configures a Columns handler.
type ColumnsOption func(*Columns)

// WithSettings sets where defaults are read from on every render.
func WithSettings(source SettingsSource) ColumnsOption {
	return func(c *Columns) {
		if source != nil {
			c.settings = source
		}
	}
}

// WithOwner sets the owner renderer cleanups are scoped to.
func WithOwner(owner layout.Owner) ColumnsOption {
	return func(c *Columns) {
		c.owner = owner
	}
}

// Columns renders `columns` blocks.
type Columns struct {
	renderer render.Renderer
	settings SettingsSource
	owner    layout.Owner
}

var _ Handler = (*Columns)(nil)

// NewColumns builds a columns handler rendering through renderer.
func NewColumns(renderer render.Renderer, options ...ColumnsOption) *Columns {
	c := &Columns{
		renderer: renderer,
		settings: StaticSettings(settings.Defaults()),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Process splits the block, composes its layout, delegates each column to the
// renderer and renders the result.
func (c *Columns) Process(ctx context.Context, blk Block) ([]byte, error) {
	if c.renderer == nil {
		return nil, fmt.Errorf("processor: columns renderer is nil")
	}
	defaults := c.settings.Current()
	cfg, segments := block.Split(blk.Source, defaults)
	result := layout.Compose(ctx, cfg, segments, defaults, layout.Target{
		Renderer:   c.renderer,
		SourcePath: blk.SourcePath,
		Owner:      c.owner,
	})

	out, err := c.renderer.Render(ctx, result, render.RenderOptions{
		SourcePath: blk.SourcePath,
		BlockIndex: blk.Index,
	})
	if err != nil {
		return nil, fmt.Errorf("processor: render block %d: %w", blk.Index, err)
	}
	return out, nil
}

// Inspect derives the layout of a block without rendering it.
func (c *Columns) Inspect(blk Block) (block.Config, layout.Result) {
	defaults := c.settings.Current()
	cfg, segments := block.Split(blk.Source, defaults)
	return cfg, layout.Derive(cfg, segments, defaults)
}
