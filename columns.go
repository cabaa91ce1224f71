package columns

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goliatone/go-columns/pkg/processor"
	"github.com/goliatone/go-columns/pkg/render"
	"github.com/goliatone/go-columns/pkg/renderers/htmlgrid"
	"github.com/goliatone/go-columns/pkg/renderers/terminal"
	"github.com/goliatone/go-columns/pkg/settings"
)

// Settings aliases settings.Settings for callers that only need the root
// package.
type Settings = settings.Settings

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return settings.Defaults()
}

// NewRegistry returns a renderer registry holding the html and terminal
// renderers.
func NewRegistry() (*render.Registry, error) {
	html, err := htmlgrid.New()
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(terminal.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// RenderDocument renders every `columns` block in doc with renderer, using
// defaults from source, and converts the surrounding prose when renderer
// implements render.ProseRenderer.
func RenderDocument(ctx context.Context, doc, sourcePath string, renderer render.Renderer, source processor.SettingsSource, options ...processor.Option) ([]byte, error) {
	if renderer == nil {
		return nil, fmt.Errorf("columns: renderer is required")
	}
	proc := processor.New(options...)
	if err := proc.Load(ctx, renderer, source); err != nil {
		return nil, err
	}
	defer proc.Unload(ctx)

	parts, err := proc.ProcessDocument(ctx, doc, sourcePath)
	if err != nil {
		return nil, err
	}
	return Assemble(ctx, parts, renderer, sourcePath)
}

// Assemble joins processed parts back into one output. Handled blocks
// contribute their output; prose and unhandled blocks go through the
// renderer's prose support, or pass through verbatim without it.
func Assemble(ctx context.Context, parts []processor.Part, renderer render.Renderer, sourcePath string) ([]byte, error) {
	prose, _ := renderer.(render.ProseRenderer)

	var out bytes.Buffer
	var pending bytes.Buffer
	flush := func() error {
		if pending.Len() == 0 {
			return nil
		}
		defer pending.Reset()
		if prose == nil {
			out.Write(pending.Bytes())
			return nil
		}
		rendered, err := prose.RenderProse(ctx, pending.String(), sourcePath)
		if err != nil {
			return fmt.Errorf("columns: render prose: %w", err)
		}
		out.Write(rendered)
		return nil
	}

	for _, part := range parts {
		switch {
		case part.Handled:
			if err := flush(); err != nil {
				return nil, err
			}
			out.Write(part.Output)
			if n := len(part.Output); n > 0 && part.Output[n-1] != '\n' {
				out.WriteByte('\n')
			}
		case part.Fenced:
			pending.WriteString(part.Raw)
		default:
			pending.WriteString(part.Text)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
