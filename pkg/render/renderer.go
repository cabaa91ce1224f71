package render

import (
	"context"

	"github.com/goliatone/go-columns/pkg/layout"
)

// Renderer turns a composed layout into bytes (an HTML fragment, terminal
// text, etc.). Each renderer also renders column markdown, so the same value is
// handed to layout.Compose as the delegate.
type Renderer interface {
	layout.MarkdownRenderer
	Name() string
	ContentType() string
	Render(ctx context.Context, result layout.Result, options RenderOptions) ([]byte, error)
}

// ProseRenderer is implemented by renderers that can also render the markdown
// between blocks when a whole document is converted.
type ProseRenderer interface {
	RenderProse(ctx context.Context, markdown, sourcePath string) ([]byte, error)
}
