package template

import (
	"io"
)

// TemplateRenderer is the seam output renderers use to execute markup
// templates.
type TemplateRenderer interface {
	// RenderTemplate executes the named template, also copying the result to
	// every writer in out.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString executes inline template source.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// GlobalContext merges data into the values every template can read.
	GlobalContext(data any) error
}
