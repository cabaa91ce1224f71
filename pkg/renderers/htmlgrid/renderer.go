package htmlgrid

import (
	"context"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-columns/pkg/layout"
	"github.com/goliatone/go-columns/pkg/render"
	rendertemplate "github.com/goliatone/go-columns/pkg/render/template"
	"github.com/goliatone/go-columns/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	markdown         goldmark.Markdown
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide TemplateName.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. The directory
// must provide TemplateName.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithMarkdown replaces the goldmark instance used for column content.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(cfg *config) {
		if md != nil {
			cfg.markdown = md
		}
	}
}

// WithPolicy replaces the sanitisation policy applied to rendered columns.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer emits a block as a CSS grid container holding one div per column.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	markdown  goldmark.Markdown
	policy    *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// templateGlobals are readable from every template as `classes.container`
// and `classes.column`.
func templateGlobals() map[string]any {
	return map[string]any{
		"classes": map[string]any{
			"container": layout.ContainerClass,
			"column":    layout.ColumnClass,
		},
	}
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil && cfg.templateDir == "" {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.markdown == nil {
		cfg.markdown = defaultMarkdown()
	}
	if cfg.policy == nil {
		cfg.policy = columnSanitizer()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOptions := []gotemplate.Option{
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGlobalData(templateGlobals()),
		}
		if cfg.templateDir != "" {
			engineOptions = append(engineOptions, gotemplate.WithBaseDir(cfg.templateDir))
		}
		if cfg.templateFS != nil {
			engineOptions = append(engineOptions, gotemplate.WithFS(cfg.templateFS))
		}
		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("htmlgrid renderer: configure template renderer: %w", err)
		}
		renderer = engine
	} else if err := renderer.GlobalContext(templateGlobals()); err != nil {
		return nil, fmt.Errorf("htmlgrid renderer: seed template globals: %w", err)
	}

	return &Renderer{
		templates: renderer,
		markdown:  cfg.markdown,
		policy:    cfg.policy,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the block template. Column HTML is read from each column's
// element, so the markdown delegates must have finished writing.
func (r *Renderer) Render(_ context.Context, result layout.Result, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("htmlgrid renderer: template renderer is nil")
	}

	columns := make([]map[string]any, 0, len(result.Columns))
	for _, column := range result.Columns {
		columns = append(columns, map[string]any{
			"index": strconv.Itoa(column.Index),
			"style": column.Style.Style().String(),
			"html":  column.Element.Content(),
		})
	}

	out, err := r.templates.RenderTemplate(TemplateName, map[string]any{
		"container": map[string]any{
			"style": result.Container.Style().String(),
		},
		"columns": columns,
		"source":  options.SourcePath,
		"block":   strconv.Itoa(options.BlockIndex),
	})
	if err != nil {
		return nil, fmt.Errorf("htmlgrid renderer: render template: %w", err)
	}
	return []byte(out), nil
}
