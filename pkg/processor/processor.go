package processor

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-columns/pkg/render"
)

// Option configures a Processor.
type Option func(*Processor)

// WithLogger routes lifecycle and handler failures to logger.
func WithLogger(logger Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRegistry shares an existing handler registry.
func WithRegistry(registry *Registry) Option {
	return func(p *Processor) {
		if registry != nil {
			p.registry = registry
		}
	}
}

// Processor owns the handler registrations of one host session and the
// component their renderers register cleanups with.
type Processor struct {
	mu        sync.Mutex
	registry  *Registry
	component *Component
	languages []string
	logger    Logger
}

// New constructs a processor with an empty registry.
func New(options ...Option) *Processor {
	p := &Processor{
		registry:  NewRegistry(),
		component: NewComponent(),
		logger:    nopLogger{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Registry exposes the handler registry.
func (p *Processor) Registry() *Registry {
	return p.registry
}

// Component returns the live component renderer cleanups are scoped to.
func (p *Processor) Component() *Component {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.component
}

// Load registers the columns handler rendering through renderer with defaults
// read from source on every block.
func (p *Processor) Load(ctx context.Context, renderer render.Renderer, source SettingsSource) error {
	if renderer == nil {
		return errors.New("processor: renderer is required")
	}
	handler := NewColumns(renderer, WithSettings(source), WithOwner(p.Component()))
	if err := p.RegisterBlockProcessor(Language, handler); err != nil {
		return err
	}
	p.logger.Info(ctx, "columns processor loaded", "renderer", renderer.Name())
	return nil
}

// RegisterBlockProcessor binds handler to a fence language for the lifetime
// of the processor.
func (p *Processor) RegisterBlockProcessor(language string, handler Handler) error {
	if err := p.registry.Register(language, handler); err != nil {
		return err
	}
	p.mu.Lock()
	p.languages = append(p.languages, language)
	p.mu.Unlock()
	return nil
}

// Unload deregisters every handler this processor registered and runs the
// cleanups queued on its component. A later Load starts a fresh component.
func (p *Processor) Unload(ctx context.Context) {
	p.mu.Lock()
	languages := p.languages
	component := p.component
	p.languages = nil
	p.component = NewComponent()
	p.mu.Unlock()

	for _, language := range languages {
		p.registry.Unregister(language)
	}
	component.Unload()
	p.logger.Info(ctx, "columns processor unloaded", "languages", len(languages))
}

// ProcessDocument scans doc and renders every fenced block with a registered
// handler. Blocks without a handler, or whose handler fails, are left as they
// were; failures are logged, never returned. Only context cancellation stops
// processing.
func (p *Processor) ProcessDocument(ctx context.Context, doc, sourcePath string) ([]Part, error) {
	parts := Scan(doc)
	index := 0
	for i := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part := &parts[i]
		if !part.Fenced {
			continue
		}
		handler, ok := p.registry.Get(part.Language)
		if !ok {
			continue
		}

		out, err := handler.Process(ctx, Block{
			Language:   part.Language,
			Source:     part.Text,
			SourcePath: sourcePath,
			Index:      index,
		})
		index++
		if err != nil {
			p.logger.Error(ctx, "block render failed", err, "language", part.Language, "source", sourcePath)
			continue
		}
		part.Output = out
		part.Handled = true
	}
	return parts, nil
}
