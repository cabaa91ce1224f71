package processor

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Block is one fenced block handed to a Handler.
type Block struct {
	Language   string
	Source     string
	SourcePath string
	Index      int
}

// Handler renders the body of a fenced block.
type Handler interface {
	Process(ctx context.Context, block Block) ([]byte, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, block Block) ([]byte, error)

// Process calls f.
func (f HandlerFunc) Process(ctx context.Context, block Block) ([]byte, error) {
	return f(ctx, block)
}

// Registry stores block handlers by fence language. It is safe for concurrent
// use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register binds handler to language. Duplicate languages return an error.
func (r *Registry) Register(language string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("processor: handler is required")
	}
	language = strings.TrimSpace(language)
	if language == "" {
		return fmt.Errorf("processor: language is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[language]; exists {
		return fmt.Errorf("processor: language %q already registered", language)
	}
	r.handlers[language] = handler
	return nil
}

// Unregister removes the handler for language. Unknown languages are ignored.
func (r *Registry) Unregister(language string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, strings.TrimSpace(language))
}

// Get retrieves the handler for language.
func (r *Registry) Get(language string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[language]
	return handler, ok
}

// Languages returns the registered languages, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
