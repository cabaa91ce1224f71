// Package testsupport carries helpers shared by package tests.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/goliatone/go-columns/pkg/layout"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// MarkdownCall records one delegated column render.
type MarkdownCall struct {
	Markdown   string
	SourcePath string
	Class      string
	Owner      layout.Owner
}

// RecordingRenderer is a layout.MarkdownRenderer that records every call and
// echoes the markdown into the target element.
type RecordingRenderer struct {
	mu    sync.Mutex
	calls []MarkdownCall
}

// RenderMarkdown records the call.
func (r *RecordingRenderer) RenderMarkdown(_ context.Context, markdown string, el *layout.Element, sourcePath string, owner layout.Owner) {
	r.mu.Lock()
	r.calls = append(r.calls, MarkdownCall{
		Markdown:   markdown,
		SourcePath: sourcePath,
		Class:      el.Class,
		Owner:      owner,
	})
	r.mu.Unlock()
	_, _ = el.WriteString(markdown)
}

// Calls returns the recorded calls in order.
func (r *RecordingRenderer) Calls() []MarkdownCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]MarkdownCall{}, r.calls...)
}

// Markdown returns only the markdown of each recorded call.
func (r *RecordingRenderer) Markdown() []string {
	calls := r.Calls()
	out := make([]string, 0, len(calls))
	for _, call := range calls {
		out = append(out, call.Markdown)
	}
	return out
}
