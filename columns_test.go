package columns_test

import (
	"strings"
	"testing"

	columns "github.com/goliatone/go-columns"
	"github.com/goliatone/go-columns/pkg/processor"
	"github.com/goliatone/go-columns/pkg/renderers/htmlgrid"
	"github.com/goliatone/go-columns/pkg/renderers/terminal"
	"github.com/goliatone/go-columns/pkg/testsupport"
)

const sampleDoc = "# Notes\n\nIntro paragraph.\n\n```columns\nwidths: [1fr, 2fr]\nborder: none\nshadow: none\n**Left**\n---\nRight\n```\n\n```go\nfmt.Println(\"hi\")\n```\n\nOutro.\n"

func TestNewRegistry(t *testing.T) {
	registry, err := columns.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if got := strings.Join(registry.List(), ","); got != htmlgrid.Name+","+terminal.Name {
		t.Fatalf("unexpected renderers %q", got)
	}
}

func TestRenderDocument_HTML(t *testing.T) {
	registry, err := columns.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	out, err := columns.RenderDocument(testsupport.Context(), sampleDoc, "notes.md", registry.MustGet(htmlgrid.Name), processor.StaticSettings(columns.DefaultSettings()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<h1>Notes</h1>",
		"<p>Intro paragraph.</p>",
		`grid-template-columns: 1fr 2fr;`,
		"<strong>Left</strong>",
		"<p>Right</p>",
		`<code class="language-go">`,
		"<p>Outro.</p>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output\n%s", want, html)
		}
	}
	if strings.Index(html, "Intro") > strings.Index(html, "columns-container") || strings.Index(html, "columns-container") > strings.Index(html, "Outro") {
		t.Fatalf("document order not preserved\n%s", html)
	}
}

func TestRenderDocument_Terminal(t *testing.T) {
	out, err := columns.RenderDocument(testsupport.Context(), sampleDoc, "", terminal.New(terminal.WithWidth(60)), processor.StaticSettings(columns.DefaultSettings()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)

	if !strings.HasPrefix(text, "# Notes\n") {
		t.Fatalf("expected prose to pass through\n%s", text)
	}
	if strings.Contains(text, "```columns") {
		t.Fatalf("expected the columns block to be replaced\n%s", text)
	}
	if !strings.Contains(text, "```go\nfmt.Println(\"hi\")\n```") {
		t.Fatalf("expected other fences to pass through\n%s", text)
	}
}

func TestRenderDocument_RequiresRenderer(t *testing.T) {
	if _, err := columns.RenderDocument(testsupport.Context(), sampleDoc, "", nil, nil); err == nil {
		t.Fatalf("expected error without renderer")
	}
}
