package layout_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-columns/pkg/block"
	"github.com/goliatone/go-columns/pkg/layout"
	"github.com/goliatone/go-columns/pkg/settings"
	"github.com/goliatone/go-columns/pkg/testsupport"
)

type ownerStub struct{}

func (ownerStub) Register(func()) {}

func TestCompose_DelegatesEachColumnInOrder(t *testing.T) {
	defaults := settings.Defaults()
	cfg, segments := block.Split("gap: [1rem]\n  first  \n---\nsecond\n---\nthird", defaults)
	renderer := &testsupport.RecordingRenderer{}
	owner := ownerStub{}

	result := layout.Compose(testsupport.Context(), cfg, segments, defaults, layout.Target{
		Renderer:   renderer,
		SourcePath: "notes/page.md",
		Owner:      owner,
	})

	if diff := cmp.Diff([]string{"first", "second", "third"}, renderer.Markdown()); diff != "" {
		t.Fatalf("delegated markdown mismatch (-want +got):\n%s", diff)
	}
	for i, call := range renderer.Calls() {
		if call.SourcePath != "notes/page.md" {
			t.Fatalf("call %d: source path %q", i, call.SourcePath)
		}
		if call.Class != layout.ColumnClass {
			t.Fatalf("call %d: element class %q", i, call.Class)
		}
		if call.Owner != owner {
			t.Fatalf("call %d: owner not forwarded", i)
		}
	}
	for i, column := range result.Columns {
		if column.Element.Content() != string(segments[i]) {
			t.Fatalf("column %d: element content %q", i, column.Element.Content())
		}
	}
}

func TestCompose_ConfigOnlyBlockIssuesNoDelegations(t *testing.T) {
	defaults := settings.Defaults()
	cfg, segments := block.Split("widths: [1fr, 1fr]\nborder: none", defaults)
	renderer := &testsupport.RecordingRenderer{}

	result := layout.Compose(testsupport.Context(), cfg, segments, defaults, layout.Target{Renderer: renderer})

	if len(renderer.Calls()) != 0 {
		t.Fatalf("expected zero delegations, got %d", len(renderer.Calls()))
	}
	if len(result.Columns) != 0 {
		t.Fatalf("expected zero columns, got %d", len(result.Columns))
	}
}

func TestCompose_NilRendererOnlyDerives(t *testing.T) {
	defaults := settings.Defaults()
	cfg, segments := block.Split("a\n---\nb", defaults)

	result := layout.Compose(context.Background(), cfg, segments, defaults, layout.Target{})

	if len(result.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(result.Columns))
	}
	if result.Columns[0].Element.Content() != "" {
		t.Fatalf("nothing should be rendered without a renderer")
	}
}

func TestCompose_AsynchronousRenderer(t *testing.T) {
	defaults := settings.Defaults()
	cfg, segments := block.Split("a\n---\nb\n---\nc", defaults)

	var wg sync.WaitGroup
	renderer := layout.MarkdownRendererFunc(func(_ context.Context, markdown string, el *layout.Element, _ string, _ layout.Owner) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = el.WriteString("<p>" + markdown + "</p>")
		}()
	})

	result := layout.Compose(context.Background(), cfg, segments, defaults, layout.Target{Renderer: renderer})
	wg.Wait()

	got := []string{}
	for _, column := range result.Columns {
		got = append(got, column.Element.Content())
	}
	if diff := cmp.Diff([]string{"<p>a</p>", "<p>b</p>", "<p>c</p>"}, got); diff != "" {
		t.Fatalf("element content mismatch (-want +got):\n%s", diff)
	}
}
