package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-columns/pkg/processor"
	"github.com/goliatone/go-columns/pkg/renderers/terminal"
	"github.com/goliatone/go-columns/pkg/settings"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		event := map[string]any{}
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		events = append(events, event)
	}
	return events
}

func TestNewLogger_ProcessorEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf)
	ctx := logger.WithFields(context.Background(), "input", "notes.md")

	proc := processor.New(processor.WithLogger(logger))
	if err := proc.Load(ctx, terminal.New(), nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	failing := processor.HandlerFunc(func(context.Context, processor.Block) ([]byte, error) {
		return nil, errors.New("bad block")
	})
	if err := proc.RegisterBlockProcessor("broken", failing); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := proc.ProcessDocument(ctx, "```broken\nx\n```\n", "notes.md"); err != nil {
		t.Fatalf("process: %v", err)
	}
	proc.Unload(ctx)

	events := decodeLines(t, &buf)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d\n%s", len(events), buf.String())
	}
	if events[0]["msg"] != "columns processor loaded" || events[0]["level"] != "info" || events[0]["renderer"] != terminal.Name {
		t.Fatalf("unexpected load event %v", events[0])
	}
	if events[1]["level"] != "error" || events[1]["error"] != "bad block" || events[1]["language"] != "broken" {
		t.Fatalf("unexpected failure event %v", events[1])
	}
	for i, event := range events {
		if event["input"] != "notes.md" {
			t.Fatalf("event %d missing context field: %v", i, event)
		}
	}
}

func TestInspectDocument(t *testing.T) {
	doc := "```columns\ngap: [2rem]\nborder: none\nshadow: none\nleft\n---\nright\n```\n\n```go\nx\n```\n"

	var buf bytes.Buffer
	if err := inspectDocument(&buf, doc, processor.StaticSettings(settings.Defaults())); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"1fr 1fr", "2rem", "8px"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table\n%s", want, out)
		}
	}
	if strings.Contains(out, "1px solid") {
		t.Fatalf("border none should not appear\n%s", out)
	}
}

func TestLoadThemeSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	manifest := "name: acme\nvariant: dark\ntokens:\n  columns.gap: 3rem\n  columns.radius: 0px\n"
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := loadThemeSettings(path, settings.Defaults())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := settings.Defaults()
	want.Gap = "3rem"
	want.Radius = "0px"
	if got != want {
		t.Fatalf("themed settings mismatch\nwant: %+v\n got: %+v", want, got)
	}

	if _, err := loadThemeSettings(filepath.Join(t.TempDir(), "missing.yaml"), settings.Defaults()); err == nil {
		t.Fatalf("expected error for missing manifest")
	}
}
