package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/clarktrimble/sabot"
	theme "github.com/goliatone/go-theme"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	columns "github.com/goliatone/go-columns"
	"github.com/goliatone/go-columns/internal/prompt"
	"github.com/goliatone/go-columns/pkg/processor"
	"github.com/goliatone/go-columns/pkg/settings"
)

func main() {
	input := flag.String("input", "", "markdown document to render (stdin if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	renderer := flag.String("renderer", "html", "renderer to use (html, terminal)")
	settingsPath := flag.String("settings", defaultSettingsPath(), "settings file")
	tokensPath := flag.String("tokens", "", "theme manifest whose columns.* tokens override the settings")
	configure := flag.Bool("configure", false, "edit the default settings interactively")
	reset := flag.Bool("reset", false, "restore the default settings")
	inspect := flag.Bool("inspect", false, "print the derived style of every column instead of rendering")
	verbose := flag.Bool("v", false, "log processor activity to stderr")
	flag.Parse()

	ctx := context.Background()

	store := settings.NewStore(*settingsPath)
	if _, err := store.Load(); err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	store.OnChange(func(settings.Settings) {
		fmt.Fprintf(os.Stderr, "Settings saved to %s; re-render documents to apply.\n", store.Path())
	})

	switch {
	case *reset:
		if _, err := store.Reset(); err != nil {
			log.Fatalf("Failed to reset settings: %v", err)
		}
		return
	case *configure:
		if _, err := prompt.EditSettings(ctx, prompt.NewSurveyDriver(), store); err != nil {
			log.Fatalf("Failed to edit settings: %v", err)
		}
		return
	}

	var source processor.SettingsSource = store
	if *tokensPath != "" {
		themed, err := loadThemeSettings(*tokensPath, store.Current())
		if err != nil {
			log.Fatalf("Failed to load theme tokens: %v", err)
		}
		source = processor.StaticSettings(themed)
	}

	doc, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	if *inspect {
		if err := inspectDocument(os.Stdout, doc, source); err != nil {
			log.Fatalf("Failed to inspect document: %v", err)
		}
		return
	}

	registry, err := columns.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to configure renderers: %v", err)
	}
	selected, err := registry.Get(*renderer)
	if err != nil {
		log.Fatalf("Unknown renderer %q (available: %s)", *renderer, strings.Join(registry.List(), ", "))
	}

	var options []processor.Option
	if *verbose {
		logger := newLogger(os.Stderr)
		ctx = logger.WithFields(ctx, "input", *input, "renderer", selected.Name())
		options = append(options, processor.WithLogger(logger))
	}

	out, err := columns.RenderDocument(ctx, doc, *input, selected, source, options...)
	if err != nil {
		log.Fatalf("Failed to render document: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *output)
	} else {
		os.Stdout.Write(out)
	}
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "columns-settings.yaml"
	}
	return filepath.Join(dir, "go-columns", "settings.yaml")
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

type tokenFile struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	Tokens  map[string]string `yaml:"tokens"`
}

func loadThemeSettings(path string, base settings.Settings) (settings.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	var file tokenFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings.WithTheme(base, &theme.Selection{
		Theme:   file.Name,
		Variant: file.Variant,
		Manifest: &theme.Manifest{
			Name:   file.Name,
			Tokens: file.Tokens,
		},
	}), nil
}

func inspectDocument(w io.Writer, doc string, source processor.SettingsSource) error {
	handler := processor.NewColumns(nil, processor.WithSettings(source))

	table := tablewriter.NewWriter(w)
	table.Header("Block", "Grid", "Gap", "Align", "Column", "Border", "Padding", "Shadow", "Radius", "Align self", "Margin right")

	index := 0
	for _, part := range processor.Scan(doc) {
		if !part.Fenced || part.Language != processor.Language {
			continue
		}
		_, result := handler.Inspect(processor.Block{Language: part.Language, Source: part.Text, Index: index})
		for _, column := range result.Columns {
			style := column.Style
			if err := table.Append([]string{
				fmt.Sprint(index),
				result.Container.GridTemplateColumns,
				result.Container.Gap,
				result.Container.AlignItems,
				fmt.Sprint(column.Index),
				style.Border,
				style.Padding,
				style.BoxShadow,
				style.BorderRadius,
				style.AlignSelf,
				style.MarginRight,
			}); err != nil {
				return err
			}
		}
		index++
	}
	return table.Render()
}

// newLogger returns the JSON line logger used for -v.
func newLogger(w io.Writer) *sabot.Sabot {
	return (&sabot.Config{MaxLen: 999}).New(w)
}
