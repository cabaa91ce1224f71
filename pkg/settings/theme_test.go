package settings_test

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-columns/pkg/settings"
)

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, name+"/"+variant)
	return s.selection, s.err
}

func TestWithTheme_OverlaysColumnTokens(t *testing.T) {
	selection := &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name: "acme",
			Tokens: map[string]string{
				settings.TokenBorder: "1px solid #333",
				settings.TokenGap:    "  ",
				"brand":              "#123456",
			},
		},
	}

	got := settings.WithTheme(settings.Defaults(), selection)

	want := settings.Defaults()
	want.Border = "1px solid #333"
	if got != want {
		t.Fatalf("themed settings mismatch\nwant: %+v\n got: %+v", want, got)
	}
}

func TestWithTheme_NilSelection(t *testing.T) {
	if got := settings.WithTheme(settings.Defaults(), nil); got != settings.Defaults() {
		t.Fatalf("nil selection should not change settings, got %+v", got)
	}
}

func TestResolveTheme(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Manifest: &theme.Manifest{Tokens: map[string]string{settings.TokenRadius: "2px"}},
	}}

	got, err := settings.ResolveTheme(selector, "acme", "light", settings.Defaults())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Radius != "2px" {
		t.Fatalf("radius: got %q", got.Radius)
	}
	if len(selector.calls) != 1 || selector.calls[0] != "acme/light" {
		t.Fatalf("unexpected selector calls: %v", selector.calls)
	}
}

func TestResolveTheme_SelectorError(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("boom")}

	got, err := settings.ResolveTheme(selector, "acme", "", settings.Defaults())
	if err == nil {
		t.Fatalf("expected error")
	}
	if got != settings.Defaults() {
		t.Fatalf("base settings should be returned on error, got %+v", got)
	}
}
