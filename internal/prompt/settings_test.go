package prompt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-columns/pkg/settings"
)

type scriptedDriver struct {
	selects  []int
	inputs   []string
	confirms []bool
	infos    []string
	prompts  []InputConfig
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg)
	if len(d.inputs) == 0 {
		return "", errors.New("no scripted input")
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, errors.New("no scripted confirm")
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return len(cfg.Options) - 1, nil
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func fieldIndex(t *testing.T, name string) int {
	t.Helper()
	for i, field := range settings.Fields() {
		if field.Name == name {
			return i
		}
	}
	t.Fatalf("no field named %q", name)
	return -1
}

func TestEditSettings_SavesEachEdit(t *testing.T) {
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	saves := 0
	store.OnChange(func(settings.Settings) { saves++ })

	driver := &scriptedDriver{
		selects: []int{fieldIndex(t, "Default gap"), fieldIndex(t, "Default border")},
		inputs:  []string{"2rem", "none"},
	}

	got, err := EditSettings(context.Background(), driver, store)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Gap != "2rem" || got.Border != "none" {
		t.Fatalf("unexpected settings: %+v", got)
	}
	if saves != 2 {
		t.Fatalf("expected a save per edit, got %d", saves)
	}
	if driver.prompts[0].Default != settings.Defaults().Gap {
		t.Fatalf("expected current value as default, got %q", driver.prompts[0].Default)
	}

	reloaded, err := settings.NewStore(store.Path()).Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded != got {
		t.Fatalf("edits not persisted: %+v", reloaded)
	}
}

func TestEditSettings_Reset(t *testing.T) {
	store := settings.NewStore("")
	changed := settings.Defaults()
	changed.Radius = "0"
	if err := store.Save(changed); err != nil {
		t.Fatalf("save: %v", err)
	}

	reset := len(settings.Fields())
	driver := &scriptedDriver{
		selects:  []int{reset, reset},
		confirms: []bool{false, true},
	}

	got, err := EditSettings(context.Background(), driver, store)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got != settings.Defaults() {
		t.Fatalf("expected defaults after reset, got %+v", got)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected one reset notice, got %v", driver.infos)
	}
}

func TestEditSettings_PropagatesAbort(t *testing.T) {
	store := settings.NewStore("")
	driver := &scriptedDriver{selects: []int{0}}

	if _, err := EditSettings(context.Background(), driver, store); err == nil {
		t.Fatalf("expected input error to propagate")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("other")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("unexpected translation: %v", got)
	}
}
