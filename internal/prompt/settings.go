// Package prompt implements the interactive settings surface: one text input
// per default plus a reset action, saving after every change.
package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-columns/pkg/settings"
)

const (
	resetOption = "Reset to defaults"
	doneOption  = "Done"
)

// Store is the persistence the settings flow writes through.
type Store interface {
	Current() settings.Settings
	Save(settings.Settings) error
	Reset() (settings.Settings, error)
}

// EditSettings loops over a menu of the editable defaults until the user
// picks Done. Every edit and reset is saved immediately.
func EditSettings(ctx context.Context, driver Driver, store Store) (settings.Settings, error) {
	fields := settings.Fields()
	for {
		current := store.Current()

		options := make([]string, 0, len(fields)+2)
		for _, field := range fields {
			options = append(options, fmt.Sprintf("%s (%s)", field.Name, field.Get(current)))
		}
		options = append(options, resetOption, doneOption)

		choice, err := driver.Select(ctx, SelectConfig{
			Message:      "Columns - default settings",
			Options:      options,
			DefaultIndex: len(options) - 1,
			PageSize:     len(options),
		})
		if err != nil {
			return current, err
		}

		switch {
		case choice < 0 || choice == len(options)-1:
			return current, nil
		case choice == len(options)-2:
			ok, err := driver.Confirm(ctx, ConfirmConfig{
				Message: "Reset every default to its built-in value?",
			})
			if err != nil {
				return current, err
			}
			if !ok {
				continue
			}
			if _, err := store.Reset(); err != nil {
				return current, fmt.Errorf("prompt: reset settings: %w", err)
			}
			if err := driver.Info(ctx, "Defaults restored."); err != nil {
				return store.Current(), err
			}
		default:
			field := fields[choice]
			value, err := driver.Input(ctx, InputConfig{
				Message: field.Name,
				Default: field.Get(current),
				Help:    field.Description + " " + field.Placeholder,
			})
			if err != nil {
				return current, err
			}
			next := current
			field.Set(&next, value)
			if err := store.Save(next); err != nil {
				return current, fmt.Errorf("prompt: save settings: %w", err)
			}
		}
	}
}
