package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// ConfirmConfig holds configuration for a yes/no confirmation prompt.
type ConfirmConfig struct {
	Title       string
	Description string
	Affirmative string
	Negative    string
	Default     bool
}

// SelectOption represents a single choice in a select prompt.
type SelectOption struct {
	Label string
	Value string
}

// SelectConfig holds configuration for a single-choice prompt.
type SelectConfig struct {
	Title       string
	Description string
	Options     []SelectOption
	// Initial is the value highlighted when the prompt opens.
	Initial string
}

// Prompter defines the interface for interactive user prompts.
// This allows swapping the real huh implementation for a mock in tests.
type Prompter interface {
	Confirm(cfg ConfirmConfig) (bool, error)
	Select(cfg SelectConfig) (string, error)
}

// Default is the package-level prompter used by commands.
// In production this is a Huh instance; tests can swap it with a Mock.
var Default Prompter = &Huh{}

// SetDefault replaces the package-level prompter.
func SetDefault(p Prompter) {
	Default = p
}

// Huh implements Prompter using charmbracelet/huh forms.
type Huh struct{}

func (h *Huh) Confirm(cfg ConfirmConfig) (bool, error) {
	value := cfg.Default
	confirm := huh.NewConfirm().
		Title(cfg.Title).
		Value(&value)

	if cfg.Description != "" {
		confirm.Description(cfg.Description)
	}
	if cfg.Affirmative != "" {
		confirm.Affirmative(cfg.Affirmative)
	}
	if cfg.Negative != "" {
		confirm.Negative(cfg.Negative)
	}

	err := huh.NewForm(huh.NewGroup(confirm)).WithKeyMap(escapeKeyMap()).Run()
	return value, err
}

func (h *Huh) Select(cfg SelectConfig) (string, error) {
	value := cfg.Initial

	options := make([]huh.Option[string], len(cfg.Options))
	for i, opt := range cfg.Options {
		options[i] = huh.NewOption(opt.Label, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(cfg.Title).
		Options(options...).
		Value(&value)

	if cfg.Description != "" {
		sel.Description(cfg.Description)
	}

	err := huh.NewForm(huh.NewGroup(sel)).WithKeyMap(escapeKeyMap()).Run()
	return value, err
}

// escapeKeyMap lets Escape abort a form as well as ctrl+c.
func escapeKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()
	keymap.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"))
	return keymap
}
