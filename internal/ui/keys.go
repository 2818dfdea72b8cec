package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/TimelordUK/logcli/internal/config"
)

// KeyMap holds the pager key bindings
type KeyMap struct {
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Search     key.Binding
	NextMatch  key.Binding
	PrevMatch  key.Binding
	Goto       key.Binding
	NextFile   key.Binding
	PrevFile   key.Binding
	Numbers    key.Binding
}

// NewKeyMap builds bindings from the configured key lists
func NewKeyMap(cfg config.KeybindingConfig) KeyMap {
	bind := func(keys []string, help, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}

	return KeyMap{
		Quit:       bind(cfg.Quit, "q", "quit"),
		ScrollUp:   bind(cfg.ScrollUp, "k", "up"),
		ScrollDown: bind(cfg.ScrollDown, "j", "down"),
		PageUp:     bind(cfg.PageUp, "b", "page up"),
		PageDown:   bind(cfg.PageDown, "f", "page down"),
		Top:        bind(cfg.Top, "g", "top"),
		Bottom:     bind(cfg.Bottom, "G", "bottom"),
		Search:     bind(cfg.Search, "/", "search"),
		NextMatch:  bind(cfg.NextMatch, "n", "next match"),
		PrevMatch:  bind(cfg.PrevMatch, "N", "prev match"),
		Goto:       bind(cfg.Goto, ":", "goto line"),
		NextFile:   bind(cfg.NextFile, "]", "next file"),
		PrevFile:   bind(cfg.PrevFile, "[", "prev file"),
		Numbers:    bind(cfg.Numbers, "l", "line numbers"),
	}
}
