// ============================================================================
// sigfig - Significant Figures Engine
// ============================================================================
//
// Package:     calculator
// Description: Key bindings for the calculator TUI
// Author:      msto63
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package calculator

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Evaluate     key.Binding
	Clear        key.Binding
	Negate       key.Binding
	Count        key.Binding
	Round        key.Binding
	Combine      key.Binding
	Operator     key.Binding
	Next         key.Binding
	Prev         key.Binding
	ClearHistory key.Binding
	Theme        key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "auswerten"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "CE"),
		),
		Negate: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "±"),
		),
		Count: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "Stellen zählen"),
		),
		Round: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "runden"),
		),
		Combine: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "A op B"),
		),
		Operator: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "Operator"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "nächstes Feld"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "vorheriges Feld"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Verlauf löschen"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Theme"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Verlauf hoch"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "Verlauf runter"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Hilfe"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "beenden"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Count, k.Round, k.Combine, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Evaluate, k.Clear, k.Negate, k.Count},
		{k.Round, k.Combine, k.Operator, k.Next, k.Prev},
		{k.ClearHistory, k.Theme, k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}
