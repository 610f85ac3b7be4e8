// ============================================================================
// sigfig - Significant Figures Engine
// ============================================================================
//
// Package:     calculator
// Description: Dark and light palettes for the calculator TUI
// Author:      msto63
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package calculator

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors of one theme
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Text       lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:    lipgloss.Color("#8B5CF6"), // Violet
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Accent:     lipgloss.Color("#F59E0B"), // Amber
		Error:      lipgloss.Color("#EF4444"), // Red
		Muted:      lipgloss.Color("#6B7280"), // Gray
		Text:       lipgloss.Color("#F9FAFB"),
		Background: lipgloss.Color("#111827"),
		Border:     lipgloss.Color("#374151"),
	}

	LightPalette = Palette{
		Primary:    lipgloss.Color("#6D28D9"),
		Secondary:  lipgloss.Color("#0E7490"),
		Accent:     lipgloss.Color("#B45309"),
		Error:      lipgloss.Color("#B91C1C"),
		Muted:      lipgloss.Color("#6B7280"),
		Text:       lipgloss.Color("#111827"),
		Background: lipgloss.Color("#F9FAFB"),
		Border:     lipgloss.Color("#D1D5DB"),
	}
)

// Styles are the rendered styles derived from a palette
type Styles struct {
	Title      lipgloss.Style
	Display    lipgloss.Style
	Sig        lipgloss.Style
	Preview    lipgloss.Style
	Label      lipgloss.Style
	Result     lipgloss.Style
	Step       lipgloss.Style
	Error      lipgloss.Style
	Muted      lipgloss.Style
	Box        lipgloss.Style
	FocusedBox lipgloss.Style
}

// NewStyles builds the styles for theme ("dark" or "light")
func NewStyles(theme string) Styles {
	p := DarkPalette
	if theme == "light" {
		p = LightPalette
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Display: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		Sig: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		Preview: lipgloss.NewStyle().
			Foreground(p.Secondary),
		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Width(10),
		Result: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Step: lipgloss.NewStyle().
			Foreground(p.Text),
		Error: lipgloss.NewStyle().
			Foreground(p.Error),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Box:        box,
		FocusedBox: box.BorderForeground(p.Primary),
	}
}
