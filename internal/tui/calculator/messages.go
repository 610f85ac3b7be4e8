// ============================================================================
// sigfig - Significant Figures Engine
// ============================================================================
//
// Package:     calculator
// Description: Bubbletea messages for the calculator TUI
// Author:      msto63
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package calculator

import (
	"github.com/msto63/sigfig/internal/history/store"
)

// resultMsg carries the outcome of a count, round, evaluate or combine
type resultMsg struct {
	title string
	steps []string
	// buffer replaces the input buffer when set
	buffer    string
	setBuffer bool
	err       error
}

// historyLoadedMsg is sent when the history list has been read
type historyLoadedMsg struct {
	entries []*store.Entry
	err     error
}

// themeSavedMsg is sent after the theme preference has been persisted
type themeSavedMsg struct {
	err error
}
