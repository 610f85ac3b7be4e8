// ============================================================================
// sigfig - Significant Figures Engine
// ============================================================================
//
// Package:     calculator
// Description: Bubbletea keypad calculator with live significant-figure count
// Author:      msto63
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package calculator

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	mdwerror "github.com/msto63/sigfig/foundation/core/error"
	"github.com/msto63/sigfig/foundation/utils/mathx"
	"github.com/msto63/sigfig/foundation/utils/stringx"
	"github.com/msto63/sigfig/internal/history/store"
	"github.com/msto63/sigfig/internal/precision/service"
)

// field identifies one of the input fields
type field int

const (
	fieldBuffer field = iota
	fieldRoundTo
	fieldA
	fieldB
	fieldCount
)

// historyLimit bounds the entries shown in the history pane
const historyLimit = store.DefaultMaxEntries

// Model is the calculator TUI model
type Model struct {
	svc *service.Service
	ctx context.Context

	keys     keyMap
	help     help.Model
	inputs   [fieldCount]textinput.Model
	focus    field
	op       mathx.Operator
	viewport viewport.Model

	theme  string
	styles Styles

	preview service.PreviewResult
	title   string
	steps   []string
	err     string
	history []*store.Entry

	width  int
	height int
	ready  bool
}

// Config holds calculator configuration
type Config struct {
	// Theme is used when no preference has been persisted
	Theme string
	// Initial is the starting buffer
	Initial string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Theme:   service.ThemeDark,
		Initial: "0.004560",
	}
}

// New creates the calculator model around svc
func New(svc *service.Service, cfg Config) Model {
	ctx := context.Background()

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		inputs[i] = ti
	}
	inputs[fieldBuffer].Placeholder = "Zahl oder Ausdruck"
	inputs[fieldBuffer].SetValue(cfg.Initial)
	inputs[fieldBuffer].Focus()
	inputs[fieldRoundTo].Placeholder = "3"
	inputs[fieldRoundTo].CharLimit = 3
	inputs[fieldA].Placeholder = "A"
	inputs[fieldB].Placeholder = "B"

	theme := svc.Theme(ctx, stringx.FirstNonBlank(cfg.Theme, service.ThemeDark))
	if theme != service.ThemeLight {
		theme = service.ThemeDark
	}

	m := Model{
		svc:    svc,
		ctx:    ctx,
		keys:   defaultKeyMap(),
		help:   help.New(),
		inputs: inputs,
		op:     mathx.OperatorAdd,
		theme:  theme,
		styles: NewStyles(theme),
	}
	m.refreshPreview()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadHistory(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		paneHeight := msg.Height - 18
		if paneHeight < 3 {
			paneHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, paneHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = paneHeight
		}
		m.help.Width = msg.Width
		m.updateViewportContent()

	case resultMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			m.title = ""
			m.steps = nil
			return m, nil
		}
		m.err = ""
		m.title = msg.title
		m.steps = msg.steps
		if msg.setBuffer {
			m.inputs[fieldBuffer].SetValue(msg.buffer)
			m.inputs[fieldBuffer].CursorEnd()
			m.refreshPreview()
		}
		return m, m.loadHistory()

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = "Verlauf: " + msg.err.Error()
			return m, nil
		}
		m.history = msg.entries
		m.updateViewportContent()

	case themeSavedMsg:
		if msg.err != nil {
			m.err = "Theme: " + msg.err.Error()
		}
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Evaluate):
		switch m.focus {
		case fieldRoundTo:
			return m, m.roundCmd()
		case fieldA, fieldB:
			return m, m.combineCmd()
		default:
			return m, m.evaluateCmd()
		}

	case key.Matches(msg, m.keys.Clear):
		m.inputs[m.focus].SetValue("")
		m.title = ""
		m.steps = nil
		m.err = ""
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Negate):
		m.inputs[m.focus].SetValue(toggleSign(m.inputs[m.focus].Value()))
		m.inputs[m.focus].CursorEnd()
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Count):
		return m, m.countCmd()

	case key.Matches(msg, m.keys.Round):
		return m, m.roundCmd()

	case key.Matches(msg, m.keys.Combine):
		return m, m.combineCmd()

	case key.Matches(msg, m.keys.Operator):
		m.op = (m.op + 1) % (mathx.OperatorDivide + 1)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.ClearHistory):
		return m, m.clearHistoryCmd()

	case key.Matches(msg, m.keys.Theme):
		if m.theme == service.ThemeDark {
			m.theme = service.ThemeLight
		} else {
			m.theme = service.ThemeDark
		}
		m.styles = NewStyles(m.theme)
		return m, m.saveTheme(m.theme)

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.refreshPreview()
	return m, cmd
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

func (m *Model) refreshPreview() {
	m.preview = m.svc.Preview(m.inputs[fieldBuffer].Value())
}

// Buffer returns the current input buffer
func (m Model) Buffer() string {
	return m.inputs[fieldBuffer].Value()
}

// Theme returns the active theme
func (m Model) Theme() string {
	return m.theme
}

// toggleSign adds or removes a leading minus
func toggleSign(s string) string {
	if strings.HasPrefix(s, "-") {
		return s[1:]
	}
	return "-" + s
}

// evaluateCmd evaluates the buffer, replaces it with the result and counts
// the result's significant figures
func (m Model) evaluateCmd() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	expr := m.inputs[fieldBuffer].Value()
	return func() tea.Msg {
		res, err := svc.Evaluate(ctx, expr)
		if err != nil {
			return resultMsg{err: fmt.Errorf("Fehler beim Auswerten: %s", errMessage(err))}
		}
		out := resultMsg{
			title:     fmt.Sprintf("%s = %s", strings.TrimSpace(expr), res.Result),
			buffer:    res.Result,
			setBuffer: true,
		}
		if count, err := svc.Count(ctx, res.Result); err == nil {
			out.title = countTitle(count)
			out.steps = count.Explanation.Steps
		}
		return out
	}
}

func (m Model) countCmd() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	input := m.inputs[fieldBuffer].Value()
	return func() tea.Msg {
		count, err := svc.Count(ctx, input)
		if err != nil {
			return resultMsg{err: stderrors.New("Ungültiges Zahlenformat.")}
		}
		return resultMsg{title: countTitle(count), steps: count.Explanation.Steps}
	}
}

func (m Model) roundCmd() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	input := m.inputs[fieldBuffer].Value()
	target := strings.TrimSpace(m.inputs[fieldRoundTo].Value())
	return func() tea.Msg {
		n, err := strconv.Atoi(target)
		if err != nil || n < 1 {
			return resultMsg{err: stderrors.New("Gültige Anzahl signifikanter Stellen eingeben (mindestens 1).")}
		}
		res, err := svc.Round(ctx, input, n)
		if err != nil {
			return resultMsg{err: fmt.Errorf("Fehler beim Runden: %s", errMessage(err))}
		}
		return resultMsg{title: res.Explained.Title, steps: res.Explained.Steps}
	}
}

func (m Model) combineCmd() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	a := m.inputs[fieldA].Value()
	b := m.inputs[fieldB].Value()
	op := m.op.Symbol()
	return func() tea.Msg {
		res, err := svc.Combine(ctx, a, b, op)
		if err != nil {
			return resultMsg{err: fmt.Errorf("Fehler: %s", errMessage(err))}
		}
		return resultMsg{title: res.Explanation.Title, steps: res.Explanation.Steps}
	}
}

func (m Model) loadHistory() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		entries, err := svc.History(ctx, historyLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) clearHistoryCmd() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if err := svc.ClearHistory(ctx); err != nil {
			return historyLoadedMsg{err: err}
		}
		return historyLoadedMsg{entries: []*store.Entry{}}
	}
}

func (m Model) saveTheme(theme string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		return themeSavedMsg{err: svc.SetTheme(ctx, theme)}
	}
}

func countTitle(c *service.CountResult) string {
	unit := "Stellen"
	if c.SignificantFigures == 1 {
		unit = "Stelle"
	}
	return fmt.Sprintf("%s hat %d signifikante %s.", c.Normalized, c.SignificantFigures, unit)
}

// errMessage returns the message of a coded error without its chain
func errMessage(err error) string {
	var coded *mdwerror.Error
	if stderrors.As(err, &coded) {
		return coded.Message()
	}
	return err.Error()
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	var b strings.Builder
	if len(m.history) == 0 {
		b.WriteString(m.styles.Muted.Render("Noch keine Einträge."))
	}
	for _, e := range m.history {
		b.WriteString(m.styles.Muted.Render(e.CreatedAt.Format("15:04:05")))
		b.WriteString("  ")
		b.WriteString(stringx.Truncate(e.Text, m.viewport.Width-10, "…"))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder
	s := m.styles

	b.WriteString(s.Title.Render("sigfig"))
	b.WriteString(s.Muted.Render(fmt.Sprintf("  Theme: %s  Rundung: %s", m.theme, m.svc.RoundingMode())))
	b.WriteString("\n\n")

	// Display
	var display strings.Builder
	display.WriteString(s.Display.Render(m.inputs[fieldBuffer].View()))
	display.WriteString("\n")
	display.WriteString(s.Sig.Render(fmt.Sprintf("sig: %d", m.preview.SignificantFigures)))
	switch {
	case m.preview.Result != "" && m.preview.Result != strings.TrimSpace(m.preview.Input):
		display.WriteString(s.Preview.Render("   = " + m.preview.Result))
	case m.preview.Error != "":
		display.WriteString(s.Muted.Render("   " + m.preview.Error))
	}
	b.WriteString(m.box(fieldBuffer).Render(display.String()))
	b.WriteString("\n")

	// Round and combine rows
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		s.Label.Render("Runden:"),
		m.box(fieldRoundTo).Width(8).Render(m.inputs[fieldRoundTo].View()),
		s.Muted.Render(" sig. Stellen"),
	))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		s.Label.Render("A op B:"),
		m.box(fieldA).Width(14).Render(m.inputs[fieldA].View()),
		s.Result.Render(" "+m.op.Display()+" "),
		m.box(fieldB).Width(14).Render(m.inputs[fieldB].View()),
	))
	b.WriteString("\n\n")

	// Output
	switch {
	case m.err != "":
		b.WriteString(s.Error.Render(m.err))
		b.WriteString("\n")
	case m.title != "":
		b.WriteString(s.Result.Render(m.title))
		b.WriteString("\n")
		for _, step := range m.steps {
			b.WriteString(s.Step.Render("  " + step))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	// History
	b.WriteString(s.Title.Render("Verlauf"))
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		for _, e := range m.history {
			b.WriteString(e.Text)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) box(f field) lipgloss.Style {
	if m.focus == f {
		return m.styles.FocusedBox
	}
	return m.styles.Box
}
