// Package tui is the interactive face of the tool: a tabbed terminal
// shell over a single validator. Screens translate key events into core
// calls and render the returned verdicts; no validation logic lives here.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/datacheck/pkg/cache"
	"github.com/dmitrymomot/datacheck/pkg/validator"
)

// Tab identifies one screen of the shell.
type Tab int

const (
	TabEmail Tab = iota
	TabPhone
	TabRange
	TabConsistency
	TabRules
	TabErrors
	tabCount
)

var tabTitles = []string{"Email", "Phone", "Range", "Consistency", "Custom Rules", "Errors"}

// Field indexes for the multi-input screens.
const (
	rangeFieldValue = iota
	rangeFieldMin
	rangeFieldMax
)

const (
	ruleFieldName = iota
	ruleFieldPattern
	ruleFieldSample
)

// Model is the root bubbletea model.
type Model struct {
	// Dimensions
	width  int
	height int
	ready  bool

	// Active screen
	tab Tab

	// Shared validation state
	validator *validator.Validator

	// Email screen
	emailInput   textinput.Model
	emailVerdict verdict

	// Phone screen
	phoneInput   textinput.Model
	phoneDigits  bool
	phoneVerdict verdict

	// Range screen
	rangeInputs  []textinput.Model
	rangeFocus   int
	rangeVerdict verdict

	// Consistency screen
	consistencyInputs  []textinput.Model
	consistencyFocus   int
	kind               validator.ConsistencyKind
	consistencyVerdict verdict

	// Custom rules screen
	ruleInputs  []textinput.Model
	ruleFocus   int
	ruleVerdict verdict
	trials      *cache.LRU[string, compiled]

	// Errors screen
	errorsView viewport.Model
}

// New builds the shell around v. The validator is shared with the
// caller; rules registered on the rules screen stay registered.
func New(v *validator.Validator) Model {
	m := Model{
		validator: v,
		kind:      validator.KindEquality,
		trials:    cache.NewLRU[string, compiled](64),

		emailInput: newInput("user@example.com", 254),
		phoneInput: newInput("5551234567", 64),
		rangeInputs: []textinput.Model{
			newInput("15.5", 64),
			newInput("10", 64),
			newInput("20", 64),
		},
		consistencyInputs: []textinput.Model{
			newInput("first value", 256),
			newInput("second value", 256),
		},
		ruleInputs: []textinput.Model{
			newInput("zip", 64),
			newInput(`^\d{5}$`, 512),
			newInput("12345", 256),
		},
	}
	m.focusActive()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.setTab((m.tab + 1) % tabCount)
			return m, nil

		case "shift+tab":
			m.setTab((m.tab + tabCount - 1) % tabCount)
			return m, nil
		}
		return m.updateScreen(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
	}

	return m, nil
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	m.focusActive()
	if t == TabErrors {
		m.syncErrors()
	}
}

func (m *Model) focusActive() {
	m.blurAll()
	switch m.tab {
	case TabEmail:
		m.emailInput.Focus()
	case TabPhone:
		m.phoneInput.Focus()
	case TabRange:
		m.rangeInputs[m.rangeFocus].Focus()
	case TabConsistency:
		m.consistencyInputs[m.consistencyFocus].Focus()
	case TabRules:
		m.ruleInputs[m.ruleFocus].Focus()
	}
}

func (m *Model) blurAll() {
	m.emailInput.Blur()
	m.phoneInput.Blur()
	for i := range m.rangeInputs {
		m.rangeInputs[i].Blur()
	}
	for i := range m.consistencyInputs {
		m.consistencyInputs[i].Blur()
	}
	for i := range m.ruleInputs {
		m.ruleInputs[i].Blur()
	}
}

func (m *Model) resize() {
	w := min(48, m.width-12)
	if w < 20 {
		w = 20
	}
	m.emailInput.Width = w
	m.phoneInput.Width = w
	for i := range m.rangeInputs {
		m.rangeInputs[i].Width = w
	}
	for i := range m.consistencyInputs {
		m.consistencyInputs[i].Width = w
	}
	for i := range m.ruleInputs {
		m.ruleInputs[i].Width = w
	}

	vw := max(20, m.width-8)
	vh := max(3, m.height-10)
	if !m.ready {
		m.errorsView = viewport.New(vw, vh)
		m.syncErrors()
	} else {
		m.errorsView.Width = vw
		m.errorsView.Height = vh
	}
}

// syncErrors refreshes the errors viewport from the validator's log,
// newest entries last.
func (m *Model) syncErrors() {
	entries := m.validator.Errors()
	if len(entries) == 0 {
		m.errorsView.SetContent(HelpDescStyle.Render("no validation failures recorded"))
		return
	}

	var b strings.Builder
	for i, entry := range entries {
		fmt.Fprintf(&b, "%3d  %s\n", i+1, LogTextStyle.Render(entry))
	}
	m.errorsView.SetContent(b.String())
	m.errorsView.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(m.renderScreen()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("datacheck")

	var tabs []string
	for i, name := range tabTitles {
		if Tab(i) == m.tab {
			tabs = append(tabs, ActiveTabStyle.Render(name))
		} else {
			tabs = append(tabs, TabStyle.Render(name))
		}
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m Model) renderFooter() string {
	items := []string{RenderKeyHint("tab", "switch screen")}

	switch m.tab {
	case TabPhone:
		items = append(items, RenderKeyHint("ctrl+d", "digits only"))
	case TabRange:
		items = append(items, RenderKeyHint("up/down", "field"))
	case TabConsistency:
		items = append(items, RenderKeyHint("up/down", "field"), RenderKeyHint("ctrl+k", "kind"))
	case TabRules:
		items = append(items, RenderKeyHint("up/down", "field"), RenderKeyHint("ctrl+t", "try"))
	case TabErrors:
		items = append(items, RenderKeyHint("c", "clear"))
	}

	if m.tab == TabRules {
		items = append(items, RenderKeyHint("enter", "register"))
	} else if m.tab != TabErrors {
		items = append(items, RenderKeyHint("enter", "check"))
	}
	items = append(items, RenderKeyHint("ctrl+c", "quit"))

	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the shell and blocks until the user quits.
func Run(v *validator.Validator) error {
	p := tea.NewProgram(New(v), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
