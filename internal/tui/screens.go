package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/datacheck/pkg/sanitizer"
	"github.com/dmitrymomot/datacheck/pkg/validator"
)

// verdict is the outcome of the last run on a screen.
type verdict struct {
	text string
	ok   bool
}

// compiled memoizes one trial compilation on the rules screen, so
// retrying the same pattern does not recompile it.
type compiled struct {
	pattern *validator.Pattern
	err     error
}

func (m Model) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabEmail:
		return m.updateEmail(msg)
	case TabPhone:
		return m.updatePhone(msg)
	case TabRange:
		return m.updateRange(msg)
	case TabConsistency:
		return m.updateConsistency(msg)
	case TabRules:
		return m.updateRules(msg)
	case TabErrors:
		return m.updateErrors(msg)
	}
	return m, nil
}

func (m Model) renderScreen() string {
	switch m.tab {
	case TabEmail:
		return m.viewEmail()
	case TabPhone:
		return m.viewPhone()
	case TabRange:
		return m.viewRange()
	case TabConsistency:
		return m.viewConsistency()
	case TabRules:
		return m.viewRules()
	case TabErrors:
		return m.viewErrors()
	}
	return ""
}

// runCheck executes one core call and folds the result into a verdict.
// When the check fails and logged a new entry, the entry becomes the
// verdict text; silent failures fall back to failText.
func (m Model) runCheck(okText, failText string, run func() bool) verdict {
	before := len(m.validator.Errors())
	if run() {
		return verdict{text: okText, ok: true}
	}
	if entries := m.validator.Errors(); len(entries) > before {
		return verdict{text: entries[len(entries)-1]}
	}
	return verdict{text: failText}
}

// Email screen

func (m Model) updateEmail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		value := sanitizer.Trim(m.emailInput.Value())
		m.emailVerdict = m.runCheck(
			fmt.Sprintf("%q is a valid email", value),
			"validation failed",
			func() bool { return m.validator.Validate(value, validator.RuleEmail) },
		)
		return m, nil
	}

	var cmd tea.Cmd
	m.emailInput, cmd = m.emailInput.Update(msg)
	return m, cmd
}

func (m Model) viewEmail() string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Email address"))
	b.WriteString("\n")
	b.WriteString(renderInput(m.emailInput))
	b.WriteString("\n")
	b.WriteString(renderVerdict(m.emailVerdict))
	return b.String()
}

// Phone screen

func (m Model) updatePhone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+d":
		m.phoneDigits = !m.phoneDigits
		return m, nil

	case "enter":
		value := sanitizer.Trim(m.phoneInput.Value())
		if m.phoneDigits {
			value = sanitizer.KeepDigits(value)
		}
		m.phoneVerdict = m.runCheck(
			fmt.Sprintf("%q is a valid phone number", value),
			"validation failed",
			func() bool { return m.validator.Validate(value, validator.RulePhone) },
		)
		return m, nil
	}

	var cmd tea.Cmd
	m.phoneInput, cmd = m.phoneInput.Update(msg)
	return m, cmd
}

func (m Model) viewPhone() string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Phone number"))
	b.WriteString("  ")
	b.WriteString(RenderToggle("[digits only]", m.phoneDigits))
	b.WriteString("\n")
	b.WriteString(renderInput(m.phoneInput))
	b.WriteString("\n")
	b.WriteString(renderVerdict(m.phoneVerdict))
	return b.String()
}

// Range screen

func (m Model) updateRange(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		moveFocus(m.rangeInputs, &m.rangeFocus, -1)
		return m, nil
	case "down":
		moveFocus(m.rangeInputs, &m.rangeFocus, 1)
		return m, nil
	case "enter":
		m.rangeVerdict = m.runRange()
		return m, nil
	}

	var cmd tea.Cmd
	m.rangeInputs[m.rangeFocus], cmd = m.rangeInputs[m.rangeFocus].Update(msg)
	return m, cmd
}

func (m Model) runRange() verdict {
	labels := []string{"value", "min", "max"}
	nums := make([]float64, len(m.rangeInputs))
	for i := range m.rangeInputs {
		f, err := strconv.ParseFloat(sanitizer.Trim(m.rangeInputs[i].Value()), 64)
		if err != nil {
			return verdict{text: labels[i] + " is not a number"}
		}
		nums[i] = f
	}

	return m.runCheck(
		"value is within range",
		"value is outside range",
		func() bool { return m.validator.ValidateRange(nums[0], nums[1], nums[2]) },
	)
}

func (m Model) viewRange() string {
	labels := []string{"Value", "Min", "Max"}

	var b strings.Builder
	for i := range m.rangeInputs {
		b.WriteString(LabelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(renderInput(m.rangeInputs[i]))
		b.WriteString("\n")
	}
	b.WriteString(renderVerdict(m.rangeVerdict))
	return b.String()
}

// Consistency screen

func (m Model) updateConsistency(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		moveFocus(m.consistencyInputs, &m.consistencyFocus, -1)
		return m, nil
	case "down":
		moveFocus(m.consistencyInputs, &m.consistencyFocus, 1)
		return m, nil

	case "ctrl+k":
		if m.kind == validator.KindEquality {
			m.kind = validator.KindNumeric
		} else {
			m.kind = validator.KindEquality
		}
		return m, nil

	case "enter":
		a := sanitizer.Trim(m.consistencyInputs[0].Value())
		b := sanitizer.Trim(m.consistencyInputs[1].Value())
		m.consistencyVerdict = m.runCheck(
			fmt.Sprintf("values are consistent (%s)", m.kind),
			fmt.Sprintf("values are not consistent (%s)", m.kind),
			func() bool { return m.validator.CheckConsistency(a, b, m.kind) },
		)
		return m, nil
	}

	var cmd tea.Cmd
	m.consistencyInputs[m.consistencyFocus], cmd = m.consistencyInputs[m.consistencyFocus].Update(msg)
	return m, cmd
}

func (m Model) viewConsistency() string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Kind"))
	b.WriteString("  ")
	b.WriteString(RenderToggle("equality", m.kind == validator.KindEquality))
	b.WriteString(" ")
	b.WriteString(RenderToggle("numeric", m.kind == validator.KindNumeric))
	b.WriteString("\n")

	labels := []string{"First value", "Second value"}
	for i := range m.consistencyInputs {
		b.WriteString(LabelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(renderInput(m.consistencyInputs[i]))
		b.WriteString("\n")
	}
	b.WriteString(renderVerdict(m.consistencyVerdict))
	return b.String()
}

// Custom rules screen

func (m Model) updateRules(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		moveFocus(m.ruleInputs, &m.ruleFocus, -1)
		return m, nil
	case "down":
		moveFocus(m.ruleInputs, &m.ruleFocus, 1)
		return m, nil

	case "ctrl+t":
		m.ruleVerdict = m.tryPattern()
		return m, nil

	case "enter":
		m.ruleVerdict = m.registerRule()
		return m, nil
	}

	var cmd tea.Cmd
	m.ruleInputs[m.ruleFocus], cmd = m.ruleInputs[m.ruleFocus].Update(msg)
	return m, cmd
}

// tryPattern compiles the pattern field (through the trial cache) and
// matches it against the sample without touching the registry.
func (m Model) tryPattern() verdict {
	source := sanitizer.Trim(m.ruleInputs[ruleFieldPattern].Value())
	if source == "" {
		return verdict{text: "enter a pattern to try"}
	}

	c, hit := m.trials.Get(source)
	if !hit {
		p, err := validator.CompilePattern(source)
		c = compiled{pattern: p, err: err}
		m.trials.Put(source, c)
	}
	if c.err != nil {
		return verdict{text: c.err.Error()}
	}

	sample := sanitizer.Trim(m.ruleInputs[ruleFieldSample].Value())
	if c.pattern.MatchString(sample) {
		return verdict{text: fmt.Sprintf("sample matches %s", source), ok: true}
	}
	return verdict{text: fmt.Sprintf("sample does not match %s", source)}
}

func (m Model) registerRule() verdict {
	name := sanitizer.Trim(m.ruleInputs[ruleFieldName].Value())
	if name == "" {
		return verdict{text: "rule name is required"}
	}

	source := sanitizer.Trim(m.ruleInputs[ruleFieldPattern].Value())
	if err := m.validator.AddRule(name, source); err != nil {
		return verdict{text: err.Error()}
	}
	return verdict{text: fmt.Sprintf("rule %q registered", name), ok: true}
}

func (m Model) viewRules() string {
	labels := []string{"Rule name", "Pattern", "Sample value"}

	var b strings.Builder
	for i := range m.ruleInputs {
		b.WriteString(LabelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(renderInput(m.ruleInputs[i]))
		b.WriteString("\n")
	}
	b.WriteString(renderVerdict(m.ruleVerdict))
	b.WriteString("\n")
	b.WriteString(HelpDescStyle.Render("registered: " + strings.Join(m.validator.RuleNames(), ", ")))
	return b.String()
}

// Errors screen

func (m Model) updateErrors(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "c" {
		m.validator.ClearErrors()
		m.syncErrors()
		return m, nil
	}

	var cmd tea.Cmd
	m.errorsView, cmd = m.errorsView.Update(msg)
	return m, cmd
}

func (m Model) viewErrors() string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%d recorded failures", len(m.validator.Errors()))))
	b.WriteString("\n")
	b.WriteString(m.errorsView.View())
	return b.String()
}

// Helpers

func moveFocus(inputs []textinput.Model, focus *int, delta int) {
	inputs[*focus].Blur()
	*focus = (*focus + len(inputs) + delta) % len(inputs)
	inputs[*focus].Focus()
}

func renderInput(in textinput.Model) string {
	if in.Focused() {
		return FocusedInputStyle.Render(in.View())
	}
	return InputStyle.Render(in.View())
}

func renderVerdict(v verdict) string {
	if v.text == "" {
		return ""
	}
	if v.ok {
		return VerdictOKStyle.Render("[+] " + v.text)
	}
	return VerdictFailStyle.Render("[-] " + v.text)
}
