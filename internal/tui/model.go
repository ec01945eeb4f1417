// Package tui implements the full-screen interactive mode of the advanced
// calculator: an operation menu, operand entry, and a result view backed by
// the same arithmetic core as the line-oriented session.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmagnuss/calcsuite/internal/mathops"
	"github.com/jmagnuss/calcsuite/internal/session"
	"github.com/jmagnuss/calcsuite/internal/styles"
)

type state int

const (
	stateMenu state = iota
	stateFirstOperand
	stateSecondOperand
	stateResult
)

type operation struct {
	key    string
	label  string
	symbol string
	unary  bool
	apply  func(a, b float64) (float64, error)
}

var operations = []operation{
	{"1", "Add", "+", false, func(a, b float64) (float64, error) { return mathops.Add(a, b), nil }},
	{"2", "Multiply", "*", false, func(a, b float64) (float64, error) { return mathops.Multiply(a, b), nil }},
	{"3", "Divide", "/", false, mathops.Divide},
	{"4", "Power (x^y)", "^", false, func(a, b float64) (float64, error) { return mathops.Power(a, b), nil }},
	{"5", "Modulo (x % y)", "%", false, mathops.Modulo},
	{"6", "Square Root", "", true, func(a, _ float64) (float64, error) { return mathops.SquareRoot(a) }},
}

// Model is the Bubble Tea model for the advanced calculator TUI.
type Model struct {
	state     state
	op        operation
	first     float64
	input     textinput.Model
	inputErr  string
	result    string
	resultErr bool
	precision int
	width     int
	height    int
}

// NewModel returns a model showing the operation menu.
func NewModel(precision int) Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 64
	ti.Width = 24

	return Model{
		state:     stateMenu,
		input:     ti,
		precision: precision,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateFirstOperand, stateSecondOperand:
			return m.updateOperand(msg)
		case stateResult:
			return m.updateResult(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}

	for _, op := range operations {
		if msg.String() == op.key {
			m.op = op
			m.state = stateFirstOperand
			m.inputErr = ""
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m Model) updateOperand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		m.inputErr = ""
		m.input.Blur()
		return m, nil
	case "enter":
		value, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
		if err != nil {
			m.inputErr = "Please enter a numeric value."
			m.input.SetValue("")
			return m, nil
		}
		m.inputErr = ""
		m.input.SetValue("")

		if m.state == stateFirstOperand && !m.op.unary {
			m.first = value
			m.state = stateSecondOperand
			return m, nil
		}

		if m.op.unary {
			m.compute(value, 0)
		} else {
			m.compute(m.first, value)
		}
		m.state = stateResult
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) compute(a, b float64) {
	result, err := m.op.apply(a, b)
	if err != nil {
		m.result = m.formatResultLine(a, b, err.Error())
		m.resultErr = true
		return
	}
	m.result = m.formatResultLine(a, b, session.FormatNumber(result, m.precision))
	m.resultErr = false
}

func (m Model) formatResultLine(a, b float64, result string) string {
	fa := session.FormatNumber(a, m.precision)
	if m.op.unary {
		return fmt.Sprintf("Square root of %s = %s", fa, result)
	}
	return fmt.Sprintf("%s %s %s = %s", fa, m.op.symbol, session.FormatNumber(b, m.precision), result)
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc", "enter":
		return m, tea.Quit
	case "n":
		m.state = stateMenu
		m.result = ""
		m.resultErr = false
		return m, nil
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.RenderTitle("Advanced Calculator"))
	b.WriteString("\n\n")

	switch m.state {
	case stateMenu:
		b.WriteString("Select operation:\n")
		for _, op := range operations {
			b.WriteString(styles.RenderMenu(fmt.Sprintf("%s. %s", op.key, op.label)))
			b.WriteString("\n")
		}
		b.WriteString("\nPress 1-6 to choose, q to quit.\n")

	case stateFirstOperand, stateSecondOperand:
		b.WriteString(styles.BoldStyle.Render(m.op.label))
		b.WriteString("\n\n")
		b.WriteString(m.operandPrompt())
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.inputErr != "" {
			b.WriteString(styles.RenderError(m.inputErr))
			b.WriteString("\n")
		}
		b.WriteString("\nenter to confirm, esc for menu, ctrl+c to quit.\n")

	case stateResult:
		if m.resultErr {
			b.WriteString(styles.RenderError(m.result))
		} else {
			b.WriteString(styles.RenderResult(m.result))
		}
		b.WriteString("\n\nn for a new calculation, q to quit.\n")
	}

	return b.String()
}

func (m Model) operandPrompt() string {
	if m.op.unary {
		return "Enter a number:"
	}
	if m.state == stateFirstOperand {
		return "Enter first number:"
	}
	return "Enter second number:"
}
