// Package tui is the interactive front end: a small form collecting
// income, gains and deductions, recomputed against the built-in regimes
// on demand. All calculation happens through the same engine the CLI
// uses; the form never talks to the core types directly.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/takehome/takehome/internal/calculation"
	"github.com/takehome/takehome/internal/domain"
	"github.com/takehome/takehome/internal/output"
	"github.com/takehome/takehome/internal/regimes"
)

// Regime selects which profile set the form computes against.
type Regime string

const (
	RegimeUS Regime = "us"
	RegimeCN Regime = "cn"
)

const (
	fieldIncome = iota
	fieldCapitalGains
	fieldContribution401k
	fieldDeductions
	fieldCount
)

// Model is the form state.
type Model struct {
	inputs []textinput.Model
	focus  int

	regime Regime
	status domain.FilingStatus

	result   *domain.TaxComputationResult
	rendered string
	err      error

	width  int
	height int
}

var fieldLabels = [fieldCount]string{
	"Gross income (annual for US, monthly for CN)",
	"Capital gains (US only)",
	"401(k) contribution (US only)",
	"Other deductions total",
}

// NewModel creates the form with the US regime preselected.
func NewModel() Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = "0"
		in.Prompt = "> "
		in.CharLimit = 16
		in.Width = 20
		if i == fieldIncome {
			in.Focus()
		}
		inputs[i] = in
	}
	return Model{
		inputs: inputs,
		regime: RegimeUS,
		status: domain.FilingSingle,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.cycleFocus(1), nil
		case "shift+tab", "up":
			return m.cycleFocus(-1), nil
		case "ctrl+r":
			if m.regime == RegimeUS {
				m.regime = RegimeCN
			} else {
				m.regime = RegimeUS
			}
			return m.recompute(), nil
		case "ctrl+s":
			if m.status == domain.FilingSingle {
				m.status = domain.FilingMarriedJointly
			} else {
				m.status = domain.FilingSingle
			}
			return m.recompute(), nil
		case "enter":
			return m.recompute(), nil
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) cycleFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

// recompute parses the form and runs the engine; parse and computation
// errors land in m.err and leave the previous result on screen.
func (m Model) recompute() Model {
	values := make([]decimal.Decimal, fieldCount)
	for i := range m.inputs {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			values[i] = decimal.Zero
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			m.err = err
			return m
		}
		values[i] = v
	}

	input := domain.TaxInput{
		GrossIncome:  values[fieldIncome],
		FilingStatus: m.status,
		Deductions:   domain.DeductionSet{},
	}

	var engine *calculation.Engine
	switch m.regime {
	case RegimeCN:
		engine = calculation.NewEngine(regimes.ChinaIIT2024())
		if values[fieldDeductions].IsPositive() {
			input.Deductions[regimes.DeductionMedical] = values[fieldDeductions]
		}
	default:
		engine = calculation.NewEngine(regimes.USCombined2024()...)
		input.CapitalGains = values[fieldCapitalGains]
		if values[fieldContribution401k].IsPositive() {
			input.Deductions[regimes.Deduction401k] = values[fieldContribution401k]
		}
		if values[fieldDeductions].IsPositive() {
			input.Deductions["itemized"] = values[fieldDeductions]
		}
	}

	result, err := engine.Compute(input)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.result = result

	formatter := output.NewConsoleFormatter()
	if m.regime == RegimeCN {
		formatter.Currency = "¥"
	}
	data, err := formatter.Format(result)
	if err != nil {
		m.err = err
		return m
	}
	m.rendered = string(data)
	return m
}
