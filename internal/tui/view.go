package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			Bold(true)
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	selectorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("takehome tax calculator") + "\n\n")

	regimeLabel := "US (federal + California)"
	if m.regime == RegimeCN {
		regimeLabel = "CN (individual income tax, monthly)"
	}
	sb.WriteString(selectorStyle.Render("Regime:        "+regimeLabel) + "\n")
	sb.WriteString(selectorStyle.Render("Filing status: "+m.status.String()) + "\n\n")

	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		sb.WriteString(style.Render(fieldLabels[i]) + "\n")
		sb.WriteString(in.View() + "\n")
	}

	if m.err != nil {
		sb.WriteString("\n" + errorStyle.Render("error: "+m.err.Error()) + "\n")
	}
	if m.rendered != "" {
		sb.WriteString("\n" + m.rendered)
	}

	sb.WriteString("\n" + helpStyle.Render(
		"enter compute · tab next field · ctrl+r regime · ctrl+s status · esc quit") + "\n")
	return sb.String()
}
