package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

var (
	sectionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	subsectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ConsoleFormatter renders a result as sectioned tables for the terminal.
type ConsoleFormatter struct {
	// Currency is the symbol prefixed to amounts ("$", "¥").
	Currency string
}

// NewConsoleFormatter returns a console formatter with the dollar symbol.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{Currency: "$"}
}

// Name implements Formatter.
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format implements Formatter.
func (cf *ConsoleFormatter) Format(result *domain.TaxComputationResult) ([]byte, error) {
	var sb strings.Builder

	cf.section(&sb, "TAKE-HOME PAY ANALYSIS")

	cf.subsection(&sb, "Income")
	cf.row(&sb, "Gross income", cf.money(result.GrossIncome))
	if result.CapitalGains.IsPositive() {
		cf.row(&sb, "Capital gains", cf.money(result.CapitalGains))
	}
	if result.PreTaxContributions.IsPositive() {
		cf.row(&sb, "Pre-tax contributions", cf.money(result.PreTaxContributions))
	}
	cf.row(&sb, "Filing status", result.FilingStatus.String())

	for _, pr := range result.Profiles {
		cf.subsection(&sb, pr.Profile)
		cf.row(&sb, "Taxable base", cf.money(pr.TaxableBase))
		if pr.TaxableBase.IsNegative() {
			sb.WriteString(mutedStyle.Render("    deductions exceed income by "+cf.money(pr.TaxableBase.Abs())) + "\n")
		}
		if pr.BracketTax.IsPositive() {
			cf.row(&sb, "Income tax", cf.money(pr.BracketTax))
		}
		if pr.GainsTax.IsPositive() {
			cf.row(&sb, "Capital gains tax", cf.money(pr.GainsTax))
		}
		for _, name := range sortedKeys(pr.Levies) {
			cf.row(&sb, name, cf.money(pr.Levies[name]))
		}
		for _, name := range sortedKeys(pr.EmployerLevies) {
			cf.row(&sb, name+" (employer)", cf.money(pr.EmployerLevies[name]))
		}
		cf.row(&sb, "Total", cf.money(pr.Liability))
	}

	cf.subsection(&sb, "Marginal rates")
	for _, pr := range result.Profiles {
		cf.row(&sb, pr.Profile, FormatPercentage(pr.MarginalRate))
	}
	cf.row(&sb, "Combined", FormatPercentage(result.MarginalRate))
	hundred := decimal.NewFromInt(100)
	cf.row(&sb, "Tax on next "+cf.money(hundred), cf.money(result.MarginalRate.Mul(hundred)))

	cf.subsection(&sb, "Net income")
	cf.row(&sb, "Total levies", cf.money(result.TotalLiability))
	cf.row(&sb, "Net income", cf.money(result.NetIncome))
	if result.EmployerCost.GreaterThan(result.GrossIncome) {
		cf.row(&sb, "Employer cost", cf.money(result.EmployerCost))
	}

	return []byte(sb.String()), nil
}

func (cf *ConsoleFormatter) money(amount decimal.Decimal) string {
	return FormatCurrency(cf.Currency, amount)
}

func (cf *ConsoleFormatter) section(sb *strings.Builder, title string) {
	rule := strings.Repeat("=", 20)
	sb.WriteString(sectionStyle.Render(rule+" "+title+" "+rule) + "\n")
}

func (cf *ConsoleFormatter) subsection(sb *strings.Builder, title string) {
	sb.WriteString("\n" + subsectionStyle.Render(title) + "\n")
}

func (cf *ConsoleFormatter) row(sb *strings.Builder, label, value string) {
	sb.WriteString(fmt.Sprintf("  %-28s %15s\n", label, value))
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
