package output

import (
	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// Formatter renders a computation result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.TaxComputationResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a --format value, nil when
// the name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return NewConsoleFormatter()
	case "json":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	}
	return nil
}

// FormatCurrency formats a decimal as currency with the given symbol.
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// FormatPercentage formats a rate fraction as a percentage.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
