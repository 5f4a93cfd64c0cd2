package output

import (
	"fmt"
	"strings"

	"github.com/takehome/takehome/internal/mortgage"
)

// FormatSchedule renders an amortization schedule as a console table.
// Long schedules print the first year, an ellipsis and the final row.
func FormatSchedule(title string, schedule *mortgage.Schedule, currency string) string {
	var sb strings.Builder

	sb.WriteString(subsectionStyle.Render(title) + "\n")
	sb.WriteString(fmt.Sprintf("  %6s %15s %15s %15s %15s\n",
		"Month", "Payment", "Principal", "Interest", "Remaining"))
	sb.WriteString("  " + strings.Repeat("-", 70) + "\n")

	rows := schedule.Payments
	truncated := len(rows) > 13
	if truncated {
		rows = rows[:12]
	}
	for _, p := range rows {
		sb.WriteString(formatPaymentRow(p, currency))
	}
	if truncated {
		sb.WriteString("  " + mutedStyle.Render(fmt.Sprintf("... %d further months ...", len(schedule.Payments)-13)) + "\n")
		sb.WriteString(formatPaymentRow(schedule.Payments[len(schedule.Payments)-1], currency))
	}

	sb.WriteString("  " + strings.Repeat("-", 70) + "\n")
	sb.WriteString(fmt.Sprintf("  %-22s %15s\n", "Total payment", FormatCurrency(currency, schedule.TotalPayment)))
	sb.WriteString(fmt.Sprintf("  %-22s %15s\n", "Total interest", FormatCurrency(currency, schedule.TotalInterest)))
	return sb.String()
}

func formatPaymentRow(p mortgage.Payment, currency string) string {
	return fmt.Sprintf("  %6d %15s %15s %15s %15s\n",
		p.Period,
		FormatCurrency(currency, p.Payment),
		FormatCurrency(currency, p.Principal),
		FormatCurrency(currency, p.Interest),
		FormatCurrency(currency, p.Remaining))
}
