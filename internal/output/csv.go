package output

import (
	"bytes"
	"encoding/csv"

	"github.com/takehome/takehome/internal/domain"
)

// CSVFormatter renders the per-levy breakdown as item,profile,amount rows
// for spreadsheet import.
type CSVFormatter struct{}

// Name implements Formatter.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format implements Formatter.
func (cf *CSVFormatter) Format(result *domain.TaxComputationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"item", "profile", "amount"}); err != nil {
		return nil, err
	}
	writeRow := func(item, profile string, amount string) error {
		return w.Write([]string{item, profile, amount})
	}

	if err := writeRow("gross_income", "", result.GrossIncome.StringFixed(2)); err != nil {
		return nil, err
	}
	if result.CapitalGains.IsPositive() {
		if err := writeRow("capital_gains", "", result.CapitalGains.StringFixed(2)); err != nil {
			return nil, err
		}
	}
	for _, pr := range result.Profiles {
		if err := writeRow("taxable_base", pr.Profile, pr.TaxableBase.StringFixed(2)); err != nil {
			return nil, err
		}
		if err := writeRow("income_tax", pr.Profile, pr.BracketTax.StringFixed(2)); err != nil {
			return nil, err
		}
		if pr.GainsTax.IsPositive() {
			if err := writeRow("capital_gains_tax", pr.Profile, pr.GainsTax.StringFixed(2)); err != nil {
				return nil, err
			}
		}
		for _, name := range sortedKeys(pr.Levies) {
			if err := writeRow(name, pr.Profile, pr.Levies[name].StringFixed(2)); err != nil {
				return nil, err
			}
		}
		for _, name := range sortedKeys(pr.EmployerLevies) {
			if err := writeRow(name+"_employer", pr.Profile, pr.EmployerLevies[name].StringFixed(2)); err != nil {
				return nil, err
			}
		}
	}
	if result.PreTaxContributions.IsPositive() {
		if err := writeRow("pre_tax_contributions", "", result.PreTaxContributions.StringFixed(2)); err != nil {
			return nil, err
		}
	}
	if err := writeRow("total_liability", "", result.TotalLiability.StringFixed(2)); err != nil {
		return nil, err
	}
	if err := writeRow("net_income", "", result.NetIncome.StringFixed(2)); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
