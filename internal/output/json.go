package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// JSONFormatter renders the result as indented JSON for scripting.
type JSONFormatter struct{}

// Name implements Formatter.
func (jf *JSONFormatter) Name() string { return "json" }

type jsonProfile struct {
	Profile        string            `json:"profile"`
	TaxableBase    string            `json:"taxable_base"`
	BracketTax     string            `json:"income_tax"`
	GainsTax       string            `json:"capital_gains_tax,omitempty"`
	Levies         map[string]string `json:"levies,omitempty"`
	EmployerLevies map[string]string `json:"employer_levies,omitempty"`
	Liability      string            `json:"liability"`
	MarginalRate   string            `json:"marginal_rate"`
}

type jsonResult struct {
	GrossIncome         string            `json:"gross_income"`
	CapitalGains        string            `json:"capital_gains,omitempty"`
	FilingStatus        string            `json:"filing_status"`
	Profiles            []jsonProfile     `json:"profiles"`
	LevyBreakdown       map[string]string `json:"levy_breakdown,omitempty"`
	PreTaxContributions string            `json:"pre_tax_contributions,omitempty"`
	TotalLiability      string            `json:"total_liability"`
	NetIncome           string            `json:"net_income"`
	EmployerCost        string            `json:"employer_cost,omitempty"`
	MarginalRate        string            `json:"marginal_rate"`
}

// Format implements Formatter.
func (jf *JSONFormatter) Format(result *domain.TaxComputationResult) ([]byte, error) {
	out := jsonResult{
		GrossIncome:    result.GrossIncome.StringFixed(2),
		FilingStatus:   result.FilingStatus.String(),
		LevyBreakdown:  stringAmounts(result.LevyBreakdown),
		TotalLiability: result.TotalLiability.StringFixed(2),
		NetIncome:      result.NetIncome.StringFixed(2),
		MarginalRate:   result.MarginalRate.String(),
	}
	if result.CapitalGains.IsPositive() {
		out.CapitalGains = result.CapitalGains.StringFixed(2)
	}
	if result.PreTaxContributions.IsPositive() {
		out.PreTaxContributions = result.PreTaxContributions.StringFixed(2)
	}
	if result.EmployerCost.GreaterThan(result.GrossIncome) {
		out.EmployerCost = result.EmployerCost.StringFixed(2)
	}
	for _, pr := range result.Profiles {
		jp := jsonProfile{
			Profile:        pr.Profile,
			TaxableBase:    pr.TaxableBase.StringFixed(2),
			BracketTax:     pr.BracketTax.StringFixed(2),
			Levies:         stringAmounts(pr.Levies),
			EmployerLevies: stringAmounts(pr.EmployerLevies),
			Liability:      pr.Liability.StringFixed(2),
			MarginalRate:   pr.MarginalRate.String(),
		}
		if pr.GainsTax.IsPositive() {
			jp.GainsTax = pr.GainsTax.StringFixed(2)
		}
		out.Profiles = append(out.Profiles, jp)
	}
	return json.MarshalIndent(out, "", "  ")
}

func stringAmounts(m map[string]decimal.Decimal) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.StringFixed(2)
	}
	return out
}
