package domain

import "github.com/shopspring/decimal"

// DeductionSet maps a deduction name to the amount claimed for it, e.g.
// "housing_rent" or "401k". Amounts are per period of the profile they are
// applied to (monthly for the CN regime, annual for the US regimes).
type DeductionSet map[string]decimal.Decimal

// DeductionRule configures one recognized deduction: an optional per-item
// cap and whether the amount is a pre-tax contribution (money set aside
// rather than spent, so it reduces take-home pay as well as the taxable
// base).
type DeductionRule struct {
	Name               string
	Cap                *decimal.Decimal
	PreTaxContribution bool
}

// DeductionPolicy describes how a jurisdiction reduces gross income to its
// taxable base. Claimed deductions without a matching rule are applied
// uncapped.
type DeductionPolicy struct {
	// TaxFreeThreshold is a flat per-period exemption subtracted before
	// anything else (CN: 5000/month). Zero when the regime has none.
	TaxFreeThreshold decimal.Decimal

	// DeductPreTaxLevies excludes the personal pre-tax capped-base levy
	// contributions from the taxable base. Regime-specific: CN deducts
	// social insurance and housing fund before the bracket evaluation,
	// US FICA is not deductible.
	DeductPreTaxLevies bool

	Rules []DeductionRule
}

// RuleFor returns the rule configured for a deduction name, if any.
func (p DeductionPolicy) RuleFor(name string) (DeductionRule, bool) {
	for _, r := range p.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return DeductionRule{}, false
}
