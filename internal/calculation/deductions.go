package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// TaxableBase reduces grossIncome to a profile's progressive base. In
// order: the flat tax-free threshold, then the pre-tax levy contributions
// when the policy excludes them from taxable income, then each itemized
// deduction clamped to its configured cap. The result may be negative
// (deductions exceeding income are worth reporting); the engine clamps to
// zero before the bracket evaluation.
func TaxableBase(grossIncome, preTaxLevies decimal.Decimal, deductions domain.DeductionSet, policy domain.DeductionPolicy) (decimal.Decimal, error) {
	base := grossIncome.Sub(policy.TaxFreeThreshold)
	if policy.DeductPreTaxLevies {
		base = base.Sub(preTaxLevies)
	}

	for name, amount := range deductions {
		if amount.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: deduction %q amount %s is negative", domain.ErrInvalidInput, name, amount)
		}
		if rule, ok := policy.RuleFor(name); ok && rule.Cap != nil {
			amount = decimal.Min(amount, *rule.Cap)
		}
		base = base.Sub(amount)
	}
	return base, nil
}
