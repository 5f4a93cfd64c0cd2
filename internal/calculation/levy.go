package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// Contribution computes a capped-base levy on grossIncome. The base is
// the income clamped to the levy's ceiling; whether the floor is also
// enforced when income falls below it is a per-levy policy
// (minimum-base social insurance vs plain payroll tax).
func Contribution(levy domain.CappedBaseLevy, grossIncome decimal.Decimal) (decimal.Decimal, error) {
	if grossIncome.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: gross income %s is negative", domain.ErrInvalidInput, grossIncome)
	}

	base := grossIncome
	if levy.EnforceFloor && base.LessThan(levy.Floor) {
		base = levy.Floor
	}
	if levy.Ceiling != nil && base.GreaterThan(*levy.Ceiling) {
		base = *levy.Ceiling
	}
	return base.Mul(levy.Rate), nil
}

// ContributionOverThreshold computes an additional-rate levy on the income
// in excess of the threshold, uncapped (additional Medicare).
func ContributionOverThreshold(levy domain.ThresholdLevy, grossIncome decimal.Decimal) (decimal.Decimal, error) {
	if grossIncome.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: gross income %s is negative", domain.ErrInvalidInput, grossIncome)
	}

	excess := grossIncome.Sub(levy.Threshold)
	if excess.IsNegative() {
		return decimal.Zero, nil
	}
	return excess.Mul(levy.Rate), nil
}

// LevyMarginalRate is the levy's take from the next unit of income: the
// full rate while floor <= income < ceiling, zero once the base has
// saturated or while a minimum base still applies.
func LevyMarginalRate(levy domain.CappedBaseLevy, grossIncome decimal.Decimal) decimal.Decimal {
	if grossIncome.LessThan(levy.Floor) {
		return decimal.Zero
	}
	if levy.Ceiling != nil && grossIncome.GreaterThanOrEqual(*levy.Ceiling) {
		return decimal.Zero
	}
	return levy.Rate
}

// SurtaxMarginalRate is the threshold levy's take from the next unit of
// income: the full rate once income is past the threshold.
func SurtaxMarginalRate(levy domain.ThresholdLevy, grossIncome decimal.Decimal) decimal.Decimal {
	if grossIncome.GreaterThan(levy.Threshold) {
		return levy.Rate
	}
	return decimal.Zero
}
