package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// Liability computes the progressive tax on taxableAmount by forward
// accumulation: each bracket taxes min(taxableAmount, upper) - lower at
// its marginal rate. An amount exactly on a bracket boundary is taxed
// entirely in the lower bracket. Negative taxable income must be clamped
// to zero by the caller; passing a negative amount is an error, not a
// refund.
func Liability(table *domain.BracketTable, taxableAmount decimal.Decimal) (decimal.Decimal, error) {
	if taxableAmount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: taxable amount %s is negative", domain.ErrInvalidInput, taxableAmount)
	}

	total := decimal.Zero
	for _, br := range table.Ranges() {
		if taxableAmount.LessThanOrEqual(br.Lower) {
			break
		}
		top := taxableAmount
		if !br.Unbounded() {
			top = decimal.Min(taxableAmount, *br.Upper)
		}
		total = total.Add(top.Sub(br.Lower).Mul(br.Rate))
	}
	return total, nil
}

// MarginalRate returns the rate of the unique bracket where
// lower <= income < upper. A boundary amount takes the higher bracket's
// rate, consistent with Liability treating lower bounds as inclusive.
func MarginalRate(table *domain.BracketTable, income decimal.Decimal) (decimal.Decimal, error) {
	if income.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: income %s is negative", domain.ErrInvalidInput, income)
	}

	for _, br := range table.Ranges() {
		if br.Contains(income) {
			return br.Rate, nil
		}
	}
	// Unreachable for a validated table: the ranges cover [0, +inf).
	return decimal.Zero, nil
}
