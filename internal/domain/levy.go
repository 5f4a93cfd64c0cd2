package domain

import "github.com/shopspring/decimal"

// CappedBaseLevy is a flat-rate contribution applied to an income amount
// clamped between a floor and a ceiling: social insurance, payroll taxes,
// disability insurance.
type CappedBaseLevy struct {
	Name string
	Rate decimal.Decimal

	// Floor and Ceiling bound the contribution base. A nil Ceiling means
	// the base is uncapped (e.g. Medicare).
	Floor   decimal.Decimal
	Ceiling *decimal.Decimal

	// EnforceFloor selects the clamp policy when income falls below the
	// floor: true means the levy is a minimum-base contribution and the
	// floor is still charged (CN social insurance); false means the base
	// is the income itself (US payroll taxes).
	EnforceFloor bool

	// Employer marks contributions paid by the employer. They never
	// reduce employee net income and are reported only in the breakdown
	// and the total employer cost.
	Employer bool

	// PreTax marks personal contributions that are excluded from the
	// progressive taxable base when the regime's deduction policy says
	// pre-tax levies are deductible.
	PreTax bool
}

// ThresholdLevy is an "additional rate above threshold" levy, such as the
// extra Medicare rate on income above the high-earner threshold. The
// excess is taxed flat and uncapped.
type ThresholdLevy struct {
	Name      string
	Rate      decimal.Decimal
	Threshold decimal.Decimal
}
