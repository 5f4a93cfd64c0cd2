package domain

import "github.com/shopspring/decimal"

// TaxInput is one computation request: a per-period gross income plus the
// optional capital gains, filing status and claimed deductions.
type TaxInput struct {
	GrossIncome  decimal.Decimal
	CapitalGains decimal.Decimal
	FilingStatus FilingStatus
	Deductions   DeductionSet
}

// ProfileResult is the outcome of evaluating one jurisdiction profile.
type ProfileResult struct {
	Profile string

	// TaxableBase may be negative when deductions exceed income; it is
	// reported as-is for display and clamped to zero before the bracket
	// evaluation.
	TaxableBase decimal.Decimal

	BracketTax decimal.Decimal
	GainsTax   decimal.Decimal

	// Levies holds the personal contributions by levy name,
	// EmployerLevies the employer-paid ones.
	Levies         map[string]decimal.Decimal
	EmployerLevies map[string]decimal.Decimal

	// Liability is the employee-side total for this profile: bracket tax
	// plus gains tax plus personal levy contributions.
	Liability decimal.Decimal

	// MarginalRate is the fraction of the next unit of income this
	// profile takes: the bracket rate at the current base plus the rates
	// of every levy still below its cap.
	MarginalRate decimal.Decimal
}

// TaxComputationResult is the combined outcome across all profiles.
// Produced fresh per computation and never mutated afterwards.
type TaxComputationResult struct {
	GrossIncome  decimal.Decimal
	CapitalGains decimal.Decimal
	FilingStatus FilingStatus

	Profiles []ProfileResult

	// LevyBreakdown aggregates personal contributions across profiles by
	// levy name.
	LevyBreakdown map[string]decimal.Decimal

	// PreTaxContributions is money the earner set aside before tax
	// (401(k)); it reduces take-home pay but is not a levy, so net income
	// reconciles against gross as
	// gross + gains - total liability - pre-tax contributions.
	PreTaxContributions decimal.Decimal

	TotalLiability decimal.Decimal
	NetIncome      decimal.Decimal

	// EmployerCost is gross income plus all employer-side contributions.
	EmployerCost decimal.Decimal

	// MarginalRateBreakdown holds each profile's marginal rate;
	// MarginalRate is their sum. The additive composition assumes each
	// levy acts independently on the same income; it overstates slightly
	// where a pre-tax levy also shrinks the progressive base.
	MarginalRateBreakdown map[string]decimal.Decimal
	MarginalRate          decimal.Decimal
}
