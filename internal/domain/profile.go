package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// JurisdictionTaxProfile binds the bracket tables, capped-base levies and
// deduction rules of one regime ("US Federal", "US California", "CN
// Individual Income Tax"). Profiles are built once at configuration time
// and treated as read-only afterwards.
type JurisdictionTaxProfile struct {
	Name string

	// PeriodsPerYear declares the income period the profile works in.
	// 1 means amounts are annual. The CN regime uses 12: monthly taxable
	// income is annualized against the annual bracket table and the
	// liability divided back.
	PeriodsPerYear int

	// Tables holds the progressive bracket table per filing status. Nil
	// for profiles that only carry flat-rate levies.
	Tables map[FilingStatus]*BracketTable

	// StandardDeduction is the per-status flat deduction applied before
	// bracket evaluation (US). Nil when the regime has none.
	StandardDeduction map[FilingStatus]decimal.Decimal

	Levies   []CappedBaseLevy
	Surtaxes []ThresholdLevy

	// GainsTables optionally taxes capital gains at the flat rate of the
	// bracket containing total income (US federal long-term gains).
	GainsTables map[FilingStatus]*BracketTable

	// GainsInTaxableBase folds capital gains into the progressive base
	// instead of using a separate gains table (California).
	GainsInTaxableBase bool

	Policy DeductionPolicy
}

// TableFor resolves the bracket table for a filing status. A nil table
// with nil error means the profile has no progressive component.
func (p *JurisdictionTaxProfile) TableFor(status FilingStatus) (*BracketTable, error) {
	if p.Tables == nil {
		return nil, nil
	}
	table, ok := p.Tables[status]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no bracket table for %q", ErrUnknownFilingStatus, p.Name, status)
	}
	return table, nil
}

// StandardDeductionFor resolves the flat deduction for a filing status.
func (p *JurisdictionTaxProfile) StandardDeductionFor(status FilingStatus) (decimal.Decimal, error) {
	if p.StandardDeduction == nil {
		return decimal.Zero, nil
	}
	d, ok := p.StandardDeduction[status]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s has no standard deduction for %q", ErrUnknownFilingStatus, p.Name, status)
	}
	return d, nil
}

// GainsTableFor resolves the capital-gains rate table for a filing status,
// nil when the profile does not tax gains separately.
func (p *JurisdictionTaxProfile) GainsTableFor(status FilingStatus) (*BracketTable, error) {
	if p.GainsTables == nil {
		return nil, nil
	}
	table, ok := p.GainsTables[status]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no gains table for %q", ErrUnknownFilingStatus, p.Name, status)
	}
	return table, nil
}
