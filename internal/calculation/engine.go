package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// Engine evaluates a fixed set of jurisdiction profiles against the same
// income and combines their results. Profiles are read-only after
// construction, so one Engine may serve concurrent computations.
type Engine struct {
	profiles []*domain.JurisdictionTaxProfile
}

// NewEngine creates an engine over the given profiles.
func NewEngine(profiles ...*domain.JurisdictionTaxProfile) *Engine {
	return &Engine{profiles: profiles}
}

// Profiles returns the profiles the engine computes over.
func (e *Engine) Profiles() []*domain.JurisdictionTaxProfile { return e.profiles }

// Compute runs every profile against the input and sums the results.
//
// Net income reconciles against gross: pre-tax contributions (401(k))
// reduce take-home pay and are reported separately rather than folded
// into an intermediate adjusted figure. The combined marginal rate is the
// sum of per-profile marginal rates. That additive composition is exact
// while every levy acts independently on the same income, and a slight
// overstatement where a pre-tax levy also shrinks the progressive base
// (the CN regime): an extra unit of income then raises the bracket base
// by less than a full unit.
func (e *Engine) Compute(input domain.TaxInput) (*domain.TaxComputationResult, error) {
	if input.GrossIncome.IsNegative() {
		return nil, fmt.Errorf("%w: gross income %s is negative", domain.ErrInvalidInput, input.GrossIncome)
	}
	if input.CapitalGains.IsNegative() {
		return nil, fmt.Errorf("%w: capital gains %s is negative", domain.ErrInvalidInput, input.CapitalGains)
	}

	result := &domain.TaxComputationResult{
		GrossIncome:           input.GrossIncome,
		CapitalGains:          input.CapitalGains,
		FilingStatus:          input.FilingStatus,
		LevyBreakdown:         make(map[string]decimal.Decimal),
		MarginalRateBreakdown: make(map[string]decimal.Decimal),
		EmployerCost:          input.GrossIncome,
	}

	for _, profile := range e.profiles {
		pr, err := computeProfile(profile, input)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", profile.Name, err)
		}
		result.Profiles = append(result.Profiles, pr)
		result.TotalLiability = result.TotalLiability.Add(pr.Liability)
		result.MarginalRateBreakdown[pr.Profile] = pr.MarginalRate
		result.MarginalRate = result.MarginalRate.Add(pr.MarginalRate)
		for name, amount := range pr.Levies {
			result.LevyBreakdown[name] = result.LevyBreakdown[name].Add(amount)
		}
		for _, amount := range pr.EmployerLevies {
			result.EmployerCost = result.EmployerCost.Add(amount)
		}
	}

	result.PreTaxContributions = e.preTaxContributions(input.Deductions)
	result.NetIncome = input.GrossIncome.Add(input.CapitalGains).
		Sub(result.TotalLiability).
		Sub(result.PreTaxContributions)
	return result, nil
}

// preTaxContributions totals the claimed deductions that some profile
// marks as pre-tax contributions, each clamped to its cap. A contribution
// recognized by several profiles (401(k) reduces both the federal and the
// state base) is counted once against take-home pay.
func (e *Engine) preTaxContributions(deductions domain.DeductionSet) decimal.Decimal {
	total := decimal.Zero
	for name, amount := range deductions {
		for _, p := range e.profiles {
			rule, ok := p.Policy.RuleFor(name)
			if !ok || !rule.PreTaxContribution {
				continue
			}
			if rule.Cap != nil {
				amount = decimal.Min(amount, *rule.Cap)
			}
			total = total.Add(amount)
			break
		}
	}
	return total
}

// computeProfile evaluates one jurisdiction against the input.
func computeProfile(p *domain.JurisdictionTaxProfile, input domain.TaxInput) (domain.ProfileResult, error) {
	pr := domain.ProfileResult{
		Profile:        p.Name,
		Levies:         make(map[string]decimal.Decimal),
		EmployerLevies: make(map[string]decimal.Decimal),
	}

	// Capped-base levies and surtaxes apply to gross income, before any
	// deduction.
	personal := decimal.Zero
	preTax := decimal.Zero
	for _, levy := range p.Levies {
		amount, err := Contribution(levy, input.GrossIncome)
		if err != nil {
			return pr, err
		}
		if levy.Employer {
			pr.EmployerLevies[levy.Name] = amount
			continue
		}
		pr.Levies[levy.Name] = amount
		personal = personal.Add(amount)
		if levy.PreTax {
			preTax = preTax.Add(amount)
		}
	}
	for _, surtax := range p.Surtaxes {
		amount, err := ContributionOverThreshold(surtax, input.GrossIncome)
		if err != nil {
			return pr, err
		}
		pr.Levies[surtax.Name] = amount
		personal = personal.Add(amount)
	}

	table, err := p.TableFor(input.FilingStatus)
	if err != nil {
		return pr, err
	}
	standardDed, err := p.StandardDeductionFor(input.FilingStatus)
	if err != nil {
		return pr, err
	}

	base, err := TaxableBase(input.GrossIncome, preTax, input.Deductions, p.Policy)
	if err != nil {
		return pr, err
	}
	base = base.Sub(standardDed)
	if p.GainsInTaxableBase {
		base = base.Add(input.CapitalGains)
	}
	pr.TaxableBase = base

	periods := decimal.NewFromInt(int64(max(p.PeriodsPerYear, 1)))

	marginal := decimal.Zero
	if table != nil {
		// The bracket table is annual; a per-period base is annualized
		// for the evaluation and the liability divided back.
		annualized := decimal.Max(base, decimal.Zero).Mul(periods)
		tax, err := Liability(table, annualized)
		if err != nil {
			return pr, err
		}
		pr.BracketTax = tax.Div(periods)

		rate, err := MarginalRate(table, annualized)
		if err != nil {
			return pr, err
		}
		marginal = rate
	}

	gainsTable, err := p.GainsTableFor(input.FilingStatus)
	if err != nil {
		return pr, err
	}
	if gainsTable != nil && input.CapitalGains.IsPositive() {
		// Long-term gains are taxed flat at the rate of the bracket
		// containing total income, not sliced progressively.
		totalIncome := decimal.Max(pr.TaxableBase, decimal.Zero).Add(input.CapitalGains)
		rate, err := MarginalRate(gainsTable, totalIncome)
		if err != nil {
			return pr, err
		}
		pr.GainsTax = input.CapitalGains.Mul(rate)
	}

	for _, levy := range p.Levies {
		if levy.Employer {
			continue
		}
		marginal = marginal.Add(LevyMarginalRate(levy, input.GrossIncome))
	}
	for _, surtax := range p.Surtaxes {
		marginal = marginal.Add(SurtaxMarginalRate(surtax, input.GrossIncome))
	}

	pr.Liability = pr.BracketTax.Add(pr.GainsTax).Add(personal)
	pr.MarginalRate = marginal
	return pr, nil
}
