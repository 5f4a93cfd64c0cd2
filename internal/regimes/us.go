package regimes

import (
	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// 2024 federal reference values.
const (
	Max401kContribution   = 23000
	SocialSecurityWageCap = 168600
	AddlMedicareThreshold = 200000
	CaliforniaSDICap      = 153164
)

// Deduction names recognized by the US profiles.
const (
	Deduction401k = "401k"
)

var federalBracketsSingle = domain.MustBracketTable([]domain.BracketRange{
	{Lower: decInt(0), Upper: limit(11600), Rate: dec(0.10)},
	{Lower: decInt(11600), Upper: limit(47150), Rate: dec(0.12)},
	{Lower: decInt(47150), Upper: limit(100525), Rate: dec(0.22)},
	{Lower: decInt(100525), Upper: limit(191950), Rate: dec(0.24)},
	{Lower: decInt(191950), Upper: limit(243725), Rate: dec(0.32)},
	{Lower: decInt(243725), Upper: limit(609350), Rate: dec(0.35)},
	{Lower: decInt(609350), Rate: dec(0.37)},
})

var federalBracketsMarried = domain.MustBracketTable([]domain.BracketRange{
	{Lower: decInt(0), Upper: limit(23200), Rate: dec(0.10)},
	{Lower: decInt(23200), Upper: limit(94300), Rate: dec(0.12)},
	{Lower: decInt(94300), Upper: limit(201050), Rate: dec(0.22)},
	{Lower: decInt(201050), Upper: limit(383900), Rate: dec(0.24)},
	{Lower: decInt(383900), Upper: limit(487450), Rate: dec(0.32)},
	{Lower: decInt(487450), Upper: limit(731200), Rate: dec(0.35)},
	{Lower: decInt(731200), Rate: dec(0.37)},
})

// Long-term capital gains rate tables. The bracket containing total
// income selects one flat rate for all gains.
var gainsBracketsSingle = domain.MustBracketTable([]domain.BracketRange{
	{Lower: decInt(0), Upper: limit(44625), Rate: dec(0)},
	{Lower: decInt(44625), Upper: limit(492300), Rate: dec(0.15)},
	{Lower: decInt(492300), Rate: dec(0.20)},
})

var gainsBracketsMarried = domain.MustBracketTable([]domain.BracketRange{
	{Lower: decInt(0), Upper: limit(89250), Rate: dec(0)},
	{Lower: decInt(89250), Upper: limit(553850), Rate: dec(0.15)},
	{Lower: decInt(553850), Rate: dec(0.20)},
})

var californiaBracketsSingle = domain.MustBracketTable([]domain.BracketRange{
	{Lower: decInt(0), Upper: limit(10412), Rate: dec(0.01)},
	{Lower: decInt(10412), Upper: limit(24684), Rate: dec(0.02)},
	{Lower: decInt(24684), Upper: limit(38959), Rate: dec(0.04)},
	{Lower: decInt(38959), Upper: limit(54081), Rate: dec(0.06)},
	{Lower: decInt(54081), Upper: limit(68350), Rate: dec(0.08)},
	{Lower: decInt(68350), Upper: limit(349137), Rate: dec(0.093)},
	{Lower: decInt(349137), Upper: limit(418961), Rate: dec(0.103)},
	{Lower: decInt(418961), Upper: limit(698272), Rate: dec(0.113)},
	{Lower: decInt(698272), Rate: dec(0.123)},
})

var californiaBracketsMarried = domain.MustBracketTable([]domain.BracketRange{
	{Lower: decInt(0), Upper: limit(20824), Rate: dec(0.01)},
	{Lower: decInt(20824), Upper: limit(49368), Rate: dec(0.02)},
	{Lower: decInt(49368), Upper: limit(77918), Rate: dec(0.04)},
	{Lower: decInt(77918), Upper: limit(108162), Rate: dec(0.06)},
	{Lower: decInt(108162), Upper: limit(136700), Rate: dec(0.08)},
	{Lower: decInt(136700), Upper: limit(698274), Rate: dec(0.093)},
	{Lower: decInt(698274), Upper: limit(837922), Rate: dec(0.103)},
	{Lower: decInt(837922), Upper: limit(1396544), Rate: dec(0.113)},
	{Lower: decInt(1396544), Rate: dec(0.123)},
})

// contribution401k is the deduction rule shared by the federal and
// California profiles: pre-tax, capped at the annual limit.
func contribution401k() domain.DeductionRule {
	return domain.DeductionRule{
		Name:               Deduction401k,
		Cap:                limit(Max401kContribution),
		PreTaxContribution: true,
	}
}

// USFederal2024 builds the federal profile: the progressive income tax,
// the long-term capital gains tables, and FICA (Social Security capped at
// the wage base, Medicare uncapped, additional Medicare above the
// high-earner threshold). FICA is not deductible from the taxable base.
func USFederal2024() *domain.JurisdictionTaxProfile {
	return &domain.JurisdictionTaxProfile{
		Name:           "US Federal",
		PeriodsPerYear: 1,
		Tables: map[domain.FilingStatus]*domain.BracketTable{
			domain.FilingSingle:         federalBracketsSingle,
			domain.FilingMarriedJointly: federalBracketsMarried,
		},
		StandardDeduction: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:         decInt(14600),
			domain.FilingMarriedJointly: decInt(29200),
		},
		GainsTables: map[domain.FilingStatus]*domain.BracketTable{
			domain.FilingSingle:         gainsBracketsSingle,
			domain.FilingMarriedJointly: gainsBracketsMarried,
		},
		Levies: []domain.CappedBaseLevy{
			{Name: "social_security", Rate: dec(0.062), Ceiling: limit(SocialSecurityWageCap)},
			{Name: "medicare", Rate: dec(0.0145)},
		},
		Surtaxes: []domain.ThresholdLevy{
			{Name: "additional_medicare", Rate: dec(0.009), Threshold: decInt(AddlMedicareThreshold)},
		},
		Policy: domain.DeductionPolicy{
			Rules: []domain.DeductionRule{contribution401k()},
		},
	}
}

// USCalifornia2024 builds the California profile: the state brackets with
// capital gains folded into the progressive base, the state standard
// deduction, and SDI capped at its own wage limit.
func USCalifornia2024() *domain.JurisdictionTaxProfile {
	return &domain.JurisdictionTaxProfile{
		Name:           "US California",
		PeriodsPerYear: 1,
		Tables: map[domain.FilingStatus]*domain.BracketTable{
			domain.FilingSingle:         californiaBracketsSingle,
			domain.FilingMarriedJointly: californiaBracketsMarried,
		},
		StandardDeduction: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:         decInt(5363),
			domain.FilingMarriedJointly: decInt(10726),
		},
		GainsInTaxableBase: true,
		Levies: []domain.CappedBaseLevy{
			{Name: "ca_sdi", Rate: dec(0.009), Ceiling: limit(CaliforniaSDICap)},
		},
		Policy: domain.DeductionPolicy{
			Rules: []domain.DeductionRule{contribution401k()},
		},
	}
}

// USCombined2024 is the profile set the us subcommand computes over.
func USCombined2024() []*domain.JurisdictionTaxProfile {
	return []*domain.JurisdictionTaxProfile{USFederal2024(), USCalifornia2024()}
}
