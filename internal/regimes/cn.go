package regimes

import (
	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// CN reference values for 2024, Beijing contribution bases. The profile
// works in monthly amounts (PeriodsPerYear = 12): the tax-free threshold,
// social insurance bases and special deduction caps are all monthly, and
// the annual bracket table is applied to the annualized taxable income.
const (
	cnTaxFreeThreshold = 5000
	cnSocialBaseFloor  = 3613
	cnSocialBaseCap    = 31884
)

// Deduction names recognized by the CN profile (the special additional
// deductions of the individual income tax law).
const (
	DeductionHousingRent   = "housing_rent"
	DeductionHousingLoan   = "housing_loan"
	DeductionChildrenEdu   = "children_edu"
	DeductionContinuingEdu = "continuing_edu"
	DeductionElderlyCare   = "elderly_care"
	DeductionMedical       = "medical_expense"
)

// Monthly housing-rent deduction limits by city tier.
const (
	RentLimitTier1 = 2000
	RentLimitTier2 = 1500
	RentLimitTier3 = 1100
)

var tier1Cities = []string{"北京", "上海", "广州", "深圳"}

var tier2Cities = []string{
	"天津", "重庆", "南京", "杭州", "武汉", "成都", "西安",
	"济南", "长春", "哈尔滨", "沈阳", "南宁", "昆明", "合肥",
	"郑州", "福州", "南昌", "长沙", "贵阳", "兰州", "西宁",
	"呼和浩特", "乌鲁木齐", "拉萨", "银川", "石家庄",
	"大连", "青岛", "宁波", "厦门",
}

// RentDeductionLimit returns the monthly housing-rent deduction cap for a
// city. Unknown cities fall into the lowest tier.
func RentDeductionLimit(city string) decimal.Decimal {
	for _, c := range tier1Cities {
		if c == city {
			return decInt(RentLimitTier1)
		}
	}
	for _, c := range tier2Cities {
		if c == city {
			return decInt(RentLimitTier2)
		}
	}
	return decInt(RentLimitTier3)
}

var cnAnnualBrackets = domain.MustBracketTable([]domain.BracketRange{
	{Lower: decInt(0), Upper: limit(36000), Rate: dec(0.03)},
	{Lower: decInt(36000), Upper: limit(144000), Rate: dec(0.10)},
	{Lower: decInt(144000), Upper: limit(300000), Rate: dec(0.20)},
	{Lower: decInt(300000), Upper: limit(420000), Rate: dec(0.25)},
	{Lower: decInt(420000), Upper: limit(660000), Rate: dec(0.30)},
	{Lower: decInt(660000), Upper: limit(960000), Rate: dec(0.35)},
	{Lower: decInt(960000), Rate: dec(0.45)},
})

// cnLevy builds one social-insurance item on the Beijing monthly base
// band. Personal items are pre-tax (deducted before the bracket
// evaluation); the minimum base applies even below the floor.
func cnLevy(name string, rate float64, employer bool) domain.CappedBaseLevy {
	return domain.CappedBaseLevy{
		Name:         name,
		Rate:         dec(rate),
		Floor:        decInt(cnSocialBaseFloor),
		Ceiling:      limit(cnSocialBaseCap),
		EnforceFloor: true,
		Employer:     employer,
		PreTax:       !employer,
	}
}

// ChinaIIT2024 builds the CN individual income tax profile with the
// tier-1 rent deduction cap. The statutory tax does not distinguish
// filing statuses, so the same table serves every status.
func ChinaIIT2024() *domain.JurisdictionTaxProfile {
	return ChinaIIT2024ForCity("北京")
}

// ChinaIIT2024ForCity builds the CN profile with the rent deduction cap
// of the given city's tier.
func ChinaIIT2024ForCity(city string) *domain.JurisdictionTaxProfile {
	rentCap := RentDeductionLimit(city)
	loanCap := decInt(1000)
	eduCap := decInt(400)
	elderCap := decInt(2000)

	tables := make(map[domain.FilingStatus]*domain.BracketTable)
	for _, fs := range domain.AllFilingStatuses {
		tables[fs] = cnAnnualBrackets
	}

	return &domain.JurisdictionTaxProfile{
		Name:           "CN Individual Income Tax",
		PeriodsPerYear: 12,
		Tables:         tables,
		Levies: []domain.CappedBaseLevy{
			cnLevy("pension", 0.08, false),
			cnLevy("medical", 0.02, false),
			cnLevy("unemployment", 0.005, false),
			cnLevy("housing_fund", 0.12, false),
			cnLevy("employer_pension", 0.16, true),
			cnLevy("employer_medical", 0.095, true),
			cnLevy("employer_unemployment", 0.005, true),
			cnLevy("employer_injury", 0.004, true),
			cnLevy("employer_maternity", 0.008, true),
			cnLevy("employer_housing_fund", 0.12, true),
		},
		Policy: domain.DeductionPolicy{
			TaxFreeThreshold:   decInt(cnTaxFreeThreshold),
			DeductPreTaxLevies: true,
			Rules: []domain.DeductionRule{
				{Name: DeductionHousingRent, Cap: &rentCap},
				{Name: DeductionHousingLoan, Cap: &loanCap},
				{Name: DeductionChildrenEdu},
				{Name: DeductionContinuingEdu, Cap: &eduCap},
				{Name: DeductionElderlyCare, Cap: &elderCap},
				{Name: DeductionMedical},
			},
		},
	}
}
