package mortgage

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// 2024 CN reference values, Beijing housing-fund limits.
var (
	DefaultCommercialRate = decimal.NewFromFloat(0.045)
	DefaultFundRate       = decimal.NewFromFloat(0.031)
	MinDownPaymentRatio   = decimal.NewFromFloat(0.30)
	MaxFundLoan           = decimal.NewFromInt(1_200_000)
	FundLoanMultiplier    = decimal.NewFromInt(15)
)

// MaxLoanYears caps the term of either loan component.
const MaxLoanYears = 30

// CombinedLoan splits a house purchase between a housing-fund loan
// (bounded by the deposit multiplier and the fund cap) and a commercial
// loan for the remainder.
type CombinedLoan struct {
	Fund       Loan
	Commercial Loan
}

// NewCombinedLoan allocates the loan amount: the housing-fund component
// is the smallest of deposit*multiplier, the fund cap, and the total
// loan; the commercial component covers the rest. The term is capped at
// MaxLoanYears.
func NewCombinedLoan(housePrice, downPaymentRatio, monthlyFundDeposit decimal.Decimal, years int, commercialRate, fundRate decimal.Decimal) (*CombinedLoan, error) {
	if housePrice.IsNegative() || monthlyFundDeposit.IsNegative() {
		return nil, fmt.Errorf("%w: negative amount", domain.ErrInvalidInput)
	}
	if downPaymentRatio.LessThan(MinDownPaymentRatio) {
		return nil, fmt.Errorf("%w: down payment ratio %s below the %s minimum",
			domain.ErrInvalidInput, downPaymentRatio, MinDownPaymentRatio)
	}
	if years <= 0 {
		return nil, fmt.Errorf("%w: term of %d years", domain.ErrInvalidInput, years)
	}
	if years > MaxLoanYears {
		years = MaxLoanYears
	}

	total := housePrice.Mul(decimal.NewFromInt(1).Sub(downPaymentRatio))
	fundAmount := decimal.Min(monthlyFundDeposit.Mul(FundLoanMultiplier), MaxFundLoan, total)
	months := years * 12

	return &CombinedLoan{
		Fund:       Loan{Principal: fundAmount, AnnualRate: fundRate, Months: months},
		Commercial: Loan{Principal: total.Sub(fundAmount), AnnualRate: commercialRate, Months: months},
	}, nil
}

// TotalPrincipal is the financed amount across both components.
func (c *CombinedLoan) TotalPrincipal() decimal.Decimal {
	return c.Fund.Principal.Add(c.Commercial.Principal)
}

// Amortize builds both schedules under the same repayment method.
func (c *CombinedLoan) Amortize(method Method) (fund, commercial *Schedule, err error) {
	fund, err = c.Fund.Amortize(method)
	if err != nil {
		return nil, nil, fmt.Errorf("fund loan: %w", err)
	}
	commercial, err = c.Commercial.Amortize(method)
	if err != nil {
		return nil, nil, fmt.Errorf("commercial loan: %w", err)
	}
	return fund, commercial, nil
}
