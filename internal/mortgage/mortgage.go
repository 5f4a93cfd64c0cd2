// Package mortgage computes amortization schedules for the loan
// calculator. It consumes a principal, a periodic rate and a term and
// returns the payment schedule; it knows nothing about the tax core.
package mortgage

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
)

// Method selects the repayment scheme.
type Method string

const (
	// EqualInstallment keeps the monthly payment constant (annuity).
	EqualInstallment Method = "equal_installment"
	// EqualPrincipal repays the same principal every month, so the
	// payment declines as interest shrinks.
	EqualPrincipal Method = "equal_principal"
)

// Loan is one loan to amortize. AnnualRate is the nominal annual rate;
// the monthly rate is AnnualRate / 12.
type Loan struct {
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal
	Months     int
}

// Payment is one row of a schedule.
type Payment struct {
	Period    int
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Remaining decimal.Decimal
}

// Schedule is a full repayment plan with its totals.
type Schedule struct {
	Method        Method
	Payments      []Payment
	TotalPayment  decimal.Decimal
	TotalInterest decimal.Decimal
}

var twelve = decimal.NewFromInt(12)

func (l Loan) validate() error {
	if l.Principal.IsNegative() {
		return fmt.Errorf("%w: principal %s is negative", domain.ErrInvalidInput, l.Principal)
	}
	if l.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: rate %s is negative", domain.ErrInvalidInput, l.AnnualRate)
	}
	if l.Months <= 0 {
		return fmt.Errorf("%w: term of %d months", domain.ErrInvalidInput, l.Months)
	}
	return nil
}

// MonthlyPayment returns the constant annuity payment
// P * r * (1+r)^n / ((1+r)^n - 1), or P/n for a zero-rate loan.
func (l Loan) MonthlyPayment() (decimal.Decimal, error) {
	if err := l.validate(); err != nil {
		return decimal.Zero, err
	}
	months := decimal.NewFromInt(int64(l.Months))
	if l.AnnualRate.IsZero() {
		return l.Principal.Div(months), nil
	}
	monthlyRate := l.AnnualRate.Div(twelve)
	compound := decimal.NewFromInt(1).Add(monthlyRate).Pow(months)
	return l.Principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1))), nil
}

// AmortizeEqualInstallment builds the annuity schedule. The final row
// absorbs the residual so the remaining balance closes at exactly zero.
func (l Loan) AmortizeEqualInstallment() (*Schedule, error) {
	payment, err := l.MonthlyPayment()
	if err != nil {
		return nil, err
	}

	monthlyRate := l.AnnualRate.Div(twelve)
	remaining := l.Principal
	payments := make([]Payment, 0, l.Months)
	for period := 1; period <= l.Months; period++ {
		interest := remaining.Mul(monthlyRate)
		principal := payment.Sub(interest)
		paid := payment
		if period == l.Months {
			principal = remaining
			paid = remaining.Add(interest)
		}
		remaining = remaining.Sub(principal)
		payments = append(payments, Payment{
			Period:    period,
			Payment:   paid,
			Principal: principal,
			Interest:  interest,
			Remaining: remaining,
		})
	}
	return newSchedule(EqualInstallment, payments), nil
}

// AmortizeEqualPrincipal builds the declining-payment schedule: the same
// principal slice every month plus interest on the outstanding balance.
func (l Loan) AmortizeEqualPrincipal() (*Schedule, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	monthlyRate := l.AnnualRate.Div(twelve)
	principalSlice := l.Principal.Div(decimal.NewFromInt(int64(l.Months)))
	remaining := l.Principal
	payments := make([]Payment, 0, l.Months)
	for period := 1; period <= l.Months; period++ {
		interest := remaining.Mul(monthlyRate)
		principal := principalSlice
		if period == l.Months {
			principal = remaining
		}
		remaining = remaining.Sub(principal)
		payments = append(payments, Payment{
			Period:    period,
			Payment:   principal.Add(interest),
			Principal: principal,
			Interest:  interest,
			Remaining: remaining,
		})
	}
	return newSchedule(EqualPrincipal, payments), nil
}

// Amortize dispatches on the method.
func (l Loan) Amortize(method Method) (*Schedule, error) {
	switch method {
	case EqualInstallment:
		return l.AmortizeEqualInstallment()
	case EqualPrincipal:
		return l.AmortizeEqualPrincipal()
	default:
		return nil, fmt.Errorf("%w: unknown repayment method %q", domain.ErrInvalidInput, method)
	}
}

func newSchedule(method Method, payments []Payment) *Schedule {
	return &Schedule{
		Method:   method,
		Payments: payments,
		TotalPayment: lo.Reduce(payments, func(sum decimal.Decimal, p Payment, _ int) decimal.Decimal {
			return sum.Add(p.Payment)
		}, decimal.Zero),
		TotalInterest: lo.Reduce(payments, func(sum decimal.Decimal, p Payment, _ int) decimal.Decimal {
			return sum.Add(p.Interest)
		}, decimal.Zero),
	}
}
