package mortgage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takehome/takehome/internal/domain"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestMonthlyPayment(t *testing.T) {
	t.Run("zero rate divides the principal evenly", func(t *testing.T) {
		loan := Loan{Principal: d(120000), Months: 12}
		payment, err := loan.MonthlyPayment()
		require.NoError(t, err)
		assert.True(t, payment.Equal(d(10000)), "got %s", payment)
	})

	t.Run("thirty year annuity", func(t *testing.T) {
		loan := Loan{Principal: d(1000000), AnnualRate: d(0.045), Months: 360}
		payment, err := loan.MonthlyPayment()
		require.NoError(t, err)
		// Known ballpark for 1M at 4.5% over 30 years.
		assert.True(t, payment.GreaterThan(d(5066)) && payment.LessThan(d(5068)),
			"got %s", payment)
	})

	t.Run("invalid terms", func(t *testing.T) {
		_, err := Loan{Principal: d(-1), Months: 12}.MonthlyPayment()
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = Loan{Principal: d(100), Months: 0}.MonthlyPayment()
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = Loan{Principal: d(100), AnnualRate: d(-0.01), Months: 12}.MonthlyPayment()
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAmortizeEqualInstallment(t *testing.T) {
	loan := Loan{Principal: d(1000000), AnnualRate: d(0.045), Months: 360}
	schedule, err := loan.AmortizeEqualInstallment()
	require.NoError(t, err)
	require.Len(t, schedule.Payments, 360)

	first := schedule.Payments[0]
	assert.True(t, first.Interest.Equal(d(3750)),
		"first month interest is the monthly rate on the full principal, got %s", first.Interest)

	last := schedule.Payments[359]
	assert.True(t, last.Remaining.IsZero(), "balance must close at zero, got %s", last.Remaining)

	// Interest declines while the principal share grows.
	mid := schedule.Payments[180]
	assert.True(t, mid.Interest.LessThan(first.Interest))
	assert.True(t, mid.Principal.GreaterThan(first.Principal))

	// Total payment splits exactly into principal and interest.
	assert.True(t, schedule.TotalPayment.Sub(schedule.TotalInterest).Equal(loan.Principal),
		"paid %s, interest %s", schedule.TotalPayment, schedule.TotalInterest)
}

func TestAmortizeEqualPrincipal(t *testing.T) {
	loan := Loan{Principal: d(120000), AnnualRate: d(0.12), Months: 12}
	schedule, err := loan.AmortizeEqualPrincipal()
	require.NoError(t, err)
	require.Len(t, schedule.Payments, 12)

	// 1% per month on the outstanding balance: 11200, 11100, ... 10100.
	assert.True(t, schedule.Payments[0].Payment.Equal(d(11200)),
		"got %s", schedule.Payments[0].Payment)
	assert.True(t, schedule.Payments[1].Payment.Equal(d(11100)),
		"got %s", schedule.Payments[1].Payment)

	for i := 1; i < len(schedule.Payments); i++ {
		assert.True(t, schedule.Payments[i].Payment.LessThan(schedule.Payments[i-1].Payment),
			"payment must decline every month")
	}

	assert.True(t, schedule.Payments[11].Remaining.IsZero())
	assert.True(t, schedule.TotalInterest.Equal(d(7800)),
		"total interest %s", schedule.TotalInterest)
	assert.True(t, schedule.TotalPayment.Equal(d(127800)))
}

func TestAmortizeUnknownMethod(t *testing.T) {
	_, err := Loan{Principal: d(100), Months: 12}.Amortize("balloon")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewCombinedLoan(t *testing.T) {
	tests := []struct {
		name           string
		housePrice     decimal.Decimal
		downRatio      decimal.Decimal
		fundDeposit    decimal.Decimal
		wantFund       decimal.Decimal
		wantCommercial decimal.Decimal
	}{
		{
			name:       "fund capped by the absolute limit",
			housePrice: d(3000000), downRatio: d(0.30), fundDeposit: d(100000),
			wantFund: d(1200000), wantCommercial: d(900000),
		},
		{
			name:       "fund capped by the deposit multiplier",
			housePrice: d(3000000), downRatio: d(0.30), fundDeposit: d(50000),
			wantFund: d(750000), wantCommercial: d(1350000),
		},
		{
			name:       "fund covers the whole loan",
			housePrice: d(1000000), downRatio: d(0.50), fundDeposit: d(100000),
			wantFund: d(500000), wantCommercial: d(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combined, err := NewCombinedLoan(tt.housePrice, tt.downRatio, tt.fundDeposit,
				30, DefaultCommercialRate, DefaultFundRate)
			require.NoError(t, err)

			assert.True(t, combined.Fund.Principal.Equal(tt.wantFund),
				"fund %s, want %s", combined.Fund.Principal, tt.wantFund)
			assert.True(t, combined.Commercial.Principal.Equal(tt.wantCommercial),
				"commercial %s, want %s", combined.Commercial.Principal, tt.wantCommercial)

			wantTotal := tt.housePrice.Mul(decimal.NewFromInt(1).Sub(tt.downRatio))
			assert.True(t, combined.TotalPrincipal().Equal(wantTotal))
		})
	}
}

func TestNewCombinedLoanValidation(t *testing.T) {
	_, err := NewCombinedLoan(d(3000000), d(0.20), d(50000), 30, DefaultCommercialRate, DefaultFundRate)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "down payment below the statutory minimum")

	_, err = NewCombinedLoan(d(3000000), d(0.30), d(50000), 0, DefaultCommercialRate, DefaultFundRate)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	combined, err := NewCombinedLoan(d(3000000), d(0.30), d(50000), 40, DefaultCommercialRate, DefaultFundRate)
	require.NoError(t, err)
	assert.Equal(t, MaxLoanYears*12, combined.Fund.Months, "term clamps to the maximum")
}

func TestCombinedLoanAmortize(t *testing.T) {
	combined, err := NewCombinedLoan(d(3000000), d(0.30), d(100000), 30, DefaultCommercialRate, DefaultFundRate)
	require.NoError(t, err)

	fund, commercial, err := combined.Amortize(EqualInstallment)
	require.NoError(t, err)
	require.Len(t, fund.Payments, 360)
	require.Len(t, commercial.Payments, 360)

	// Fund money is cheaper, so its interest share stays below the
	// commercial loan's despite the larger principal.
	assert.True(t, fund.Payments[0].Interest.Round(2).Equal(d(3100)),
		"fund first interest %s", fund.Payments[0].Interest)
	assert.True(t, commercial.Payments[0].Interest.Equal(d(3375)),
		"commercial first interest %s", commercial.Payments[0].Interest)
}
