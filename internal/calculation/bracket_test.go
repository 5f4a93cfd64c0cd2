package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takehome/takehome/internal/domain"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func up(v float64) *decimal.Decimal {
	u := decimal.NewFromFloat(v)
	return &u
}

// threeStep is a small progressive table used across the package tests:
// 10% to 10000, 20% to 30000, 30% above.
func threeStep(t *testing.T) *domain.BracketTable {
	t.Helper()
	table, err := domain.NewBracketTable([]domain.BracketRange{
		{Lower: d(0), Upper: up(10000), Rate: d(0.10)},
		{Lower: d(10000), Upper: up(30000), Rate: d(0.20)},
		{Lower: d(30000), Rate: d(0.30)},
	})
	require.NoError(t, err)
	return table
}

func TestLiability(t *testing.T) {
	table := threeStep(t)

	tests := []struct {
		name    string
		taxable decimal.Decimal
		want    decimal.Decimal
	}{
		{"zero income", d(0), d(0)},
		{"inside first range", d(5000), d(500)},
		{"first boundary taxed in lower range", d(10000), d(1000)},
		{"just past first boundary", d(10001), d(1000.20)},
		{"inside second range", d(20000), d(3000)},
		{"second boundary", d(30000), d(5000)},
		{"above all bounded ranges", d(100000), d(26000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Liability(table, tt.taxable)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestLiabilityNegativeInput(t *testing.T) {
	_, err := Liability(threeStep(t), d(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLiabilityFlatTableIsProportional(t *testing.T) {
	flat, err := domain.NewBracketTable([]domain.BracketRange{
		{Lower: d(0), Rate: d(0.25)},
	})
	require.NoError(t, err)

	for _, income := range []decimal.Decimal{d(0), d(1), d(50000), d(1234567.89)} {
		got, err := Liability(flat, income)
		require.NoError(t, err)
		want := income.Mul(d(0.25))
		assert.True(t, got.Equal(want), "income %s: got %s, want %s", income, got, want)
	}
}

func TestLiabilityMonotonicAndContinuous(t *testing.T) {
	table := threeStep(t)

	prev := decimal.Zero
	for _, income := range []decimal.Decimal{
		d(0), d(1), d(9999.99), d(10000), d(10000.01),
		d(29999.99), d(30000), d(30000.01), d(500000),
	} {
		got, err := Liability(table, income)
		require.NoError(t, err)
		assert.True(t, got.GreaterThanOrEqual(prev),
			"liability decreased at income %s", income)
		prev = got
	}

	// Liability is continuous at a boundary: one cent over adds at most
	// one cent at the higher rate.
	at, err := Liability(table, d(10000))
	require.NoError(t, err)
	over, err := Liability(table, d(10000.01))
	require.NoError(t, err)
	assert.True(t, over.Sub(at).Equal(d(0.002)), "step across boundary was %s", over.Sub(at))
}

func TestMarginalRate(t *testing.T) {
	table := threeStep(t)

	tests := []struct {
		name   string
		income decimal.Decimal
		want   decimal.Decimal
	}{
		{"zero income", d(0), d(0.10)},
		{"inside first range", d(9999), d(0.10)},
		{"boundary takes the higher rate", d(10000), d(0.20)},
		{"inside top range", d(1000000), d(0.30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarginalRate(table, tt.income)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}

	_, err := MarginalRate(table, d(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
