package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takehome/takehome/internal/domain"
)

func TestTaxableBase(t *testing.T) {
	policy := domain.DeductionPolicy{
		TaxFreeThreshold:   d(5000),
		DeductPreTaxLevies: true,
		Rules: []domain.DeductionRule{
			{Name: "housing_rent", Cap: up(1500)},
			{Name: "children_education", Cap: up(2000)},
		},
	}

	tests := []struct {
		name         string
		gross        decimal.Decimal
		preTaxLevies decimal.Decimal
		deductions   domain.DeductionSet
		want         decimal.Decimal
	}{
		{
			name:  "threshold and levies only",
			gross: d(20000), preTaxLevies: d(4500),
			want: d(10500),
		},
		{
			name:  "deduction under its cap passes through",
			gross: d(20000), preTaxLevies: d(4500),
			deductions: domain.DeductionSet{"housing_rent": d(1200)},
			want:       d(9300),
		},
		{
			name:  "deduction above its cap is clamped",
			gross: d(20000), preTaxLevies: d(4500),
			deductions: domain.DeductionSet{"housing_rent": d(9999)},
			want:       d(9000),
		},
		{
			name:  "unrecognized deduction applies uncapped",
			gross: d(20000), preTaxLevies: d(0),
			deductions: domain.DeductionSet{"charity": d(8000)},
			want:       d(7000),
		},
		{
			name:  "deductions may drive the base negative",
			gross: d(4000), preTaxLevies: d(900),
			deductions: domain.DeductionSet{"children_education": d(2000)},
			want:       d(-3900),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TaxableBase(tt.gross, tt.preTaxLevies, tt.deductions, policy)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestTaxableBaseKeepsLeviesWhenPolicySaysSo(t *testing.T) {
	policy := domain.DeductionPolicy{DeductPreTaxLevies: false}

	got, err := TaxableBase(d(60000), d(4590), nil, policy)
	require.NoError(t, err)
	assert.True(t, got.Equal(d(60000)),
		"payroll levies must not reduce the progressive base, got %s", got)
}

func TestTaxableBaseNegativeDeduction(t *testing.T) {
	_, err := TaxableBase(d(20000), d(0), domain.DeductionSet{"housing_rent": d(-100)}, domain.DeductionPolicy{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
