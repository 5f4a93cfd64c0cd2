package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takehome/takehome/internal/domain"
)

func sampleResult() *domain.TaxComputationResult {
	return &domain.TaxComputationResult{
		GrossIncome:  decimal.NewFromInt(60000),
		FilingStatus: domain.FilingSingle,
		Profiles: []domain.ProfileResult{
			{
				Profile:      "US Federal",
				TaxableBase:  decimal.NewFromInt(45400),
				BracketTax:   decimal.NewFromInt(5216),
				Levies:       map[string]decimal.Decimal{"social_security": decimal.NewFromInt(3720)},
				Liability:    decimal.NewFromInt(8936),
				MarginalRate: decimal.NewFromFloat(0.1965),
			},
		},
		LevyBreakdown:  map[string]decimal.Decimal{"social_security": decimal.NewFromInt(3720)},
		TotalLiability: decimal.NewFromInt(8936),
		NetIncome:      decimal.NewFromInt(51064),
		MarginalRate:   decimal.NewFromFloat(0.1965),
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "csv"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency("$", decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "¥0.00", FormatCurrency("¥", decimal.Zero))
	assert.Equal(t, "-$99.99", FormatCurrency("$", decimal.NewFromFloat(-99.99)),
		"the sign goes before the symbol")
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "19.7%", FormatPercentage(decimal.NewFromFloat(0.1965)))
	assert.Equal(t, "0.0%", FormatPercentage(decimal.Zero))
}

func TestConsoleFormatter(t *testing.T) {
	out, err := NewConsoleFormatter().Format(sampleResult())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "US Federal")
	assert.Contains(t, text, "$5216.00")
	assert.Contains(t, text, "$51064.00")
	assert.Contains(t, text, "19.7%")
}

func TestJSONFormatter(t *testing.T) {
	out, err := (&JSONFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "60000.00", decoded["gross_income"])
	assert.Equal(t, "51064.00", decoded["net_income"])
	assert.Equal(t, "single", decoded["filing_status"])

	profiles, ok := decoded["profiles"].([]any)
	require.True(t, ok)
	require.Len(t, profiles, 1)
}

func TestCSVFormatter(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Equal(t, "item,profile,amount", lines[0])
	assert.Contains(t, string(out), "social_security")
	assert.Contains(t, string(out), "net_income")
}
