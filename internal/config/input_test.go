package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takehome/takehome/internal/calculation"
	"github.com/takehome/takehome/internal/domain"
)

const sampleYAML = `
year: 2024
profiles:
  - name: "Testland National"
    periods_per_year: 1
    brackets:
      single:
        - lower: 0
          upper: 10000
          rate: 0.10
        - lower: 10000
          rate: 0.20
    standard_deduction:
      single: 4000
    levies:
      - name: payroll
        rate: 0.05
        ceiling: 100000
    surtaxes:
      - name: high_earner
        rate: 0.01
        threshold: 150000
    deductions:
      rules:
        - name: retirement
          cap: 5000
          pre_tax_contribution: true
  - name: "Testland Monthly"
    periods_per_year: 12
    brackets:
      single:
        - lower: 0
          rate: 0.03
    deductions:
      tax_free_threshold: 5000
      deduct_pre_tax_levies: true
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	profiles, err := parser.LoadFromFile(writeTemp(t, sampleYAML))
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	national := profiles[0]
	assert.Equal(t, "Testland National", national.Name)
	assert.Equal(t, 1, national.PeriodsPerYear)

	table, err := national.TableFor(domain.FilingSingle)
	require.NoError(t, err)
	require.Len(t, table.Ranges(), 2)
	assert.True(t, table.Ranges()[1].Unbounded())

	std, err := national.StandardDeductionFor(domain.FilingSingle)
	require.NoError(t, err)
	assert.True(t, std.Equal(decimal.NewFromInt(4000)))

	require.Len(t, national.Levies, 1)
	assert.Equal(t, "payroll", national.Levies[0].Name)
	require.NotNil(t, national.Levies[0].Ceiling)
	require.Len(t, national.Surtaxes, 1)

	rule, ok := national.Policy.RuleFor("retirement")
	require.True(t, ok)
	assert.True(t, rule.PreTaxContribution)

	monthly := profiles[1]
	assert.Equal(t, 12, monthly.PeriodsPerYear)
	assert.True(t, monthly.Policy.DeductPreTaxLevies)
	assert.True(t, monthly.Policy.TaxFreeThreshold.Equal(decimal.NewFromInt(5000)))
}

func TestLoadedProfilesCompute(t *testing.T) {
	parser := NewInputParser()
	profiles, err := parser.LoadFromFile(writeTemp(t, sampleYAML))
	require.NoError(t, err)

	result, err := calculation.NewEngine(profiles...).Compute(domain.TaxInput{
		GrossIncome:  decimal.NewFromInt(50000),
		FilingStatus: domain.FilingSingle,
	})
	require.NoError(t, err)

	// National: (50000 - 4000) taxed 1000 + 36000 * 20%, plus the 5%
	// payroll levy. Monthly: (50000 - 5000) * 3%.
	national, monthly := result.Profiles[0], result.Profiles[1]
	assert.True(t, national.BracketTax.Equal(decimal.NewFromInt(8200)))
	assert.True(t, national.Levies["payroll"].Equal(decimal.NewFromInt(2500)))
	assert.True(t, monthly.BracketTax.Equal(decimal.NewFromInt(1350)))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no profiles",
			yaml: "year: 2024\nprofiles: []\n",
		},
		{
			name: "missing profile name",
			yaml: `
profiles:
  - periods_per_year: 1
`,
		},
		{
			name: "unknown filing status",
			yaml: `
profiles:
  - name: t
    brackets:
      widowed:
        - lower: 0
          rate: 0.1
`,
		},
		{
			name: "gap in bracket table",
			yaml: `
profiles:
  - name: t
    brackets:
      single:
        - lower: 0
          upper: 10000
          rate: 0.1
        - lower: 12000
          rate: 0.2
`,
		},
		{
			name: "bounded final bracket",
			yaml: `
profiles:
  - name: t
    brackets:
      single:
        - lower: 0
          upper: 10000
          rate: 0.1
`,
		},
		{
			name: "levy rate above one",
			yaml: `
profiles:
  - name: t
    levies:
      - name: broken
        rate: 1.5
`,
		},
		{
			name: "levy ceiling below floor",
			yaml: `
profiles:
  - name: t
    levies:
      - name: broken
        rate: 0.1
        floor: 5000
        ceiling: 1000
`,
		},
		{
			name: "negative deduction cap",
			yaml: `
profiles:
  - name: t
    deductions:
      rules:
        - name: broken
          cap: -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().LoadFromFile(writeTemp(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuildReportsMalformedTable(t *testing.T) {
	yaml := `
profiles:
  - name: t
    brackets:
      single:
        - lower: 100
          rate: 0.1
`
	_, err := NewInputParser().LoadFromFile(writeTemp(t, yaml))
	assert.ErrorIs(t, err, domain.ErrMalformedBracketTable)
}
