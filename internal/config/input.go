package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/takehome/takehome/internal/domain"
	"gopkg.in/yaml.v3"
)

// ProfileFile is the on-disk shape of a jurisdiction profile set. The
// caller owns sourcing and versioning of tax-year data; the core only
// consumes the profiles built from it.
type ProfileFile struct {
	Year     int             `yaml:"year"`
	Profiles []ProfileConfig `yaml:"profiles"`
}

// ProfileConfig describes one jurisdiction regime.
type ProfileConfig struct {
	Name               string                      `yaml:"name"`
	PeriodsPerYear     int                         `yaml:"periods_per_year"`
	Brackets           map[string][]BracketConfig  `yaml:"brackets"`
	StandardDeduction  map[string]decimal.Decimal  `yaml:"standard_deduction"`
	GainsBrackets      map[string][]BracketConfig  `yaml:"gains_brackets"`
	GainsInTaxableBase bool                        `yaml:"gains_in_taxable_base"`
	Levies             []LevyConfig                `yaml:"levies"`
	Surtaxes           []SurtaxConfig              `yaml:"surtaxes"`
	Deductions         DeductionPolicyConfig       `yaml:"deductions"`
}

// BracketConfig is one bracket range; a missing upper bound marks the
// final unbounded range.
type BracketConfig struct {
	Lower decimal.Decimal  `yaml:"lower"`
	Upper *decimal.Decimal `yaml:"upper,omitempty"`
	Rate  decimal.Decimal  `yaml:"rate"`
}

// LevyConfig is one capped-base levy.
type LevyConfig struct {
	Name         string           `yaml:"name"`
	Rate         decimal.Decimal  `yaml:"rate"`
	Floor        decimal.Decimal  `yaml:"floor"`
	Ceiling      *decimal.Decimal `yaml:"ceiling,omitempty"`
	EnforceFloor bool             `yaml:"enforce_floor"`
	Employer     bool             `yaml:"employer"`
	PreTax       bool             `yaml:"pre_tax"`
}

// SurtaxConfig is one additional-rate-above-threshold levy.
type SurtaxConfig struct {
	Name      string          `yaml:"name"`
	Rate      decimal.Decimal `yaml:"rate"`
	Threshold decimal.Decimal `yaml:"threshold"`
}

// DeductionPolicyConfig mirrors domain.DeductionPolicy.
type DeductionPolicyConfig struct {
	TaxFreeThreshold   decimal.Decimal       `yaml:"tax_free_threshold"`
	DeductPreTaxLevies bool                  `yaml:"deduct_pre_tax_levies"`
	Rules              []DeductionRuleConfig `yaml:"rules"`
}

// DeductionRuleConfig is one recognized deduction.
type DeductionRuleConfig struct {
	Name               string           `yaml:"name"`
	Cap                *decimal.Decimal `yaml:"cap,omitempty"`
	PreTaxContribution bool             `yaml:"pre_tax_contribution"`
}

// InputParser handles parsing of profile configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a profile set from a YAML file and
// builds the immutable domain profiles. Bracket tables are validated here,
// once, never per computation.
func (ip *InputParser) LoadFromFile(filename string) ([]*domain.JurisdictionTaxProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file ProfileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return ip.Build(&file)
}

// Build turns a parsed file into domain profiles.
func (ip *InputParser) Build(file *ProfileFile) ([]*domain.JurisdictionTaxProfile, error) {
	if len(file.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles provided")
	}

	profiles := make([]*domain.JurisdictionTaxProfile, 0, len(file.Profiles))
	for i, pc := range file.Profiles {
		profile, err := ip.buildProfile(&pc)
		if err != nil {
			return nil, fmt.Errorf("profile %d (%s): %w", i, pc.Name, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (ip *InputParser) buildProfile(pc *ProfileConfig) (*domain.JurisdictionTaxProfile, error) {
	if pc.Name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	if pc.PeriodsPerYear < 0 {
		return nil, fmt.Errorf("periods_per_year cannot be negative")
	}

	tables, err := ip.buildTables(pc.Brackets)
	if err != nil {
		return nil, fmt.Errorf("brackets: %w", err)
	}
	gains, err := ip.buildTables(pc.GainsBrackets)
	if err != nil {
		return nil, fmt.Errorf("gains_brackets: %w", err)
	}

	std, err := ip.buildStandardDeductions(pc.StandardDeduction)
	if err != nil {
		return nil, err
	}

	levies := make([]domain.CappedBaseLevy, 0, len(pc.Levies))
	for _, lc := range pc.Levies {
		levy, err := ip.buildLevy(lc)
		if err != nil {
			return nil, err
		}
		levies = append(levies, levy)
	}

	surtaxes := make([]domain.ThresholdLevy, 0, len(pc.Surtaxes))
	for _, sc := range pc.Surtaxes {
		if sc.Name == "" {
			return nil, fmt.Errorf("surtax name is required")
		}
		if sc.Rate.IsNegative() || sc.Threshold.IsNegative() {
			return nil, fmt.Errorf("surtax %s: rate and threshold cannot be negative", sc.Name)
		}
		surtaxes = append(surtaxes, domain.ThresholdLevy{Name: sc.Name, Rate: sc.Rate, Threshold: sc.Threshold})
	}

	policy, err := ip.buildPolicy(pc.Deductions)
	if err != nil {
		return nil, err
	}

	return &domain.JurisdictionTaxProfile{
		Name:               pc.Name,
		PeriodsPerYear:     pc.PeriodsPerYear,
		Tables:             tables,
		StandardDeduction:  std,
		GainsTables:        gains,
		GainsInTaxableBase: pc.GainsInTaxableBase,
		Levies:             levies,
		Surtaxes:           surtaxes,
		Policy:             policy,
	}, nil
}

func (ip *InputParser) buildTables(brackets map[string][]BracketConfig) (map[domain.FilingStatus]*domain.BracketTable, error) {
	if len(brackets) == 0 {
		return nil, nil
	}
	tables := make(map[domain.FilingStatus]*domain.BracketTable, len(brackets))
	for status, ranges := range brackets {
		fs, err := domain.ParseFilingStatus(status)
		if err != nil {
			return nil, err
		}
		converted := make([]domain.BracketRange, 0, len(ranges))
		for _, bc := range ranges {
			converted = append(converted, domain.BracketRange{Lower: bc.Lower, Upper: bc.Upper, Rate: bc.Rate})
		}
		table, err := domain.NewBracketTable(converted)
		if err != nil {
			return nil, fmt.Errorf("status %s: %w", status, err)
		}
		tables[fs] = table
	}
	return tables, nil
}

func (ip *InputParser) buildStandardDeductions(std map[string]decimal.Decimal) (map[domain.FilingStatus]decimal.Decimal, error) {
	if len(std) == 0 {
		return nil, nil
	}
	out := make(map[domain.FilingStatus]decimal.Decimal, len(std))
	for status, amount := range std {
		fs, err := domain.ParseFilingStatus(status)
		if err != nil {
			return nil, err
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("standard deduction for %s cannot be negative", status)
		}
		out[fs] = amount
	}
	return out, nil
}

func (ip *InputParser) buildLevy(lc LevyConfig) (domain.CappedBaseLevy, error) {
	var levy domain.CappedBaseLevy
	if lc.Name == "" {
		return levy, fmt.Errorf("levy name is required")
	}
	if lc.Rate.IsNegative() || lc.Rate.GreaterThan(decimal.NewFromInt(1)) {
		return levy, fmt.Errorf("levy %s: rate must be between 0 and 1", lc.Name)
	}
	if lc.Floor.IsNegative() {
		return levy, fmt.Errorf("levy %s: floor cannot be negative", lc.Name)
	}
	if lc.Ceiling != nil && lc.Ceiling.LessThan(lc.Floor) {
		return levy, fmt.Errorf("levy %s: ceiling %s below floor %s", lc.Name, lc.Ceiling, lc.Floor)
	}
	return domain.CappedBaseLevy{
		Name:         lc.Name,
		Rate:         lc.Rate,
		Floor:        lc.Floor,
		Ceiling:      lc.Ceiling,
		EnforceFloor: lc.EnforceFloor,
		Employer:     lc.Employer,
		PreTax:       lc.PreTax,
	}, nil
}

func (ip *InputParser) buildPolicy(pc DeductionPolicyConfig) (domain.DeductionPolicy, error) {
	var policy domain.DeductionPolicy
	if pc.TaxFreeThreshold.IsNegative() {
		return policy, fmt.Errorf("tax_free_threshold cannot be negative")
	}
	rules := make([]domain.DeductionRule, 0, len(pc.Rules))
	for _, rc := range pc.Rules {
		if rc.Name == "" {
			return policy, fmt.Errorf("deduction rule name is required")
		}
		if rc.Cap != nil && rc.Cap.IsNegative() {
			return policy, fmt.Errorf("deduction rule %s: cap cannot be negative", rc.Name)
		}
		rules = append(rules, domain.DeductionRule{
			Name:               rc.Name,
			Cap:                rc.Cap,
			PreTaxContribution: rc.PreTaxContribution,
		})
	}
	return domain.DeductionPolicy{
		TaxFreeThreshold:   pc.TaxFreeThreshold,
		DeductPreTaxLevies: pc.DeductPreTaxLevies,
		Rules:              rules,
	}, nil
}
