package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BracketRange is one contiguous income range taxed at a single marginal
// rate. A nil Upper marks the final, unbounded range.
type BracketRange struct {
	Lower decimal.Decimal
	Upper *decimal.Decimal
	Rate  decimal.Decimal
}

// Unbounded reports whether the range extends to positive infinity.
func (br BracketRange) Unbounded() bool { return br.Upper == nil }

// Contains reports whether income falls in [Lower, Upper). Lower is
// inclusive, so a boundary amount belongs to the higher range.
func (br BracketRange) Contains(income decimal.Decimal) bool {
	if income.LessThan(br.Lower) {
		return false
	}
	return br.Unbounded() || income.LessThan(*br.Upper)
}

// BracketTable is an ordered sequence of contiguous, non-overlapping
// ranges covering [0, +inf). Tables are validated once at construction and
// never mutated afterwards, so they are safe for concurrent read-only use.
type BracketTable struct {
	ranges []BracketRange
}

// NewBracketTable validates and builds a table. The ranges must be
// ascending and contiguous, start at zero, carry rates in [0, 1], and only
// the final range may be (and must be) unbounded. Violations are reported
// as ErrMalformedBracketTable.
func NewBracketTable(ranges []BracketRange) (*BracketTable, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: no ranges", ErrMalformedBracketTable)
	}
	if !ranges[0].Lower.IsZero() {
		return nil, fmt.Errorf("%w: first range must start at 0, got %s",
			ErrMalformedBracketTable, ranges[0].Lower)
	}
	one := decimal.NewFromInt(1)
	for i, r := range ranges {
		if r.Rate.IsNegative() || r.Rate.GreaterThan(one) {
			return nil, fmt.Errorf("%w: rate %s of range %d outside [0,1]",
				ErrMalformedBracketTable, r.Rate, i)
		}
		last := i == len(ranges)-1
		if last {
			if !r.Unbounded() {
				return nil, fmt.Errorf("%w: final range must be unbounded",
					ErrMalformedBracketTable)
			}
			continue
		}
		if r.Unbounded() {
			return nil, fmt.Errorf("%w: only the final range may be unbounded",
				ErrMalformedBracketTable)
		}
		if !r.Upper.GreaterThan(r.Lower) {
			return nil, fmt.Errorf("%w: range %d upper %s not above lower %s",
				ErrMalformedBracketTable, i, r.Upper, r.Lower)
		}
		if !ranges[i+1].Lower.Equal(*r.Upper) {
			return nil, fmt.Errorf("%w: range %d ends at %s but range %d starts at %s",
				ErrMalformedBracketTable, i, r.Upper, i+1, ranges[i+1].Lower)
		}
	}
	table := &BracketTable{ranges: make([]BracketRange, len(ranges))}
	copy(table.ranges, ranges)
	return table, nil
}

// MustBracketTable builds a table from static reference data and panics on
// validation failure. Reserved for compiled-in jurisdiction constants.
func MustBracketTable(ranges []BracketRange) *BracketTable {
	table, err := NewBracketTable(ranges)
	if err != nil {
		panic(err)
	}
	return table
}

// Ranges returns the ordered ranges. The returned slice must not be
// modified.
func (t *BracketTable) Ranges() []BracketRange { return t.ranges }
