// Package regimes holds the compiled-in jurisdiction tax profiles for the
// 2024 tax year. Profiles are plain configuration structs handed to the
// calculation engine; nothing here is consulted implicitly, so several
// tax years can coexist in one process.
package regimes

import "github.com/shopspring/decimal"

const Year = 2024

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func decInt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func limit(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
