package domain

import "errors"

// Sentinel errors returned by the calculation core. Callers match them with
// errors.Is; the presentation layer owns user-facing wording.
var (
	// ErrInvalidInput indicates a negative or otherwise unusable numeric
	// argument (income, deduction amount).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownFilingStatus indicates a filing status with no matching
	// bracket table or deduction entry in a jurisdiction profile.
	ErrUnknownFilingStatus = errors.New("unknown filing status")

	// ErrMalformedBracketTable indicates gaps, overlaps or non-ascending
	// ranges detected when a bracket table is constructed.
	ErrMalformedBracketTable = errors.New("malformed bracket table")
)
