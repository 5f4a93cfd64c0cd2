package domain

import "fmt"

// FilingStatus selects which bracket table and deduction limits apply
// within a jurisdiction profile.
type FilingStatus string

const (
	FilingSingle         FilingStatus = "single"
	FilingMarriedJointly FilingStatus = "married"
)

// AllFilingStatuses lists every recognized status, in display order.
var AllFilingStatuses = []FilingStatus{FilingSingle, FilingMarriedJointly}

// Valid reports whether the status is one of the recognized values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case FilingSingle, FilingMarriedJointly:
		return true
	}
	return false
}

// ParseFilingStatus converts a user-supplied string to a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	fs := FilingStatus(s)
	if !fs.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilingStatus, s)
	}
	return fs, nil
}

// String implements fmt.Stringer.
func (fs FilingStatus) String() string { return string(fs) }
