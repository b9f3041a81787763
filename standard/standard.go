// Package standard defines the evaluation context and result
// conventions shared by the guideline engines in its subpackages.
//
// Each subpackage implements one named security guideline as a set of
// pure validation functions over the primitive catalog. A validation
// call always returns the primitive to report: the input itself when it
// is compliant (with a nil error), or the guideline's recommended
// replacement when it is not (with ErrNoncompliant). Guidelines keep
// fully independent threshold tables; identical families under
// different guidelines share nothing.
package standard

import "errors"

// ErrNoncompliant reports that a primitive does not meet the selected
// guideline. The primitive returned alongside it is the recommended
// compliant replacement from the same family.
var ErrNoncompliant = errors.New("primitive does not meet the guideline")

// Context holds the parameters of a single assessment run. It is a
// value type: construct it once and reuse it across any number of
// validation calls, including concurrently.
type Context struct {
	year  uint16
	level uint16
}

// NewContext creates a context for the given evaluation year. The year
// is typically the expiry year of the material under assessment, so
// that a primitive on a deprecation track is judged against the date it
// must still hold on.
func NewContext(year uint16) Context {
	return Context{year: year}
}

// WithSecurityLevel returns a copy of the context that requires at
// least the given security strength in bits, on top of whatever floor
// the guideline itself sets.
func (c Context) WithSecurityLevel(level uint16) Context {
	c.level = level
	return c
}

// Year returns the evaluation year.
func (c Context) Year() uint16 {
	return c.year
}

// SecurityLevel returns the caller-requested minimum security strength
// in bits, or zero if the guideline default applies.
func (c Context) SecurityLevel() uint16 {
	return c.level
}
