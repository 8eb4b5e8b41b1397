// Package estimate defines the data structures related to a cost estimate and
// includes functions for computing the estimates.
package estimate

import "math"

// Bracket is a range-classified table entry. A nil bound means the range is
// unbounded on that side. UnitCost is the annual electricity cost associated
// with the bracket in dollars; RSE is the relative standard error of that
// cost as a percentage.
type Bracket struct {
	Label    string
	Lower    *float64
	Upper    *float64
	UnitCost float64
	RSE      float64
}

// Contains reports whether the bracket's inclusive range contains the value.
// A nil bound skips that side of the test.
func (b Bracket) Contains(value float64) bool {
	if b.Lower != nil && value < *b.Lower {
		return false
	}
	if b.Upper != nil && value > *b.Upper {
		return false
	}
	return true
}

// BracketSet is an ordered sequence of brackets. The configured sets are
// contiguous and non-overlapping with null-bounded first and last entries,
// so every in-domain value matches exactly one bracket.
type BracketSet []Bracket

// Match returns the first bracket whose range contains the value, in
// sequence order. NaN never matches; a value falling in an unconfigured gap
// returns no match.
func (s BracketSet) Match(value float64) (Bracket, bool) {
	if math.IsNaN(value) {
		return Bracket{}, false
	}
	for _, bracket := range s {
		if bracket.Contains(value) {
			return bracket, true
		}
	}
	return Bracket{}, false
}

func bound(v float64) *float64 {
	return &v
}
