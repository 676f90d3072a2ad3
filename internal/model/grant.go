// Package model defines domain types for NSF grant records and aggregates.
package model

import "time"

// Years covered by the explorer. Grants whose spans extend beyond this
// window still only produce facts inside it.
const (
	FirstYear = 2020
	LastYear  = 2025
)

// Alignment is the political lean of a state for one election cycle.
type Alignment string

const (
	AlignmentBlue    Alignment = "blue"
	AlignmentRed     Alignment = "red"
	AlignmentUnknown Alignment = ""
)

// GrantRecord is one award row after combining the yearly exports.
type GrantRecord struct {
	AwardID     string
	Title       string
	Institution string
	State       string // 2-letter institution state code
	StateName   string
	Directorate string // directorate abbreviation (e.g. MPS, BIO)

	EffectiveDate  time.Time
	ExpirationDate time.Time
	Amount         float64 // awarded USD

	ExportYear int  // year of the export file this row came from
	Terminated bool // true only for awards on the termination list

	Alignment2020 Alignment
	Alignment2024 Alignment
}

// ActiveIn reports whether the grant's span overlaps calendar year y.
// Boundary dates count: effective on Dec 31 or expiring on Jan 1 is active.
func (g GrantRecord) ActiveIn(y int) bool {
	if g.EffectiveDate.IsZero() || g.ExpirationDate.IsZero() {
		return false
	}
	yearStart := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)
	return !g.EffectiveDate.After(yearEnd) && !g.ExpirationDate.Before(yearStart)
}

// ActiveOn reports whether the grant's span covers the given date.
func (g GrantRecord) ActiveOn(d time.Time) bool {
	if g.EffectiveDate.IsZero() || g.ExpirationDate.IsZero() {
		return false
	}
	return !g.EffectiveDate.After(d) && !g.ExpirationDate.Before(d)
}

// AlignmentFor returns the alignment displayed for year y: the 2020
// election result before 2024, the 2024 result from 2024 on.
func (g GrantRecord) AlignmentFor(y int) Alignment {
	if y < 2024 {
		return g.Alignment2020
	}
	return g.Alignment2024
}

// ActiveFact is one (grant, year) activity fact produced by the aggregator.
// A grant yields at most one fact per year in [FirstYear, LastYear].
type ActiveFact struct {
	AwardID     string
	Year        int
	State       string
	Directorate string
	Amount      float64
	Terminated  bool
	Alignment   Alignment
}
