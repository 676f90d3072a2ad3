// Package pipeline combines the yearly exports, joins terminations, tags
// political alignment, cleans the result, and derives the aggregates the
// dashboard and CLI render.
package pipeline

import (
	"fmt"
	"sort"
)

// AmountConflict records the same award appearing in one export year with
// differing amounts. Recency is undefined within a single export year, so
// these are surfaced rather than resolved.
type AmountConflict struct {
	AwardID    string
	ExportYear int
	Amounts    []float64
}

// Report collects data-quality findings from a pipeline run. It is the
// discrepancy report surfaced by the report command and the clean summary.
type Report struct {
	UnmatchedTerminations []string         // termination IDs with no grant
	AmountConflicts       []AmountConflict // same-year exports, differing amounts
	SkippedNoDates        int              // records dropped: missing/malformed dates
	SkippedBadSpan        int              // records dropped: effective after expiration
	BadRows               int              // unreadable export rows
	UnknownStates         map[string]int   // state code -> record count
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{UnknownStates: make(map[string]int)}
}

// SkippedRecords is the total number of records excluded during cleaning.
func (r *Report) SkippedRecords() int {
	return r.SkippedNoDates + r.SkippedBadSpan
}

// Empty reports whether the run produced no findings.
func (r *Report) Empty() bool {
	return len(r.UnmatchedTerminations) == 0 &&
		len(r.AmountConflicts) == 0 &&
		r.SkippedRecords() == 0 &&
		r.BadRows == 0 &&
		len(r.UnknownStates) == 0
}

// Lines renders the report as human-readable lines for CLI output.
func (r *Report) Lines() []string {
	var lines []string

	if n := len(r.UnmatchedTerminations); n > 0 {
		lines = append(lines, fmt.Sprintf("%d termination ID(s) matched no grant:", n))
		for _, id := range r.UnmatchedTerminations {
			lines = append(lines, "  "+id)
		}
	}
	if n := len(r.AmountConflicts); n > 0 {
		lines = append(lines, fmt.Sprintf("%d award(s) with conflicting amounts within one export year:", n))
		for _, c := range r.AmountConflicts {
			lines = append(lines, fmt.Sprintf("  %s (export %d): %v", c.AwardID, c.ExportYear, c.Amounts))
		}
	}
	if r.SkippedNoDates > 0 {
		lines = append(lines, fmt.Sprintf("%d record(s) skipped: missing or malformed dates", r.SkippedNoDates))
	}
	if r.SkippedBadSpan > 0 {
		lines = append(lines, fmt.Sprintf("%d record(s) skipped: effective date after expiration", r.SkippedBadSpan))
	}
	if r.BadRows > 0 {
		lines = append(lines, fmt.Sprintf("%d unreadable row(s) in the yearly exports", r.BadRows))
	}
	if len(r.UnknownStates) > 0 {
		codes := make([]string, 0, len(r.UnknownStates))
		for code := range r.UnknownStates {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		lines = append(lines, fmt.Sprintf("%d unknown state code(s), excluded from state views:", len(codes)))
		for _, code := range codes {
			lines = append(lines, fmt.Sprintf("  %q (%d records)", code, r.UnknownStates[code]))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "no discrepancies found")
	}
	return lines
}
