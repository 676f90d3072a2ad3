package model

import "time"

// StateYearStats holds the per-state aggregate for one calendar year.
type StateYearStats struct {
	State         string
	StateName     string
	Year          int
	ActiveGrants  int
	TotalFunding  float64 // USD across active grants
	Terminated    int     // attributed to 2025 only, among active-in-2025
	TerminatedPct float64
	Alignment     Alignment // year-appropriate election result
}

// DirectorateYearStats holds the per-directorate aggregate for one year.
type DirectorateYearStats struct {
	Directorate   string
	Year          int
	ActiveGrants  int
	Terminated    int // attributed to 2025 only, among active-in-2025
	TerminatedPct float64
}

// LifecyclePoint is a month-start sample of active grants for one state.
type LifecyclePoint struct {
	State        string // 2-letter code
	Date         time.Time
	ActiveGrants int
}

// YearCount pairs a year with an active-grant count.
type YearCount struct {
	Year  int
	Count int
}

// SummaryStats holds dataset-wide totals for the summary command and
// the dashboard metric cards.
type SummaryStats struct {
	TotalGrants       int
	TotalFunding      float64
	TerminatedGrants  int
	TerminatedFunding float64
	States            int
	Directorates      int
	ActiveByYear      []YearCount // one entry per year in the window
}

// StateTermination is one row of the 2025 termination ranking.
type StateTermination struct {
	State      string
	StateName  string
	Terminated int
}
