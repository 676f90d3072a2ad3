package pipeline

import (
	"time"

	"go.uber.org/zap"

	"nsfgrants/internal/model"
)

// terminationCap caps terminated grants' expirations: a terminated award does
// not stay "active" past the analysis window regardless of its original span.
var terminationCap = time.Date(model.LastYear, time.December, 31, 0, 0, 0, 0, time.UTC)

// Clean drops records that cannot participate in active-year computation and
// normalizes the rest. Every exclusion is tallied in the report so the
// operator can see what the aggregates are not counting.
func Clean(records []model.GrantRecord, rep *Report, log *zap.Logger) []model.GrantRecord {
	cleaned := records[:0]
	for _, g := range records {
		switch {
		case g.EffectiveDate.IsZero() || g.ExpirationDate.IsZero():
			rep.SkippedNoDates++
			continue
		case g.EffectiveDate.After(g.ExpirationDate):
			rep.SkippedBadSpan++
			continue
		}

		if g.Terminated && g.ExpirationDate.After(terminationCap) {
			g.ExpirationDate = terminationCap
		}

		if !model.KnownState(g.State) {
			rep.UnknownStates[g.State]++
		}

		cleaned = append(cleaned, g)
	}

	if n := rep.SkippedRecords(); n > 0 {
		log.Warn("records excluded during cleaning",
			zap.Int("no_dates", rep.SkippedNoDates),
			zap.Int("bad_span", rep.SkippedBadSpan))
	}
	for code, n := range rep.UnknownStates {
		log.Warn("unknown state code, excluded from state aggregates",
			zap.String("code", code), zap.Int("records", n))
	}

	return cleaned
}
