package pipeline

import (
	"go.uber.org/zap"

	"nsfgrants/internal/model"
)

// TagAlignments stamps each record with its state's result for both election
// cycles. The per-year display alignment is resolved at aggregation time via
// GrantRecord.AlignmentFor, so a grant spanning the 2024 boundary carries
// the year-appropriate label in every yearly fact. States absent from the
// election data stay AlignmentUnknown and are excluded from alignment views.
func TagAlignments(records []model.GrantRecord, cycle2020, cycle2024 map[string]model.Alignment, log *zap.Logger) {
	missing := make(map[string]struct{})
	for i := range records {
		state := records[i].State
		records[i].Alignment2020 = cycle2020[state]
		records[i].Alignment2024 = cycle2024[state]
		if model.KnownState(state) {
			if records[i].Alignment2020 == model.AlignmentUnknown ||
				records[i].Alignment2024 == model.AlignmentUnknown {
				missing[state] = struct{}{}
			}
		}
	}

	for state := range missing {
		log.Warn("state has no election result, alignment views will exclude it",
			zap.String("state", state))
	}
}
