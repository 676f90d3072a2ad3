package pipeline

import (
	"sort"

	"go.uber.org/zap"

	"nsfgrants/internal/model"
)

// JoinTerminations sets the Terminated flag on records whose award ID is in
// the termination list. IDs with no matching grant indicate a data-quality
// problem: they are warned about and recorded, never silently dropped.
func JoinTerminations(records []model.GrantRecord, terminatedIDs []string, rep *Report, log *zap.Logger) {
	byID := make(map[string]int, len(records))
	for i, g := range records {
		byID[g.AwardID] = i
	}

	var unmatched []string
	for _, id := range terminatedIDs {
		i, ok := byID[id]
		if !ok {
			unmatched = append(unmatched, id)
			continue
		}
		records[i].Terminated = true
	}

	if len(unmatched) > 0 {
		sort.Strings(unmatched)
		rep.UnmatchedTerminations = append(rep.UnmatchedTerminations, unmatched...)
		log.Warn("termination IDs matched no grant",
			zap.Int("count", len(unmatched)),
			zap.Strings("ids", unmatched))
	}
}
