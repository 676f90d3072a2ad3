package pipeline

import (
	"sort"

	"nsfgrants/internal/model"
)

// Combine merges the per-year record sets into one table deduplicated by
// award ID. When an award appears in multiple export years, the most recent
// export wins: later exports carry the freshest status. Within a single
// export year recency is undefined: the last row read is kept and, if the
// amounts differ, the conflict is recorded in the report.
func Combine(byYear map[int][]model.GrantRecord, rep *Report) []model.GrantRecord {
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	best := make(map[string]model.GrantRecord)
	for _, y := range years {
		for _, rec := range byYear[y] {
			prev, seen := best[rec.AwardID]
			if seen && prev.ExportYear == rec.ExportYear && prev.Amount != rec.Amount {
				rep.AmountConflicts = append(rep.AmountConflicts, AmountConflict{
					AwardID:    rec.AwardID,
					ExportYear: rec.ExportYear,
					Amounts:    []float64{prev.Amount, rec.Amount},
				})
			}
			// years iterate ascending, so rec is never from an older export
			best[rec.AwardID] = rec
		}
	}

	combined := make([]model.GrantRecord, 0, len(best))
	for _, rec := range best {
		combined = append(combined, rec)
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i].AwardID < combined[j].AwardID })
	return combined
}
