package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"nsfgrants/internal/model"
)

// ReadElectionResults reads one election-cycle CSV (state code, winner) into
// a state→alignment map. Winner values may be party names or the red/blue
// labels directly; anything else is an error, not a silent unknown.
func ReadElectionResults(path string) (map[string]model.Alignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening election results: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	out := make(map[string]model.Alignment)
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading election results: %w", err)
		}
		if len(row) < 2 {
			continue
		}

		state := strings.ToUpper(strings.TrimSpace(row[0]))
		winner := strings.TrimSpace(row[1])
		if first {
			first = false
			if _, known := parseAlignment(winner); !known {
				continue // header row
			}
		}
		if state == "" {
			continue
		}

		a, known := parseAlignment(winner)
		if !known {
			return nil, fmt.Errorf("%s: unrecognized winner %q for state %s", path, winner, state)
		}
		out[state] = a
	}

	return out, nil
}

func parseAlignment(s string) (model.Alignment, bool) {
	switch strings.ToLower(s) {
	case "democrat", "democratic", "blue":
		return model.AlignmentBlue, true
	case "republican", "red":
		return model.AlignmentRed, true
	default:
		return model.AlignmentUnknown, false
	}
}
