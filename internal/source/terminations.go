package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ReadTerminationList reads the terminated-award CSV and returns the award
// IDs from its first column, whitespace-stripped and deduplicated. A header
// row (no digits in the first field) is skipped.
func ReadTerminationList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening termination list: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var ids []string
	seen := make(map[string]struct{})
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading termination list: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if first {
			first = false
			if !hasDigit(id) {
				continue // header
			}
		}
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
