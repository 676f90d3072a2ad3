package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"nsfgrants/internal/model"
)

// Column names as they appear in the NSF export headers. Exports carry many
// more columns than we use; lookup is by header name, not position.
const (
	colAwardID     = "awd_id"
	colTitle       = "awd_titl_txt"
	colEffDate     = "awd_eff_date"
	colExpDate     = "awd_exp_date"
	colAmount      = "awd_amount"
	colDirectorate = "dir_abbr"
	colInstName    = "inst_name"
	colStateCode   = "inst_state_code"
	colStateName   = "inst_state_name"
)

// dateLayouts are tried in order. Exports use US-style dates; the cleaned
// CSV we write uses ISO.
var dateLayouts = []string{"01/02/2006", "2006-01-02", "2006-01-02 15:04:05"}

// ParseYearFile reads one yearly export into grant records. Rows without an
// award ID are dropped and tallied. Date parsing is lenient here: records
// with unusable dates survive parsing and are excluded (and counted) by the
// cleaning stage, where the skip can be attributed properly.
func ParseYearFile(yf YearFile) ParseResult {
	f, err := os.Open(yf.Path)
	if err != nil {
		return ParseResult{Year: yf.Year, Err: err}
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // exports occasionally have ragged rows

	header, err := r.Read()
	if err != nil {
		return ParseResult{Year: yf.Year, Err: fmt.Errorf("reading header of %s: %w", yf.Path, err)}
	}
	idx := headerIndex(header)
	if _, ok := idx[colAwardID]; !ok {
		return ParseResult{Year: yf.Year, Err: fmt.Errorf("%s: no %q column", yf.Path, colAwardID)}
	}

	result := ParseResult{Year: yf.Year}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.BadRows++
			continue
		}

		id := strings.TrimSpace(field(row, idx, colAwardID))
		if id == "" {
			result.BadRows++
			continue
		}

		rec := model.GrantRecord{
			AwardID:        id,
			Title:          field(row, idx, colTitle),
			Institution:    field(row, idx, colInstName),
			State:          strings.ToUpper(strings.TrimSpace(field(row, idx, colStateCode))),
			StateName:      strings.TrimSpace(field(row, idx, colStateName)),
			Directorate:    strings.TrimSpace(field(row, idx, colDirectorate)),
			EffectiveDate:  parseDate(field(row, idx, colEffDate)),
			ExpirationDate: parseDate(field(row, idx, colExpDate)),
			Amount:         parseAmount(field(row, idx, colAmount)),
			ExportYear:     yf.Year,
		}
		if rec.StateName == "" {
			rec.StateName = model.StateName(rec.State)
		}
		result.Records = append(result.Records, rec)
	}

	return result
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func parseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
