package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"nsfgrants/internal/model"
)

// cleanHeader is the column layout of the cleaned CSV produced after
// combining, joining, and tagging. Dates are ISO.
var cleanHeader = []string{
	"award_id", "title", "institution", "state", "state_name", "directorate",
	"effective_date", "expiration_date", "amount", "export_year",
	"terminated", "alignment_2020", "alignment_2024",
}

const cleanDateLayout = "2006-01-02"

// WriteCleanCSV writes the cleaned record set to path.
func WriteCleanCSV(records []model.GrantRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(cleanHeader); err != nil {
		return err
	}
	for _, g := range records {
		row := []string{
			g.AwardID, g.Title, g.Institution, g.State, g.StateName, g.Directorate,
			g.EffectiveDate.Format(cleanDateLayout),
			g.ExpirationDate.Format(cleanDateLayout),
			strconv.FormatFloat(g.Amount, 'f', 2, 64),
			strconv.Itoa(g.ExportYear),
			strconv.FormatBool(g.Terminated),
			string(g.Alignment2020),
			string(g.Alignment2024),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadCleanCSV reads a cleaned CSV back into grant records.
func ReadCleanCSV(path string) ([]model.GrantRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	var records []model.GrantRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if len(row) != len(cleanHeader) {
			return nil, fmt.Errorf("%s: row has %d columns, want %d", path, len(row), len(cleanHeader))
		}

		eff, _ := time.Parse(cleanDateLayout, row[6])
		exp, _ := time.Parse(cleanDateLayout, row[7])
		amount, _ := strconv.ParseFloat(row[8], 64)
		exportYear, _ := strconv.Atoi(row[9])
		terminated, _ := strconv.ParseBool(row[10])

		records = append(records, model.GrantRecord{
			AwardID:        row[0],
			Title:          row[1],
			Institution:    row[2],
			State:          row[3],
			StateName:      row[4],
			Directorate:    row[5],
			EffectiveDate:  eff,
			ExpirationDate: exp,
			Amount:         amount,
			ExportYear:     exportYear,
			Terminated:     terminated,
			Alignment2020:  model.Alignment(row[11]),
			Alignment2024:  model.Alignment(row[12]),
		})
	}

	return records, nil
}
