package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestParseYearFile_ByHeaderName(t *testing.T) {
	// Columns deliberately out of our order, with an extra one we ignore.
	csv := "awd_titl_txt,awd_id,inst_state_code,inst_name,dir_abbr,awd_eff_date,awd_exp_date,awd_amount,pgm_ele_name\n" +
		"Quantum Widgets,2201234,ca,Caltech,MPS,01/15/2021,06/30/2024,\"$1,234,567\",Physics\n"
	path := writeFile(t, t.TempDir(), "grants_2025.csv", csv)

	res := ParseYearFile(YearFile{Year: 2025, Path: path})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	rec := res.Records[0]
	if rec.AwardID != "2201234" {
		t.Errorf("AwardID = %q, want 2201234", rec.AwardID)
	}
	if rec.State != "CA" {
		t.Errorf("State = %q, want CA (uppercased)", rec.State)
	}
	if rec.StateName != "California" {
		t.Errorf("StateName = %q, want California (filled from code)", rec.StateName)
	}
	if rec.Amount != 1234567 {
		t.Errorf("Amount = %v, want 1234567", rec.Amount)
	}
	if rec.ExportYear != 2025 {
		t.Errorf("ExportYear = %d, want 2025", rec.ExportYear)
	}
	want := time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !rec.EffectiveDate.Equal(want) {
		t.Errorf("EffectiveDate = %v, want %v", rec.EffectiveDate, want)
	}
}

func TestParseYearFile_BadRowsCounted(t *testing.T) {
	csv := "awd_id,awd_eff_date,awd_exp_date\n" +
		",01/01/2021,01/01/2022\n" + // missing award ID
		"2201111,01/01/2021,01/01/2022\n"
	path := writeFile(t, t.TempDir(), "grants_2022.csv", csv)

	res := ParseYearFile(YearFile{Year: 2022, Path: path})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.BadRows != 1 {
		t.Errorf("BadRows = %d, want 1", res.BadRows)
	}
	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
}

func TestParseYearFile_LenientDates(t *testing.T) {
	// Unparseable dates survive as zero values; the cleaning stage drops them.
	csv := "awd_id,awd_eff_date,awd_exp_date\n" +
		"2203333,not a date,06/30/2024\n"
	path := writeFile(t, t.TempDir(), "grants_2024.csv", csv)

	res := ParseYearFile(YearFile{Year: 2024, Path: path})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	if !res.Records[0].EffectiveDate.IsZero() {
		t.Errorf("EffectiveDate = %v, want zero", res.Records[0].EffectiveDate)
	}
	if res.Records[0].ExpirationDate.IsZero() {
		t.Error("ExpirationDate is zero, want parsed")
	}
}

func TestParseYearFile_MissingIDColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "grants_2020.csv", "foo,bar\n1,2\n")
	res := ParseYearFile(YearFile{Year: 2020, Path: path})
	if res.Err == nil {
		t.Fatal("expected error for file without an awd_id column")
	}
}

func TestParseDate_Layouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"01/15/2021", time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"2021-01-15", time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"garbage", time.Time{}},
	}
	for _, tt := range tests {
		if got := parseDate(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1234567", 1234567},
		{"$1,234,567", 1234567},
		{"  500000.50 ", 500000.50},
		{"", 0},
		{"n/a", 0},
	}
	for _, tt := range tests {
		if got := parseAmount(tt.in); got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScanDir_MissingYearIsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "grants_2020.csv", "awd_id\n")
	writeFile(t, dir, "grants_2021.csv", "awd_id\n")

	if _, err := ScanDir(dir, []int{2020, 2021, 2022}); err == nil {
		t.Fatal("expected error for missing grants_2022.csv")
	}

	files, err := ScanDir(dir, []int{2021, 2020})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Year != 2020 || files[1].Year != 2021 {
		t.Errorf("files not sorted by year: %v", files)
	}
}
