// Package store provides a SQLite-backed cache for cleaned grant data.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"nsfgrants/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateFormat = "2006-01-02"

// Cache provides SQLite-backed grant caching keyed on input file state.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for an input file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// ReplaceRecords replaces the cached grant set and file tracking info in a
// single transaction. The pipeline is rerun whole whenever any input changes,
// so partial record updates are never needed.
func (c *Cache) ReplaceRecords(records []model.GrantRecord, tracked map[string]FileInfo) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM grants"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM file_tracker"); err != nil {
		return err
	}

	insert, err := tx.Prepare(`INSERT INTO grants
		(award_id, title, institution, state, state_name, directorate,
		 effective_date, expiration_date, amount, export_year, terminated,
		 alignment_2020, alignment_2024)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = insert.Close() }()

	for _, g := range records {
		terminated := 0
		if g.Terminated {
			terminated = 1
		}
		_, err = insert.Exec(
			g.AwardID, g.Title, g.Institution, g.State, g.StateName, g.Directorate,
			formatDate(g.EffectiveDate), formatDate(g.ExpirationDate), g.Amount,
			g.ExportYear, terminated, string(g.Alignment2020), string(g.Alignment2024),
		)
		if err != nil {
			return err
		}
	}

	for path, fi := range tracked {
		_, err = tx.Exec(`INSERT INTO file_tracker (file_path, mtime_ns, size_bytes)
			VALUES (?, ?, ?)`, path, fi.MtimeNs, fi.SizeBytes)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadRecords reads all cached grants from the database.
func (c *Cache) LoadRecords() ([]model.GrantRecord, error) {
	rows, err := c.db.Query(`SELECT
		award_id, title, institution, state, state_name, directorate,
		effective_date, expiration_date, amount, export_year, terminated,
		alignment_2020, alignment_2024
		FROM grants ORDER BY award_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.GrantRecord
	for rows.Next() {
		var g model.GrantRecord
		var effStr, expStr string
		var terminated int
		var align2020, align2024 string

		err := rows.Scan(
			&g.AwardID, &g.Title, &g.Institution, &g.State, &g.StateName, &g.Directorate,
			&effStr, &expStr, &g.Amount, &g.ExportYear, &terminated,
			&align2020, &align2024,
		)
		if err != nil {
			return nil, err
		}

		g.Terminated = terminated != 0
		g.Alignment2020 = model.Alignment(align2020)
		g.Alignment2024 = model.Alignment(align2024)
		if effStr != "" {
			g.EffectiveDate, _ = time.Parse(dateFormat, effStr)
		}
		if expStr != "" {
			g.ExpirationDate, _ = time.Parse(dateFormat, expStr)
		}
		records = append(records, g)
	}
	return records, rows.Err()
}

// GrantCount returns the number of cached grants.
func (c *Cache) GrantCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM grants").Scan(&count)
	return count, err
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateFormat)
}
