// Package source discovers and parses the flat-file inputs: yearly grant
// exports, the terminated-award list, and election-result tables.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ScanDir locates the yearly export files (grants_<year>.csv) for every
// expected year. A missing year is an error naming the file: silently
// skipping a year would understate every aggregate built downstream.
func ScanDir(dataDir string, years []int) ([]YearFile, error) {
	var files []YearFile
	var missing []string

	for _, y := range years {
		path := filepath.Join(dataDir, fmt.Sprintf("grants_%d.csv", y))
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, path)
				continue
			}
			return nil, fmt.Errorf("checking %s: %w", path, err)
		}
		files = append(files, YearFile{Year: y, Path: path})
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing yearly export(s): %v", missing)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Year < files[j].Year })
	return files, nil
}
