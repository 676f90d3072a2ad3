package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"nsfgrants/internal/source"
	"nsfgrants/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHit bool
}

// LoadWithCache stats every pipeline input against the file tracker and
// serves the cached grant set when nothing changed. Any change reruns the
// whole pipeline: terminations, elections, and the cross-year combine join
// every file together, so a single stale input invalidates the full dataset.
// Cached hits carry no Report; skip tallies only exist for fresh runs.
func LoadWithCache(in Inputs, cache *store.Cache, log *zap.Logger, progressFn ProgressFunc) (*CachedLoadResult, error) {
	inputs, err := inputPaths(in)
	if err != nil {
		return nil, err
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	current := make(map[string]store.FileInfo, len(inputs))
	fresh := len(tracked) != len(inputs)
	for _, path := range inputs {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		fi := store.FileInfo{MtimeNs: info.ModTime().UnixNano(), SizeBytes: info.Size()}
		current[path] = fi
		if cached, ok := tracked[path]; !ok || cached != fi {
			fresh = true
		}
	}

	if !fresh {
		records, err := cache.LoadRecords()
		if err != nil {
			return nil, fmt.Errorf("loading cached grants: %w", err)
		}
		if len(records) > 0 {
			log.Debug("cache hit", zap.Int("grants", len(records)))
			return &CachedLoadResult{
				LoadResult: LoadResult{
					Records:     records,
					Report:      NewReport(),
					TotalFiles:  len(in.Years),
					ParsedFiles: len(in.Years),
				},
				CacheHit: true,
			}, nil
		}
	}

	result, err := Load(in, log, progressFn)
	if err != nil {
		return nil, err
	}
	if err := cache.ReplaceRecords(result.Records, current); err != nil {
		log.Warn("saving cache failed", zap.Error(err))
	}
	return &CachedLoadResult{LoadResult: *result}, nil
}

func inputPaths(in Inputs) ([]string, error) {
	files, err := source.ScanDir(in.DataDir, in.Years)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(files)+3)
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	paths = append(paths, in.TerminationFile, in.Election2020File, in.Election2024File)
	return paths, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "nsfgrants")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "nsfgrants")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "grants.db")
}
