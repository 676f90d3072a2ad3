package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"nsfgrants/internal/model"
	"nsfgrants/internal/source"
)

// Inputs names every file the pipeline reads. CleanFile, when set, names a
// previously exported cleaned CSV to load instead of running the pipeline.
type Inputs struct {
	DataDir          string
	Years            []int
	TerminationFile  string
	Election2020File string
	Election2024File string
	CleanFile        string
}

// LoadResult holds the output of the full pipeline run.
type LoadResult struct {
	Records     []model.GrantRecord
	Report      *Report
	TotalFiles  int
	ParsedFiles int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files parsed so far, total is the total count.
type ProgressFunc func(current, total int)

// LoadClean reads a previously exported cleaned CSV instead of running the
// pipeline. The cleaned file already carries terminations and alignments, so
// no merge report is produced.
func LoadClean(path string, log *zap.Logger) (*LoadResult, error) {
	records, err := source.ReadCleanCSV(path)
	if err != nil {
		return nil, fmt.Errorf("reading cleaned CSV: %w", err)
	}
	log.Info("loaded cleaned CSV",
		zap.String("path", path),
		zap.Int("grants", len(records)))
	return &LoadResult{
		Records:     records,
		Report:      NewReport(),
		TotalFiles:  1,
		ParsedFiles: 1,
	}, nil
}

// Load runs the full pipeline: parse each yearly export in parallel, combine
// across export years, join terminations, tag alignments, and clean. Missing
// input files fail loudly rather than producing a partial dataset.
func Load(in Inputs, log *zap.Logger, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(in.DataDir, in.Years)
	if err != nil {
		return nil, err
	}

	terminatedIDs, err := source.ReadTerminationList(in.TerminationFile)
	if err != nil {
		return nil, fmt.Errorf("reading termination list: %w", err)
	}
	cycle2020, err := source.ReadElectionResults(in.Election2020File)
	if err != nil {
		return nil, fmt.Errorf("reading 2020 election results: %w", err)
	}
	cycle2024, err := source.ReadElectionResults(in.Election2024File)
	if err != nil {
		return nil, fmt.Errorf("reading 2024 election results: %w", err)
	}

	result := &LoadResult{
		Report:     NewReport(),
		TotalFiles: len(files),
	}

	// Parallel parsing with bounded worker pool
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]source.ParseResult, len(files))
	var wg sync.WaitGroup
	var parsed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = source.ParseYearFile(files[idx])
				n := parsed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(files))
				}
			}
		}()
	}

	wg.Wait()

	byYear := make(map[int][]model.GrantRecord, len(results))
	for _, pr := range results {
		if pr.Err != nil {
			return nil, fmt.Errorf("parsing %d export: %w", pr.Year, pr.Err)
		}
		result.ParsedFiles++
		result.Report.BadRows += pr.BadRows
		byYear[pr.Year] = pr.Records
	}

	records := Combine(byYear, result.Report)
	JoinTerminations(records, terminatedIDs, result.Report, log)
	TagAlignments(records, cycle2020, cycle2024, log)
	result.Records = Clean(records, result.Report, log)

	log.Info("pipeline complete",
		zap.Int("files", result.ParsedFiles),
		zap.Int("grants", len(result.Records)),
		zap.Int("skipped", result.Report.SkippedRecords()))
	return result, nil
}
