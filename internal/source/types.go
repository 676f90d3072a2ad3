package source

import "nsfgrants/internal/model"

// YearFile is one yearly grant export discovered in the data directory.
type YearFile struct {
	Year int
	Path string
}

// ParseResult holds the output of parsing a single yearly export.
type ParseResult struct {
	Year    int
	Records []model.GrantRecord
	BadRows int // rows dropped because required fields were unreadable
	Err     error
}
