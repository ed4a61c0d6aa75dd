// pkg/model/stats.go
package model

// SummaryStats holds dataset-level counters, aggregated after all rows
// have been processed.
type SummaryStats struct {
	TotalRows     int // Rows processed
	ValidBefore   int // Rows whose raw string already validated
	ValidAfter    int // Rows whose final string validates
	NewlyFixed    int // Rows invalid before and valid after
	InvalidAfter  int // Non-null rows still failing validation
	NullOriginal  int // Rows whose raw value was NULL
	NullFormatted int // Rows with no formatted output (null original, dynamic null, or still invalid)
}

// Add folds a single cleaned record into the counters.
func (s *SummaryStats) Add(rec CleanedRecord) {
	s.TotalRows++

	if rec.ValidBefore {
		s.ValidBefore++
	}
	if rec.ValidAfter {
		s.ValidAfter++
	}
	if !rec.ValidBefore && rec.ValidAfter {
		s.NewlyFixed++
	}
	if !rec.ValidAfter && !rec.Flags.NullValue {
		s.InvalidAfter++
	}
	if rec.Original == nil {
		s.NullOriginal++
	}
	if rec.Formatted == nil {
		s.NullFormatted++
	}
}

// Summarize aggregates counters over a full result set.
func Summarize(records []CleanedRecord) SummaryStats {
	var stats SummaryStats
	for _, rec := range records {
		stats.Add(rec)
	}
	return stats
}
