package sink

import (
	"fmt"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// BatchConfig configures chunked inserts.
type BatchConfig struct {
	// BatchSize is the number of rows per COPY chunk.
	BatchSize int

	// ProgressInterval is how often to log progress (in rows).
	ProgressInterval int64
}

// DefaultBatchConfig returns default batch insert configuration.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		BatchSize:        10000,
		ProgressInterval: 100000,
	}
}

// ProgressReporter tracks and reports load progress for one table.
type ProgressReporter struct {
	tableName        string
	totalRows        int64
	currentRow       int64
	progressInterval int64
}

// NewProgressReporter creates a new progress reporter.
func NewProgressReporter(tableName string, totalRows int64, interval int64) *ProgressReporter {
	if interval <= 0 {
		interval = DefaultBatchConfig().ProgressInterval
	}
	return &ProgressReporter{
		tableName:        tableName,
		totalRows:        totalRows,
		progressInterval: interval,
	}
}

// Update adds rowsInserted and logs when an interval boundary is crossed.
// It reports whether a progress line was logged.
func (p *ProgressReporter) Update(rowsInserted int64) bool {
	oldRow := p.currentRow
	p.currentRow += rowsInserted

	if p.currentRow/p.progressInterval <= oldRow/p.progressInterval {
		return false
	}
	pct := 100.0
	if p.totalRows > 0 {
		pct = float64(p.currentRow) / float64(p.totalRows) * 100
	}
	logging.Info().
		Str("table", p.tableName).
		Int64("rows", p.currentRow).
		Int64("total", p.totalRows).
		Float64("percent", pct).
		Msg("Loading data")
	return true
}

// Rows returns the number of rows reported so far.
func (p *ProgressReporter) Rows() int64 {
	return p.currentRow
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Str("table", p.tableName).
		Int64("rows", p.currentRow).
		Msg("Table loaded")
}

// FormatSize formats a byte count as a human-readable string.
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
