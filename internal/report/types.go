// report/types.go
// Package: report
package report

// RoundID identifies a round. Integer round numbers are carried as their decimal text,
// and keys are compared by exact value ("1" and "01" are different rounds).
type RoundID string

// ExecutionRecord is one row of raw measurements for a round.
type ExecutionRecord struct {
	RoundID       RoundID `json:"round_id" mapstructure:"round_id"`
	TotalCount    int64   `json:"total_count" mapstructure:"total_count"`
	SuccessCount  int64   `json:"success_count" mapstructure:"success_count"`
	FailureCount  int64   `json:"failure_count" mapstructure:"failure_count"`
	AvgDurationMs float64 `json:"avg_duration_ms" mapstructure:"avg_duration_ms"`
	MaxDurationMs float64 `json:"max_duration_ms" mapstructure:"max_duration_ms"`
	MinDurationMs float64 `json:"min_duration_ms" mapstructure:"min_duration_ms"`
	TotalDuration float64 `json:"total_duration_s" mapstructure:"total_duration_s"` // seconds
}

// RoundSummary aggregates every ExecutionRecord sharing a RoundID.
type RoundSummary struct {
	RoundID RoundID `json:"round_id"`

	// Exact sums
	TotalCount    int64   `json:"total_count"`
	SuccessCount  int64   `json:"success_count"`
	FailureCount  int64   `json:"failure_count"`
	TotalDuration float64 `json:"total_duration_s"`

	// AvgDurationMs is the unweighted mean of the per-record averages (mean-of-means),
	// not a count-weighted mean.
	AvgDurationMs float64 `json:"avg_duration_ms"`
	MaxDurationMs float64 `json:"max_duration_ms"`
	MinDurationMs float64 `json:"min_duration_ms"`

	// Derived rates, 0 when the denominator is 0
	ThroughputTPS  float64 `json:"throughput_tps"`
	SuccessRatePct float64 `json:"success_rate_pct"`
	ErrorRatePct   float64 `json:"error_rate_pct"`
}

// Order selects how summaries are sequenced.
type Order string

const (
	// OrderAppearance emits rounds in the order their first record appears.
	OrderAppearance Order = "appearance"
	// OrderAscending emits rounds by ascending key, numeric keys compared as integers.
	OrderAscending Order = "ascending"
)

// Orders lists the accepted Order values.
var Orders = []Order{OrderAppearance, OrderAscending}

// TotalsRoundID is the key used for the overall row produced by Totals.
const TotalsRoundID RoundID = "total"
