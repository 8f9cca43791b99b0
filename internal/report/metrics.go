// report/metrics.go
// Package: report
package report

import (
	"math"
	"slices"

	"github.com/montanaflynn/stats"
)

// ratio returns num/den, or 0 when den is not positive.
func ratio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 0
}

// percentage returns 100*part/whole, or 0 when whole is not positive.
func percentage(part, whole int64) float64 {
	if whole > 0 {
		return 100 * float64(part) / float64(whole)
	}
	return 0
}

// The stats helpers only fail on empty input; groups always hold at least one value.

func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// stats.Max and stats.Min only keep a NaN that comes first; any NaN in the group
// yields NaN so the result does not depend on row order.

func maxOf(values []float64) float64 {
	if slices.ContainsFunc(values, math.IsNaN) {
		return math.NaN()
	}
	m, err := stats.Max(values)
	if err != nil {
		return 0
	}
	return m
}

func minOf(values []float64) float64 {
	if slices.ContainsFunc(values, math.IsNaN) {
		return math.NaN()
	}
	m, err := stats.Min(values)
	if err != nil {
		return 0
	}
	return m
}

func sum(values []float64) float64 {
	s, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return s
}
