// report/aggregate_test.go
// Package: report
package report

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func scenarioRecords() []ExecutionRecord {
	return []ExecutionRecord{
		{RoundID: "1", TotalCount: 100, SuccessCount: 95, FailureCount: 5, AvgDurationMs: 10, MaxDurationMs: 50, MinDurationMs: 1, TotalDuration: 2.0},
		{RoundID: "1", TotalCount: 50, SuccessCount: 48, FailureCount: 2, AvgDurationMs: 20, MaxDurationMs: 60, MinDurationMs: 2, TotalDuration: 1.0},
		{RoundID: "2"},
	}
}

func TestAggregate_Scenario(t *testing.T) {
	got, err := Aggregate(scenarioRecords())
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	want := []RoundSummary{
		{
			RoundID:        "1",
			TotalCount:     150,
			SuccessCount:   143,
			FailureCount:   7,
			TotalDuration:  3.0,
			AvgDurationMs:  15.0,
			MaxDurationMs:  60,
			MinDurationMs:  1,
			ThroughputTPS:  50.0,
			SuccessRatePct: 100.0 * 143 / 150,
			ErrorRatePct:   100.0 * 7 / 150,
		},
		{RoundID: "2"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("unexpected summaries (-want +got):\n%s", diff)
	}
	if math.Abs(got[0].SuccessRatePct-95.333) > 1e-3 || math.Abs(got[0].ErrorRatePct-4.667) > 1e-3 {
		t.Fatalf("unexpected rates: %+v", got[0])
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	got, err := Aggregate(nil)
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestAggregate_PartitionAndGroupCount(t *testing.T) {
	records := []ExecutionRecord{
		{RoundID: "a", TotalCount: 3, SuccessCount: 2, FailureCount: 1, TotalDuration: 0.5},
		{RoundID: "b", TotalCount: 7, SuccessCount: 7, TotalDuration: 1.25},
		{RoundID: "a", TotalCount: 11, SuccessCount: 10, FailureCount: 1, TotalDuration: 2},
		{RoundID: "c", TotalCount: 1, FailureCount: 1, TotalDuration: 0.125},
		{RoundID: "b", TotalCount: 5, SuccessCount: 4, FailureCount: 1, TotalDuration: 0.25},
	}
	got, err := Aggregate(records)
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(got))
	}

	var inTotal, inSuccess, inFailure int64
	var inDuration float64
	for _, r := range records {
		inTotal += r.TotalCount
		inSuccess += r.SuccessCount
		inFailure += r.FailureCount
		inDuration += r.TotalDuration
	}
	var outTotal, outSuccess, outFailure int64
	var outDuration float64
	for _, s := range got {
		outTotal += s.TotalCount
		outSuccess += s.SuccessCount
		outFailure += s.FailureCount
		outDuration += s.TotalDuration
	}
	if inTotal != outTotal || inSuccess != outSuccess || inFailure != outFailure {
		t.Fatalf("count sums differ: in=%d/%d/%d out=%d/%d/%d", inTotal, inSuccess, inFailure, outTotal, outSuccess, outFailure)
	}
	if inDuration != outDuration {
		t.Fatalf("duration sums differ: in=%v out=%v", inDuration, outDuration)
	}

	order := []RoundID{got[0].RoundID, got[1].RoundID, got[2].RoundID}
	if diff := cmp.Diff([]RoundID{"a", "b", "c"}, order); diff != "" {
		t.Fatalf("expected first-appearance order (-want +got):\n%s", diff)
	}
}

func TestAggregate_SingleRecordIdentity(t *testing.T) {
	r := ExecutionRecord{RoundID: "7", TotalCount: 42, SuccessCount: 40, FailureCount: 2, AvgDurationMs: 3.3, MaxDurationMs: 9.9, MinDurationMs: 0.1, TotalDuration: 1.7}
	got, err := Aggregate([]ExecutionRecord{r})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	s := got[0]
	if s.AvgDurationMs != r.AvgDurationMs || s.MaxDurationMs != r.MaxDurationMs || s.MinDurationMs != r.MinDurationMs {
		t.Fatalf("durations not preserved: %+v", s)
	}
	if s.TotalCount != r.TotalCount || s.SuccessCount != r.SuccessCount || s.FailureCount != r.FailureCount || s.TotalDuration != r.TotalDuration {
		t.Fatalf("sums not preserved: %+v", s)
	}
}

func TestAggregate_ZeroGuards(t *testing.T) {
	records := []ExecutionRecord{
		{RoundID: "zero-dur", TotalCount: 10, SuccessCount: 9, FailureCount: 1},
		{RoundID: "zero-dur", TotalCount: 5, SuccessCount: 5},
		{RoundID: "zero-count", TotalDuration: 4},
		{RoundID: "zero-count", TotalDuration: 1},
	}
	got, err := Aggregate(records)
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if got[0].ThroughputTPS != 0 || math.IsInf(got[0].ThroughputTPS, 0) || math.IsNaN(got[0].ThroughputTPS) {
		t.Fatalf("expected throughput 0, got %v", got[0].ThroughputTPS)
	}
	if got[0].SuccessRatePct == 0 {
		t.Fatalf("expected a success rate for zero-dur round")
	}
	if got[1].SuccessRatePct != 0 || got[1].ErrorRatePct != 0 {
		t.Fatalf("expected zero rates, got %+v", got[1])
	}
	if got[1].ThroughputTPS != 0 {
		t.Fatalf("expected throughput 0 for zero count, got %v", got[1].ThroughputTPS)
	}
}

func TestAggregate_MalformedPassThrough(t *testing.T) {
	got, err := Aggregate([]ExecutionRecord{
		{RoundID: "x", TotalCount: 10, SuccessCount: 20, FailureCount: -5, TotalDuration: 2},
	})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if got[0].SuccessRatePct != 200 || got[0].ErrorRatePct != -50 {
		t.Fatalf("expected unclamped rates, got %+v", got[0])
	}
}

func TestAggregate_NegativeDurationsPassThrough(t *testing.T) {
	got, err := Aggregate([]ExecutionRecord{
		{RoundID: "n", TotalCount: 4, AvgDurationMs: -2, MaxDurationMs: -1, MinDurationMs: -3, TotalDuration: -1},
		{RoundID: "n", TotalCount: 4, AvgDurationMs: 6, MaxDurationMs: 5, MinDurationMs: -0.5, TotalDuration: 3},
		{RoundID: "neg", TotalCount: 4, TotalDuration: -2},
	})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	n := got[0]
	if n.AvgDurationMs != 2 || n.MaxDurationMs != 5 || n.MinDurationMs != -3 || n.TotalDuration != 2 {
		t.Fatalf("unexpected durations: %+v", n)
	}
	if n.ThroughputTPS != 4 {
		t.Fatalf("expected throughput 8/2, got %v", n.ThroughputTPS)
	}
	if got[1].TotalDuration != -2 || got[1].ThroughputTPS != 0 {
		t.Fatalf("expected negative elapsed time to keep throughput at 0, got %+v", got[1])
	}
}

func TestAggregate_NaNDurationsPropagate(t *testing.T) {
	nan := math.NaN()
	for _, first := range []bool{true, false} {
		records := []ExecutionRecord{
			{RoundID: "r", TotalCount: 1, AvgDurationMs: nan, MaxDurationMs: nan, MinDurationMs: nan, TotalDuration: nan},
			{RoundID: "r", TotalCount: 1, AvgDurationMs: 1, MaxDurationMs: 2, MinDurationMs: 0.5, TotalDuration: 1},
		}
		if !first {
			records[0], records[1] = records[1], records[0]
		}
		got, err := Aggregate(records)
		if err != nil {
			t.Fatalf("Aggregate error: %v", err)
		}
		s := got[0]
		if !math.IsNaN(s.AvgDurationMs) || !math.IsNaN(s.MaxDurationMs) || !math.IsNaN(s.MinDurationMs) || !math.IsNaN(s.TotalDuration) {
			t.Fatalf("expected NaN durations (nan first=%v), got %+v", first, s)
		}
		if s.ThroughputTPS != 0 {
			t.Fatalf("expected throughput 0 for NaN elapsed time, got %v", s.ThroughputTPS)
		}
		if s.SuccessRatePct != 0 || s.TotalCount != 2 {
			t.Fatalf("unexpected counts: %+v", s)
		}
	}
}

func TestAggregate_KeysNotMerged(t *testing.T) {
	got, err := Aggregate([]ExecutionRecord{{RoundID: "1"}, {RoundID: "01"}, {RoundID: "1"}})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(got))
	}
}

func TestAggregate_InvalidGroupKey(t *testing.T) {
	records := scenarioRecords()
	records = append(records, ExecutionRecord{RoundID: "  ", TotalCount: 1})
	got, err := Aggregate(records)
	if err == nil {
		t.Fatalf("expected error for blank round id")
	}
	if got != nil {
		t.Fatalf("expected no partial output, got %+v", got)
	}
	if !errors.Is(err, ErrInvalidGroupKey) {
		t.Fatalf("expected ErrInvalidGroupKey, got %v", err)
	}
	var keyErr *GroupKeyError
	if !errors.As(err, &keyErr) || keyErr.Row != 4 {
		t.Fatalf("expected GroupKeyError for row 4, got %v", err)
	}
}

func TestAggregate_AscendingOrder(t *testing.T) {
	records := []ExecutionRecord{{RoundID: "10"}, {RoundID: "b"}, {RoundID: "2"}, {RoundID: "a"}, {RoundID: "1"}}
	got, err := Aggregate(records, WithOrder(OrderAscending))
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	var ids []RoundID
	for _, s := range got {
		ids = append(ids, s.RoundID)
	}
	if diff := cmp.Diff([]RoundID{"1", "2", "10", "a", "b"}, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestTotals(t *testing.T) {
	summaries, err := Aggregate(scenarioRecords())
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	tot := Totals(summaries)
	if tot.RoundID != TotalsRoundID || tot.TotalCount != 150 || tot.FailureCount != 7 {
		t.Fatalf("unexpected totals: %+v", tot)
	}
	if tot.MaxDurationMs != 60 || tot.MinDurationMs != 0 || tot.AvgDurationMs != 7.5 {
		t.Fatalf("unexpected duration totals: %+v", tot)
	}
	if tot.ThroughputTPS != 50 {
		t.Fatalf("unexpected throughput: %v", tot.ThroughputTPS)
	}
	if empty := Totals(nil); empty.RoundID != TotalsRoundID || empty.TotalCount != 0 {
		t.Fatalf("unexpected empty totals: %+v", empty)
	}
}

func TestParseOrder(t *testing.T) {
	if o, ok := ParseOrder("Ascending"); !ok || o != OrderAscending {
		t.Fatalf("expected ascending, got %q %v", o, ok)
	}
	if _, ok := ParseOrder("random"); ok {
		t.Fatalf("expected unknown order to fail")
	}
}
