// report/aggregate.go
// Package: report
package report

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

type options struct {
	order Order
}

// Option configures Aggregate.
type Option func(*options)

// WithOrder sets the output order. Unknown values fall back to OrderAppearance.
func WithOrder(o Order) Option {
	return func(opts *options) {
		opts.order = o
	}
}

// group collects the column values of one round.
type group struct {
	id RoundID

	total, success, failure int64

	avg, max, min, duration []float64
}

func (g *group) add(r ExecutionRecord) {
	g.total += r.TotalCount
	g.success += r.SuccessCount
	g.failure += r.FailureCount
	g.avg = append(g.avg, r.AvgDurationMs)
	g.max = append(g.max, r.MaxDurationMs)
	g.min = append(g.min, r.MinDurationMs)
	g.duration = append(g.duration, r.TotalDuration)
}

func (g *group) summary() RoundSummary {
	s := RoundSummary{
		RoundID:       g.id,
		TotalCount:    g.total,
		SuccessCount:  g.success,
		FailureCount:  g.failure,
		TotalDuration: sum(g.duration),
		AvgDurationMs: mean(g.avg),
		MaxDurationMs: maxOf(g.max),
		MinDurationMs: minOf(g.min),
	}
	s.ThroughputTPS = ratio(float64(s.TotalCount), s.TotalDuration)
	s.SuccessRatePct = percentage(s.SuccessCount, s.TotalCount)
	s.ErrorRatePct = percentage(s.FailureCount, s.TotalCount)
	return s
}

// Aggregate groups records by RoundID and reduces each group into a RoundSummary.
// A record with an empty round id fails the whole call and no summaries are returned.
// Empty input yields an empty, non-nil slice.
func Aggregate(records []ExecutionRecord, opts ...Option) ([]RoundSummary, error) {
	o := options{order: OrderAppearance}
	for _, opt := range opts {
		opt(&o)
	}

	byRound := map[RoundID]*group{}
	var seen []*group
	for i, r := range records {
		if strings.TrimSpace(string(r.RoundID)) == "" {
			return nil, &GroupKeyError{Row: i + 1, Value: string(r.RoundID)}
		}
		g, ok := byRound[r.RoundID]
		if !ok {
			g = &group{id: r.RoundID}
			byRound[r.RoundID] = g
			seen = append(seen, g)
		}
		g.add(r)
	}

	if o.order == OrderAscending {
		slices.SortStableFunc(seen, func(a, b *group) int {
			return CompareRoundIDs(a.id, b.id)
		})
	}

	out := make([]RoundSummary, 0, len(seen))
	for _, g := range seen {
		out = append(out, g.summary())
	}
	return out, nil
}

// Totals folds summaries into a single overall row keyed by TotalsRoundID, using the
// same reductions Aggregate applies to records. Averages are again a mean of the
// per-round averages.
func Totals(summaries []RoundSummary) RoundSummary {
	if len(summaries) == 0 {
		return RoundSummary{RoundID: TotalsRoundID}
	}
	g := &group{id: TotalsRoundID}
	for _, s := range summaries {
		g.add(ExecutionRecord{
			RoundID:       TotalsRoundID,
			TotalCount:    s.TotalCount,
			SuccessCount:  s.SuccessCount,
			FailureCount:  s.FailureCount,
			AvgDurationMs: s.AvgDurationMs,
			MaxDurationMs: s.MaxDurationMs,
			MinDurationMs: s.MinDurationMs,
			TotalDuration: s.TotalDuration,
		})
	}
	return g.summary()
}

// CompareRoundIDs orders integer keys numerically and before any other key,
// and the remaining keys lexically.
func CompareRoundIDs(a, b RoundID) int {
	ai, aErr := strconv.ParseInt(strings.TrimSpace(string(a)), 10, 64)
	bi, bErr := strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if c := cmp.Compare(ai, bi); c != 0 {
			return c
		}
		return strings.Compare(string(a), string(b))
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(string(a), string(b))
	}
}

// ParseOrder resolves an Order by name.
func ParseOrder(name string) (Order, bool) {
	for _, o := range Orders {
		if strings.EqualFold(name, string(o)) {
			return o, true
		}
	}
	return "", false
}
