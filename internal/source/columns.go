// source/columns.go
// Package: source
package source

import "strings"

// Column maps a record field to the header names accepted for it.
type Column struct {
	Field   string   // mapstructure key on report.ExecutionRecord
	Aliases []string // English, Chinese and snake_case spellings
}

// Columns lists the required input columns in record order.
var Columns = []Column{
	{Field: "round_id", Aliases: []string{"Round", "轮次编号", "round_id", "round"}},
	{Field: "total_count", Aliases: []string{"Total", "总执行次数", "total_count"}},
	{Field: "success_count", Aliases: []string{"Success", "成功次数", "success_count"}},
	{Field: "failure_count", Aliases: []string{"Error", "失败次数", "failure_count", "Failure"}},
	{Field: "avg_duration_ms", Aliases: []string{"Avg(ms)", "平均耗时(ms)", "avg_duration_ms"}},
	{Field: "max_duration_ms", Aliases: []string{"Max(ms)", "最大耗时(ms)", "max_duration_ms"}},
	{Field: "min_duration_ms", Aliases: []string{"Min(ms)", "最小耗时(ms)", "min_duration_ms"}},
	{Field: "total_duration_s", Aliases: []string{"TotalTime(s)", "总耗时(s)", "total_duration_s"}},
}

// normalizeHeader folds a header cell for alias matching.
func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToLower(s)
}

// resolveColumns returns, for each field, the index of its column in header.
// The first missing field is reported as its name.
func resolveColumns(header []string) (map[string]int, string) {
	positions := map[string]int{}
	for i, h := range header {
		if _, dup := positions[normalizeHeader(h)]; !dup {
			positions[normalizeHeader(h)] = i
		}
	}

	idx := make(map[string]int, len(Columns))
	for _, c := range Columns {
		found := false
		for _, alias := range c.Aliases {
			if pos, ok := positions[normalizeHeader(alias)]; ok {
				idx[c.Field] = pos
				found = true
				break
			}
		}
		if !found {
			return nil, c.Field
		}
	}
	return idx, ""
}
