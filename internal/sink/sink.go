// sink/sink.go
// Package: sink
package sink

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mwiater/perfreport/internal/report"
)

// Locale selects the header language of the CSV output.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

// Format selects the output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

var headers = map[Locale][]string{
	LocaleEnglish: {"Round", "Total", "Success", "Error", "Avg(ms)", "Max(ms)", "Min(ms)", "TotalTime(s)", "Throughput(tps)", "SuccessRate", "ErrorRate"},
	LocaleChinese: {"轮次编号", "总执行次数", "成功次数", "失败次数", "平均耗时(ms)", "最大耗时(ms)", "最小耗时(ms)", "总耗时(s)", "吞吐量(tps)", "成功率", "错误率"},
}

// Header returns the CSV header for locale, falling back to English.
func Header(locale Locale) []string {
	if h, ok := headers[locale]; ok {
		return h
	}
	return headers[LocaleEnglish]
}

// Document is the JSON artifact written by WriteJSON.
type Document struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Input       string                `json:"input"`
	Rounds      []report.RoundSummary `json:"rounds"`
	Totals      report.RoundSummary   `json:"totals"`
}

// Row formats one summary in header column order.
func Row(s report.RoundSummary) []string {
	return []string{
		string(s.RoundID),
		strconv.FormatInt(s.TotalCount, 10),
		strconv.FormatInt(s.SuccessCount, 10),
		strconv.FormatInt(s.FailureCount, 10),
		formatFloat(s.AvgDurationMs),
		formatFloat(s.MaxDurationMs),
		formatFloat(s.MinDurationMs),
		formatFloat(s.TotalDuration),
		formatFloat(s.ThroughputTPS),
		formatFloat(s.SuccessRatePct),
		formatFloat(s.ErrorRatePct),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes a header line followed by one line per summary.
func WriteCSV(w io.Writer, summaries []report.RoundSummary, locale Locale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(locale)); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write(Row(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ParseFormat resolves a Format by name.
func ParseFormat(name string) (Format, bool) {
	switch Format(strings.ToLower(name)) {
	case FormatCSV:
		return FormatCSV, true
	case FormatJSON:
		return FormatJSON, true
	}
	return "", false
}

// ParseLocale resolves a Locale by name.
func ParseLocale(name string) (Locale, bool) {
	switch Locale(strings.ToLower(name)) {
	case LocaleEnglish:
		return LocaleEnglish, true
	case LocaleChinese:
		return LocaleChinese, true
	}
	return "", false
}

// WriteFile creates (or truncates) path on fs and writes doc in format.
func WriteFile(fs afero.Fs, path string, format Format, locale Locale, doc Document) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	switch format {
	case FormatJSON:
		err = WriteJSON(f, doc)
	default:
		err = WriteCSV(f, doc.Rounds, locale)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"output": path,
		"format": format,
		"rounds": len(doc.Rounds),
	}).Debug("wrote round summaries")
	return nil
}
