// source/csv.go
// Package: source
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/mwiater/perfreport/internal/report"
)

// ReadFile opens path on fs and reads its records.
func ReadFile(fs afero.Fs, path string) ([]report.ExecutionRecord, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithField("input", path).Warn("failed to close input file")
		}
	}()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// Read parses a CSV table whose first row is a header. Columns are matched by name
// (see Columns); unknown columns are ignored. Any missing column, empty cell or
// unparseable number fails the whole read.
func Read(r io.Reader) ([]report.ExecutionRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &report.FieldError{Field: Columns[0].Field, Reason: "empty input"}
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	idx, missing := resolveColumns(header)
	if missing != "" {
		return nil, &report.FieldError{Field: missing, Reason: "no matching column"}
	}

	records := []report.ExecutionRecord{}
	for row := 1; ; row++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		rec, err := decodeRow(cells, idx, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	logrus.WithField("rows", len(records)).Debug("read execution records")
	return records, nil
}

// decimalHook parses numeric cells in base 10, so zero-padded counts such as "010"
// read as ten rather than as octal.
func decimalHook(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.String {
		return data, nil
	}
	switch to {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.ParseInt(data.(string), 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(data.(string), 64)
	}
	return data, nil
}

// decodeRow fills one record field by field so that a decode failure names its column.
func decodeRow(cells []string, idx map[string]int, row int) (report.ExecutionRecord, error) {
	var rec report.ExecutionRecord
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncKind(decimalHook),
		Result:     &rec,
	})
	if err != nil {
		return rec, err
	}

	for _, c := range Columns {
		pos := idx[c.Field]
		if pos >= len(cells) {
			return rec, &report.FieldError{Field: c.Field, Row: row, Reason: "row too short"}
		}
		cell := strings.TrimSpace(cells[pos])
		if cell == "" {
			if c.Field == "round_id" {
				return rec, &report.GroupKeyError{Row: row, Value: cells[pos]}
			}
			return rec, &report.FieldError{Field: c.Field, Row: row, Reason: "empty value"}
		}
		if err := dec.Decode(map[string]any{c.Field: cell}); err != nil {
			return rec, &report.FieldError{Field: c.Field, Row: row, Reason: fmt.Sprintf("cannot parse %q", cell)}
		}
	}
	return rec, nil
}
