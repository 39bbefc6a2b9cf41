package network

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads rows of the form
//
//	line,stationA,weight,stationB
//
// Blank lines and lines starting with '#' are skipped; whitespace around
// fields is trimmed. Errors are *RecordError values carrying the row.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var out []Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &RecordError{Source: "csv", Row: perr.Line, Err: perr.Err}
			}
			return nil, fmt.Errorf("network: read csv: %w", err)
		}
		row, _ := cr.FieldPos(0)

		rec, err := csvRecord(fields, row)
		if err != nil {
			return nil, &RecordError{Source: "csv", Row: row, Err: err}
		}
		out = append(out, rec)
	}

	return out, nil
}

func csvRecord(fields []string, row int) (Record, error) {
	raw := strings.TrimSpace(fields[2])
	weight, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("weight %q is not an integer", raw)
	}
	rec := Record{
		Line:   strings.TrimSpace(fields[0]),
		From:   strings.TrimSpace(fields[1]),
		To:     strings.TrimSpace(fields[3]),
		Weight: weight,
		Row:    row,
	}

	return rec, rec.Validate()
}
