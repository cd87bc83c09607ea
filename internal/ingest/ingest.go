// Package ingest turns loosely structured contact exports into uniform raw
// records. It tolerates renamed columns, stray preamble lines, wrong encodings
// and malformed rows; it only fails when no usable header can be located at
// all, and then it says exactly which columns it was looking for.
package ingest

import (
	"fmt"
	"strings"
)

// RawRecord maps canonical column names to string values. Every column seen in
// the header is present in every record; absent cells are empty strings.
type RawRecord map[string]string

// Result is a successful parse: one record per usable data row.
type Result struct {
	Records     []RawRecord
	Columns     []string
	SkippedRows int    // malformed lines dropped by the tokenizer
	Strategy    string // which parse strategy succeeded
}

// ParseError reports a total ingestion failure. The column detail is part of
// the user contract: it is what lets someone fix their export and retry.
type ParseError struct {
	Required []string
	Found    []string
	Attempts []string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("unable to parse contact data: required columns [")
	b.WriteString(strings.Join(e.Required, ", "))
	b.WriteString("]")
	if len(e.Found) > 0 {
		fmt.Fprintf(&b, ", found columns [%s]", strings.Join(e.Found, ", "))
	} else {
		b.WriteString(", no columns found")
	}
	if len(e.Attempts) > 0 {
		fmt.Fprintf(&b, "; attempted: %s", strings.Join(e.Attempts, "; "))
	}
	return b.String()
}

// Ingestor parses delimited contact data with a fixed set of required
// identity columns.
type Ingestor struct {
	required []string
}

// New returns an Ingestor that requires the given canonical columns to be
// present after normalization. With no arguments it requires the contact
// identity columns (first and last name).
func New(required ...string) *Ingestor {
	if len(required) == 0 {
		required = ContactColumns
	}
	return &Ingestor{required: required}
}

// Parse runs the strategy chain over data and returns the first success.
// Rows whose identity fields are all blank are dropped silently; they are
// stray header or footer lines, not contacts.
func (ing *Ingestor) Parse(data []byte) (*Result, error) {
	var attempts []string
	var lastCols []string

	for _, s := range strategies() {
		rows, skipped, err := s.run(data, ing.required)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", s.name, err))
			continue
		}

		cols := canonicalizeColumns(rows[0], ing.required)
		lastCols = presentColumns(cols)
		if missing := missingColumns(cols, ing.required); len(missing) > 0 {
			attempts = append(attempts, fmt.Sprintf("%s: missing columns [%s]", s.name, strings.Join(missing, ", ")))
			continue
		}

		return &Result{
			Records:     buildRecords(cols, rows[1:]),
			Columns:     presentColumns(cols),
			SkippedRows: skipped,
			Strategy:    s.name,
		}, nil
	}

	return nil, &ParseError{
		Required: append([]string(nil), ing.required...),
		Found:    lastCols,
		Attempts: attempts,
	}
}

func buildRecords(cols []string, rows [][]string) []RawRecord {
	records := make([]RawRecord, 0, len(rows))
	for _, row := range rows {
		rec := make(RawRecord, len(cols))
		for i, col := range cols {
			if col == "" {
				continue
			}
			if i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			} else {
				rec[col] = ""
			}
		}
		if rec[ColFirstName] == "" && rec[ColLastName] == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func presentColumns(cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
