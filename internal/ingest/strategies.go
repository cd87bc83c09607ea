package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// A strategy turns raw bytes into rows (header first). Strategies are tried
// in order; the first one that recovers a header row wins. Individual
// malformed lines are skipped and counted, never fatal.
type strategy struct {
	name string
	run  func(data []byte, required []string) ([][]string, int, error)
}

func strategies() []strategy {
	return []strategy{
		{name: "strict csv", run: strictCSV},
		{name: "relaxed csv", run: relaxedCSV},
		{name: "latin-1 csv", run: latin1CSV},
		{name: "header recovery", run: headerRecovery},
	}
}

func strictCSV(data []byte, _ []string) ([][]string, int, error) {
	return readCSV(data, false)
}

func relaxedCSV(data []byte, _ []string) ([][]string, int, error) {
	return readCSV(data, true)
}

// latin1CSV retries the relaxed tokenizer after reinterpreting the bytes as
// ISO 8859-1, which covers the common "exported from a Windows tool" case.
func latin1CSV(data []byte, _ []string) ([][]string, int, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, 0, fmt.Errorf("latin-1 decode: %w", err)
	}
	return readCSV(decoded, true)
}

// headerRecovery is the last resort: decode with invalid bytes replaced, scan
// line by line for something that looks like the header (it must mention every
// required column), and re-parse from there.
func headerRecovery(data []byte, required []string) ([][]string, int, error) {
	text := strings.ToValidUTF8(string(data), "�")
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		lower := strings.ToLower(line)
		found := true
		for _, want := range required {
			if !strings.Contains(lower, headerToken(want)) {
				found = false
				break
			}
		}
		if found {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, 0, errors.New("no line containing the expected header tokens")
	}
	return readCSV([]byte(strings.Join(lines[start:], "\n")), true)
}

// headerToken is the loose needle used when scanning for a header line. The
// email column in particular is spelled half a dozen ways across exports.
func headerToken(col string) string {
	if col == ColEmail {
		return "mail"
	}
	return strings.ToLower(col)
}

// readCSV reads every record it can, skipping lines the tokenizer rejects.
// lazy toggles the permissive quote handling of the relaxed pass.
func readCSV(data []byte, lazy bool) ([][]string, int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = lazy

	var rows [][]string
	skipped := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				skipped++
				continue
			}
			return nil, skipped, err
		}
		rows = append(rows, rec)
	}
	// A lone header row is a valid, merely empty, export.
	if len(rows) == 0 {
		return nil, skipped, errors.New("no header row recovered")
	}
	return rows, skipped, nil
}
