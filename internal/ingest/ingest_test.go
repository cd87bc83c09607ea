package ingest

import (
	"strings"
	"testing"
)

func TestParseCleanExport(t *testing.T) {
	data := []byte("First Name,Last Name,Company,Position\n" +
		"Sarah,Chen,TechCorp,Engineering Manager\n" +
		"Miguel,Santos,FinServe,Analyst\n")

	res, err := New().Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Strategy != "strict csv" {
		t.Fatalf("strategy = %q, want strict csv", res.Strategy)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(res.Records))
	}
	if res.Records[0][ColFirstName] != "Sarah" || res.Records[0][ColCompany] != "TechCorp" {
		t.Fatalf("record[0] = %v", res.Records[0])
	}
}

func TestParseNormalizesAndAliasesHeaders(t *testing.T) {
	data := []byte("  first NAME ,surname,E-mail Address,Company Name,Job Title\n" +
		"Sarah,Chen,sarah@techcorp.example,TechCorp,Manager\n")

	res, err := New().Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rec := res.Records[0]
	if rec[ColFirstName] != "Sarah" {
		t.Errorf("whitespace header did not normalize: %v", rec)
	}
	if rec[ColLastName] != "Chen" {
		t.Errorf("surname alias missing: %v", rec)
	}
	if rec[ColEmail] != "sarah@techcorp.example" {
		t.Errorf("e-mail alias missing: %v", rec)
	}
	if rec[ColCompany] != "TechCorp" || rec[ColPosition] != "Manager" {
		t.Errorf("company/position aliases missing: %v", rec)
	}
}

func TestParseSubstringRescue(t *testing.T) {
	data := []byte("Member First Name,Member Last Name\n" +
		"Sarah,Chen\n")

	res, err := New().Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Records[0][ColFirstName] != "Sarah" || res.Records[0][ColLastName] != "Chen" {
		t.Fatalf("substring rescue failed: %v", res.Records[0])
	}
}

func TestParseSkipsMalformedRows(t *testing.T) {
	data := []byte("First Name,Last Name\n" +
		"Sarah,Chen\n" +
		"Bob,\"Smith\n") // unterminated quote

	res, err := New().Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(res.Records))
	}
	if res.SkippedRows != 1 {
		t.Fatalf("skipped = %d, want 1", res.SkippedRows)
	}
}

func TestParseHeaderOnlyExport(t *testing.T) {
	res, err := New().Parse([]byte("First Name,Last Name,Company\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Records) != 0 {
		t.Fatalf("records = %d, want 0", len(res.Records))
	}
	if res.Strategy != "strict csv" {
		t.Fatalf("strategy = %q, want strict csv", res.Strategy)
	}
}

func TestParseDropsBlankIdentityRows(t *testing.T) {
	data := []byte("First Name,Last Name,Company\n" +
		"Sarah,Chen,TechCorp\n" +
		",,Orphan Co\n" +
		"Miguel,Santos,FinServe\n")

	res, err := New().Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2 (blank identity row dropped)", len(res.Records))
	}
}

func TestParseHeaderRecoverySkipsPreamble(t *testing.T) {
	data := []byte("Network export generated 2024-01-01\n" +
		"Total connections: 2\n" +
		"\n" +
		"First Name,Last Name,Company\n" +
		"Sarah,Chen,TechCorp\n" +
		"Miguel,Santos,FinServe\n")

	res, err := New().Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Strategy != "header recovery" {
		t.Fatalf("strategy = %q, want header recovery", res.Strategy)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(res.Records))
	}
}

func TestParseHeaderRecoveryEmailToken(t *testing.T) {
	// The connection flavor requires an email column; the recovery scan matches
	// it via the loose "mail" token even when the header spells it "E-Mail".
	data := []byte("Notes first line last week\n" +
		"First Name,Last Name,E-Mail\n" +
		"Sarah,Chen,sarah@techcorp.example\n")

	res, err := New(ConnectionColumns...).Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Records[0][ColEmail] != "sarah@techcorp.example" {
		t.Fatalf("record = %v", res.Records[0])
	}
}

func TestParseErrorNamesMissingColumns(t *testing.T) {
	data := []byte("Foo,Bar\nx,y\n")

	_, err := New().Parse(data)
	if err == nil {
		t.Fatal("expected error for export without identity columns")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if len(pe.Required) != 2 || pe.Required[0] != ColFirstName || pe.Required[1] != ColLastName {
		t.Fatalf("required = %v", pe.Required)
	}
	msg := err.Error()
	for _, want := range []string{ColFirstName, ColLastName, "Foo", "Bar"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
	if len(pe.Attempts) == 0 {
		t.Error("expected per-strategy attempt detail")
	}
}

func TestLatin1Strategy(t *testing.T) {
	// 0xE9 is é in ISO 8859-1 and invalid on its own in UTF-8.
	data := []byte("First Name,Last Name\nJos\xe9,Garc\xeda\n")

	rows, skipped, err := latin1CSV(data, nil)
	if err != nil {
		t.Fatalf("latin1CSV: %v", err)
	}
	if skipped != 0 || len(rows) != 2 {
		t.Fatalf("rows=%d skipped=%d", len(rows), skipped)
	}
	if rows[1][0] != "José" || rows[1][1] != "García" {
		t.Fatalf("decoded row = %v", rows[1])
	}
}

func TestNormalizeColumn(t *testing.T) {
	tests := []struct{ in, want string }{
		{"first name", "First Name"},
		{"  CONNECTED   ON  ", "Connected On"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := normalizeColumn(tc.in); got != tc.want {
			t.Errorf("normalizeColumn(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
