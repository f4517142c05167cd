package dashboard

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/student_support/internal/models"
)

func TestExportCSVEscapesCommaAndQuote(t *testing.T) {
	rows := []models.Submission{{
		ID:           "abc",
		Timestamp:    1700000000000,
		Mode:         models.ModeAnonymous,
		IssueType:    "academic",
		Urgency:      models.UrgencyLow,
		ResponsePref: models.ResponseMessage,
		ConsentLevel: models.ConsentNone,
		Message:      `I said "help", please`,
		Status:       models.StatusNew,
	}}

	out := ExportCSV(rows)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines: %q", len(lines), out)
	}
	wantHeader := "id,timestamp,mode,student_initiated,issueType,urgency,responsePref,consentLevel,crisisFlag,message,status"
	if lines[0] != wantHeader {
		t.Errorf("header = %q", lines[0])
	}
	wantRow := `abc,1700000000000,anonymous,true,academic,low,message,none,false,"I said ""help"", please",new`
	if lines[1] != wantRow {
		t.Errorf("row =\n%q\nwant\n%q", lines[1], wantRow)
	}
}

func TestExportCSVStudentInitiatedAndNewlines(t *testing.T) {
	rows := []models.Submission{
		{ID: "n1", Mode: models.ModeNamed, Message: "line1\nline2", Urgency: models.UrgencyHigh, CrisisFlag: true},
	}
	out := ExportCSV(rows)
	if !strings.Contains(out, `n1,0,named,false,,high,,,true,"line1`+"\n"+`line2",`) {
		t.Fatalf("unexpected csv: %q", out)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	if got := ExportCSV(nil); got != strings.Join(CSVHeader, ",") {
		t.Fatalf("empty export = %q", got)
	}
}

func TestCSVEscape(t *testing.T) {
	tests := map[string]string{
		"plain":      "plain",
		"a,b":        `"a,b"`,
		`say "hi"`:   `"say ""hi"""`,
		"multi\nrow": "\"multi\nrow\"",
		" leading":   " leading",
		"":           "",
	}
	for in, want := range tests {
		if got := csvEscape(in); got != want {
			t.Errorf("csvEscape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExportJSONIndentedAndExact(t *testing.T) {
	rows := seeded(t)
	data, err := ExportJSON(rows)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n  {\n    \"id\": \"seed-high\"") {
		t.Fatalf("unexpected indentation: %s", data[:40])
	}
	var decoded []models.Submission
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(decoded, rows) {
		t.Fatalf("decoded export differs from input")
	}
}

func TestExportJSONEmpty(t *testing.T) {
	data, err := ExportJSON(nil)
	if err != nil || string(data) != "[]" {
		t.Fatalf("ExportJSON(nil) = %q, %v", data, err)
	}
}
