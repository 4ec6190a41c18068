package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/corpus"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/ranker"
)

func sampleMatches() []ranker.Match {
	return []ranker.Match{
		{
			Job:      &corpus.Job{ID: 2, Title: "Data Scientist", Company: "Globex", Location: "Remote", Description: "python models"},
			Distance: 0.1,
			Keywords: []string{"python", "model"},
		},
		{
			Job:      &corpus.Job{ID: 1, Title: "Go Developer", Company: "Acme", Location: "Berlin", Description: "go services"},
			Distance: 0.7,
			Keywords: []string{"go", "servic"},
		},
	}
}

func TestBuildAssignsRanks(t *testing.T) {
	rows := Build(sampleMatches())

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Rank != 1 || rows[1].Rank != 2 {
		t.Fatalf("unexpected ranks: %+v", rows)
	}
	if rows[0].Title != "Data Scientist" {
		t.Fatalf("expected the closest match first, got %q", rows[0].Title)
	}
	if rows[0].Keywords != "python model" {
		t.Fatalf("unexpected keywords cell: %q", rows[0].Keywords)
	}
}

func TestSnippetTruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", 500)

	got := Snippet(long)
	if len([]rune(got)) != 223 {
		t.Fatalf("expected 220 characters plus ellipsis, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected an ellipsis suffix")
	}

	if Snippet("short") != "short" {
		t.Fatalf("expected short descriptions to pass through")
	}
}

func TestWriteProducesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranked.csv")

	if err := Write(path, Build(sampleMatches())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected a header and 2 rows, got %d records", len(records))
	}
	if records[0][0] != "rank" || records[0][1] != "score" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][1] != "0.100000" {
		t.Fatalf("unexpected score cell: %q", records[1][1])
	}
}

func TestPreviewPrintsTopN(t *testing.T) {
	var buf bytes.Buffer

	Preview(&buf, Build(sampleMatches()), 1)

	out := buf.String()
	if !strings.Contains(out, "Top 1 matches:") {
		t.Fatalf("expected a heading, got %q", out)
	}
	if !strings.Contains(out, "#1 | score=0.100000 | title=Data Scientist") {
		t.Fatalf("unexpected preview line: %q", out)
	}
	if strings.Contains(out, "Go Developer") {
		t.Fatalf("did not expect the second match in a top-1 preview")
	}
}
