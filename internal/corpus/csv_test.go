package corpus

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestReadCSVDetectsColumnsByName(t *testing.T) {
	input := strings.Join([]string{
		"Company,Job Title,Location,Job Description",
		"Acme,Go Developer,Berlin,\"Build Go services\nand ship them\"",
		"Globex,Data Scientist,Remote,Train python models",
	}, "\n")

	jobs, columns, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if columns.Description != "Job Description" {
		t.Fatalf("unexpected description column: %q", columns.Description)
	}
	if columns.Title != "Job Title" || columns.Company != "Company" || columns.Location != "Location" {
		t.Fatalf("unexpected columns: %+v", columns)
	}

	if jobs.Len() != 2 {
		t.Fatalf("expected 2 jobs, got %d", jobs.Len())
	}

	first := jobs.Items[0]
	if first.ID != 1 {
		t.Fatalf("expected ordinal id 1, got %d", first.ID)
	}
	if first.Description != "Build Go services and ship them" {
		t.Fatalf("expected normalized whitespace, got %q", first.Description)
	}
	if first.Company != "Acme" || first.Title != "Go Developer" {
		t.Fatalf("unexpected job: %+v", first)
	}
}

func TestReadCSVDetectsDescriptionByContentLength(t *testing.T) {
	input := strings.Join([]string{
		"a,b",
		"x,this column holds much longer free text that looks like a job description",
		"y,another long piece of text with many words in it for the average",
	}, "\n")

	_, columns, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if columns.Description != "b" {
		t.Fatalf("expected column b, got %q", columns.Description)
	}
}

func TestReadCSVToleratesRaggedRows(t *testing.T) {
	input := strings.Join([]string{
		"company,description",
		"Acme,build things",
		"Globex",
	}, "\n")

	jobs, _, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs.Len() != 2 {
		t.Fatalf("expected 2 jobs, got %d", jobs.Len())
	}
	if jobs.Items[1].Description != "" {
		t.Fatalf("expected empty description for short row, got %q", jobs.Items[1].Description)
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	if _, _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatalf("expected an error for an empty dataset")
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, _, err := LoadCSV("does/not/exist.csv")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}
