package corpus

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadResumeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("  Experienced\n Go\tdeveloper \n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := LoadResume(ResumeSource{File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Experienced Go developer" {
		t.Fatalf("unexpected resume text: %q", got)
	}
}

func TestLoadResumeFileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("from file"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := LoadResume(ResumeSource{File: path, Text: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from file" {
		t.Fatalf("expected file content, got %q", got)
	}
}

func TestLoadResumeMissingFile(t *testing.T) {
	_, err := LoadResume(ResumeSource{File: "does/not/exist.txt"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestLoadResumeWhitespaceOnly(t *testing.T) {
	got, err := LoadResume(ResumeSource{Text: " \n\t "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}
