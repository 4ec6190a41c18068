package corpus

import (
	"fmt"
	"os"
	"strings"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/text"
)

// ResumeSource describes where the resume text comes from. When File is set
// it takes precedence over Text.
type ResumeSource struct {
	// File points to a plain-text resume file.
	File string
	// Text is an inline resume provided via configuration.
	Text string
}

// LoadResume returns the resume text with normalized whitespace. The text
// may come out empty; deciding whether that is fatal belongs to the ranking
// step, which treats it as insufficient data.
func LoadResume(src ResumeSource) (string, error) {
	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading resume from file %q: %w", file, err)
		}
		src.Text = string(data)
	}

	return text.Clean(src.Text), nil
}
