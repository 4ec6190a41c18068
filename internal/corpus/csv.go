package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/text"
)

// Columns records which dataset headers were picked for each job field.
// Only Description is mandatory; the rest stay empty when no candidate
// header is present.
type Columns struct {
	Description string
	Title       string
	Company     string
	Location    string
	URL         string
}

// Real-world exports name the description column in many ways. Header name
// matches are weighted, and average content length breaks the remaining
// ambiguity since description columns hold the longest text.
var descriptionHeaderWeights = map[string]int{
	"job description":  6,
	"description":      5,
	"responsibilities": 4,
	"details":          3,
	"summary":          2,
	"text":             1,
}

var optionalHeaderCandidates = map[string][]string{
	"title":    {"title", "position", "job title", "role"},
	"company":  {"company", "employer", "organization"},
	"location": {"location", "city", "area", "place"},
	"url":      {"url", "link", "job_url", "posting_url"},
}

// LoadCSV reads the job dataset from a file.
func LoadCSV(path string) (*Jobs, *Columns, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset %q: %w", path, err)
	}
	defer file.Close()

	jobs, columns, err := ReadCSV(file)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset %q: %w", path, err)
	}
	return jobs, columns, nil
}

// ReadCSV parses a job dataset, detects the relevant columns and returns
// the postings with 1-based ordinal ids. Cell whitespace is normalized.
func ReadCSV(r io.Reader) (*Jobs, *Columns, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("dataset has no header row")
	}

	header := records[0]
	rows := records[1:]

	columns, err := detectColumns(header, rows)
	if err != nil {
		return nil, nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	jobs := &Jobs{}
	for i, row := range rows {
		cell := func(column string) string {
			idx, ok := index[column]
			if column == "" || !ok || idx >= len(row) {
				return ""
			}
			return text.Clean(row[idx])
		}

		raw := map[string]any{
			"id":          i + 1,
			"company":     cell(columns.Company),
			"title":       cell(columns.Title),
			"location":    cell(columns.Location),
			"url":         cell(columns.URL),
			"description": cell(columns.Description),
		}

		var job Job
		if err := mapstructure.Decode(raw, &job); err != nil {
			return nil, nil, fmt.Errorf("decoding row %d: %w", i+1, err)
		}
		jobs.Items = append(jobs.Items, &job)
	}

	return jobs, columns, nil
}

func detectColumns(header []string, rows [][]string) (*Columns, error) {
	columns := &Columns{}

	best := -1
	bestScore := 0.0
	for i, name := range header {
		lowered := strings.ToLower(strings.TrimSpace(name))

		nameScore := 0
		for keyword, weight := range descriptionHeaderWeights {
			if strings.Contains(lowered, keyword) {
				nameScore += weight
			}
		}

		total := float64(nameScore)*1000 + averageCellLength(rows, i)
		if best == -1 || total > bestScore {
			best = i
			bestScore = total
		}
	}

	if best == -1 {
		return nil, fmt.Errorf("could not detect a description column")
	}
	columns.Description = header[best]

	lookup := make(map[string]string, len(header))
	for _, name := range header {
		lookup[strings.ToLower(strings.TrimSpace(name))] = name
	}

	for field, candidates := range optionalHeaderCandidates {
		for _, candidate := range candidates {
			original, ok := lookup[candidate]
			if !ok || original == columns.Description {
				continue
			}
			switch field {
			case "title":
				columns.Title = original
			case "company":
				columns.Company = original
			case "location":
				columns.Location = original
			case "url":
				columns.URL = original
			}
			break
		}
	}

	return columns, nil
}

func averageCellLength(rows [][]string, column int) float64 {
	total := 0
	count := 0
	for _, row := range rows {
		if column >= len(row) {
			continue
		}
		cleaned := text.Clean(row[column])
		if cleaned == "" {
			continue
		}
		total += len(cleaned)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
