// Package report renders ranked matches as a CSV table and a console
// preview.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/ranker"
)

// snippetLength keeps description previews short enough for spreadsheets.
const snippetLength = 220

// Row is one line of the ranked output table.
type Row struct {
	Rank     int
	Score    float64
	Title    string
	Company  string
	Location string
	URL      string
	Keywords string
	Snippet  string
}

// Build converts ranked matches into output rows. The score column carries
// the cosine distance, so lower scores are better matches.
func Build(matches []ranker.Match) []Row {
	rows := make([]Row, 0, len(matches))
	for i, match := range matches {
		rows = append(rows, Row{
			Rank:     i + 1,
			Score:    match.Distance,
			Title:    match.Job.Title,
			Company:  match.Job.Company,
			Location: match.Job.Location,
			URL:      match.Job.URL,
			Keywords: strings.Join(match.Keywords, " "),
			Snippet:  Snippet(match.Job.Description),
		})
	}
	return rows
}

// Write stores the rows as a CSV table.
func Write(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"rank", "score", "title", "company", "location", "url", "keywords", "snippet"}); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Rank),
			strconv.FormatFloat(row.Score, 'f', 6, 64),
			row.Title,
			row.Company,
			row.Location,
			row.URL,
			row.Keywords,
			row.Snippet,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Preview prints the first n rows in a compact one-line-per-match format.
func Preview(w io.Writer, rows []Row, n int) {
	if n > len(rows) {
		n = len(rows)
	}

	fmt.Fprintf(w, "Top %d matches:\n", n)
	for _, row := range rows[:n] {
		fmt.Fprintf(w, "#%d | score=%.6f | title=%s | company=%s | location=%s | keywords=%s\n",
			row.Rank, row.Score, row.Title, row.Company, row.Location, row.Keywords)
	}
}

// Snippet returns the head of a description, marking truncation with an
// ellipsis.
func Snippet(description string) string {
	runes := []rune(description)
	if len(runes) <= snippetLength {
		return description
	}
	return string(runes[:snippetLength]) + "..."
}
