package embedding

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WordVectors is an in-memory word to vector table loaded from the word2vec
// text format: an optional "<count> <dim>" header line followed by one
// "<word> <v1> ... <vn>" line per word.
type WordVectors struct {
	dim  int
	vecs map[string][]float64
}

// LoadWordVectors reads a word-vector table from a file.
func LoadWordVectors(path string) (*WordVectors, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word vectors %q: %w", path, err)
	}
	defer file.Close()

	table, err := ReadWordVectors(file)
	if err != nil {
		return nil, fmt.Errorf("reading word vectors %q: %w", path, err)
	}
	return table, nil
}

// ReadWordVectors parses a word-vector table in word2vec text format.
func ReadWordVectors(r io.Reader) (*WordVectors, error) {
	scanner := bufio.NewScanner(r)
	// Pretrained tables can carry very long lines for high dimensionalities.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	table := &WordVectors{vecs: make(map[string][]float64)}

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if line == 1 && isHeader(fields) {
			continue
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected a word followed by vector components", line)
		}

		word := fields[0]
		vec := make([]float64, 0, len(fields)-1)
		for _, field := range fields[1:] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing vector component %q: %w", line, field, err)
			}
			vec = append(vec, value)
		}

		if table.dim == 0 {
			table.dim = len(vec)
		}
		if len(vec) != table.dim {
			return nil, fmt.Errorf("line %d: vector for %q has %d components, expected %d", line, word, len(vec), table.dim)
		}

		table.vecs[word] = vec
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(table.vecs) == 0 {
		return nil, fmt.Errorf("no word vectors found")
	}

	return table, nil
}

func isHeader(fields []string) bool {
	if len(fields) != 2 {
		return false
	}
	for _, field := range fields {
		if _, err := strconv.Atoi(field); err != nil {
			return false
		}
	}
	return true
}

// Dim returns the dimensionality of the table.
func (w *WordVectors) Dim() int { return w.dim }

// Len returns the number of words in the table.
func (w *WordVectors) Len() int { return len(w.vecs) }

// Lookup returns the vector for the given word.
func (w *WordVectors) Lookup(word string) ([]float64, bool) {
	vec, ok := w.vecs[word]
	return vec, ok
}
