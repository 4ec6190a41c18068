package embedding

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/text"
)

type pretrained struct {
	table *WordVectors
}

// NewPretrained creates the static word-embedding strategy. Every document
// vector is the IDF-weighted mean of the vectors of its in-vocabulary
// tokens, so common tokens contribute less. Document frequencies are
// computed over the corpus plus the query.
func NewPretrained(table *WordVectors) Embedder {
	return &pretrained{table: table}
}

func (p *pretrained) Name() string { return "pretrained" }

func (p *pretrained) EmbedAll(docs []string, query string) (*Result, error) {
	tokens := make([][]string, 0, len(docs)+1)
	for _, doc := range docs {
		tokens = append(tokens, text.Terms(doc))
	}
	tokens = append(tokens, text.Terms(query))

	idf := inverseDocumentFrequencies(tokens)

	result := &Result{Docs: make([][]float64, len(docs))}
	for i := range docs {
		result.Docs[i] = p.weightedMean(tokens[i], idf)
	}

	result.Query = p.weightedMean(tokens[len(tokens)-1], idf)
	if result.Query == nil {
		return nil, fmt.Errorf("query document: %w", ErrNoUsableTokens)
	}

	return result, nil
}

// weightedMean combines token vectors into one document vector. Tokens
// missing from the table are skipped silently. Returns nil when no token is
// in vocabulary.
func (p *pretrained) weightedMean(tokens []string, idf map[string]float64) []float64 {
	acc := make([]float64, p.table.Dim())
	var total float64

	for _, token := range tokens {
		vec, ok := p.table.Lookup(token)
		if !ok {
			continue
		}
		weight := idf[token]
		floats.AddScaled(acc, weight, vec)
		total += weight
	}

	if total == 0 {
		return nil
	}

	floats.Scale(1/total, acc)
	return acc
}

// inverseDocumentFrequencies computes smoothed IDF weights over the whole
// collection: log((1+n)/(1+df)) + 1.
func inverseDocumentFrequencies(docTokens [][]string) map[string]float64 {
	df := make(map[string]int)
	for _, tokens := range docTokens {
		seen := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			df[token]++
		}
	}

	n := len(docTokens)
	idf := make(map[string]float64, len(df))
	for token, count := range df {
		idf[token] = math.Log(float64(1+n)/float64(1+count)) + 1
	}
	return idf
}
