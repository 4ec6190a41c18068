// Package embedding maps documents into fixed-length vectors in a shared
// semantic space. Two interchangeable strategies are provided: a paragraph
// vector model trained on the corpus itself and a weighted mean over a
// pretrained word-vector table.
package embedding

import "errors"

// ErrNoUsableTokens marks a document whose text produced no tokens the
// strategy can work with (everything was a stopword or out of vocabulary).
var ErrNoUsableTokens = errors.New("no usable tokens after preprocessing")

// Embedder turns a document collection plus a single query document into
// vectors in one shared space.
type Embedder interface {
	Name() string
	// EmbedAll returns one vector per document and a vector for the query.
	// A nil document vector means the document had no usable tokens; the
	// caller decides how to handle that. A query without usable tokens is
	// an error wrapping ErrNoUsableTokens.
	EmbedAll(docs []string, query string) (*Result, error)
}

// Result holds the vectors produced by a single EmbedAll call.
type Result struct {
	Docs  [][]float64
	Query []float64
}
