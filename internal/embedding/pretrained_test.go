package embedding

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

const fixtureVectors = `python 1.0 0.0
machine 0.9 0.1
learning 0.9 0.1
data 0.8 0.2
scientist 0.8 0.2
developer 0.7 0.3
experience 0.5 0.5
experienced 0.5 0.5
background 0.5 0.5
go 0.0 1.0
backend 0.1 0.9
engineer 0.1 0.9
distributed 0.1 0.9
systems 0.1 0.9
senior 0.2 0.8
`

func fixtureTable(t *testing.T) *WordVectors {
	t.Helper()
	table, err := ReadWordVectors(strings.NewReader(fixtureVectors))
	if err != nil {
		t.Fatalf("building fixture table: %v", err)
	}
	return table
}

func TestPretrainedRanksCloserDocumentFirst(t *testing.T) {
	docs := []string{
		"Data scientist with Python and machine learning experience",
		"Senior backend engineer, Go and distributed systems",
	}
	query := "Experienced Python developer with machine learning background"

	embedder := NewPretrained(fixtureTable(t))
	result, err := embedder.EmbedAll(docs, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Docs) != 2 {
		t.Fatalf("expected 2 document vectors, got %d", len(result.Docs))
	}
	for i, vec := range result.Docs {
		if vec == nil {
			t.Fatalf("expected document %d to be vectorized", i)
		}
	}

	first := cosine(result.Query, result.Docs[0])
	second := cosine(result.Query, result.Docs[1])
	if first <= second {
		t.Fatalf("expected the python job to be more similar: %f vs %f", first, second)
	}
}

func TestPretrainedSkipsOutOfVocabularyDocument(t *testing.T) {
	docs := []string{
		"Python developer",
		"zzz qqq www",
	}

	embedder := NewPretrained(fixtureTable(t))
	result, err := embedder.EmbedAll(docs, "machine learning engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Docs[0] == nil {
		t.Fatalf("expected first document to be vectorized")
	}
	if result.Docs[1] != nil {
		t.Fatalf("expected second document to have no vector")
	}
}

func TestPretrainedQueryWithoutTokensFails(t *testing.T) {
	embedder := NewPretrained(fixtureTable(t))

	_, err := embedder.EmbedAll([]string{"python"}, "zzz qqq")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, ErrNoUsableTokens) {
		t.Fatalf("expected ErrNoUsableTokens, got %v", err)
	}
}

func TestPretrainedIsDeterministic(t *testing.T) {
	docs := []string{"python machine learning", "go distributed systems"}
	query := "python developer"

	embedder := NewPretrained(fixtureTable(t))
	first, err := embedder.EmbedAll(docs, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := embedder.EmbedAll(docs, query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results across runs")
	}
}

func cosine(u, v []float64) float64 {
	var dot, nu, nv float64
	for i := range u {
		dot += u[i] * v[i]
		nu += u[i] * u[i]
		nv += v[i] * v[i]
	}
	if nu == 0 || nv == 0 {
		return 0
	}
	return dot / (math.Sqrt(nu) * math.Sqrt(nv))
}
