package text

import (
	"reflect"
	"testing"
)

func TestCleanNormalizesWhitespace(t *testing.T) {
	got := Clean("  Senior \t Go\n\nEngineer  ")
	if got != "Senior Go Engineer" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}

	if Clean(" \n\t ") != "" {
		t.Fatalf("expected whitespace-only input to clean to empty string")
	}
}

func TestTokenizeLowercasesAndSplits(t *testing.T) {
	got := Tokenize("Go/Python, gRPC-based (v2)")
	want := []string{"go", "python", "grpc", "based", "v2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: %v", got)
	}
}

func TestTermsDropsStopwords(t *testing.T) {
	got := Terms("Experienced with Python and the machine learning stack")
	want := []string{"experienced", "python", "machine", "learning", "stack"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected terms: %v", got)
	}
}

func TestStemsReducesToRoots(t *testing.T) {
	got := Stems("running runs runner")
	if len(got) != 3 {
		t.Fatalf("expected 3 stems, got %v", got)
	}
	if got[0] != got[1] {
		t.Fatalf("expected 'running' and 'runs' to share a stem, got %q and %q", got[0], got[1])
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("the") {
		t.Fatalf("expected 'the' to be a stopword")
	}
	if IsStopword("python") {
		t.Fatalf("did not expect 'python' to be a stopword")
	}
}
