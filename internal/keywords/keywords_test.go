package keywords

import (
	"reflect"
	"testing"
)

func TestExtractOrdersByFrequency(t *testing.T) {
	got := Extract("python python python docker docker kubernetes", 3)
	want := []string{"python", "docker", "kubernet"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected keywords: %v", got)
	}
}

func TestExtractBreaksTiesByFirstOccurrence(t *testing.T) {
	got := Extract("docker linux docker linux vim", 3)
	want := []string{"docker", "linux", "vim"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected keywords: %v", got)
	}
}

func TestExtractSkipsStopwords(t *testing.T) {
	got := Extract("the the the go go", 5)
	want := []string{"go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected keywords: %v", got)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	description := "Building scalable backend services in Go, testing and shipping services daily"
	first := Extract(description, 5)
	second := Extract(description, 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
}

func TestExtractTruncatesToK(t *testing.T) {
	got := Extract("alpha beta gamma delta", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %v", got)
	}
}

func TestExtractNonPositiveK(t *testing.T) {
	if got := Extract("alpha beta", 0); got != nil {
		t.Fatalf("expected nil for k=0, got %v", got)
	}
}
