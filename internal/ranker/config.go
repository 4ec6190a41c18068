package ranker

import (
	"errors"
	"fmt"
)

// Ranking strategies.
const (
	// StrategyCorpus trains a paragraph vector model on the job corpus and
	// infers the resume vector from it.
	StrategyCorpus = "corpus"
	// StrategyPretrained combines pretrained static word vectors with IDF
	// weights computed over corpus plus resume.
	StrategyPretrained = "pretrained"
)

var (
	// ErrInsufficientData marks an empty corpus or an empty resume.
	ErrInsufficientData = errors.New("insufficient data for ranking")
	// ErrInvalidConfig marks a configuration rejected before computation.
	ErrInvalidConfig = errors.New("invalid matching configuration")
)

// Config holds the knobs of a single ranking invocation.
type Config struct {
	Strategy     string
	VectorSize   int
	Epochs       int
	MinCount     int
	Negative     int
	LearningRate float64
	Seed         int64
	TopKeywords  int
	// VectorsFile is the word2vec text-format table used by the
	// pretrained strategy.
	VectorsFile string
}

// DefaultConfig returns the documented defaults of the corpus strategy.
func DefaultConfig() Config {
	return Config{
		Strategy:     StrategyCorpus,
		VectorSize:   50,
		Epochs:       40,
		MinCount:     2,
		Negative:     5,
		LearningRate: 0.025,
		Seed:         1,
		TopKeywords:  8,
	}
}

// Validate rejects unusable configurations before any computation starts.
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyCorpus, StrategyPretrained:
	default:
		return fmt.Errorf("%w: unknown strategy %q (use %q or %q)", ErrInvalidConfig, c.Strategy, StrategyCorpus, StrategyPretrained)
	}

	if c.VectorSize <= 0 {
		return fmt.Errorf("%w: vector size must be positive, got %d", ErrInvalidConfig, c.VectorSize)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be positive, got %d", ErrInvalidConfig, c.Epochs)
	}
	if c.MinCount < 0 {
		return fmt.Errorf("%w: min count must not be negative, got %d", ErrInvalidConfig, c.MinCount)
	}
	if c.Negative < 0 {
		return fmt.Errorf("%w: negative sample count must not be negative, got %d", ErrInvalidConfig, c.Negative)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("%w: learning rate must be positive, got %g", ErrInvalidConfig, c.LearningRate)
	}
	if c.TopKeywords <= 0 {
		return fmt.Errorf("%w: top keywords must be positive, got %d", ErrInvalidConfig, c.TopKeywords)
	}
	if c.Strategy == StrategyPretrained && c.VectorsFile == "" {
		return fmt.Errorf("%w: the pretrained strategy requires a vectors file", ErrInvalidConfig)
	}

	return nil
}
