// Package filtering removes postings that must not take part in the
// ranking. Steps run sequentially and report how many jobs they dropped.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/corpus"
)

// Filter represents a single filtering step applied to jobs before ranking.
type Filter interface {
	Name() string
	Validate() error
	Apply(ctx context.Context, jobs *corpus.Jobs) (*corpus.Jobs, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

func New(steps []Filter, logger *zap.Logger) *Filtering {
	return &Filtering{steps: steps, logger: logger}
}

// RunFilters executes the configured steps sequentially, returning the
// resulting jobs list.
func (f *Filtering) RunFilters(ctx context.Context, jobs *corpus.Jobs) (*corpus.Jobs, error) {
	for _, step := range f.steps {
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range f.steps {
		next, info, err := step.Apply(ctx, jobs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		f.logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		jobs = next
	}

	return jobs, nil
}
