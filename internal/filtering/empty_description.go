package filtering

import (
	"context"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/corpus"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/text"
)

type emptyDescriptionFilter struct{}

// NewEmptyDescription creates a filter that removes jobs without description
// text. Such rows cannot be ranked and are skipped, not treated as errors.
func NewEmptyDescription() Filter {
	return &emptyDescriptionFilter{}
}

func (f *emptyDescriptionFilter) Name() string { return "empty_description" }

func (f *emptyDescriptionFilter) Validate() error { return nil }

func (f *emptyDescriptionFilter) Apply(_ context.Context, jobs *corpus.Jobs) (*corpus.Jobs, Step, error) {
	initial := jobs.Len()

	var ids []int
	for _, job := range jobs.Items {
		if text.Clean(job.Description) == "" {
			ids = append(ids, job.ID)
		}
	}
	excluded := jobs.Exclude(ids)

	return jobs, Step{Initial: initial, Dropped: len(excluded), Left: jobs.Len()}, nil
}
