package filtering

import (
	"context"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/corpus"
)

type companiesFilter struct {
	companies []string
}

// NewExcludedCompanies creates a filter that removes jobs from companies
// configured under exclude.companies.
func NewExcludedCompanies(companies []string) Filter {
	return &companiesFilter{companies: companies}
}

func (f *companiesFilter) Name() string { return "companies" }

func (f *companiesFilter) Validate() error { return nil }

func (f *companiesFilter) Apply(_ context.Context, jobs *corpus.Jobs) (*corpus.Jobs, Step, error) {
	initial := jobs.Len()
	if len(f.companies) == 0 {
		return jobs, Step{Initial: initial, Dropped: 0, Left: jobs.Len()}, nil
	}

	excluded := jobs.ExcludeByCompany(f.companies)

	return jobs, Step{Initial: initial, Dropped: len(excluded), Left: jobs.Len()}, nil
}
