// Package corpus loads and holds the job postings being ranked.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Job is a single posting loaded from the dataset. The ID is the 1-based
// row ordinal and is stable within a run.
type Job struct {
	ID          int    `json:"id"`
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	Location    string `json:"location,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

type Jobs struct {
	Items []*Job
}

type ExcludedJobs struct {
	Items []*ExcludedJob
}

type ExcludedJob struct {
	ID         int       `json:"id"`
	Company    string    `json:"company,omitempty"`
	Title      string    `json:"title,omitempty"`
	ExcludedAt time.Time `json:"excluded_at"`
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id int) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

// Exclude removes jobs from the list by id and returns the removed ids.
// The remaining jobs keep their original order, which the ranking relies on
// for deterministic tie-breaking.
func (j *Jobs) Exclude(ids []int) []int {
	targets := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		targets[id] = struct{}{}
	}

	var excluded []int
	kept := j.Items[:0]
	for _, job := range j.Items {
		if _, ok := targets[job.ID]; ok {
			excluded = append(excluded, job.ID)
			continue
		}
		kept = append(kept, job)
	}
	j.Items = kept

	return excluded
}

// ExcludeByCompany removes jobs whose company matches any of the provided
// names, ignoring case and surrounding whitespace.
func (j *Jobs) ExcludeByCompany(companies []string) []int {
	targets := make(map[string]struct{}, len(companies))
	for _, company := range companies {
		targets[strings.ToLower(strings.TrimSpace(company))] = struct{}{}
	}

	var ids []int
	for _, job := range j.Items {
		if _, ok := targets[strings.ToLower(strings.TrimSpace(job.Company))]; ok {
			ids = append(ids, job.ID)
		}
	}

	return j.Exclude(ids)
}

func (j *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups postings by company for a quick overview.
func (j *Jobs) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range j.Items {
		key := job.Company
		if key == "" {
			key = "(unknown company)"
		}
		report[key] = append(report[key], map[string]string{
			"id":       fmt.Sprintf("%d", job.ID),
			"title":    job.Title,
			"location": job.Location,
			"url":      job.URL,
		})
	}
	return report
}

func (j *Jobs) ToExcluded() *ExcludedJobs {
	excluded := &ExcludedJobs{}
	for _, job := range j.Items {
		excluded.Items = append(excluded.Items, &ExcludedJob{
			ID:         job.ID,
			Company:    job.Company,
			Title:      job.Title,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

func GetExcludedJobsFromFile(path string) (*ExcludedJobs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedJobs{}, nil
	}

	var excluded ExcludedJobs
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedJobs) Append(s *ExcludedJobs) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedJobs) IDs() []int {
	ids := make([]int, 0, len(e.Items))
	for _, job := range e.Items {
		ids = append(ids, job.ID)
	}
	return ids
}

func (e *ExcludedJobs) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
