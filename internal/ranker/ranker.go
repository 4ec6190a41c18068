// Package ranker orders job postings by semantic closeness to a resume.
// The embedding model is owned by a single Rank invocation; nothing is
// shared across runs.
package ranker

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/corpus"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/embedding"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/keywords"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/logger"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/text"
)

// maxLogLen caps text previews in debug logs.
const maxLogLen = 120

// Match is one ranked posting. Distance is the cosine distance between the
// resume vector and the job vector; lower means closer.
type Match struct {
	Job      *corpus.Job
	Distance float64
	Keywords []string
}

type Ranker struct {
	cfg    Config
	logger *zap.Logger
}

// New validates the configuration and creates a ranker. Validation happens
// here so that no computation starts on an invalid setup.
func New(cfg Config, logger *zap.Logger) (*Ranker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Ranker{cfg: cfg, logger: logger}, nil
}

// Rank embeds the resume and every usable job description in a shared
// vector space and returns matches sorted by ascending distance. The sort
// is stable: equal distances keep the corpus order. Jobs that cannot be
// vectorized are skipped with a warning; a resume that cannot be
// vectorized aborts the run.
func (r *Ranker) Rank(resumeText string, jobs *corpus.Jobs) ([]Match, error) {
	resumeText = text.Clean(resumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("%w: resume text is empty after trimming", ErrInsufficientData)
	}

	r.logger.Debug("resume prepared",
		zap.Int("length", utf8.RuneCountInString(resumeText)),
		zap.String("preview", logger.TruncateForLog(resumeText, maxLogLen)),
	)

	usable := make([]*corpus.Job, 0, jobs.Len())
	for _, job := range jobs.Items {
		if text.Clean(job.Description) == "" {
			continue
		}
		usable = append(usable, job)
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("%w: the dataset has no job descriptions; add job descriptions and retry", ErrInsufficientData)
	}

	embedder, err := r.embedder()
	if err != nil {
		return nil, err
	}

	docs := make([]string, len(usable))
	for i, job := range usable {
		docs[i] = job.Description
	}

	r.logger.Debug("embedding documents",
		zap.String("strategy", embedder.Name()),
		zap.Int("jobs", len(docs)),
	)

	result, err := embedder.EmbedAll(docs, resumeText)
	if err != nil {
		return nil, fmt.Errorf("embedding resume and corpus: %w", err)
	}

	matches := make([]Match, 0, len(usable))
	for i, job := range usable {
		vec := result.Docs[i]
		if vec == nil {
			r.logger.Warn("skipping job that could not be vectorized",
				zap.Int("job_id", job.ID),
				zap.String("title", job.Title),
				zap.String("company", job.Company),
			)
			continue
		}

		matches = append(matches, Match{
			Job:      job,
			Distance: CosineDistance(result.Query, vec),
			Keywords: keywords.Extract(job.Description, r.cfg.TopKeywords),
		})
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("vectorizing jobs: %w", embedding.ErrNoUsableTokens)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	return matches, nil
}

func (r *Ranker) embedder() (embedding.Embedder, error) {
	switch r.cfg.Strategy {
	case StrategyCorpus:
		return embedding.NewDoc2Vec(embedding.Doc2VecConfig{
			VectorSize:   r.cfg.VectorSize,
			Epochs:       r.cfg.Epochs,
			MinCount:     r.cfg.MinCount,
			Negative:     r.cfg.Negative,
			LearningRate: r.cfg.LearningRate,
			Seed:         r.cfg.Seed,
		}), nil
	case StrategyPretrained:
		table, err := embedding.LoadWordVectors(r.cfg.VectorsFile)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("loaded word vectors",
			zap.Int("words", table.Len()),
			zap.Int("dimensions", table.Dim()),
		)
		return embedding.NewPretrained(table), nil
	default:
		// Unreachable after Validate; kept as a guard.
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, r.cfg.Strategy)
	}
}

// CosineDistance is 1 minus the cosine similarity of u and v. A zero-norm
// vector is at the maximal distance 1.0 from everything rather than NaN.
func CosineDistance(u, v []float64) float64 {
	nu := floats.Norm(u, 2)
	nv := floats.Norm(v, 2)
	if nu == 0 || nv == 0 {
		return 1.0
	}
	return 1 - floats.Dot(u, v)/(nu*nv)
}
