package embedding

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/text"
)

// Doc2VecConfig holds the hyperparameters of the trained-corpus strategy.
type Doc2VecConfig struct {
	// VectorSize is the dimensionality of document and word vectors.
	VectorSize int
	// Epochs is the number of passes over the corpus during training and
	// over the query tokens during inference.
	Epochs int
	// MinCount drops corpus tokens appearing fewer times than this from
	// the vocabulary.
	MinCount int
	// Negative is the number of negative samples drawn per positive pair.
	Negative int
	// LearningRate is the starting learning rate; it decays linearly over
	// training.
	LearningRate float64
	// Seed makes training and inference reproducible. Training is
	// single-threaded, so a fixed seed fixes the whole run.
	Seed int64
}

type doc2vec struct {
	cfg Doc2VecConfig
}

// NewDoc2Vec creates the trained-corpus strategy: a PV-DBOW paragraph
// vector model with negative sampling, trained on the job descriptions.
// The query vector is inferred afterwards against frozen word weights.
// Rankings on very small corpora are noisy; that is a property of the
// method, not of this implementation.
func NewDoc2Vec(cfg Doc2VecConfig) Embedder {
	return &doc2vec{cfg: cfg}
}

func (d *doc2vec) Name() string { return "doc2vec" }

func (d *doc2vec) EmbedAll(docs []string, query string) (*Result, error) {
	docTokens := make([][]string, len(docs))
	counts := make(map[string]int)
	for i, doc := range docs {
		docTokens[i] = text.Terms(doc)
		for _, token := range docTokens[i] {
			counts[token]++
		}
	}

	m, err := newModel(d.cfg, len(docs), docTokens, counts)
	if err != nil {
		return nil, err
	}

	m.train(docTokens)

	result := &Result{Docs: make([][]float64, len(docs))}
	for i := range docs {
		if m.knownCount(docTokens[i]) > 0 {
			result.Docs[i] = m.docVecs[i]
		}
	}

	query = text.Clean(query)
	queryVec, err := m.infer(text.Terms(query))
	if err != nil {
		return nil, fmt.Errorf("query document: %w", err)
	}
	result.Query = queryVec

	return result, nil
}

type model struct {
	cfg   Doc2VecConfig
	vocab map[string]int

	docVecs  [][]float64
	wordVecs [][]float64

	// cumulative unigram^0.75 weights for negative sampling.
	cum []float64
	rng *rand.Rand
}

func newModel(cfg Doc2VecConfig, docCount int, docTokens [][]string, counts map[string]int) (*model, error) {
	// Vocabulary in first-appearance order keeps the run deterministic.
	vocab := make(map[string]int)
	var vocabCounts []int
	for _, tokens := range docTokens {
		for _, token := range tokens {
			if counts[token] < cfg.MinCount {
				continue
			}
			if _, ok := vocab[token]; ok {
				continue
			}
			vocab[token] = len(vocabCounts)
			vocabCounts = append(vocabCounts, counts[token])
		}
	}

	if len(vocab) == 0 {
		return nil, fmt.Errorf("corpus vocabulary: %w", ErrNoUsableTokens)
	}

	m := &model{
		cfg:   cfg,
		vocab: vocab,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		cum:   make([]float64, len(vocabCounts)),
	}

	var running float64
	for i, count := range vocabCounts {
		running += math.Pow(float64(count), 0.75)
		m.cum[i] = running
	}

	m.docVecs = make([][]float64, docCount)
	for i := range m.docVecs {
		m.docVecs[i] = m.randomVector()
	}
	m.wordVecs = make([][]float64, len(vocab))
	for i := range m.wordVecs {
		m.wordVecs[i] = make([]float64, cfg.VectorSize)
	}

	return m, nil
}

func (m *model) randomVector() []float64 {
	vec := make([]float64, m.cfg.VectorSize)
	for i := range vec {
		vec[i] = (m.rng.Float64() - 0.5) / float64(m.cfg.VectorSize)
	}
	return vec
}

func (m *model) knownCount(tokens []string) int {
	known := 0
	for _, token := range tokens {
		if _, ok := m.vocab[token]; ok {
			known++
		}
	}
	return known
}

func (m *model) train(docTokens [][]string) {
	total := 0
	for _, tokens := range docTokens {
		total += m.knownCount(tokens)
	}
	total *= m.cfg.Epochs
	if total == 0 {
		return
	}

	step := 0
	for epoch := 0; epoch < m.cfg.Epochs; epoch++ {
		for doc, tokens := range docTokens {
			for _, token := range tokens {
				target, ok := m.vocab[token]
				if !ok {
					continue
				}
				m.update(m.docVecs[doc], target, m.alpha(step, total), false)
				step++
			}
		}
	}
}

// infer trains a fresh vector for an unseen document against frozen word
// weights.
func (m *model) infer(tokens []string) ([]float64, error) {
	known := make([]int, 0, len(tokens))
	for _, token := range tokens {
		if idx, ok := m.vocab[token]; ok {
			known = append(known, idx)
		}
	}
	if len(known) == 0 {
		return nil, ErrNoUsableTokens
	}

	vec := m.randomVector()
	total := len(known) * m.cfg.Epochs
	step := 0
	for epoch := 0; epoch < m.cfg.Epochs; epoch++ {
		for _, target := range known {
			m.update(vec, target, m.alpha(step, total), true)
			step++
		}
	}
	return vec, nil
}

func (m *model) alpha(step, total int) float64 {
	progress := float64(step) / float64(total)
	alpha := m.cfg.LearningRate * (1 - progress)
	if min := m.cfg.LearningRate * 1e-4; alpha < min {
		alpha = min
	}
	return alpha
}

// update performs one negative-sampling gradient step on vec for the given
// target word. With frozen set, word weights are left untouched, which is
// what inference for an unseen document requires.
func (m *model) update(vec []float64, target int, alpha float64, frozen bool) {
	grad := make([]float64, m.cfg.VectorSize)

	for n := 0; n <= m.cfg.Negative; n++ {
		word := target
		label := 1.0
		if n > 0 {
			word = m.sample()
			if word == target {
				continue
			}
			label = 0.0
		}

		out := m.wordVecs[word]
		g := alpha * (label - sigmoid(floats.Dot(vec, out)))
		floats.AddScaled(grad, g, out)
		if !frozen {
			floats.AddScaled(out, g, vec)
		}
	}

	floats.Add(vec, grad)
}

func (m *model) sample() int {
	top := m.cum[len(m.cum)-1]
	return sort.SearchFloat64s(m.cum, m.rng.Float64()*top)
}

func sigmoid(x float64) float64 {
	switch {
	case x > 6:
		return 1
	case x < -6:
		return 0
	default:
		return 1 / (1 + math.Exp(-x))
	}
}
