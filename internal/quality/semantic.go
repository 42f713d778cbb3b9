package quality

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/aruiz/qagate/internal/embedding"
)

// Scorer computes a semantic-relevance signal between a question and an
// answer via embedding cosine similarity. The embedding model is expensive
// to initialize, so it is constructed at most once per Scorer, on first
// use; concurrent first calls block until the single load completes and
// later calls reuse the read-only handle.
type Scorer struct {
	newEmbedder func(context.Context) (embedding.Embedder, error)

	once     sync.Once
	embedder embedding.Embedder
	loadErr  error
}

// NewScorer creates a Scorer. The factory is invoked lazily, on the first
// Score call that needs the model.
func NewScorer(factory func(context.Context) (embedding.Embedder, error)) *Scorer {
	return &Scorer{newEmbedder: factory}
}

// NewScorerWith creates a Scorer around an already-constructed embedder.
func NewScorerWith(e embedding.Embedder) *Scorer {
	return &Scorer{
		newEmbedder: func(context.Context) (embedding.Embedder, error) {
			return e, nil
		},
	}
}

// Score returns the semantic relevance of answer to question in [0,1].
// Empty question or answer scores 0.0. Embedding failures are logged and
// score 0.0: scoring must degrade, never abort.
func (s *Scorer) Score(ctx context.Context, question, answer string) float64 {
	if question == "" || answer == "" {
		return 0.0
	}

	emb, err := s.load(ctx)
	if err != nil {
		slog.Warn("semantic scorer: embedder initialization failed", "error", err)
		return 0.0
	}

	vecs, err := emb.Embed(ctx, []string{question, answer})
	if err != nil {
		slog.Warn("semantic scorer: embedding failed", "error", err)
		return 0.0
	}
	if len(vecs) < 2 {
		slog.Warn("semantic scorer: embedder returned too few vectors", "count", len(vecs))
		return 0.0
	}

	sim := cosineSimilarity(vecs[0], vecs[1])

	// Cosine similarity ranges [-1,1]; a negative value between a question
	// and a well-formed answer carries no usable signal, so clamp to [0,1].
	if sim < 0 {
		return 0.0
	}
	if sim > 1 {
		return 1.0
	}
	return sim
}

// load initializes the shared embedder exactly once.
func (s *Scorer) load(ctx context.Context) (embedding.Embedder, error) {
	s.once.Do(func() {
		s.embedder, s.loadErr = s.newEmbedder(ctx)
	})
	return s.embedder, s.loadErr
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 for mismatched lengths or zero-norm vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
