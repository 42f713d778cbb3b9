package quality

import (
	"context"
	"fmt"
	"math"
)

// maxStructuralErrors is the fixed denominator for structural partial
// credit. More simultaneous errors than this still floor at 0.0.
const maxStructuralErrors = 5.0

// weightSumTolerance is the floating-point tolerance for the weight-sum
// invariant.
const weightSumTolerance = 1e-9

// DefaultWeights returns the standard score distribution:
// structural 20%, content 40%, semantic 40%.
func DefaultWeights() Weights {
	return Weights{Structural: 0.20, Content: 0.40, Semantic: 0.40}
}

// Config holds engine-level scoring configuration.
type Config struct {
	// Threshold is the minimum overall score required to pass. [0,1].
	Threshold float64

	// Weights distributes the overall score across dimensions.
	// Must sum to 1.0.
	Weights Weights
}

// DefaultConfig returns a Config with the standard threshold and weights.
func DefaultConfig() Config {
	return Config{
		Threshold: 0.85,
		Weights:   DefaultWeights(),
	}
}

// Validate checks the configuration invariants. A violation is a
// programmer error and must abort engine construction, never be clamped.
func (c Config) Validate() error {
	if math.IsNaN(c.Threshold) || c.Threshold < 0.0 || c.Threshold > 1.0 {
		return fmt.Errorf("threshold must be in [0.0, 1.0], got %v", c.Threshold)
	}
	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Engine combines structural, content, and semantic signals into one
// weighted, thresholded verdict. Stateless across calls apart from the
// scorer's one-time model load; safe for concurrent use. No method
// returns an error for data-quality reasons — missing fields, empty
// text, and embedding failures all degrade to lower scores.
type Engine struct {
	validator Validator
	analyzer  *Analyzer
	scorer    *Scorer
	threshold float64
	weights   Weights
}

// NewEngine creates an Engine. Fails fast on invalid configuration,
// before any scoring occurs.
func NewEngine(cfg Config, analyzer *Analyzer, scorer *Scorer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine configuration: %w", err)
	}
	if analyzer == nil {
		analyzer = NewAnalyzer(DefaultVocabulary())
	}
	if scorer == nil {
		return nil, fmt.Errorf("engine configuration: scorer is required")
	}

	return &Engine{
		analyzer:  analyzer,
		scorer:    scorer,
		threshold: cfg.Threshold,
		weights:   cfg.Weights,
	}, nil
}

// Threshold returns the configured verdict cutoff.
func (e *Engine) Threshold() float64 { return e.threshold }

// Weights returns the configured score distribution.
func (e *Engine) Weights() Weights { return e.weights }

// StructuralScore scores how well the response matches the expected
// schema: 1.0 when fully valid, otherwise linear partial credit by error
// count, floored at 0.0.
func (e *Engine) StructuralScore(resp *Response) float64 {
	valid, errs := e.validator.Validate(resp)
	if valid {
		return 1.0
	}

	score := 1.0 - float64(len(errs))/maxStructuralErrors
	if score < 0.0 {
		return 0.0
	}
	return score
}

// ContentScore scores the lexical quality of the answer text.
// Missing or empty answer text scores 0.0.
func (e *Engine) ContentScore(resp *Response) float64 {
	text := e.validator.AnswerText(resp)
	if text == "" {
		return 0.0
	}
	return e.analyzer.Score(text)
}

// SemanticScore scores the relevance of the answer to the question.
// Missing answer text or empty question scores 0.0.
func (e *Engine) SemanticScore(ctx context.Context, resp *Response, question string) float64 {
	text := e.validator.AnswerText(resp)
	if text == "" || question == "" {
		return 0.0
	}
	return e.scorer.Score(ctx, question, text)
}

// OverallScore combines the three dimension scores by the configured
// weights.
func (e *Engine) OverallScore(ctx context.Context, resp *Response, question string) float64 {
	structural := e.StructuralScore(resp)
	content := e.ContentScore(resp)
	semantic := e.SemanticScore(ctx, resp, question)

	return structural*e.weights.Structural +
		content*e.weights.Content +
		semantic*e.weights.Semantic
}

// DetailedScores computes the full breakdown for one verdict: all four
// scores, the content analysis, and the threshold and weights in effect.
func (e *Engine) DetailedScores(ctx context.Context, resp *Response, question string) ScoreBreakdown {
	structural := e.StructuralScore(resp)
	content := e.ContentScore(resp)
	semantic := e.SemanticScore(ctx, resp, question)

	overall := structural*e.weights.Structural +
		content*e.weights.Content +
		semantic*e.weights.Semantic

	return ScoreBreakdown{
		StructuralScore: structural,
		ContentScore:    content,
		SemanticScore:   semantic,
		OverallScore:    overall,
		PassesThreshold: overall >= e.threshold,
		Threshold:       e.threshold,
		Weights:         e.weights,
		ContentDetails:  e.analyzer.Details(e.validator.AnswerText(resp)),
	}
}

// Validate reports whether the response meets the quality threshold.
func (e *Engine) Validate(ctx context.Context, resp *Response, question string) bool {
	return e.OverallScore(ctx, resp, question) >= e.threshold
}
