package quality

// Response is the raw answer record produced by the transport client.
// Any subset of its fields may be absent or mistyped; validation reports
// that as errors instead of failing. Consumers treat it as read-only.
type Response struct {
	// Data is the answer container returned by the endpoint. Nil when the
	// endpoint returned no JSON object. The "answer" entry holds the answer
	// text when the response is well-formed.
	Data map[string]any

	// StatusCode is the HTTP status of the fetch. Nil when unknown.
	StatusCode *int

	// ResponseTime is the fetch latency in seconds. Nil when unknown.
	ResponseTime *float64

	// Question is the question that produced this response.
	Question string
}

// ContentDetails is the full content analysis for one answer text.
// Derived purely from the text and recomputed on every call.
type ContentDetails struct {
	HasCodeExamples     bool     `json:"has_code_examples"`
	KeywordCount        int      `json:"keyword_count"`
	FrameworksMentioned []string `json:"frameworks_mentioned"`
	HasStructure        bool     `json:"has_structure"`
	Length              int      `json:"length"`
	ContentScore        float64  `json:"content_score"`
}

// Weights distributes the overall score across the three dimensions.
// The three fields must sum to 1.0.
type Weights struct {
	Structural float64 `json:"structural"`
	Content    float64 `json:"content"`
	Semantic   float64 `json:"semantic"`
}

// Sum returns the total of the three weights.
func (w Weights) Sum() float64 {
	return w.Structural + w.Content + w.Semantic
}

// ScoreBreakdown is the full audit trail for a single quality verdict.
// Every score lies in [0,1]. Constructed fresh per (Response, Question)
// pair and immutable once returned.
type ScoreBreakdown struct {
	StructuralScore float64        `json:"structural_score"`
	ContentScore    float64        `json:"content_score"`
	SemanticScore   float64        `json:"semantic_score"`
	OverallScore    float64        `json:"overall_score"`
	PassesThreshold bool           `json:"passes_threshold"`
	Threshold       float64        `json:"threshold"`
	Weights         Weights        `json:"weights"`
	ContentDetails  ContentDetails `json:"content_details"`
}
