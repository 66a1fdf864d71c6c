package models

// EvaluationResult is the structured verdict on one interview answer. When the
// model's response cannot be parsed, the numeric fields stay zero and Feedback
// carries the raw text, so the answer is never dropped.
type EvaluationResult struct {
	Clarity    float64 `json:"clarity"`
	Confidence float64 `json:"confidence"`
	Score      float64 `json:"score"`
	Feedback   string  `json:"feedback"`
}
