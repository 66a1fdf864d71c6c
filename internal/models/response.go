package models

// GenerationResponse is the raw result of one model round trip.
type GenerationResponse struct {
	Content  string             `json:"content"`
	Metadata GenerationMetadata `json:"metadata"`
}

// additional information about a generation
type GenerationMetadata struct {
	ProcessingTime int    `json:"processing_time_ms"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
}

type AdviceResponse struct {
	Advice    string             `json:"advice"`
	RequestID string             `json:"request_id"`
	Metadata  GenerationMetadata `json:"metadata"`
}

// JobsResponse carries the parsed suggestions, or the raw model text when the
// model ignored the JSON-format instruction (the page still renders something).
type JobsResponse struct {
	Jobs        []JobSuggestion `json:"jobs"`
	RawResponse string          `json:"raw_response,omitempty"`
	ParseError  string          `json:"parse_error,omitempty"`
	RequestID   string          `json:"request_id"`
}

type InterviewStartResponse struct {
	SessionID string   `json:"session_id"`
	Questions []string `json:"questions"`
	RequestID string   `json:"request_id"`
}

type EvaluateResponse struct {
	EvaluationResult
	SessionID     string `json:"session_id,omitempty"`
	QuestionIndex *int   `json:"question_index,omitempty"`
	Completed     bool   `json:"completed,omitempty"`
	RequestID     string `json:"request_id"`
}

type SkipResponse struct {
	SessionID     string `json:"session_id"`
	QuestionIndex int    `json:"question_index"`
	Question      string `json:"question"`
}

type ResumeEvalResponse struct {
	Evaluation string             `json:"evaluation"`
	RequestID  string             `json:"request_id"`
	Metadata   GenerationMetadata `json:"metadata"`
}

type TranscriptResponse struct {
	Text string `json:"text"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// uniform error responses
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []ValidationErrorDetail `json:"details,omitempty"`
}

// single field validation error
type ValidationErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}
