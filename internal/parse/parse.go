// Package parse turns raw model text into typed shapes. The model tends to
// wrap JSON in markdown code fences or to ignore format instructions entirely,
// so every parser here normalizes first and degrades instead of failing.
package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"careermentor/api/internal/models"
)

var (
	fenceOpen  = regexp.MustCompile("^```[a-zA-Z]*")
	fenceClose = regexp.MustCompile("```$")
)

// StripFences removes a leading ``` marker (optionally tagged, e.g. ```json)
// and a trailing ``` marker, trimming surrounding whitespace. Text without
// fences is returned trimmed.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	text = fenceOpen.ReplaceAllString(text, "")
	text = fenceClose.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Error reports a failed strict parse while keeping the original text around
// so the caller can still render it.
type Error struct {
	Raw string
	Err error
}

func (e *Error) Error() string {
	return "could not parse model response: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// JobList parses a JSON array of job suggestions, stripping fences first.
// A malformed array is returned as *Error with the raw text preserved; the
// caller must render the raw text rather than erroring out the whole page.
func JobList(raw string) ([]models.JobSuggestion, error) {
	text := StripFences(raw)

	var jobs []models.JobSuggestion
	if err := json.Unmarshal([]byte(text), &jobs); err != nil {
		return nil, &Error{Raw: raw, Err: err}
	}
	return jobs, nil
}

// QuestionList extracts interview questions from model text. Strict JSON is
// tried first when the text looks like an array; anything else is split into
// lines with leading bullets removed. The result may be empty, which callers
// must treat as a generation failure.
func QuestionList(raw string) []string {
	text := StripFences(raw)

	if strings.HasPrefix(text, "[") {
		var entries []interface{}
		if err := json.Unmarshal([]byte(text), &entries); err == nil {
			questions := make([]string, 0, len(entries))
			for _, entry := range entries {
				if q, ok := entry.(string); ok && strings.TrimSpace(q) != "" {
					questions = append(questions, strings.TrimSpace(q))
				}
			}
			return questions
		}
		// looked like JSON but wasn't; fall through to line splitting
	}

	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-• \t")
		line = strings.TrimSpace(line)
		if line != "" {
			questions = append(questions, line)
		}
	}
	return questions
}

// Evaluation parses the model's verdict on an interview answer. It never
// fails: unparseable input becomes a zero-scored result with the full raw
// text preserved as feedback.
func Evaluation(raw string) models.EvaluationResult {
	var result models.EvaluationResult
	if err := json.Unmarshal([]byte(StripFences(raw)), &result); err != nil {
		return models.EvaluationResult{Feedback: raw}
	}
	return result
}
