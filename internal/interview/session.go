// Package interview holds the state of one mock-interview run: the generated
// question list, the position under answer, and the evaluations collected so
// far. Sessions are handed around by id through an explicit store; there is no
// ambient per-user state.
package interview

import (
	"time"

	"github.com/google/uuid"

	"careermentor/api/internal/models"
)

// Session is the state of one interview run. Questions are fixed once
// generated. Results holds one entry per answered question in order; it may be
// shorter than CurrentIdx+1 when questions were skipped.
type Session struct {
	ID         string
	Role       string
	Questions  []string
	CurrentIdx int
	Results    []models.EvaluationResult
	CreatedAt  time.Time
}

// NewSession starts a run over a non-empty question list.
func NewSession(role string, questions []string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Role:      role,
		Questions: questions,
		CreatedAt: time.Now(),
	}
}

// Current returns the question under answer.
func (s *Session) Current() string {
	return s.Questions[s.CurrentIdx]
}

// RecordAnswer appends the evaluation for the current question and advances,
// staying on the last question once the end is reached. A completed session
// accepts no further answers, so Results never outgrows Questions. Callers
// must only record after a successful evaluation, so a failed round trip
// leaves the session untouched.
func (s *Session) RecordAnswer(result models.EvaluationResult) {
	if s.Completed() {
		return
	}
	s.Results = append(s.Results, result)
	if s.CurrentIdx+1 < len(s.Questions) {
		s.CurrentIdx++
	}
}

// Skip advances past the current question without recording a result,
// clamped at the last question.
func (s *Session) Skip() {
	if s.CurrentIdx+1 < len(s.Questions) {
		s.CurrentIdx++
	}
}

// Completed reports whether every question has an evaluation.
func (s *Session) Completed() bool {
	return len(s.Results) >= len(s.Questions)
}
