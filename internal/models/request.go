package models

import (
	"strings"
	"time"
)

type AdviceRequest struct {
	Profile   string `json:"profile"`
	RequestID string `json:"request_id"`
}

// implements the Validator interface
func (r *AdviceRequest) Validate() error {
	if strings.TrimSpace(r.Profile) == "" {
		return &ErrorResponse{
			Code:    "missing_profile",
			Message: "Profile field is required",
		}
	}
	return nil
}

type JobsRequest struct {
	Profile   string `json:"profile"`
	Location  string `json:"location"`
	RequestID string `json:"request_id"`
}

func (r *JobsRequest) Validate() error {
	if strings.TrimSpace(r.Profile) == "" {
		return &ErrorResponse{
			Code:    "missing_profile",
			Message: "Profile field is required",
		}
	}
	return nil
}

type InterviewStartRequest struct {
	Role      string `json:"role"`
	RequestID string `json:"request_id"`
}

func (r *InterviewStartRequest) Validate() error {
	if strings.TrimSpace(r.Role) == "" {
		return &ErrorResponse{
			Code:    "missing_role",
			Message: "Role field is required",
		}
	}
	return nil
}

// EvaluateRequest works in two modes: session-scoped (session_id set, the
// current question of that session is evaluated and the session advances) or
// stateless (question passed explicitly, nothing is mutated).
type EvaluateRequest struct {
	SessionID  string `json:"session_id"`
	Question   string `json:"question"`
	Transcript string `json:"transcript"`
	ResumeText string `json:"resume_text"`
	RequestID  string `json:"request_id"`
}

func (r *EvaluateRequest) Validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return &ErrorResponse{
			Code:    "missing_transcript",
			Message: "No answer provided",
		}
	}
	if strings.TrimSpace(r.SessionID) == "" && strings.TrimSpace(r.Question) == "" {
		return &ErrorResponse{
			Code:    "missing_question",
			Message: "Either session_id or question is required",
		}
	}
	return nil
}

type SkipRequest struct {
	SessionID string `json:"session_id"`
}

func (r *SkipRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return &ErrorResponse{
			Code:    "missing_session_id",
			Message: "session_id is required",
		}
	}
	return nil
}

type FinishRequest struct {
	SessionID string `json:"session_id"`
}

func (r *FinishRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return &ErrorResponse{
			Code:    "missing_session_id",
			Message: "session_id is required",
		}
	}
	return nil
}

type ReminderRequest struct {
	Text  string `json:"text"`
	Email string `json:"email"`
	Time  string `json:"time"` // RFC 3339
}

func (r *ReminderRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" || strings.TrimSpace(r.Email) == "" || strings.TrimSpace(r.Time) == "" {
		return &ErrorResponse{
			Code:    "missing_parameters",
			Message: "text, email and time are required",
		}
	}
	if _, err := time.Parse(time.RFC3339, r.Time); err != nil {
		return &ErrorResponse{
			Code:    "invalid_time",
			Message: "time must be a valid RFC 3339 timestamp",
		}
	}
	return nil
}

// FireAt returns the parsed reminder timestamp. Validate must have passed.
func (r *ReminderRequest) FireAt() time.Time {
	t, _ := time.Parse(time.RFC3339, r.Time)
	return t
}
