package models

import (
	"time"

	"gorm.io/gorm"
)

// MentorFeedback stores user feedback on generated responses
// Note: User IDs are intentionally excluded for privacy
type MentorFeedback struct {
	gorm.Model
	RequestID   string    `gorm:"uniqueIndex;not null" json:"request_id"`
	RequestType string    `gorm:"not null" json:"request_type"` // "advice", "jobs", "questions", "evaluation", "resume"
	Prompt      string    `gorm:"type:text;not null" json:"prompt"`
	Response    string    `gorm:"type:text;not null" json:"response"`
	IsPositive  bool      `gorm:"not null" json:"is_positive"` // true = thumbs up, false = thumbs down
	ModelName   string    `gorm:"not null" json:"model"`
	FeedbackAt  time.Time `gorm:"not null" json:"feedback_at"`
}

// RequestContext stores request/response pairs temporarily for feedback collection
// This is stored in-memory with TTL, not in database
type RequestContext struct {
	RequestID   string
	RequestType string
	Prompt      string
	Response    string
	ModelName   string
	Timestamp   time.Time
}
