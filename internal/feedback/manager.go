package feedback

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"careermentor/api/internal/models"
)

// Manager handles thumbs-up/down feedback on generated responses
type Manager struct {
	db           *gorm.DB
	contextCache *ContextCache
}

// NewManager creates a new feedback manager
func NewManager(db *gorm.DB, cacheTTL time.Duration) *Manager {
	return &Manager{
		db:           db,
		contextCache: NewContextCache(cacheTTL),
	}
}

// StoreRequestContext caches request context for later feedback
func (m *Manager) StoreRequestContext(ctx *models.RequestContext) {
	m.contextCache.Set(ctx.RequestID, ctx)
	log.Printf("Stored request context: %s (type: %s)", ctx.RequestID, ctx.RequestType)
}

// SubmitFeedback stores user feedback for a request
func (m *Manager) SubmitFeedback(requestID string, isPositive bool) error {
	// Get context from cache
	ctx, exists := m.contextCache.Get(requestID)
	if !exists {
		return fmt.Errorf("request context not found or expired: %s", requestID)
	}

	record := &models.MentorFeedback{
		RequestID:   requestID,
		RequestType: ctx.RequestType,
		Prompt:      ctx.Prompt,
		Response:    ctx.Response,
		IsPositive:  isPositive,
		ModelName:   ctx.ModelName,
		FeedbackAt:  time.Now(),
	}

	if err := m.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}

	// Remove from cache after successful storage
	m.contextCache.Delete(requestID)

	log.Printf("Stored feedback: request=%s, positive=%v, type=%s", requestID, isPositive, ctx.RequestType)

	return nil
}

// GetFeedbackSince retrieves feedback since a specific time
func (m *Manager) GetFeedbackSince(since time.Time, limit int) ([]models.MentorFeedback, error) {
	var records []models.MentorFeedback

	query := m.db.Where("feedback_at >= ?", since).Order("feedback_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get feedback since %v: %w", since, err)
	}

	return records, nil
}

// GetFeedbackStats returns aggregate counts for the stats endpoint
func (m *Manager) GetFeedbackStats() (map[string]interface{}, error) {
	var total, positive int64

	if err := m.db.Model(&models.MentorFeedback{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}
	if err := m.db.Model(&models.MentorFeedback{}).Where("is_positive = ?", true).Count(&positive).Error; err != nil {
		return nil, fmt.Errorf("failed to count positive feedback: %w", err)
	}

	return map[string]interface{}{
		"total":           int(total),
		"positive":        int(positive),
		"negative":        int(total - positive),
		"cached_contexts": m.contextCache.Len(),
	}, nil
}
