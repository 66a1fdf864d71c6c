package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"careermentor/api/internal/feedback"
	"careermentor/api/internal/models"
	"careermentor/api/internal/utils"
)

type FeedbackHandler struct {
	feedbackManager *feedback.Manager
}

func NewFeedbackHandler(feedbackManager *feedback.Manager) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackManager: feedbackManager,
	}
}

// SubmitFeedbackRequest represents the request body for feedback submission
type SubmitFeedbackRequest struct {
	IsPositive bool `json:"is_positive"`
}

// SubmitFeedback handles POST /feedback/{request_id}
func (fh *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "request_id")
	if requestID == "" {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_request_id",
			Message: "request_id is required",
		})
		return
	}

	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_json",
			Message: "invalid request body",
		})
		return
	}

	if err := fh.feedbackManager.SubmitFeedback(requestID, req.IsPositive); err != nil {
		log.Printf("Failed to submit feedback: %v", err)
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "feedback_error",
			Message: "failed to submit feedback: " + err.Error(),
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.MessageResponse{
		Message: "feedback submitted successfully",
	})
}

// Stats handles GET /feedback/stats
func (fh *FeedbackHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := fh.feedbackManager.GetFeedbackStats()
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "feedback_error",
			Message: "failed to load feedback stats",
		})
		return
	}

	utils.JSON(w, http.StatusOK, stats)
}
