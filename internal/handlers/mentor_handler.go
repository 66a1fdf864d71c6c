package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careermentor/api/internal/feedback"
	"careermentor/api/internal/mentor"
	"careermentor/api/internal/middleware"
	"careermentor/api/internal/models"
	"careermentor/api/internal/utils"
)

type MentorHandler struct {
	mentor          *mentor.Service
	feedbackManager *feedback.Manager
	logger          *zap.Logger
}

func NewMentorHandler(mentorService *mentor.Service, logger *zap.Logger) *MentorHandler {
	return &MentorHandler{
		mentor: mentorService,
		logger: logger,
	}
}

// SetFeedbackManager enables request-context staging for thumbs-up/down
// feedback. Optional: without it responses are simply not rateable.
func (h *MentorHandler) SetFeedbackManager(fm *feedback.Manager) {
	h.feedbackManager = fm
}

func generateRequestID() string {
	return uuid.New().String()
}

// ensureRequestID generates a request ID if one is not provided
func ensureRequestID(requestID string) string {
	if requestID == "" {
		return generateRequestID()
	}
	return requestID
}

func (h *MentorHandler) stageForFeedback(requestID, requestType, input, response, model string) {
	if h.feedbackManager == nil {
		return
	}
	h.feedbackManager.StoreRequestContext(&models.RequestContext{
		RequestID:   requestID,
		RequestType: requestType,
		Prompt:      input,
		Response:    response,
		ModelName:   model,
		Timestamp:   time.Now(),
	})
}

func (h *MentorHandler) CareerAdviceHandler(w http.ResponseWriter, r *http.Request) {
	// Get the validated request from middleware
	req := middleware.GetValidatedRequest[*models.AdviceRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	response, err := h.mentor.CareerAdvice(r.Context(), req.Profile, req.RequestID)
	if err != nil {
		h.logger.Error("AI provider error", zap.Error(err), zap.String("request_id", req.RequestID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "ai_error",
			Message: "Failed to generate career advice",
		})
		return
	}

	h.logger.Info("Career advice generated",
		zap.String("request_id", req.RequestID),
		zap.Int("processing_time_ms", response.Metadata.ProcessingTime))

	h.stageForFeedback(req.RequestID, "advice", req.Profile, response.Content, response.Metadata.Model)

	utils.JSON(w, http.StatusOK, models.AdviceResponse{
		Advice:    response.Content,
		RequestID: req.RequestID,
		Metadata:  response.Metadata,
	})
}

func (h *MentorHandler) JobSuggestorHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.JobsRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	result, err := h.mentor.SuggestJobs(r.Context(), req.Profile, req.Location, req.RequestID)
	if err != nil {
		h.logger.Error("AI provider error", zap.Error(err), zap.String("request_id", req.RequestID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "ai_error",
			Message: "Failed to generate job suggestions",
		})
		return
	}

	resp := models.JobsResponse{
		Jobs:      result.Jobs,
		RequestID: req.RequestID,
	}
	if result.ParseErr != nil {
		// degraded: the model ignored the JSON instruction, surface raw text
		resp.RawResponse = result.Raw
		resp.ParseError = result.ParseErr.Error()
	}

	h.stageForFeedback(req.RequestID, "jobs", req.Profile, result.Raw, result.Metadata.Model)

	utils.JSON(w, http.StatusOK, resp)
}
