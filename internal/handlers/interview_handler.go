package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"careermentor/api/internal/interview"
	"careermentor/api/internal/mentor"
	"careermentor/api/internal/middleware"
	"careermentor/api/internal/models"
	"careermentor/api/internal/utils"
)

// InterviewHandler drives the mock-interview wizard: question generation,
// answer evaluation against the session's current question, skipping, and
// finishing. All session state lives in the store, keyed by session id.
type InterviewHandler struct {
	mentor   *mentor.Service
	sessions *interview.Store
	logger   *zap.Logger
}

func NewInterviewHandler(mentorService *mentor.Service, sessions *interview.Store, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		mentor:   mentorService,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.InterviewStartRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)
	role := utils.NormalizeRole(req.Role)

	questions, err := h.mentor.GenerateQuestions(r.Context(), role, req.RequestID)
	if err != nil {
		h.logger.Error("Question generation failed", zap.Error(err), zap.String("request_id", req.RequestID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "ai_error",
			Message: "Failed to generate interview questions",
		})
		return
	}
	if len(questions) == 0 {
		// no partial state: without questions there is no session
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "empty_generation",
			Message: "No questions generated. Try again.",
		})
		return
	}

	session := interview.NewSession(role, questions)
	h.sessions.Put(session)

	h.logger.Info("Interview started",
		zap.String("session_id", session.ID),
		zap.String("role", role),
		zap.Int("questions", len(questions)))

	utils.JSON(w, http.StatusOK, models.InterviewStartResponse{
		SessionID: session.ID,
		Questions: questions,
		RequestID: req.RequestID,
	})
}

func (h *InterviewHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.EvaluateRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	if req.SessionID == "" {
		// stateless mode: evaluate the given question, mutate nothing
		result, err := h.mentor.EvaluateAnswer(r.Context(), req.Question, req.Transcript, req.ResumeText, req.RequestID)
		if err != nil {
			h.logger.Error("Evaluation failed", zap.Error(err), zap.String("request_id", req.RequestID))
			utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Code:    "ai_error",
				Message: "Failed to evaluate answer",
			})
			return
		}
		utils.JSON(w, http.StatusOK, models.EvaluateResponse{
			EvaluationResult: result,
			RequestID:        req.RequestID,
		})
		return
	}

	session, ok := h.sessions.Get(req.SessionID)
	if !ok {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Interview session not found or expired",
		})
		return
	}

	if session.Completed() {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "session_completed",
			Message: "Every question has been answered. Finish the interview.",
		})
		return
	}

	question := session.Current()
	result, err := h.mentor.EvaluateAnswer(r.Context(), question, req.Transcript, req.ResumeText, req.RequestID)
	if err != nil {
		// session untouched: no partial append, index unchanged
		h.logger.Error("Evaluation failed", zap.Error(err),
			zap.String("request_id", req.RequestID),
			zap.String("session_id", session.ID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "ai_error",
			Message: "Failed to evaluate answer",
		})
		return
	}

	session.RecordAnswer(result)

	idx := session.CurrentIdx
	utils.JSON(w, http.StatusOK, models.EvaluateResponse{
		EvaluationResult: result,
		SessionID:        session.ID,
		QuestionIndex:    &idx,
		Completed:        session.Completed(),
		RequestID:        req.RequestID,
	})
}

func (h *InterviewHandler) SkipHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SkipRequest](r)

	session, ok := h.sessions.Get(req.SessionID)
	if !ok {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Interview session not found or expired",
		})
		return
	}

	session.Skip()

	utils.JSON(w, http.StatusOK, models.SkipResponse{
		SessionID:     session.ID,
		QuestionIndex: session.CurrentIdx,
		Question:      session.Current(),
	})
}

func (h *InterviewHandler) FinishHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.FinishRequest](r)

	// deleting an unknown or already-finished session is a no-op
	h.sessions.Delete(req.SessionID)

	utils.JSON(w, http.StatusOK, models.MessageResponse{
		Message: "Mock interview ended.",
	})
}
