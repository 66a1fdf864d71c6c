package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"careermentor/api/internal/document"
	"careermentor/api/internal/mentor"
	"careermentor/api/internal/models"
	"careermentor/api/internal/speech"
	"careermentor/api/internal/utils"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// MediaHandler serves the upload-driven routes: resume evaluation (PDF),
// speech-to-text (audio), and the facial-expression placeholder.
type MediaHandler struct {
	mentor      *mentor.Service
	extractor   document.Extractor
	transcriber speech.Transcriber
	logger      *zap.Logger
}

func NewMediaHandler(mentorService *mentor.Service, extractor document.Extractor, transcriber speech.Transcriber, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		mentor:      mentorService,
		extractor:   extractor,
		transcriber: transcriber,
		logger:      logger,
	}
}

func readUpload(r *http.Request) ([]byte, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func (h *MediaHandler) ResumeEvalHandler(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_file",
			Message: "A PDF resume upload named 'file' is required",
		})
		return
	}

	requestID := ensureRequestID(r.FormValue("request_id"))

	text, err := h.extractor.ExtractText(data)
	if err != nil {
		h.logger.Error("PDF extraction failed", zap.Error(err), zap.String("request_id", requestID))
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "extraction_error",
			Message: "Could not extract text from the uploaded PDF",
		})
		return
	}

	response, err := h.mentor.EvaluateResume(r.Context(), text, requestID)
	if err != nil {
		h.logger.Error("AI provider error", zap.Error(err), zap.String("request_id", requestID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "ai_error",
			Message: "Failed to evaluate resume",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.ResumeEvalResponse{
		Evaluation: response.Content,
		RequestID:  requestID,
		Metadata:   response.Metadata,
	})
}

func (h *MediaHandler) SpeechToTextHandler(w http.ResponseWriter, r *http.Request) {
	if h.transcriber == nil {
		utils.JSON(w, http.StatusServiceUnavailable, models.ErrorResponse{
			Code:    "speech_unavailable",
			Message: "Speech-to-text is not configured",
		})
		return
	}

	audio, err := readUpload(r)
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_file",
			Message: "An audio upload named 'file' is required",
		})
		return
	}

	transcript, err := h.transcriber.Transcribe(r.Context(), audio)
	if err != nil {
		h.logger.Error("Transcription failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "speech_error",
			Message: "Failed to transcribe audio",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.TranscriptResponse{Text: transcript})
}

// FacialExpressionHandler is a stub; the real analyzer never shipped.
func (h *MediaHandler) FacialExpressionHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"expression": "Feature coming soon: facial expression detection will work here.",
	})
}
