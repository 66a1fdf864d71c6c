package routers

import (
	"careermentor/api/internal/handlers"
	"careermentor/api/internal/middleware"
	"careermentor/api/internal/models"

	"github.com/go-chi/chi/v5"
)

func MentorRoutes(router *chi.Mux, mentorHandler *handlers.MentorHandler, interviewHandler *handlers.InterviewHandler, mediaHandler *handlers.MediaHandler, reminderHandler *handlers.ReminderHandler) {
	router.With(middleware.ValidateRequest[*models.AdviceRequest]()).Post("/career_advice", mentorHandler.CareerAdviceHandler)
	router.With(middleware.ValidateRequest[*models.JobsRequest]()).Post("/job_suggestor", mentorHandler.JobSuggestorHandler)

	router.With(middleware.ValidateRequest[*models.InterviewStartRequest]()).Post("/mock_interview", interviewHandler.StartHandler)
	router.Route("/mock", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.EvaluateRequest]()).Post("/evaluate", interviewHandler.EvaluateHandler)
		r.With(middleware.ValidateRequest[*models.SkipRequest]()).Post("/skip", interviewHandler.SkipHandler)
		r.With(middleware.ValidateRequest[*models.FinishRequest]()).Post("/finish", interviewHandler.FinishHandler)
	})

	router.Post("/resume_eval", mediaHandler.ResumeEvalHandler)
	router.Post("/speech_to_text", mediaHandler.SpeechToTextHandler)
	router.Post("/facial_expression", mediaHandler.FacialExpressionHandler)

	router.With(middleware.ValidateRequest[*models.ReminderRequest]()).Post("/set_reminder", reminderHandler.SetReminderHandler)
}

// FeedbackRoutes is registered only when the feedback database is available.
func FeedbackRoutes(router *chi.Mux, feedbackHandler *handlers.FeedbackHandler) {
	router.Post("/feedback/{request_id}", feedbackHandler.SubmitFeedback)
	router.Get("/feedback/stats", feedbackHandler.Stats)
}
