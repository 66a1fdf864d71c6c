package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"careermentor/api/internal/middleware"
	"careermentor/api/internal/models"
	"careermentor/api/internal/reminder"
	"careermentor/api/internal/utils"
)

type ReminderHandler struct {
	scheduler *reminder.Scheduler
	logger    *zap.Logger
}

func NewReminderHandler(scheduler *reminder.Scheduler, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		scheduler: scheduler,
		logger:    logger,
	}
}

func (h *ReminderHandler) SetReminderHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ReminderRequest](r)

	fireAt := req.FireAt()
	scheduled := h.scheduler.Schedule(req.Text, utils.NormalizeEmail(req.Email), fireAt)

	utils.JSON(w, http.StatusOK, models.MessageResponse{
		Message: "Reminder scheduled for " + scheduled.FireAt.Format("2006-01-02 15:04:05 -0700") + " to " + scheduled.Email,
	})
}
