package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"careermentor/api/internal/middleware"
	"careermentor/api/internal/models"
	"careermentor/api/internal/reminder"
)

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Push(title, message string) {}

func newTestScheduler(t *testing.T) *reminder.Scheduler {
	t.Helper()
	return reminder.NewScheduler(&recordingMailer{}, noopNotifier{}, zap.NewNop())
}

func TestSetReminderHandler(t *testing.T) {
	scheduler := newTestScheduler(t)
	handler := NewReminderHandler(scheduler, zap.NewNop())

	wrapped := middleware.ValidateRequest[*models.ReminderRequest]()(http.HandlerFunc(handler.SetReminderHandler))
	fireAt := time.Now().Add(time.Hour).Format(time.RFC3339)
	rec := performRequest(wrapped, `{"text":"Revise Go channels","email":"Dev@Example.com","time":"`+fireAt+`"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Message, "dev@example.com") {
		t.Fatalf("expected normalized email in message, got %q", resp.Message)
	}
	if scheduler.Pending() != 1 {
		t.Fatalf("expected one pending reminder, got %d", scheduler.Pending())
	}
}

func TestSetReminderHandlerInvalidTime(t *testing.T) {
	handler := NewReminderHandler(newTestScheduler(t), zap.NewNop())

	wrapped := middleware.ValidateRequest[*models.ReminderRequest]()(http.HandlerFunc(handler.SetReminderHandler))
	rec := performRequest(wrapped, `{"text":"Revise","email":"dev@example.com","time":"tomorrow"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "invalid_time" {
		t.Fatalf("unexpected error code %q", resp.Code)
	}
}

func TestSetReminderHandlerMissingFields(t *testing.T) {
	handler := NewReminderHandler(newTestScheduler(t), zap.NewNop())

	wrapped := middleware.ValidateRequest[*models.ReminderRequest]()(http.HandlerFunc(handler.SetReminderHandler))
	rec := performRequest(wrapped, `{"text":"Revise"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
