package mentor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"careermentor/api/internal/models"
	"careermentor/api/internal/prompts"
)

type mockProvider struct {
	generateContentFn func(ctx context.Context, prompt string, requestID string) (*models.GenerationResponse, error)
}

func (m *mockProvider) GenerateContent(ctx context.Context, prompt string, requestID string) (*models.GenerationResponse, error) {
	if m.generateContentFn == nil {
		return &models.GenerationResponse{Content: "mock content"}, nil
	}
	return m.generateContentFn(ctx, prompt, requestID)
}

func (m *mockProvider) GetProviderName() string { return "mock" }

func newTestService(t *testing.T, provider *mockProvider) *Service {
	t.Helper()
	pm, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager error: %v", err)
	}
	return NewService(provider, pm, zap.NewNop())
}

func TestCareerAdvicePromptContainsProfile(t *testing.T) {
	var seenPrompt string
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			seenPrompt = prompt
			return &models.GenerationResponse{Content: "advice text"}, nil
		},
	}

	svc := newTestService(t, provider)
	resp, err := svc.CareerAdvice(context.Background(), "Go developer, 3 years", "req-1")
	if err != nil {
		t.Fatalf("CareerAdvice error: %v", err)
	}
	if resp.Content != "advice text" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
	if !strings.Contains(seenPrompt, "Go developer, 3 years") {
		t.Fatalf("prompt missing profile: %s", seenPrompt)
	}
}

func TestSuggestJobsParsesArray(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			return &models.GenerationResponse{
				Content: "```json\n[{\"role\":\"SRE\",\"description\":\"d\",\"companies\":[\"A\"],\"hiring_now\":[\"B\"]}]\n```",
			}, nil
		},
	}

	svc := newTestService(t, provider)
	result, err := svc.SuggestJobs(context.Background(), "profile", "Berlin", "req-2")
	if err != nil {
		t.Fatalf("SuggestJobs error: %v", err)
	}
	if len(result.Jobs) != 1 || result.Jobs[0].Role != "SRE" {
		t.Fatalf("unexpected jobs: %+v", result.Jobs)
	}
	if result.ParseErr != nil {
		t.Fatalf("unexpected parse error: %v", result.ParseErr)
	}
}

func TestSuggestJobsDegradesOnMalformedResponse(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			return &models.GenerationResponse{Content: "sorry, here is prose instead"}, nil
		},
	}

	svc := newTestService(t, provider)
	result, err := svc.SuggestJobs(context.Background(), "profile", "", "req-3")
	if err != nil {
		t.Fatalf("parse failure must not be an error: %v", err)
	}
	if result.Jobs != nil {
		t.Fatalf("expected no parsed jobs, got %+v", result.Jobs)
	}
	if result.Raw != "sorry, here is prose instead" || result.ParseErr == nil {
		t.Fatalf("raw text not preserved: %+v", result)
	}
}

func TestSuggestJobsProviderFailure(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			return nil, errors.New("unreachable")
		},
	}

	svc := newTestService(t, provider)
	if _, err := svc.SuggestJobs(context.Background(), "profile", "", "req-4"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestGenerateQuestionsJSON(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			return &models.GenerationResponse{Content: `["Q1?","Q2?"]`}, nil
		},
	}

	svc := newTestService(t, provider)
	questions, err := svc.GenerateQuestions(context.Background(), "Backend Engineer", "req-5")
	if err != nil {
		t.Fatalf("GenerateQuestions error: %v", err)
	}
	if len(questions) != 2 || questions[0] != "Q1?" {
		t.Fatalf("unexpected questions: %v", questions)
	}
}

func TestGenerateQuestionsFallbackOnProviderFailure(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			return nil, errors.New("service down")
		},
	}

	svc := newTestService(t, provider)
	questions, err := svc.GenerateQuestions(context.Background(), "Data Analyst", "req-6")
	if err != nil {
		t.Fatalf("expected canned fallback, got error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 fallback questions, got %v", questions)
	}
	if !strings.Contains(questions[0], "Data Analyst") {
		t.Fatalf("fallback not role-specific: %v", questions)
	}
}

func TestEvaluateAnswerParsesResult(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			return &models.GenerationResponse{
				Content: `{"clarity":7,"confidence":8,"score":7,"feedback":"Good structure"}`,
			}, nil
		},
	}

	svc := newTestService(t, provider)
	result, err := svc.EvaluateAnswer(context.Background(), "Q?", "my answer", "", "req-7")
	if err != nil {
		t.Fatalf("EvaluateAnswer error: %v", err)
	}
	if result.Clarity != 7 || result.Confidence != 8 || result.Score != 7 || result.Feedback != "Good structure" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestEvaluateAnswerKeepsRawOnMalformed(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			return &models.GenerationResponse{Content: "freeform feedback only"}, nil
		},
	}

	svc := newTestService(t, provider)
	result, err := svc.EvaluateAnswer(context.Background(), "Q?", "my answer", "", "req-8")
	if err != nil {
		t.Fatalf("EvaluateAnswer error: %v", err)
	}
	if result.Score != 0 || result.Feedback != "freeform feedback only" {
		t.Fatalf("expected degraded result, got %+v", result)
	}
}

func TestEvaluateAnswerProviderFailure(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(ctx context.Context, prompt, requestID string) (*models.GenerationResponse, error) {
			return nil, errors.New("timeout")
		},
	}

	svc := newTestService(t, provider)
	if _, err := svc.EvaluateAnswer(context.Background(), "Q?", "answer", "", "req-9"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
