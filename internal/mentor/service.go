// Package mentor is the request orchestrator: it builds one prompt per use
// case, makes a single blocking round trip to the model provider, and hands
// the raw text to the parsers. It never retries and never inspects response
// content itself.
package mentor

import (
	"context"

	"go.uber.org/zap"

	"careermentor/api/internal/llm"
	"careermentor/api/internal/models"
	"careermentor/api/internal/parse"
	"careermentor/api/internal/prompts"
)

type Service struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewService(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		prompts:  promptManager,
		logger:   logger,
	}
}

// CareerAdvice generates free-text advice for a profile.
func (s *Service) CareerAdvice(ctx context.Context, profile, requestID string) (*models.GenerationResponse, error) {
	prompt, err := s.prompts.BuildPrompt("advice", "default", map[string]string{
		"Profile": profile,
	})
	if err != nil {
		return nil, err
	}
	return s.provider.GenerateContent(ctx, prompt, requestID)
}

// JobsResult is the outcome of a job-suggestion round trip. Raw always holds
// the model's text; when it was not a valid JSON array, Jobs is nil and
// ParseErr is set so the caller can render the raw text instead.
type JobsResult struct {
	Jobs     []models.JobSuggestion
	Raw      string
	ParseErr error
	Metadata models.GenerationMetadata
}

// SuggestJobs asks for suitable roles and parses the JSON array. A provider
// failure is an error; a parse failure is a degraded-but-usable result.
func (s *Service) SuggestJobs(ctx context.Context, profile, location, requestID string) (*JobsResult, error) {
	prompt, err := s.prompts.BuildPrompt("jobs", "default", map[string]string{
		"Profile":  profile,
		"Location": location,
	})
	if err != nil {
		return nil, err
	}

	response, err := s.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		return nil, err
	}

	jobs, parseErr := parse.JobList(response.Content)
	if parseErr != nil {
		s.logger.Warn("Job suggestions were not valid JSON, returning raw text",
			zap.String("request_id", requestID),
			zap.Error(parseErr))
		return &JobsResult{Raw: response.Content, ParseErr: parseErr, Metadata: response.Metadata}, nil
	}

	return &JobsResult{Jobs: jobs, Raw: response.Content, Metadata: response.Metadata}, nil
}

// GenerateQuestions produces the question list for a role. When the provider
// is unreachable a small canned set keeps the interview usable; an empty list
// after parsing still means generation failed and no session may start.
func (s *Service) GenerateQuestions(ctx context.Context, role, requestID string) ([]string, error) {
	prompt, err := s.prompts.BuildPrompt("questions", "default", map[string]string{
		"Role": role,
	})
	if err != nil {
		return nil, err
	}

	response, err := s.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		s.logger.Warn("Question generation failed, using fallback questions",
			zap.String("request_id", requestID),
			zap.String("role", role),
			zap.Error(err))
		return fallbackQuestions(role), nil
	}

	return parse.QuestionList(response.Content), nil
}

func fallbackQuestions(role string) []string {
	return []string{
		"What motivates you to apply for " + role + "?",
		"Describe a challenging project you handled in " + role + "-related tasks.",
		"How do you keep your skills updated for " + role + "?",
	}
}

// EvaluateAnswer scores one interview answer. The parse step never fails, so
// the only error path is the provider itself; on error the caller must leave
// its session untouched.
func (s *Service) EvaluateAnswer(ctx context.Context, question, transcript, resumeText, requestID string) (models.EvaluationResult, error) {
	prompt, err := s.prompts.BuildPrompt("evaluate", "default", map[string]string{
		"Question":   question,
		"Transcript": transcript,
		"ResumeText": resumeText,
	})
	if err != nil {
		return models.EvaluationResult{}, err
	}

	response, err := s.provider.GenerateContent(ctx, prompt, requestID)
	if err != nil {
		return models.EvaluationResult{}, err
	}

	return parse.Evaluation(response.Content), nil
}

// EvaluateResume reviews extracted resume text.
func (s *Service) EvaluateResume(ctx context.Context, resumeText, requestID string) (*models.GenerationResponse, error) {
	prompt, err := s.prompts.BuildPrompt("resume", "default", map[string]string{
		"Resume": resumeText,
	})
	if err != nil {
		return nil, err
	}
	return s.provider.GenerateContent(ctx, prompt, requestID)
}

// ProviderName exposes the underlying provider for logging and metadata.
func (s *Service) ProviderName() string {
	return s.provider.GetProviderName()
}
