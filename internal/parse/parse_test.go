package parse

import (
	"errors"
	"testing"
)

func TestStripFences(t *testing.T) {
	input := "```json\n[\"a\"]\n```"
	if got := StripFences(input); got != `["a"]` {
		t.Fatalf("StripFences: expected %q, got %q", `["a"]`, got)
	}

	if got := StripFences("  plain text  "); got != "plain text" {
		t.Fatalf("StripFences (no fences): expected trimmed string, got %q", got)
	}

	untagged := "```\nbody\n```"
	if got := StripFences(untagged); got != "body" {
		t.Fatalf("StripFences (untagged): expected body, got %q", got)
	}
}

func TestJobListValidArray(t *testing.T) {
	raw := `[
		{"role":"Backend Engineer","description":"Builds services","companies":["Acme","Globex"],"hiring_now":["Initech"]},
		{"role":"SRE","description":"Keeps it running","companies":[{"name":"Hooli","careers_url":"https://hooli.example/careers"}],"hiring_now":[]}
	]`

	jobs, err := JobList(raw)
	if err != nil {
		t.Fatalf("JobList returned error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Role != "Backend Engineer" || jobs[1].Role != "SRE" {
		t.Fatalf("order not preserved: %+v", jobs)
	}
	if jobs[0].Companies[1].Name != "Globex" || jobs[0].Companies[1].CareersURL != "" {
		t.Fatalf("plain company name not resolved: %+v", jobs[0].Companies)
	}
	if jobs[1].Companies[0].Name != "Hooli" || jobs[1].Companies[0].CareersURL != "https://hooli.example/careers" {
		t.Fatalf("linked company not resolved: %+v", jobs[1].Companies)
	}
}

func TestJobListFencedEqualsUnfenced(t *testing.T) {
	raw := `[{"role":"QA","description":"Tests","companies":["A"],"hiring_now":["B"]}]`
	fenced := "```json\n" + raw + "\n```"

	plain, err := JobList(raw)
	if err != nil {
		t.Fatalf("JobList plain: %v", err)
	}
	wrapped, err := JobList(fenced)
	if err != nil {
		t.Fatalf("JobList fenced: %v", err)
	}
	if len(plain) != len(wrapped) || plain[0].Role != wrapped[0].Role {
		t.Fatalf("fenced result differs: %+v vs %+v", plain, wrapped)
	}
}

func TestJobListMalformedKeepsRaw(t *testing.T) {
	raw := "Here are some jobs:\n1. Backend Engineer"

	jobs, err := JobList(raw)
	if jobs != nil {
		t.Fatalf("expected no jobs for malformed input, got %+v", jobs)
	}
	var parseErr *Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *parse.Error, got %T", err)
	}
	if parseErr.Raw != raw {
		t.Fatalf("raw text not preserved: %q", parseErr.Raw)
	}
}

func TestQuestionListJSONArray(t *testing.T) {
	raw := "```json\n[\"Q1?\",\"Q2?\"]\n```"

	questions := QuestionList(raw)
	if len(questions) != 2 || questions[0] != "Q1?" || questions[1] != "Q2?" {
		t.Fatalf("unexpected questions: %v", questions)
	}
}

func TestQuestionListFiltersNonStrings(t *testing.T) {
	raw := `["Tell me about yourself", 42, "", "Why this role?"]`

	questions := QuestionList(raw)
	if len(questions) != 2 {
		t.Fatalf("expected non-string and blank entries dropped, got %v", questions)
	}
	if questions[0] != "Tell me about yourself" || questions[1] != "Why this role?" {
		t.Fatalf("order not preserved: %v", questions)
	}
}

func TestQuestionListLineFallback(t *testing.T) {
	raw := "Tell me about yourself\nWhy this role?"

	questions := QuestionList(raw)
	if len(questions) != 2 || questions[0] != "Tell me about yourself" || questions[1] != "Why this role?" {
		t.Fatalf("unexpected questions: %v", questions)
	}
}

func TestQuestionListStripsBullets(t *testing.T) {
	raw := "- First question?\n• Second question?\n\n  - Third question?"

	questions := QuestionList(raw)
	want := []string{"First question?", "Second question?", "Third question?"}
	if len(questions) != len(want) {
		t.Fatalf("expected %d questions, got %v", len(want), questions)
	}
	for i := range want {
		if questions[i] != want[i] {
			t.Fatalf("question %d: expected %q, got %q", i, want[i], questions[i])
		}
	}
}

func TestQuestionListInvalidJSONFallsBack(t *testing.T) {
	// starts with "[" but is not valid JSON; strict parse is attempted first
	// and line splitting only on failure
	raw := "[not actually json\nsecond line"

	questions := QuestionList(raw)
	if len(questions) != 2 {
		t.Fatalf("expected line fallback, got %v", questions)
	}
}

func TestQuestionListEmpty(t *testing.T) {
	if got := QuestionList("   \n  \n"); len(got) != 0 {
		t.Fatalf("expected empty result for blank input, got %v", got)
	}
	if got := QuestionList("[]"); len(got) != 0 {
		t.Fatalf("expected empty result for empty array, got %v", got)
	}
}

func TestEvaluationWellFormed(t *testing.T) {
	raw := `{"clarity":7,"confidence":8,"score":7,"feedback":"Good structure"}`

	result := Evaluation(raw)
	if result.Clarity != 7 || result.Confidence != 8 || result.Score != 7 {
		t.Fatalf("unexpected scores: %+v", result)
	}
	if result.Feedback != "Good structure" {
		t.Fatalf("unexpected feedback: %q", result.Feedback)
	}
}

func TestEvaluationFenced(t *testing.T) {
	raw := "```json\n{\"clarity\":5,\"confidence\":6,\"score\":5,\"feedback\":\"ok\"}\n```"

	result := Evaluation(raw)
	if result.Clarity != 5 || result.Feedback != "ok" {
		t.Fatalf("fenced evaluation not parsed: %+v", result)
	}
}

func TestEvaluationMalformedNeverFails(t *testing.T) {
	raw := "not json at all"

	result := Evaluation(raw)
	if result.Clarity != 0 || result.Confidence != 0 || result.Score != 0 {
		t.Fatalf("expected zero scores, got %+v", result)
	}
	if result.Feedback != raw {
		t.Fatalf("expected raw text as feedback, got %q", result.Feedback)
	}
}
