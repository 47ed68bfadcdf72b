package service

import (
	"context"
	"errors"
	"testing"

	"lingua_backend/internal/config"
)

type fakeCompleter struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	f.calls++
	return f.reply, f.err
}

func newTestAIService(completer ChatCompleter) *AIService {
	return &AIService{
		Completer: completer,
		Cfg:       config.AIConfig{Model: "test-model"},
	}
}

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkdownFences(tt.in); got != tt.want {
				t.Errorf("StripMarkdownFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateRoadmapParsesFencedJSON(t *testing.T) {
	completer := &fakeCompleter{reply: "```json\n" + `{
  "modules": [
    {
      "title": "Basics",
      "description": "Starting out",
      "objectives": ["one", "two"],
      "checkpoint_criteria": {"accuracy_threshold": 0.8, "min_tasks_completed": 5}
    }
  ]
}` + "\n```"}

	plan, err := newTestAIService(completer).GenerateRoadmap(context.Background(), "english", "A0", 3)
	if err != nil {
		t.Fatalf("GenerateRoadmap() error = %v", err)
	}
	if len(plan.Modules) != 1 || plan.Modules[0].Title != "Basics" {
		t.Errorf("unexpected plan: %+v", plan)
	}
	if !ParseCheckpointCriteria(plan.Modules[0].CheckpointCriteria).Valid() {
		t.Error("expected parsed checkpoint criteria to be valid")
	}
}

func TestGenerateRoadmapRejectsMissingModulesKey(t *testing.T) {
	completer := &fakeCompleter{reply: `{"plan": []}`}
	if _, err := newTestAIService(completer).GenerateRoadmap(context.Background(), "english", "A0", 3); err == nil {
		t.Fatal("expected error for missing modules key")
	}
}

func TestGenerateRoadmapRejectsMalformedJSON(t *testing.T) {
	completer := &fakeCompleter{reply: "here is your roadmap!"}
	if _, err := newTestAIService(completer).GenerateRoadmap(context.Background(), "english", "A0", 3); err == nil {
		t.Fatal("expected error for non-JSON reply")
	}
}

func TestGenerateContentDisabledWithoutCompleter(t *testing.T) {
	s := NewAIService(config.AIConfig{}, nil)
	if s.Enabled() {
		t.Fatal("service without API key must be disabled")
	}
	if _, err := s.GenerateContent(context.Background(), "", "hello", 0); err == nil {
		t.Fatal("expected error from disabled service")
	}
}

func TestGenerateContentPropagatesProviderError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("provider down")}
	if _, err := newTestAIService(completer).GenerateContent(context.Background(), "", "hello", 0); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestGenerateTaskFeedbackRequiresRuleAndContrast(t *testing.T) {
	completer := &fakeCompleter{reply: `{"rule": "use past tense", "example_contrast": "went vs goed", "tip": "irregular verb"}`}
	feedback, err := newTestAIService(completer).GenerateTaskFeedback(context.Background(), "goed", "went", "fill_blank", "")
	if err != nil {
		t.Fatalf("GenerateTaskFeedback() error = %v", err)
	}
	if feedback.Rule != "use past tense" || feedback.Tip != "irregular verb" {
		t.Errorf("unexpected feedback: %+v", feedback)
	}

	completer.reply = `{"rule": "use past tense"}`
	if _, err := newTestAIService(completer).GenerateTaskFeedback(context.Background(), "goed", "went", "fill_blank", ""); err == nil {
		t.Fatal("expected error for missing example_contrast key")
	}
}

func TestGenerateDialogueResponse(t *testing.T) {
	completer := &fakeCompleter{reply: `{
  "ai_response": "Жақсы! Тағы не айтасыз?",
  "corrections": [{"original": "мен бару", "corrected": "мен барамын", "explanation": "conjugate the verb"}],
  "reformulation": "Мен дүкенге барамын."
}`}

	reply, err := newTestAIService(completer).GenerateDialogueResponse(
		context.Background(), "At the market", nil, "мен бару дүкен", "kazakh", "A1")
	if err != nil {
		t.Fatalf("GenerateDialogueResponse() error = %v", err)
	}
	if reply.Response == "" || len(reply.Corrections) == 0 {
		t.Errorf("unexpected reply: %+v", reply)
	}
}

func TestFallbackRoadmap(t *testing.T) {
	known := FallbackRoadmap("english", "A0")
	if len(known.Modules) != 3 {
		t.Fatalf("english A0 fallback has %d modules, want 3", len(known.Modules))
	}
	if known.Modules[0].Title != "Introduction to English Basics" {
		t.Errorf("unexpected first module: %s", known.Modules[0].Title)
	}

	generic := FallbackRoadmap("spanish", "C1")
	if len(generic.Modules) != 3 {
		t.Fatalf("generic fallback has %d modules, want 3", len(generic.Modules))
	}
	if generic.Modules[0].Title != "Spanish Module 1" {
		t.Errorf("generic title = %q, want the capitalized language name", generic.Modules[0].Title)
	}
	for _, module := range generic.Modules {
		if !ParseCheckpointCriteria(module.CheckpointCriteria).Valid() {
			t.Errorf("module %q has invalid checkpoint criteria", module.Title)
		}
	}
}

func TestFallbackDialogueReply(t *testing.T) {
	reply := FallbackDialogueReply()
	if reply.Response != "I understand. Please continue." {
		t.Errorf("unexpected fallback response: %s", reply.Response)
	}
	if string(reply.Corrections) != "[]" {
		t.Errorf("fallback corrections must be an empty array, got %s", reply.Corrections)
	}
}

func TestCacheKeyIsStablePerPrompt(t *testing.T) {
	s := newTestAIService(nil)
	a := s.cacheKey("system", "prompt")
	b := s.cacheKey("system", "prompt")
	c := s.cacheKey("system", "other prompt")
	if a != b {
		t.Error("same prompt must produce the same cache key")
	}
	if a == c {
		t.Error("different prompts must produce different cache keys")
	}
}
