package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"lingua_backend/internal/model"
)

func feedbackTemplate() *model.TaskTemplate {
	return &model.TaskTemplate{
		TaskType:        model.TaskMultipleChoice,
		Content:         json.RawMessage(`{"question": "She ___ to school every day."}`),
		CorrectAnswer:   "goes",
		RuleExplanation: "Third person singular takes -s or -es",
		ExampleContrast: "Correct: She goes. Incorrect: She go.",
	}
}

func TestBuildFeedbackFallsBackToTemplateOnProviderError(t *testing.T) {
	svc := &TaskService{AI: newTestAIService(&fakeCompleter{err: errors.New("provider down")})}
	template := feedbackTemplate()

	raw := svc.buildFeedback(context.Background(), template, "go", false)
	if raw == nil {
		t.Fatal("feedback document should never be nil")
	}

	var feedback attemptFeedback
	if err := json.Unmarshal(raw, &feedback); err != nil {
		t.Fatalf("feedback is not valid JSON: %v", err)
	}
	if feedback.IsCorrect {
		t.Error("feedback should mark the attempt incorrect")
	}
	if feedback.Rule != template.RuleExplanation {
		t.Errorf("Rule = %q, want the template explanation %q", feedback.Rule, template.RuleExplanation)
	}
	if feedback.ExampleContrast != template.ExampleContrast {
		t.Errorf("ExampleContrast = %q, want %q", feedback.ExampleContrast, template.ExampleContrast)
	}
	if feedback.CorrectAnswer != "goes" {
		t.Errorf("CorrectAnswer = %q, want %q", feedback.CorrectAnswer, "goes")
	}
}

func TestBuildFeedbackUsesProviderExplanationWhenAvailable(t *testing.T) {
	completer := &fakeCompleter{
		reply: `{"rule": "Use -s with he/she/it", "example_contrast": "She goes, not she go", "tip": "Watch the subject"}`,
	}
	svc := &TaskService{AI: newTestAIService(completer)}

	raw := svc.buildFeedback(context.Background(), feedbackTemplate(), "go", false)

	var feedback attemptFeedback
	if err := json.Unmarshal(raw, &feedback); err != nil {
		t.Fatalf("feedback is not valid JSON: %v", err)
	}
	if feedback.Rule != "Use -s with he/she/it" {
		t.Errorf("Rule = %q, want the generated explanation", feedback.Rule)
	}
	if feedback.Tip != "Watch the subject" {
		t.Errorf("Tip = %q, want the generated tip", feedback.Tip)
	}
}

func TestBuildFeedbackCorrectAnswerSkipsProvider(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("should not be called")}
	svc := &TaskService{AI: newTestAIService(completer)}

	raw := svc.buildFeedback(context.Background(), feedbackTemplate(), "goes", true)

	var feedback attemptFeedback
	if err := json.Unmarshal(raw, &feedback); err != nil {
		t.Fatalf("feedback is not valid JSON: %v", err)
	}
	if !feedback.IsCorrect {
		t.Error("feedback should mark the attempt correct")
	}
	if feedback.Message != "Correct! Well done!" {
		t.Errorf("Message = %q", feedback.Message)
	}
	if completer.calls != 0 {
		t.Errorf("provider called %d times for a correct answer, want 0", completer.calls)
	}
}
