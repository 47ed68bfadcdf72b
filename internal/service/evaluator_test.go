package service

import (
	"math"
	"testing"

	"lingua_backend/internal/model"
)

func TestEvaluatePlacementAnswer(t *testing.T) {
	tests := []struct {
		name     string
		itemType model.PlacementItemType
		user     string
		correct  string
		want     bool
	}{
		{"exact match", model.ItemMultipleChoice, "paris", "paris", true},
		{"case and whitespace normalized", model.ItemCloze, "  Paris ", "paris", true},
		{"translation is exact too", model.ItemTranslation, "pariss", "paris", false},
		{"near miss is wrong", model.ItemCloze, "pariss", "paris", false},
		{"empty answer is wrong", model.ItemMultipleChoice, "", "paris", false},
		{"unknown item type never matches", model.PlacementItemType("essay"), "paris", "paris", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluatePlacementAnswer(tt.itemType, tt.user, tt.correct); got != tt.want {
				t.Errorf("EvaluatePlacementAnswer(%s, %q, %q) = %v, want %v", tt.itemType, tt.user, tt.correct, got, tt.want)
			}
		})
	}
}

func TestEvaluateTaskAnswer(t *testing.T) {
	tests := []struct {
		name     string
		taskType model.TaskType
		user     string
		correct  string
		want     bool
	}{
		{"multiple choice exact", model.TaskMultipleChoice, " Paris ", "paris", true},
		{"multiple choice near miss", model.TaskMultipleChoice, "pariss", "paris", false},
		{"fill blank ignores punctuation", model.TaskFillBlank, "don't", "dont", true},
		{"fill blank ignores trailing period", model.TaskFillBlank, "went.", "went", true},
		{"fill blank wrong word", model.TaskFillBlank, "goes", "went", false},
		{"translation within threshold", model.TaskTranslation, "pariss", "paris", true},
		{"translation below threshold", model.TaskTranslation, "x", "paris", false},
		{"translation word order tolerated", model.TaskTranslation, "I am going home", "I am going home now", true},
		{"empty answer is wrong", model.TaskFillBlank, "  ", "went", false},
		{"unknown task type never matches", model.TaskType("essay"), "paris", "paris", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateTaskAnswer(tt.taskType, tt.user, tt.correct); got != tt.want {
				t.Errorf("EvaluateTaskAnswer(%s, %q, %q) = %v, want %v", tt.taskType, tt.user, tt.correct, got, tt.want)
			}
		})
	}
}

func TestSimilarityRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"both empty", "", "", 1.0},
		{"one empty", "", "paris", 0.0},
		{"identical", "paris", "paris", 1.0},
		{"one extra letter", "pariss", "paris", 10.0 / 11.0},
		{"disjoint", "abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimilarityRatio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SimilarityRatio(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityRatioIsOrderSensitive(t *testing.T) {
	// Matching blocks are contiguous, so swapping words costs similarity.
	swapped := SimilarityRatio("hello world", "world hello")
	if swapped >= 1.0 {
		t.Errorf("expected swapped word order to score below 1.0, got %f", swapped)
	}
	if swapped <= 0.0 {
		t.Errorf("expected partial credit for shared words, got %f", swapped)
	}
}
