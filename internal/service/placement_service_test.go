package service

import (
	"strconv"
	"testing"

	"lingua_backend/internal/config"
	"lingua_backend/internal/model"
)

func item(id uint, itemType model.PlacementItemType, answer string, weight float64) model.PlacementTestItem {
	return model.PlacementTestItem{
		BaseModel:        model.BaseModel{ID: id},
		ItemType:         itemType,
		CorrectAnswer:    answer,
		DifficultyWeight: weight,
	}
}

func TestScoreSubmission(t *testing.T) {
	items := []model.PlacementTestItem{
		item(1, model.ItemMultipleChoice, "paris", 1.0),
		item(2, model.ItemCloze, "went", 1.5),
		item(3, model.ItemTranslation, "i am going home", 2.0),
	}

	tests := []struct {
		name     string
		answers  map[string]string
		score    float64
		maxScore float64
	}{
		{
			"all correct",
			map[string]string{"1": " Paris ", "2": "WENT", "3": "i am going home"},
			4.5, 4.5,
		},
		{
			"placement translation requires exact match",
			map[string]string{"1": "paris", "2": "went", "3": "i am going homee"},
			2.5, 4.5,
		},
		{
			"unanswered items score zero but keep their weight",
			map[string]string{"1": "paris"},
			1.0, 4.5,
		},
		{
			"empty submission",
			map[string]string{},
			0, 4.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, maxScore := ScoreSubmission(items, tt.answers)
			if score != tt.score || maxScore != tt.maxScore {
				t.Errorf("ScoreSubmission() = (%f, %f), want (%f, %f)", score, maxScore, tt.score, tt.maxScore)
			}
		})
	}
}

func TestScoreSubmissionNoItems(t *testing.T) {
	score, maxScore := ScoreSubmission(nil, map[string]string{"1": "paris"})
	if score != 0 || maxScore != 0 {
		t.Errorf("ScoreSubmission(nil) = (%f, %f), want (0, 0)", score, maxScore)
	}
}

func TestLevelForPercentage(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{0, "A0"},
		{20, "A0"}, // bounds are inclusive
		{20.01, "A1"},
		{35, "A1"},
		{50, "A2"},
		{65, "B1"},
		{80, "B2"},
		{90, "C1"},
		{90.5, "C2"},
		{100, "C2"},
	}
	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.percentage, 'f', -1, 64), func(t *testing.T) {
			if got := LevelForPercentage(config.DefaultBands, tt.percentage); got != tt.want {
				t.Errorf("LevelForPercentage(%f) = %s, want %s", tt.percentage, got, tt.want)
			}
		})
	}
}
