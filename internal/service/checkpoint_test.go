package service

import (
	"encoding/json"
	"testing"

	"lingua_backend/internal/repository"
)

func criteria(threshold float64, minTasks int) *CheckpointCriteria {
	return &CheckpointCriteria{AccuracyThreshold: &threshold, MinTasksCompleted: &minTasks}
}

func TestParseCheckpointCriteria(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
	}{
		{"both keys", `{"accuracy_threshold": 0.85, "min_tasks_completed": 10}`, true},
		{"missing accuracy", `{"min_tasks_completed": 10}`, false},
		{"missing min tasks", `{"accuracy_threshold": 0.85}`, false},
		{"empty object", `{}`, false},
		{"null", `null`, false},
		{"malformed", `{accuracy`, false},
		{"empty raw", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCheckpointCriteria(json.RawMessage(tt.raw))
			if got.Valid() != tt.wantValid {
				t.Errorf("ParseCheckpointCriteria(%q).Valid() = %v, want %v", tt.raw, got.Valid(), tt.wantValid)
			}
		})
	}
}

func TestMeetsCriteria(t *testing.T) {
	tests := []struct {
		name      string
		criteria  *CheckpointCriteria
		stats     repository.AttemptStats
		completed int64
		want      bool
	}{
		{
			"both thresholds met",
			criteria(0.85, 10),
			repository.AttemptStats{Total: 20, Correct: 18}, // 90%
			10,
			true,
		},
		{
			"accuracy exactly at threshold",
			criteria(0.85, 10),
			repository.AttemptStats{Total: 20, Correct: 17}, // 85%
			10,
			true,
		},
		{
			"accuracy below threshold",
			criteria(0.85, 10),
			repository.AttemptStats{Total: 20, Correct: 16}, // 80%
			10,
			false,
		},
		{
			"not enough completed tasks",
			criteria(0.85, 10),
			repository.AttemptStats{Total: 20, Correct: 20},
			9,
			false,
		},
		{
			"no attempts means zero accuracy",
			criteria(0.5, 0),
			repository.AttemptStats{},
			0,
			false,
		},
		{
			"zero thresholds with attempts",
			criteria(0, 0),
			repository.AttemptStats{Total: 1, Correct: 0},
			0,
			true,
		},
		{
			"invalid criteria never complete",
			&CheckpointCriteria{},
			repository.AttemptStats{Total: 100, Correct: 100},
			100,
			false,
		},
		{
			"nil criteria never complete",
			nil,
			repository.AttemptStats{Total: 100, Correct: 100},
			100,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsCriteria(tt.criteria, tt.stats, tt.completed); got != tt.want {
				t.Errorf("MeetsCriteria() = %v, want %v", got, tt.want)
			}
		})
	}
}
