package service

import (
	"encoding/json"
	"time"

	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"

	"gorm.io/gorm"
)

// CheckpointCriteria are the completion thresholds stored on a module.
// Both fields must be present in the stored JSON; a module with missing or
// empty criteria can never auto-complete. Defaults are applied when a roadmap
// is created, never at evaluation time.
type CheckpointCriteria struct {
	AccuracyThreshold *float64 `json:"accuracy_threshold"` // 0..1 fraction
	MinTasksCompleted *int     `json:"min_tasks_completed"`
}

// Valid reports whether the criteria carry both thresholds.
func (c *CheckpointCriteria) Valid() bool {
	return c != nil && c.AccuracyThreshold != nil && c.MinTasksCompleted != nil
}

// ParseCheckpointCriteria decodes the stored criteria. Empty, null or
// malformed JSON yields nil rather than an error: such a module simply never
// completes automatically.
func ParseCheckpointCriteria(raw json.RawMessage) *CheckpointCriteria {
	if len(raw) == 0 {
		return nil
	}
	var criteria CheckpointCriteria
	if err := json.Unmarshal(raw, &criteria); err != nil {
		return nil
	}
	return &criteria
}

// MeetsCriteria checks accuracy and task-count thresholds. Accuracy is
// correct/total attempts as a percentage, compared against the stored
// fraction scaled to the same unit. Zero attempts means zero accuracy.
func MeetsCriteria(criteria *CheckpointCriteria, stats repository.AttemptStats, completedTasks int64) bool {
	if !criteria.Valid() {
		return false
	}
	accuracy := 0.0
	if stats.Total > 0 {
		accuracy = float64(stats.Correct) / float64(stats.Total) * 100
	}
	return accuracy >= *criteria.AccuracyThreshold*100 &&
		completedTasks >= int64(*criteria.MinTasksCompleted)
}

// EvaluateModuleCompletion stamps the module completed when its checkpoint
// criteria are met. The stamp is one-shot: an already-completed module is
// never re-evaluated and never unset here, even if later attempts drag
// accuracy below the threshold. Returns whether the module transitioned.
func EvaluateModuleCompletion(tx *gorm.DB, taskRepo *repository.TaskRepository, userID uint, module *model.Module) (bool, error) {
	if module.IsCompleted {
		return false, nil
	}
	criteria := ParseCheckpointCriteria(module.CheckpointCriteria)
	if !criteria.Valid() {
		return false, nil
	}

	stats, err := taskRepo.AttemptStatsForModule(tx, userID, module.ID)
	if err != nil {
		return false, err
	}
	completed, err := taskRepo.CountCompletedInstances(tx, userID, module.ID)
	if err != nil {
		return false, err
	}

	if !MeetsCriteria(criteria, stats, completed) {
		return false, nil
	}

	now := time.Now()
	module.IsCompleted = true
	module.CompletedAt = &now
	err = tx.Model(&model.Module{}).
		Where("id = ?", module.ID).
		Updates(map[string]interface{}{"is_completed": true, "completed_at": now}).
		Error
	return err == nil, err
}
