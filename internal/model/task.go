package model

import (
	"encoding/json"
	"time"
)

// TaskType selects the answer-matching strategy for standalone task attempts.
// Note: task attempts use "fill_blank" where placement items use "cloze";
// the two paths intentionally keep separate matching rules.
type TaskType string

const (
	TaskMultipleChoice TaskType = "multiple_choice"
	TaskFillBlank      TaskType = "fill_blank"
	TaskTranslation    TaskType = "translation"
)

type TaskInstanceStatus string

const (
	TaskPending    TaskInstanceStatus = "pending"
	TaskInProgress TaskInstanceStatus = "in_progress"
	TaskCompleted  TaskInstanceStatus = "completed"
)

// TaskTemplate is a reusable exercise belonging to a module.
// swagger:model TaskTemplate
type TaskTemplate struct {
	BaseModel
	ModuleID        uint            `gorm:"not null;uniqueIndex:idx_module_order" json:"moduleId"`
	TaskType        TaskType        `gorm:"size:20;not null" json:"taskType"`
	Content         json.RawMessage `gorm:"type:json" json:"content"` // question, options, context
	CorrectAnswer   string          `gorm:"size:500;not null" json:"-"`
	RuleExplanation string          `gorm:"type:text" json:"ruleExplanation,omitempty"`
	ExampleContrast string          `gorm:"type:text" json:"exampleContrast,omitempty"`
	DifficultyLevel int             `gorm:"default:1" json:"difficultyLevel"` // 1=easy, 2=medium, 3=hard
	CreatedByAI     bool            `gorm:"default:false" json:"createdByAi"`
	Order           int             `gorm:"default:0;uniqueIndex:idx_module_order" json:"order"`
}

func (TaskTemplate) TableName() string {
	return "task_templates"
}

// TaskInstance is the per-user state of a template. Unique per (user,
// template); counters are recomputed on every attempt inside the attempt
// transaction.
// swagger:model TaskInstance
type TaskInstance struct {
	BaseModel
	UserID             uint               `gorm:"not null;uniqueIndex:idx_user_template" json:"userId"`
	TemplateID         uint               `gorm:"not null;uniqueIndex:idx_user_template" json:"templateId"`
	Status             TaskInstanceStatus `gorm:"size:20;default:'pending'" json:"status"`
	AttemptsCount      int                `gorm:"default:0" json:"attemptsCount"`
	BestAttemptCorrect bool               `gorm:"default:false" json:"bestAttemptCorrect"`
}

func (TaskInstance) TableName() string {
	return "task_instances"
}

// TaskAttempt is append-only. XPGained is computed exactly once when the
// attempt is created (10 x difficulty when correct) and never recomputed.
// swagger:model TaskAttempt
type TaskAttempt struct {
	BaseModel
	TaskInstanceID uint            `gorm:"index;not null" json:"taskInstanceId"`
	UserAnswer     string          `gorm:"size:1000" json:"userAnswer"`
	IsCorrect      bool            `json:"isCorrect"`
	Feedback       json.RawMessage `gorm:"type:json" json:"feedback,omitempty"` // rule, contrast, tip
	XPGained       int             `gorm:"default:0" json:"xpGained"`
	AttemptedAt    time.Time       `gorm:"autoCreateTime" json:"attemptedAt"`
}

func (TaskAttempt) TableName() string {
	return "task_attempts"
}

// BaseXPPerTask is multiplied by the template difficulty for correct attempts.
const BaseXPPerTask = 10

// ComputeXP fills XPGained for a correct attempt. Idempotent: a non-zero
// value is never overwritten, so re-saving an attempt cannot double-award.
func (a *TaskAttempt) ComputeXP(difficultyLevel int) {
	if a.IsCorrect && a.XPGained == 0 {
		a.XPGained = BaseXPPerTask * difficultyLevel
	}
}
