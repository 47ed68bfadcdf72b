package model

import "time"

// ProgressSnapshot tracks one user's aggregate state within one module. It is
// refreshed inside the task-attempt transaction, never queried lazily.
// swagger:model ProgressSnapshot
type ProgressSnapshot struct {
	BaseModel
	UserID             uint       `gorm:"not null;uniqueIndex:idx_user_module" json:"userId"`
	ModuleID           uint       `gorm:"not null;uniqueIndex:idx_user_module" json:"moduleId"`
	TasksAttempted     int        `gorm:"default:0" json:"tasksAttempted"`
	TasksCompleted     int        `gorm:"default:0" json:"tasksCompleted"`
	AccuracyPercentage float64    `gorm:"type:decimal(5,2);default:0" json:"accuracyPercentage"`
	LastActivityDate   *time.Time `gorm:"type:date" json:"lastActivityDate,omitempty"`
}

func (ProgressSnapshot) TableName() string {
	return "progress_snapshots"
}
