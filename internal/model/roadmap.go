package model

import (
	"encoding/json"
	"time"
)

// Roadmap is a generated learning plan for one user+language. Only one
// roadmap per user+language is active; activating a new one deactivates the
// rest (handled in the service transaction, not a save hook).
// swagger:model Roadmap
type Roadmap struct {
	BaseModel
	UserID        uint            `gorm:"index;not null" json:"userId"`
	Language      string          `gorm:"size:20;not null" json:"language"`
	CEFRLevel     string          `gorm:"size:2;not null" json:"cefrLevel"`
	GeneratedByAI bool            `gorm:"default:true" json:"generatedByAi"`
	RoadmapData   json.RawMessage `gorm:"type:json" json:"roadmapData,omitempty"` // full generator output, kept as backup
	IsActive      bool            `gorm:"default:true;index" json:"isActive"`
	Modules       []Module        `gorm:"foreignKey:RoadmapID" json:"modules,omitempty"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// Module is one step of a roadmap. CheckpointCriteria holds the JSON
// completion thresholds; IsCompleted/CompletedAt are stamped exactly once by
// the checkpoint evaluator and never unset by it.
// swagger:model Module
type Module struct {
	BaseModel
	RoadmapID          uint            `gorm:"not null;uniqueIndex:idx_roadmap_order" json:"roadmapId"`
	Title              string          `gorm:"size:200;not null" json:"title"`
	Description        string          `gorm:"type:text" json:"description"`
	Objectives         json.RawMessage `gorm:"type:json" json:"objectives,omitempty"` // array of strings
	Order              int             `gorm:"default:0;uniqueIndex:idx_roadmap_order" json:"order"`
	CheckpointCriteria json.RawMessage `gorm:"type:json" json:"checkpointCriteria,omitempty"`
	IsCompleted        bool            `gorm:"default:false" json:"isCompleted"`
	CompletedAt        *time.Time      `json:"completedAt,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}
