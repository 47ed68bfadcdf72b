package model

import (
	"encoding/json"
	"time"
)

// PlacementItemType selects the answer-matching strategy for a test item.
type PlacementItemType string

const (
	ItemMultipleChoice PlacementItemType = "multiple_choice"
	ItemCloze          PlacementItemType = "cloze"
	ItemTranslation    PlacementItemType = "translation"
)

// PlacementTest is the placement test definition for one language. Only one
// active test per language exists at a time.
// swagger:model PlacementTest
type PlacementTest struct {
	BaseModel
	Language   string              `gorm:"size:20;not null;uniqueIndex:idx_lang_active" json:"language"`
	TotalItems int                 `gorm:"default:12" json:"totalItems"`
	IsActive   bool                `gorm:"default:true;uniqueIndex:idx_lang_active" json:"isActive"`
	Items      []PlacementTestItem `gorm:"foreignKey:TestID" json:"items,omitempty"`
}

func (PlacementTest) TableName() string {
	return "placement_tests"
}

// PlacementTestItem is immutable once created.
// swagger:model PlacementTestItem
type PlacementTestItem struct {
	BaseModel
	TestID           uint              `gorm:"not null;uniqueIndex:idx_test_order" json:"testId"`
	ItemType         PlacementItemType `gorm:"size:20;not null" json:"itemType"`
	QuestionText     json.RawMessage   `gorm:"type:json" json:"questionText"` // multilingual content
	CorrectAnswer    string            `gorm:"size:500;not null" json:"-"`
	Options          json.RawMessage   `gorm:"type:json" json:"options,omitempty"` // choices for multiple_choice
	DifficultyWeight float64           `gorm:"type:decimal(3,2);default:1.0" json:"difficultyWeight"`
	Order            int               `gorm:"default:0;uniqueIndex:idx_test_order" json:"order"`
}

func (PlacementTestItem) TableName() string {
	return "placement_test_items"
}

// PlacementTestResult is created exactly once per submission and never
// mutated afterwards. Percentage is always derived from score/max_score.
// swagger:model PlacementTestResult
type PlacementTestResult struct {
	BaseModel
	UserID             uint            `gorm:"index;not null" json:"userId"`
	TestID             uint            `gorm:"index;not null" json:"testId"`
	Score              float64         `gorm:"type:decimal(5,2)" json:"score"`
	MaxScore           float64         `gorm:"type:decimal(5,2)" json:"maxScore"`
	Percentage         float64         `gorm:"type:decimal(5,2)" json:"percentage"`
	EstimatedCEFRLevel string          `gorm:"size:2" json:"estimatedCefrLevel"`
	Answers            json.RawMessage `gorm:"type:json" json:"answers"` // item id (string) -> raw answer
	CompletedAt        time.Time       `gorm:"autoCreateTime" json:"completedAt"`
}

func (PlacementTestResult) TableName() string {
	return "placement_test_results"
}
