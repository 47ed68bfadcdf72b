package model

import (
	"encoding/json"
	"time"
)

type DialogueSessionStatus string

const (
	SessionActive    DialogueSessionStatus = "active"
	SessionCompleted DialogueSessionStatus = "completed"
)

// DialogueScenario is a conversation template ("At a Café", ...).
// swagger:model DialogueScenario
type DialogueScenario struct {
	BaseModel
	Title              string `gorm:"size:200;not null" json:"title"`
	Language           string `gorm:"size:20;not null;index" json:"language"`
	CEFRLevel          string `gorm:"size:2;not null" json:"cefrLevel"`
	ContextDescription string `gorm:"type:text;not null" json:"contextDescription"`
	MaxTurns           int    `gorm:"default:10" json:"maxTurns"`
	IsActive           bool   `gorm:"default:true" json:"isActive"`
}

func (DialogueScenario) TableName() string {
	return "dialogue_scenarios"
}

// DialogueSession is one user's run through a scenario.
// swagger:model DialogueSession
type DialogueSession struct {
	UUIDBase
	UserID     uint                  `gorm:"index;not null" json:"userId"`
	ScenarioID uint                  `gorm:"index;not null" json:"scenarioId"`
	Scenario   *DialogueScenario     `gorm:"foreignKey:ScenarioID" json:"scenario,omitempty"`
	Status     DialogueSessionStatus `gorm:"size:20;default:'active'" json:"status"`
	TurnCount  int                   `gorm:"default:0" json:"turnCount"`
	StartedAt  time.Time             `gorm:"autoCreateTime" json:"startedAt"`
	EndedAt    *time.Time            `json:"endedAt,omitempty"`
	Turns      []DialogueTurn        `gorm:"foreignKey:SessionID" json:"turns,omitempty"`
}

func (DialogueSession) TableName() string {
	return "dialogue_sessions"
}

// CanAddTurn reports whether the session accepts another turn.
func (s *DialogueSession) CanAddTurn(maxTurns int) bool {
	return s.Status == SessionActive && s.TurnCount < maxTurns
}

// DialogueTurn is one user message plus the tutor reply and its corrections.
// swagger:model DialogueTurn
type DialogueTurn struct {
	BaseModel
	SessionID     string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_session_turn" json:"sessionId"`
	TurnNumber    int             `gorm:"not null;uniqueIndex:idx_session_turn" json:"turnNumber"`
	UserMessage   string          `gorm:"type:text;not null" json:"userMessage"`
	AIResponse    string          `gorm:"type:text" json:"aiResponse"`
	Corrections   json.RawMessage `gorm:"type:json" json:"corrections,omitempty"` // [{original, corrected, explanation}]
	Reformulation string          `gorm:"type:text" json:"reformulation,omitempty"`
}

func (DialogueTurn) TableName() string {
	return "dialogue_turns"
}
