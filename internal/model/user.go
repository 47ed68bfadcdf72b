package model

import (
	"encoding/json"
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// Supported learning languages.
const (
	LanguageKazakh  = "kazakh"
	LanguageRussian = "russian"
	LanguageEnglish = "english"
	LanguageSpanish = "spanish"
)

// CEFR proficiency bands, coarsest to finest.
const (
	LevelA0 = "A0"
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
	LevelC1 = "C1"
	LevelC2 = "C2"
)

// swagger:model User
type User struct {
	BaseModel
	Name                string          `gorm:"size:100;not null" json:"name"`
	Email               string          `gorm:"size:100;unique;not null" json:"email"`
	Password            string          `gorm:"size:100;not null" json:"-"`
	Role                UserRole        `gorm:"type:enum('student','admin');default:'student'" json:"role"`
	TargetLanguage      string          `gorm:"size:20" json:"targetLanguage"`                      // language the user wants to learn
	NativeLanguage      string          `gorm:"size:20;default:'english'" json:"nativeLanguage"`    // user's native/primary language
	CurrentCEFRLevel    string          `gorm:"size:2;default:'A0'" json:"currentCefrLevel"`        // overwritten by placement results
	LearningPreferences json.RawMessage `gorm:"type:json" json:"learningPreferences,omitempty"`     // study time, goals, etc.
	Avatar              string          `gorm:"size:255" json:"avatar"`
	Disabled            bool            `gorm:"default:false" json:"disabled"`
	LastLogin           time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen            time.Time       `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
