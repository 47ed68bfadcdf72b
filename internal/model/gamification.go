package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// XPHistory maps an ISO date string (2006-01-02) to the XP earned that day.
// Stored as a JSON column.
type XPHistory map[string]int

func (h XPHistory) Value() (driver.Value, error) {
	if h == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(h)
}

func (h *XPHistory) Scan(value interface{}) error {
	if value == nil {
		*h = XPHistory{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into XPHistory", value)
	}
	if len(data) == 0 {
		*h = XPHistory{}
		return nil
	}
	return json.Unmarshal(data, h)
}

// GamificationProfile holds one user's XP ledger and daily streak. It is
// created lazily on the first XP-affecting event. TotalXP and
// LongestStreakDays only ever grow.
// swagger:model GamificationProfile
type GamificationProfile struct {
	BaseModel
	UserID            uint       `gorm:"uniqueIndex;not null" json:"userId"`
	TotalXP           int        `gorm:"default:0" json:"totalXp"`
	CurrentStreakDays int        `gorm:"default:0" json:"currentStreakDays"`
	LongestStreakDays int        `gorm:"default:0" json:"longestStreakDays"`
	LastActivityDate  *time.Time `gorm:"type:date" json:"lastActivityDate,omitempty"`
	XPHistory         XPHistory  `gorm:"type:json" json:"xpHistory"`
}

func (GamificationProfile) TableName() string {
	return "gamification_profiles"
}

// dateOnly strips the time-of-day so day arithmetic is calendar-based.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UpdateStreak applies one activity signal. Transitions depend only on the
// day gap to the last recorded activity: 0 leaves the counters alone, 1
// extends the streak, anything larger resets it to 1. The first activity
// ever initializes both counters to 1. LastActivityDate is always refreshed,
// so a same-day repeat is a counter no-op but still updates the date.
func (p *GamificationProfile) UpdateStreak(activityDate time.Time) {
	day := dateOnly(activityDate)

	if p.LastActivityDate == nil {
		p.CurrentStreakDays = 1
		p.LongestStreakDays = 1
	} else {
		daysDiff := int(day.Sub(dateOnly(*p.LastActivityDate)).Hours() / 24)
		switch {
		case daysDiff == 0:
			// same day, streak unchanged
		case daysDiff == 1:
			p.CurrentStreakDays++
			if p.CurrentStreakDays > p.LongestStreakDays {
				p.LongestStreakDays = p.CurrentStreakDays
			}
		default:
			p.CurrentStreakDays = 1
		}
	}

	p.LastActivityDate = &day
}

// AddXP adds to the total and to the day bucket, creating the bucket when
// absent. Callers only pass non-negative amounts from correct attempts.
func (p *GamificationProfile) AddXP(amount int, date time.Time) {
	p.TotalXP += amount

	if p.XPHistory == nil {
		p.XPHistory = XPHistory{}
	}
	key := dateOnly(date).Format("2006-01-02")
	p.XPHistory[key] += amount
}
