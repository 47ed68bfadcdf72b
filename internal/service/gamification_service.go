package service

import (
	"time"

	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"

	"gorm.io/gorm"
)

type GamificationService struct {
	DB   *gorm.DB
	Repo *repository.GamificationRepository
}

func NewGamificationService(db *gorm.DB) *GamificationService {
	return &GamificationService{
		DB:   db,
		Repo: repository.NewGamificationRepository(db),
	}
}

// Profile returns the user's gamification profile, creating an empty one on
// first access.
func (s *GamificationService) Profile(userID uint) (*model.GamificationProfile, error) {
	return s.Repo.GetOrCreate(s.DB, userID)
}

// RecordActivity awards XP and applies one streak signal inside the caller's
// transaction. Zero XP (an incorrect attempt) still counts as activity and
// still feeds the streak.
func (s *GamificationService) RecordActivity(tx *gorm.DB, userID uint, xp int, when time.Time) (*model.GamificationProfile, error) {
	profile, err := s.Repo.GetOrCreate(tx, userID)
	if err != nil {
		return nil, err
	}
	if xp > 0 {
		profile.AddXP(xp, when)
	}
	profile.UpdateStreak(when)
	if err := s.Repo.Save(tx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CheckIn registers a zero-XP activity signal, letting users keep a streak
// alive on days without completed tasks.
func (s *GamificationService) CheckIn(userID uint) (*model.GamificationProfile, error) {
	var profile *model.GamificationProfile
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		profile, err = s.RecordActivity(tx, userID, 0, time.Now())
		return err
	})
	return profile, err
}
