package repository

import (
	"errors"

	"lingua_backend/internal/model"

	"gorm.io/gorm"
)

type GamificationRepository struct {
	DB *gorm.DB
}

func NewGamificationRepository(db *gorm.DB) *GamificationRepository {
	return &GamificationRepository{DB: db}
}

// GetOrCreate lazily provisions the profile on first touch.
func (r *GamificationRepository) GetOrCreate(db *gorm.DB, userID uint) (*model.GamificationProfile, error) {
	var profile model.GamificationProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.GamificationProfile{UserID: userID, XPHistory: model.XPHistory{}}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	if profile.XPHistory == nil {
		profile.XPHistory = model.XPHistory{}
	}
	return &profile, nil
}

func (r *GamificationRepository) Save(db *gorm.DB, profile *model.GamificationProfile) error {
	return db.Save(profile).Error
}
