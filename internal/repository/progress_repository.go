package repository

import (
	"errors"

	"lingua_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) GetOrCreate(db *gorm.DB, userID, moduleID uint) (*model.ProgressSnapshot, error) {
	var snapshot model.ProgressSnapshot
	err := db.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		snapshot = model.ProgressSnapshot{UserID: userID, ModuleID: moduleID}
		if err := db.Create(&snapshot).Error; err != nil {
			return nil, err
		}
		return &snapshot, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *ProgressRepository) SnapshotsByUser(userID uint) ([]model.ProgressSnapshot, error) {
	var snapshots []model.ProgressSnapshot
	err := r.DB.Where("user_id = ?", userID).Find(&snapshots).Error
	return snapshots, err
}
