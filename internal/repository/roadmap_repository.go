package repository

import (
	"lingua_backend/internal/model"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) FindActiveByUser(userID uint) (*model.Roadmap, error) {
	var roadmap model.Roadmap
	err := r.DB.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("modules.order ASC")
	}).Where("user_id = ? AND is_active = ?", userID, true).First(&roadmap).Error
	return &roadmap, err
}

func (r *RoadmapRepository) ModulesByRoadmap(roadmapID, userID uint) ([]model.Module, error) {
	var modules []model.Module
	err := r.DB.Joins("JOIN roadmaps ON roadmaps.id = modules.roadmap_id").
		Where("modules.roadmap_id = ? AND roadmaps.user_id = ?", roadmapID, userID).
		Order("modules.order ASC").
		Find(&modules).Error
	return modules, err
}

// FindModuleForUser scopes module lookup to the owning user's roadmaps.
func (r *RoadmapRepository) FindModuleForUser(moduleID, userID uint) (*model.Module, error) {
	var module model.Module
	err := r.DB.Joins("JOIN roadmaps ON roadmaps.id = modules.roadmap_id").
		Where("modules.id = ? AND roadmaps.user_id = ?", moduleID, userID).
		First(&module).Error
	return &module, err
}
