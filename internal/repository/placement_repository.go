package repository

import (
	"lingua_backend/internal/model"

	"gorm.io/gorm"
)

type PlacementRepository struct {
	DB *gorm.DB
}

func NewPlacementRepository(db *gorm.DB) *PlacementRepository {
	return &PlacementRepository{DB: db}
}

func (r *PlacementRepository) ListActiveTests(language string) ([]model.PlacementTest, error) {
	var tests []model.PlacementTest
	query := r.DB.Where("is_active = ?", true)
	if language != "" {
		query = query.Where("language = ?", language)
	}
	err := query.Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *PlacementRepository) FindActiveTest(id uint) (*model.PlacementTest, error) {
	var test model.PlacementTest
	err := r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("placement_test_items.order ASC")
	}).Where("is_active = ?", true).First(&test, id).Error
	return &test, err
}

func (r *PlacementRepository) ItemsByTest(testID uint) ([]model.PlacementTestItem, error) {
	var items []model.PlacementTestItem
	err := r.DB.Where("test_id = ?", testID).Order("placement_test_items.order ASC").Find(&items).Error
	return items, err
}

func (r *PlacementRepository) ResultsByUser(userID uint) ([]model.PlacementTestResult, error) {
	var results []model.PlacementTestResult
	err := r.DB.Where("user_id = ?", userID).Order("completed_at DESC").Find(&results).Error
	return results, err
}

func (r *PlacementRepository) CreateTest(test *model.PlacementTest) error {
	return r.DB.Create(test).Error
}
