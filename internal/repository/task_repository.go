package repository

import (
	"lingua_backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) TemplatesByModule(moduleID, userID uint) ([]model.TaskTemplate, error) {
	var templates []model.TaskTemplate
	err := r.DB.Joins("JOIN modules ON modules.id = task_templates.module_id").
		Joins("JOIN roadmaps ON roadmaps.id = modules.roadmap_id").
		Where("task_templates.module_id = ? AND roadmaps.user_id = ?", moduleID, userID).
		Order("task_templates.order ASC").
		Find(&templates).Error
	return templates, err
}

// FindTemplateForUser scopes template lookup to the owning user's roadmaps.
func (r *TaskRepository) FindTemplateForUser(templateID, userID uint) (*model.TaskTemplate, error) {
	var template model.TaskTemplate
	err := r.DB.Joins("JOIN modules ON modules.id = task_templates.module_id").
		Joins("JOIN roadmaps ON roadmaps.id = modules.roadmap_id").
		Where("task_templates.id = ? AND roadmaps.user_id = ?", templateID, userID).
		First(&template).Error
	return &template, err
}

func (r *TaskRepository) AttemptsByUser(userID uint, limit int) ([]model.TaskAttempt, error) {
	var attempts []model.TaskAttempt
	query := r.DB.
		Joins("JOIN task_instances ON task_instances.id = task_attempts.task_instance_id").
		Where("task_instances.user_id = ?", userID).
		Order("task_attempts.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&attempts).Error
	return attempts, err
}

type AttemptStats struct {
	Total   int64
	Correct int64
}

// AttemptStatsForModule counts a user's attempts against a module's templates.
func (r *TaskRepository) AttemptStatsForModule(db *gorm.DB, userID, moduleID uint) (AttemptStats, error) {
	var stats AttemptStats
	scope := func() *gorm.DB {
		return db.Model(&model.TaskAttempt{}).
			Joins("JOIN task_instances ON task_instances.id = task_attempts.task_instance_id").
			Joins("JOIN task_templates ON task_templates.id = task_instances.template_id").
			Where("task_instances.user_id = ? AND task_templates.module_id = ?", userID, moduleID)
	}

	if err := scope().Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	err := scope().Where("task_attempts.is_correct = ?", true).Count(&stats.Correct).Error
	return stats, err
}

// CountCompletedInstances counts completed task instances for a module's templates.
func (r *TaskRepository) CountCompletedInstances(db *gorm.DB, userID, moduleID uint) (int64, error) {
	var count int64
	err := db.Model(&model.TaskInstance{}).
		Joins("JOIN task_templates ON task_templates.id = task_instances.template_id").
		Where("task_instances.user_id = ? AND task_templates.module_id = ? AND task_instances.status = ?",
			userID, moduleID, model.TaskCompleted).
		Count(&count).Error
	return count, err
}
