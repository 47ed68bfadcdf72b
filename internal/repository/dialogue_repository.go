package repository

import (
	"lingua_backend/internal/model"

	"gorm.io/gorm"
)

type DialogueRepository struct {
	DB *gorm.DB
}

func NewDialogueRepository(db *gorm.DB) *DialogueRepository {
	return &DialogueRepository{DB: db}
}

func (r *DialogueRepository) ListActiveScenarios(language, cefrLevel string) ([]model.DialogueScenario, error) {
	var scenarios []model.DialogueScenario
	query := r.DB.Where("is_active = ?", true)
	if language != "" {
		query = query.Where("language = ?", language)
	}
	if cefrLevel != "" {
		query = query.Where("cefr_level = ?", cefrLevel)
	}
	err := query.Order("created_at DESC").Find(&scenarios).Error
	return scenarios, err
}

func (r *DialogueRepository) FindActiveScenario(id uint) (*model.DialogueScenario, error) {
	var scenario model.DialogueScenario
	err := r.DB.Where("is_active = ?", true).First(&scenario, id).Error
	return &scenario, err
}

func (r *DialogueRepository) CreateSession(session *model.DialogueSession) error {
	return r.DB.Create(session).Error
}

func (r *DialogueRepository) FindSessionForUser(sessionID string, userID uint) (*model.DialogueSession, error) {
	var session model.DialogueSession
	err := r.DB.Preload("Scenario").
		Preload("Turns", func(db *gorm.DB) *gorm.DB {
			return db.Order("dialogue_turns.turn_number ASC")
		}).
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error
	return &session, err
}

func (r *DialogueRepository) SessionsByUser(userID uint) ([]model.DialogueSession, error) {
	var sessions []model.DialogueSession
	err := r.DB.Preload("Scenario").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *DialogueRepository) CreateScenario(scenario *model.DialogueScenario) error {
	return r.DB.Create(scenario).Error
}
