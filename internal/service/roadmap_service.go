package service

import (
	"context"
	"encoding/json"
	"errors"

	"lingua_backend/internal/config"
	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"
	"lingua_backend/internal/util"
	"lingua_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoadmapService struct {
	DB   *gorm.DB
	Repo *repository.RoadmapRepository
	AI   *AIService
	Cfg  *config.Store
}

func NewRoadmapService(db *gorm.DB, ai *AIService, cfg *config.Store) *RoadmapService {
	return &RoadmapService{
		DB:   db,
		Repo: repository.NewRoadmapRepository(db),
		AI:   ai,
		Cfg:  cfg,
	}
}

// Generate builds a roadmap for the user and activates it. Generation
// failures are not errors: the static fallback plan is used and the roadmap
// is marked as not AI-generated. Activation deactivates every other roadmap
// of the user in the same transaction.
func (s *RoadmapService) Generate(ctx context.Context, userID uint, language, cefrLevel string, useAI bool) (*model.Roadmap, error) {
	var plan *RoadmapPlan
	generatedByAI := false

	if useAI && s.AI.Enabled() {
		aiPlan, err := s.AI.GenerateRoadmap(ctx, language, cefrLevel, 3)
		if err != nil {
			logger.Log.Warn("roadmap generation failed, using fallback",
				zap.String("language", language),
				zap.String("cefr_level", cefrLevel),
				zap.Error(err))
		} else {
			plan = aiPlan
			generatedByAI = true
		}
	}
	if plan == nil {
		plan = FallbackRoadmap(language, cefrLevel)
	}

	planData, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	roadmap := &model.Roadmap{
		UserID:        userID,
		Language:      language,
		CEFRLevel:     cefrLevel,
		GeneratedByAI: generatedByAI,
		RoadmapData:   planData,
		IsActive:      true,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Roadmap{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).
			Error; err != nil {
			return err
		}

		if err := tx.Create(roadmap).Error; err != nil {
			return err
		}

		for index, modulePlan := range plan.Modules {
			objectives, err := json.Marshal(modulePlan.Objectives)
			if err != nil {
				return err
			}
			criteria := modulePlan.CheckpointCriteria
			if !ParseCheckpointCriteria(criteria).Valid() {
				// Defaults are filled in here, at creation time only.
				defaults := s.Cfg.Current().Checkpoint
				criteria = criteriaJSON(
					defaults.DefaultAccuracyThreshold,
					defaults.DefaultMinTasks,
				)
			}

			module := model.Module{
				RoadmapID:          roadmap.ID,
				Title:              modulePlan.Title,
				Description:        modulePlan.Description,
				Objectives:         objectives,
				Order:              index + 1,
				CheckpointCriteria: criteria,
			}
			if err := tx.Create(&module).Error; err != nil {
				return err
			}
			roadmap.Modules = append(roadmap.Modules, module)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return roadmap, nil
}

// Current returns the user's active roadmap with its ordered modules.
func (s *RoadmapService) Current(userID uint) (*model.Roadmap, error) {
	roadmap, err := s.Repo.FindActiveByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRoadmapNotFound
	}
	return roadmap, err
}

func (s *RoadmapService) Modules(roadmapID, userID uint) ([]model.Module, error) {
	return s.Repo.ModulesByRoadmap(roadmapID, userID)
}

func (s *RoadmapService) ModuleDetail(moduleID, userID uint) (*model.Module, error) {
	module, err := s.Repo.FindModuleForUser(moduleID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrModuleNotFound
	}
	return module, err
}
