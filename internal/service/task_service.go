package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"
	"lingua_backend/internal/util"
	"lingua_backend/pkg/logger"
	"lingua_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TaskService struct {
	DB           *gorm.DB
	Repo         *repository.TaskRepository
	RoadmapRepo  *repository.RoadmapRepository
	ProgressRepo *repository.ProgressRepository
	Gamification *GamificationService
	AI           *AIService
}

func NewTaskService(db *gorm.DB, ai *AIService, gamification *GamificationService) *TaskService {
	return &TaskService{
		DB:           db,
		Repo:         repository.NewTaskRepository(db),
		RoadmapRepo:  repository.NewRoadmapRepository(db),
		ProgressRepo: repository.NewProgressRepository(db),
		Gamification: gamification,
		AI:           ai,
	}
}

func (s *TaskService) Templates(moduleID, userID uint) ([]model.TaskTemplate, error) {
	if _, err := s.RoadmapRepo.FindModuleForUser(moduleID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}
	return s.Repo.TemplatesByModule(moduleID, userID)
}

func (s *TaskService) Attempts(userID uint, limit int) ([]model.TaskAttempt, error) {
	return s.Repo.AttemptsByUser(userID, limit)
}

// AttemptResult is the outcome of one submission, including whether this
// attempt pushed the module over its checkpoint.
type AttemptResult struct {
	Attempt         *model.TaskAttempt `json:"attempt"`
	ModuleCompleted bool               `json:"moduleCompleted"`
}

// SubmitAttempt runs the full attempt unit of work: evaluate the answer,
// record the attempt with its one-time XP, roll the instance counters and
// status forward, feed the gamification ledger, refresh the module progress
// snapshot and evaluate the checkpoint. Everything after feedback generation
// commits in a single transaction. Feedback generation talks to the network
// and therefore stays outside it.
func (s *TaskService) SubmitAttempt(ctx context.Context, userID, templateID uint, userAnswer string) (*AttemptResult, error) {
	template, err := s.Repo.FindTemplateForUser(templateID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	userAnswer = strings.TrimSpace(userAnswer)
	isCorrect := EvaluateTaskAnswer(template.TaskType, userAnswer, template.CorrectAnswer)
	monitoring.AttemptCounter.WithLabelValues(strconv.FormatBool(isCorrect)).Inc()
	feedback := s.buildFeedback(ctx, template, userAnswer, isCorrect)

	now := time.Now()
	result := &AttemptResult{}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		instance, err := s.getOrCreateInstance(tx, userID, template.ID)
		if err != nil {
			return err
		}

		attempt := &model.TaskAttempt{
			TaskInstanceID: instance.ID,
			UserAnswer:     userAnswer,
			IsCorrect:      isCorrect,
			Feedback:       feedback,
		}
		attempt.ComputeXP(template.DifficultyLevel)
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		result.Attempt = attempt

		instance.AttemptsCount++
		if isCorrect {
			instance.BestAttemptCorrect = true
			instance.Status = model.TaskCompleted
		} else if instance.Status == model.TaskPending {
			instance.Status = model.TaskInProgress
		}
		if err := tx.Save(instance).Error; err != nil {
			return err
		}

		if _, err := s.Gamification.RecordActivity(tx, userID, attempt.XPGained, now); err != nil {
			return err
		}

		if err := s.refreshSnapshot(tx, userID, template.ModuleID, now); err != nil {
			return err
		}

		module, err := findModuleForUpdate(tx, template.ModuleID)
		if err != nil {
			return err
		}
		completed, err := EvaluateModuleCompletion(tx, s.Repo, userID, module)
		if err != nil {
			return err
		}
		result.ModuleCompleted = completed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *TaskService) getOrCreateInstance(tx *gorm.DB, userID, templateID uint) (*model.TaskInstance, error) {
	var instance model.TaskInstance
	err := tx.Where("user_id = ? AND template_id = ?", userID, templateID).First(&instance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		instance = model.TaskInstance{
			UserID:     userID,
			TemplateID: templateID,
			Status:     model.TaskInProgress,
		}
		if err := tx.Create(&instance).Error; err != nil {
			return nil, err
		}
		return &instance, nil
	}
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

func findModuleForUpdate(tx *gorm.DB, moduleID uint) (*model.Module, error) {
	var module model.Module
	err := tx.First(&module, moduleID).Error
	return &module, err
}

// refreshSnapshot recomputes the module snapshot from the instance and
// attempt tables rather than incrementing, so it self-heals from any drift.
func (s *TaskService) refreshSnapshot(tx *gorm.DB, userID, moduleID uint, now time.Time) error {
	snapshot, err := s.ProgressRepo.GetOrCreate(tx, userID, moduleID)
	if err != nil {
		return err
	}

	var attempted, completed int64
	instanceScope := tx.Model(&model.TaskInstance{}).
		Joins("JOIN task_templates ON task_templates.id = task_instances.template_id").
		Where("task_instances.user_id = ? AND task_templates.module_id = ?", userID, moduleID)
	if err := instanceScope.Count(&attempted).Error; err != nil {
		return err
	}
	if err := tx.Model(&model.TaskInstance{}).
		Joins("JOIN task_templates ON task_templates.id = task_instances.template_id").
		Where("task_instances.user_id = ? AND task_templates.module_id = ? AND task_instances.status = ?",
			userID, moduleID, model.TaskCompleted).
		Count(&completed).Error; err != nil {
		return err
	}

	stats, err := s.Repo.AttemptStatsForModule(tx, userID, moduleID)
	if err != nil {
		return err
	}

	snapshot.TasksAttempted = int(attempted)
	snapshot.TasksCompleted = int(completed)
	if stats.Total > 0 {
		snapshot.AccuracyPercentage = float64(stats.Correct) / float64(stats.Total) * 100
	} else {
		snapshot.AccuracyPercentage = 0
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	snapshot.LastActivityDate = &day
	return tx.Save(snapshot).Error
}

type attemptFeedback struct {
	Message         string `json:"message"`
	IsCorrect       bool   `json:"is_correct"`
	CorrectAnswer   string `json:"correct_answer"`
	Rule            string `json:"rule"`
	ExampleContrast string `json:"example_contrast"`
	Tip             string `json:"tip,omitempty"`
}

// buildFeedback assembles the attempt feedback document. Correct answers get
// the template's own explanation; wrong answers get an AI explanation when
// available, with the template text as the fallback.
func (s *TaskService) buildFeedback(ctx context.Context, template *model.TaskTemplate, userAnswer string, isCorrect bool) json.RawMessage {
	feedback := attemptFeedback{
		IsCorrect:       isCorrect,
		CorrectAnswer:   template.CorrectAnswer,
		Rule:            template.RuleExplanation,
		ExampleContrast: template.ExampleContrast,
	}

	if isCorrect {
		feedback.Message = "Correct! Well done!"
		if feedback.Rule == "" {
			feedback.Rule = "Great job!"
		}
	} else {
		feedback.Message = "Not quite right. Here's some help:"

		if s.AI.Enabled() {
			aiFeedback, err := s.AI.GenerateTaskFeedback(ctx, userAnswer, template.CorrectAnswer, template.TaskType, templateQuestion(template))
			if err != nil {
				logger.Log.Warn("task feedback generation failed", zap.Uint("template_id", template.ID), zap.Error(err))
			} else {
				if aiFeedback.Rule != "" {
					feedback.Rule = aiFeedback.Rule
				}
				if aiFeedback.ExampleContrast != "" {
					feedback.ExampleContrast = aiFeedback.ExampleContrast
				}
				feedback.Tip = aiFeedback.Tip
			}
		}
	}

	data, err := json.Marshal(feedback)
	if err != nil {
		return nil
	}
	return data
}

func templateQuestion(template *model.TaskTemplate) string {
	if len(template.Content) == 0 {
		return ""
	}
	var content struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal(template.Content, &content); err != nil {
		return ""
	}
	return content.Question
}
