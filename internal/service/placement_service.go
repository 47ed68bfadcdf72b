package service

import (
	"encoding/json"
	"errors"
	"strconv"

	"lingua_backend/internal/config"
	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"
	"lingua_backend/internal/util"

	"gorm.io/gorm"
)

type PlacementService struct {
	DB   *gorm.DB
	Repo *repository.PlacementRepository
	Cfg  *config.Store
}

func NewPlacementService(db *gorm.DB, cfg *config.Store) *PlacementService {
	return &PlacementService{
		DB:   db,
		Repo: repository.NewPlacementRepository(db),
		Cfg:  cfg,
	}
}

func (s *PlacementService) ListTests(language string) ([]model.PlacementTest, error) {
	return s.Repo.ListActiveTests(language)
}

// GetTest returns an active test with its ordered items. Correct answers are
// never serialized to clients.
func (s *PlacementService) GetTest(id uint) (*model.PlacementTest, error) {
	test, err := s.Repo.FindActiveTest(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	}
	return test, err
}

func (s *PlacementService) History(userID uint) ([]model.PlacementTestResult, error) {
	return s.Repo.ResultsByUser(userID)
}

// ScoreSubmission grades every item of the test against the submitted
// answers. Unanswered items score zero but still contribute their weight to
// the maximum, so skipping questions lowers the percentage.
func ScoreSubmission(items []model.PlacementTestItem, answers map[string]string) (score, maxScore float64) {
	for _, item := range items {
		maxScore += item.DifficultyWeight
		answer, ok := answers[strconv.FormatUint(uint64(item.ID), 10)]
		if !ok {
			continue
		}
		if EvaluatePlacementAnswer(item.ItemType, answer, item.CorrectAnswer) {
			score += item.DifficultyWeight
		}
	}
	return score, maxScore
}

// LevelForPercentage maps a percentage to a CEFR level via the band table.
// Band bounds are inclusive on the upper end; anything above the last band
// is C2.
func LevelForPercentage(bands []config.BandBound, percentage float64) string {
	for _, band := range bands {
		if percentage <= band.Max {
			return band.Level
		}
	}
	return "C2"
}

// Submit grades a test submission and records the result. The result row and
// the user's profile level update commit atomically; the result itself is
// immutable afterwards.
func (s *PlacementService) Submit(userID, testID uint, answers map[string]string) (*model.PlacementTestResult, error) {
	test, err := s.Repo.FindActiveTest(testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTestNotFound
	}
	if err != nil {
		return nil, err
	}

	score, maxScore := ScoreSubmission(test.Items, answers)
	percentage := 0.0
	if maxScore > 0 {
		percentage = score / maxScore * 100
	}
	level := LevelForPercentage(s.Cfg.Current().Placement.Bands, percentage)

	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	result := &model.PlacementTestResult{
		UserID:             userID,
		TestID:             test.ID,
		Score:              score,
		MaxScore:           maxScore,
		Percentage:         percentage,
		EstimatedCEFRLevel: level,
		Answers:            rawAnswers,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		// The latest placement overwrites the profile level, even when the
		// new estimate is lower, but only for the user's target language.
		return tx.Model(&model.User{}).
			Where("id = ? AND target_language = ?", userID, test.Language).
			Update("current_cefr_level", level).
			Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
