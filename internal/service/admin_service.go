package service

import (
	"encoding/json"
	"errors"

	"lingua_backend/internal/model"
	"lingua_backend/internal/util"

	"gorm.io/gorm"
)

// AdminService covers content management: placement tests, task templates
// and dialogue scenarios are authored here, not by learners.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

type PlacementItemInput struct {
	ItemType         model.PlacementItemType `json:"itemType" binding:"required,oneof=multiple_choice cloze translation"`
	QuestionText     json.RawMessage         `json:"questionText" binding:"required"`
	CorrectAnswer    string                  `json:"correctAnswer" binding:"required"`
	Options          json.RawMessage         `json:"options"`
	DifficultyWeight float64                 `json:"difficultyWeight"`
}

type CreatePlacementTestInput struct {
	Language string               `json:"language" binding:"required"`
	Items    []PlacementItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreatePlacementTest creates an active test with its items. Only one test
// per language may be active, so any existing active test is retired in the
// same transaction.
func (s *AdminService) CreatePlacementTest(input CreatePlacementTestInput) (*model.PlacementTest, error) {
	test := &model.PlacementTest{
		Language:   input.Language,
		TotalItems: len(input.Items),
		IsActive:   true,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PlacementTest{}).
			Where("language = ? AND is_active = ?", input.Language, true).
			Update("is_active", false).
			Error; err != nil {
			return err
		}

		if err := tx.Create(test).Error; err != nil {
			return err
		}

		for index, itemInput := range input.Items {
			weight := itemInput.DifficultyWeight
			if weight <= 0 {
				weight = 1.0
			}
			item := model.PlacementTestItem{
				TestID:           test.ID,
				ItemType:         itemInput.ItemType,
				QuestionText:     itemInput.QuestionText,
				CorrectAnswer:    itemInput.CorrectAnswer,
				Options:          itemInput.Options,
				DifficultyWeight: weight,
				Order:            index + 1,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			test.Items = append(test.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return test, nil
}

type CreateTaskTemplateInput struct {
	ModuleID        uint            `json:"moduleId" binding:"required"`
	TaskType        model.TaskType  `json:"taskType" binding:"required,oneof=multiple_choice fill_blank translation"`
	Content         json.RawMessage `json:"content" binding:"required"`
	CorrectAnswer   string          `json:"correctAnswer" binding:"required"`
	RuleExplanation string          `json:"ruleExplanation"`
	ExampleContrast string          `json:"exampleContrast"`
	DifficultyLevel int             `json:"difficultyLevel"`
	Order           int             `json:"order"`
}

func (s *AdminService) CreateTaskTemplate(input CreateTaskTemplateInput) (*model.TaskTemplate, error) {
	var module model.Module
	if err := s.DB.First(&module, input.ModuleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	difficulty := input.DifficultyLevel
	if difficulty < 1 || difficulty > 3 {
		difficulty = 1
	}

	template := &model.TaskTemplate{
		ModuleID:        input.ModuleID,
		TaskType:        input.TaskType,
		Content:         input.Content,
		CorrectAnswer:   input.CorrectAnswer,
		RuleExplanation: input.RuleExplanation,
		ExampleContrast: input.ExampleContrast,
		DifficultyLevel: difficulty,
		Order:           input.Order,
	}
	if err := s.DB.Create(template).Error; err != nil {
		return nil, err
	}
	return template, nil
}

type CreateScenarioInput struct {
	Title              string `json:"title" binding:"required"`
	Language           string `json:"language" binding:"required"`
	CEFRLevel          string `json:"cefrLevel" binding:"required"`
	ContextDescription string `json:"contextDescription" binding:"required"`
	MaxTurns           int    `json:"maxTurns"`
}

func (s *AdminService) CreateDialogueScenario(input CreateScenarioInput) (*model.DialogueScenario, error) {
	maxTurns := input.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 10
	}

	scenario := &model.DialogueScenario{
		Title:              input.Title,
		Language:           input.Language,
		CEFRLevel:          input.CEFRLevel,
		ContextDescription: input.ContextDescription,
		MaxTurns:           maxTurns,
		IsActive:           true,
	}
	if err := s.DB.Create(scenario).Error; err != nil {
		return nil, err
	}
	return scenario, nil
}
