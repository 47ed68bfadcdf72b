package service

import (
	"context"
	"errors"
	"time"

	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"
	"lingua_backend/internal/util"
	"lingua_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DialogueService struct {
	DB       *gorm.DB
	Repo     *repository.DialogueRepository
	UserRepo *repository.UserRepository
	AI       *AIService
}

func NewDialogueService(db *gorm.DB, ai *AIService) *DialogueService {
	return &DialogueService{
		DB:       db,
		Repo:     repository.NewDialogueRepository(db),
		UserRepo: repository.NewUserRepository(db),
		AI:       ai,
	}
}

func (s *DialogueService) Scenarios(language, cefrLevel string) ([]model.DialogueScenario, error) {
	return s.Repo.ListActiveScenarios(language, cefrLevel)
}

func (s *DialogueService) StartSession(userID, scenarioID uint) (*model.DialogueSession, error) {
	scenario, err := s.Repo.FindActiveScenario(scenarioID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrScenarioNotFound
	}
	if err != nil {
		return nil, err
	}

	session := &model.DialogueSession{
		UserID:     userID,
		ScenarioID: scenario.ID,
		Scenario:   scenario,
		Status:     model.SessionActive,
	}
	if err := s.Repo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DialogueService) GetSession(sessionID string, userID uint) (*model.DialogueSession, error) {
	session, err := s.Repo.FindSessionForUser(sessionID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	return session, err
}

func (s *DialogueService) Sessions(userID uint) ([]model.DialogueSession, error) {
	return s.Repo.SessionsByUser(userID)
}

// SendMessage appends one conversation turn. The tutor reply comes from the
// generator when available and from the neutral fallback otherwise; a failed
// generation never fails the turn. When the turn fills the scenario's budget
// the session auto-completes in the same transaction.
func (s *DialogueService) SendMessage(ctx context.Context, userID uint, sessionID, message string) (*model.DialogueTurn, error) {
	session, err := s.GetSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionActive {
		return nil, util.ErrSessionClosed
	}
	if !session.CanAddTurn(session.Scenario.MaxTurns) {
		return nil, util.ErrTurnLimitReached
	}

	history := make([]ChatMessage, 0, len(session.Turns)*2)
	for _, turn := range session.Turns {
		history = append(history,
			ChatMessage{Role: "user", Content: turn.UserMessage},
			ChatMessage{Role: "assistant", Content: turn.AIResponse},
		)
	}

	cefrLevel := "A0"
	if user, err := s.UserRepo.FindByID(userID); err == nil {
		cefrLevel = user.CurrentCEFRLevel
	}

	var reply *DialogueReply
	if s.AI.Enabled() {
		reply, err = s.AI.GenerateDialogueResponse(ctx,
			session.Scenario.ContextDescription, history, message,
			session.Scenario.Language, cefrLevel)
		if err != nil {
			logger.Log.Warn("dialogue generation failed, using fallback",
				zap.String("session_id", session.ID), zap.Error(err))
			reply = nil
		}
	}
	if reply == nil {
		reply = FallbackDialogueReply()
	}

	turn := &model.DialogueTurn{
		SessionID:     session.ID,
		TurnNumber:    session.TurnCount + 1,
		UserMessage:   message,
		AIResponse:    reply.Response,
		Corrections:   reply.Corrections,
		Reformulation: reply.Reformulation,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(turn).Error; err != nil {
			return err
		}

		session.TurnCount++
		if session.TurnCount >= session.Scenario.MaxTurns {
			now := time.Now()
			session.Status = model.SessionCompleted
			session.EndedAt = &now
		}
		return tx.Model(&model.DialogueSession{}).
			Where("id = ?", session.ID).
			Updates(map[string]interface{}{
				"turn_count": session.TurnCount,
				"status":     session.Status,
				"ended_at":   session.EndedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return turn, nil
}

// EndSession closes an active session. Ending an already-completed session
// is a state conflict, not a repeatable no-op.
func (s *DialogueService) EndSession(sessionID string, userID uint) (*model.DialogueSession, error) {
	session, err := s.GetSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionActive {
		return nil, util.ErrSessionClosed
	}

	now := time.Now()
	session.Status = model.SessionCompleted
	session.EndedAt = &now
	err = s.DB.Model(&model.DialogueSession{}).
		Where("id = ?", session.ID).
		Updates(map[string]interface{}{"status": session.Status, "ended_at": now}).
		Error
	if err != nil {
		return nil, err
	}
	return session, nil
}
