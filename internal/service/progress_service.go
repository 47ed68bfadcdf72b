package service

import (
	"errors"

	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"
	"lingua_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	DB           *gorm.DB
	Repo         *repository.ProgressRepository
	RoadmapRepo  *repository.RoadmapRepository
	Gamification *GamificationService
}

func NewProgressService(db *gorm.DB, gamification *GamificationService) *ProgressService {
	return &ProgressService{
		DB:           db,
		Repo:         repository.NewProgressRepository(db),
		RoadmapRepo:  repository.NewRoadmapRepository(db),
		Gamification: gamification,
	}
}

// ProgressOverview is the cross-module summary shown on the dashboard.
type ProgressOverview struct {
	TasksAttempted   int                        `json:"tasksAttempted"`
	TasksCompleted   int                        `json:"tasksCompleted"`
	OverallAccuracy  float64                    `json:"overallAccuracy"`
	ModulesTotal     int                        `json:"modulesTotal"`
	ModulesCompleted int                        `json:"modulesCompleted"`
	ActiveRoadmap    *model.Roadmap             `json:"activeRoadmap,omitempty"`
	Gamification     *model.GamificationProfile `json:"gamification"`
	Snapshots        []model.ProgressSnapshot   `json:"snapshots"`
}

// Overview aggregates the per-module snapshots with the gamification ledger
// and the active roadmap's completion state.
func (s *ProgressService) Overview(userID uint) (*ProgressOverview, error) {
	snapshots, err := s.Repo.SnapshotsByUser(userID)
	if err != nil {
		return nil, err
	}

	overview := &ProgressOverview{Snapshots: snapshots}
	accuracySum := 0.0
	for _, snapshot := range snapshots {
		overview.TasksAttempted += snapshot.TasksAttempted
		overview.TasksCompleted += snapshot.TasksCompleted
		accuracySum += snapshot.AccuracyPercentage
	}
	if len(snapshots) > 0 {
		overview.OverallAccuracy = accuracySum / float64(len(snapshots))
	}

	roadmap, err := s.RoadmapRepo.FindActiveByUser(userID)
	if err == nil {
		overview.ActiveRoadmap = roadmap
		overview.ModulesTotal = len(roadmap.Modules)
		for _, module := range roadmap.Modules {
			if module.IsCompleted {
				overview.ModulesCompleted++
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile, err := s.Gamification.Profile(userID)
	if err != nil {
		return nil, err
	}
	overview.Gamification = profile

	return overview, nil
}

// ModuleProgress returns the user's snapshot for one module. A module the
// user has never touched yields an empty snapshot rather than a 404.
func (s *ProgressService) ModuleProgress(userID, moduleID uint) (*model.ProgressSnapshot, error) {
	if _, err := s.RoadmapRepo.FindModuleForUser(moduleID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	var snapshot model.ProgressSnapshot
	err := s.DB.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.ProgressSnapshot{UserID: userID, ModuleID: moduleID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
