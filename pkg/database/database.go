package database

import (
	"fmt"
	"log"

	"lingua_backend/internal/config"
	"lingua_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ShouldMigrate decides whether startup runs schema migration: always
// outside release mode, and in release mode only when forced via --migrate.
func ShouldMigrate(mode string, force bool) bool {
	return mode != "release" || force
}

// InitDB opens the MySQL connection. Schema migration and starter content
// only run when migrate is set; release deployments keep startup read-only
// unless --migrate is passed.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.PlacementTest{},
		&model.PlacementTestItem{},
		&model.PlacementTestResult{},
		&model.Roadmap{},
		&model.Module{},
		&model.TaskTemplate{},
		&model.TaskInstance{},
		&model.TaskAttempt{},
		&model.DialogueScenario{},
		&model.DialogueSession{},
		&model.DialogueTurn{},
		&model.ProgressSnapshot{},
		&model.GamificationProfile{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Starter dialogue scenarios so the practice tab is never empty.
	var count int64
	db.Model(&model.DialogueScenario{}).Count(&count)
	if count == 0 {
		defaultScenarios := []model.DialogueScenario{
			{
				Title:              "At a Café",
				Language:           model.LanguageEnglish,
				CEFRLevel:          model.LevelA1,
				ContextDescription: "You are ordering a drink and a snack at a small café. The tutor plays the barista.",
				MaxTurns:           10,
				IsActive:           true,
			},
			{
				Title:              "Introducing Yourself",
				Language:           model.LanguageEnglish,
				CEFRLevel:          model.LevelA0,
				ContextDescription: "You meet a new classmate and introduce yourself: name, where you are from, what you do.",
				MaxTurns:           8,
				IsActive:           true,
			},
			{
				Title:              "Базарда (At the Market)",
				Language:           model.LanguageKazakh,
				CEFRLevel:          model.LevelA1,
				ContextDescription: "You are buying fruit and vegetables at a market in Almaty. The tutor plays the seller.",
				MaxTurns:           10,
				IsActive:           true,
			},
		}
		for _, scenario := range defaultScenarios {
			db.Create(&scenario)
		}
	}

	return db, nil
}
