package service

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"time"

	"lingua_backend/internal/config"
	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"
	"lingua_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB      *gorm.DB
	Repo    *repository.UserRepository
	Storage *StorageService
	Cfg     *config.Store
}

func NewUserService(db *gorm.DB, storage *StorageService, cfg *config.Store) *UserService {
	return &UserService{
		DB:      db,
		Repo:    repository.NewUserRepository(db),
		Storage: storage,
		Cfg:     cfg,
	}
}

type RegisterInput struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	TargetLanguage string `json:"targetLanguage" binding:"required"`
	NativeLanguage string `json:"nativeLanguage"`
}

func (s *UserService) Register(input RegisterInput) (*model.User, string, error) {
	if _, err := s.Repo.FindByEmail(input.Email); err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:           input.Name,
		Email:          input.Email,
		Password:       string(hashed),
		Role:           model.Student,
		TargetLanguage: input.TargetLanguage,
		NativeLanguage: input.NativeLanguage,
	}
	if user.NativeLanguage == "" {
		user.NativeLanguage = model.LanguageEnglish
	}
	user.CurrentCEFRLevel = model.LevelA0

	if err := s.Repo.Create(user); err != nil {
		return nil, "", err
	}

	jwtCfg := s.Cfg.Current().JWT
	token, err := util.GenerateJWT(user, jwtCfg.Secret, jwtCfg.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Login(email, password string) (*model.User, string, error) {
	user, err := s.Repo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", util.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if user.Disabled {
		return nil, "", util.ErrPermissionDenied
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.Repo.Update(user); err != nil {
		return nil, "", err
	}

	jwtCfg := s.Cfg.Current().JWT
	token, err := util.GenerateJWT(user, jwtCfg.Secret, jwtCfg.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Profile(userID uint) (*model.User, error) {
	user, err := s.Repo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

type UpdateProfileInput struct {
	Name                string          `json:"name"`
	TargetLanguage      string          `json:"targetLanguage"`
	NativeLanguage      string          `json:"nativeLanguage"`
	LearningPreferences json.RawMessage `json:"learningPreferences"`
}

func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*model.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.TargetLanguage != "" {
		user.TargetLanguage = input.TargetLanguage
	}
	if input.NativeLanguage != "" {
		user.NativeLanguage = input.NativeLanguage
	}
	if len(input.LearningPreferences) > 0 {
		user.LearningPreferences = input.LearningPreferences
	}

	if err := s.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UploadAvatar(userID uint, file *multipart.FileHeader) (string, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return "", err
	}

	url, err := s.Storage.SaveFile(file, "avatars")
	if err != nil {
		return "", err
	}

	user.Avatar = url
	if err := s.Repo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}
