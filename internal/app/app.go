package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingua_backend/internal/config"
	"lingua_backend/internal/controller"
	"lingua_backend/internal/repository"
	"lingua_backend/internal/service"
	"lingua_backend/pkg/configwatcher"
	"lingua_backend/pkg/database"
	"lingua_backend/pkg/logger"
	"lingua_backend/pkg/monitoring"
	"lingua_backend/pkg/security"
	"lingua_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type services struct {
	storage      *service.StorageService
	user         *service.UserService
	ai           *service.AIService
	placement    *service.PlacementService
	roadmap      *service.RoadmapService
	gamification *service.GamificationService
	task         *service.TaskService
	dialogue     *service.DialogueService
	progress     *service.ProgressService
	admin        *service.AdminService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	placement    *controller.PlacementController
	roadmap      *controller.RoadmapController
	task         *controller.TaskController
	dialogue     *controller.DialogueController
	progress     *controller.ProgressController
	gamification *controller.GamificationController
	admin        *controller.AdminController
	health       *controller.HealthController
}

func (a *App) initServices(cfg *config.Config, store *config.Store, db *gorm.DB, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.ai = service.NewAIService(cfg.AI, rdb)
	s.user = service.NewUserService(db, s.storage, store)
	s.placement = service.NewPlacementService(db, store)
	s.roadmap = service.NewRoadmapService(db, s.ai, store)
	s.gamification = service.NewGamificationService(db)
	s.task = service.NewTaskService(db, s.ai, s.gamification)
	s.dialogue = service.NewDialogueService(db, s.ai)
	s.progress = service.NewProgressService(db, s.gamification)
	s.admin = service.NewAdminService(db)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.user),
		user:         controller.NewUserController(s.user),
		placement:    controller.NewPlacementController(s.placement),
		roadmap:      controller.NewRoadmapController(s.roadmap),
		task:         controller.NewTaskController(s.task),
		dialogue:     controller.NewDialogueController(s.dialogue),
		progress:     controller.NewProgressController(s.progress),
		gamification: controller.NewGamificationController(s.gamification),
		admin:        controller.NewAdminController(s.admin),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		if window <= 0 {
			window = time.Minute
		}
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, database.ShouldMigrate(cfg.Server.Mode, cfg.ForceMigrate))
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	store := config.NewStore(cfg)

	s, err := app.initServices(cfg, store, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	c := app.initControllers(s, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lingua-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	userRepo := repository.NewUserRepository(db)
	app.registerRoutes(router, c, userRepo, store)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// Picks up edits to placement bands, checkpoint defaults and similar
	// tunables without a restart. Each reload publishes a fresh snapshot
	// through the store; readers never see a partially applied config.
	go configwatcher.WatchConfig("configs/config.yaml", func(reloaded interface{}) {
		fresh, ok := reloaded.(*config.Config)
		if !ok {
			return
		}
		active := store.Current()
		fresh.ForceMigrate = active.ForceMigrate
		fresh.MigrateOnly = active.MigrateOnly
		store.Replace(fresh)
		logger.Log.Info("Configuration reloaded")
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
