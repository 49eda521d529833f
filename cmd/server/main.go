package main

import (
	"context"
	"log"
	"time"

	"github.com/johndoe/me-api/adapters/event"
	httpAdapter "github.com/johndoe/me-api/adapters/http"
	"github.com/johndoe/me-api/adapters/persistence"
	experienceUC "github.com/johndoe/me-api/internal/application/usecase/experience"
	profileUC "github.com/johndoe/me-api/internal/application/usecase/profile"
	projectUC "github.com/johndoe/me-api/internal/application/usecase/project"
	searchUC "github.com/johndoe/me-api/internal/application/usecase/search"
	skillUC "github.com/johndoe/me-api/internal/application/usecase/skill"
	"github.com/johndoe/me-api/internal/config"
	"github.com/johndoe/me-api/pkg/logger"
	"github.com/johndoe/me-api/pkg/tracing"
)

func main() {
	startedAt := time.Now()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg.Tracing.OTLPEndpoint, "me-api", appLogger)
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	if err := persistence.InitSchema(context.Background(), dbPool, appLogger); err != nil {
		appLogger.Fatal("cannot bootstrap schema", err)
	}

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	producer, err := event.NewKafkaProducer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka producer", err)
	}
	defer producer.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	searchRepo := persistence.NewPostgresSearchRepo(dbPool, appLogger)

	// Use cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, producer, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, producer, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, skillRepo, producer, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, skillRepo, producer, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, producer, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, producer, appLogger)
	searchUseCase := searchUC.NewSearchUseCase(searchRepo, appLogger)

	// HTTP handlers
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		Logger:      appLogger,
		Env:         cfg.App.Env,
		CORSOrigin:  cfg.App.CORSOrigin,
		StartedAt:   startedAt,
		RateLimiter: httpAdapter.RateLimit(redisClient, cfg.RateLimit.Window, cfg.RateLimit.Max, appLogger),
		Profile:     httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Skill:       httpAdapter.NewSkillHandler(skillUseCase, appLogger),
		Project: httpAdapter.NewProjectHandler(
			createProjectUseCase,
			listProjectsUseCase,
			getProjectUseCase,
			updateProjectUseCase,
			deleteProjectUseCase,
			appLogger,
		),
		Experience: httpAdapter.NewExperienceHandler(experienceUseCase, appLogger),
		Search:     httpAdapter.NewSearchHandler(searchUseCase, appLogger),
	})

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
