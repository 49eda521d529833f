package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/johndoe/me-api/pkg/logger"
)

var availableEndpoints = []string{
	"GET /health",
	"GET /api/profile",
	"POST /api/profile",
	"PUT /api/profile",
	"GET /api/projects",
	"GET /api/projects?skill=:skill",
	"GET /api/skills",
	"GET /api/skills/top",
	"GET /api/experience",
	"GET /api/search?q=:query",
}

type RouterConfig struct {
	Logger     logger.Logger
	Env        string
	CORSOrigin string
	StartedAt  time.Time
	// RateLimiter is optional; nil disables rate limiting (tests).
	RateLimiter gin.HandlerFunc

	Profile    *ProfileHandler
	Skill      *SkillHandler
	Project    *ProjectHandler
	Experience *ExperienceHandler
	Search     *SearchHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(cfg.Logger))
	router.Use(ErrorMiddleware(cfg.Logger, cfg.Env))

	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigin == "" || cfg.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
		corsCfg.AllowCredentials = true
	}
	router.Use(cors.New(corsCfg))

	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(cfg.StartedAt).Seconds(),
			"environment": cfg.Env,
		})
	})

	api := router.Group("/api")
	{
		api.GET("/profile", cfg.Profile.GetProfile)
		api.POST("/profile", cfg.Profile.CreateProfile)
		api.PUT("/profile", cfg.Profile.UpdateProfile)

		skills := api.Group("/skills")
		{
			skills.GET("", cfg.Skill.ListSkills)
			skills.GET("/top", cfg.Skill.TopSkills)
			skills.GET("/categories", cfg.Skill.SkillCategories)
			skills.GET("/:id", cfg.Skill.GetSkill)
			skills.POST("", cfg.Skill.CreateSkill)
			skills.PUT("/:id", cfg.Skill.UpdateSkill)
			skills.DELETE("/:id", cfg.Skill.DeleteSkill)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", cfg.Project.ListProjects)
			projects.GET("/:id", cfg.Project.GetProject)
			projects.POST("", cfg.Project.CreateProject)
			projects.PUT("/:id", cfg.Project.UpdateProject)
			projects.DELETE("/:id", cfg.Project.DeleteProject)
		}

		experience := api.Group("/experience")
		{
			experience.GET("", cfg.Experience.ListExperience)
			experience.GET("/:id", cfg.Experience.GetExperience)
			experience.POST("", cfg.Experience.CreateExperience)
			experience.PUT("/:id", cfg.Experience.UpdateExperience)
			experience.DELETE("/:id", cfg.Experience.DeleteExperience)
		}

		api.GET("/search", cfg.Search.Search)
		api.GET("/search/advanced", cfg.Search.SearchAdvanced)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":              "Endpoint not found",
			"path":               c.Request.URL.Path,
			"availableEndpoints": availableEndpoints,
		})
	})

	return router
}
