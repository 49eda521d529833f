package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	skillUC "github.com/johndoe/me-api/internal/application/usecase/skill"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{
		skillUseCase: uc,
		logger:       log,
	}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUseCase.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(skills),
		"data":    skills,
	})
}

func (h *SkillHandler) TopSkills(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	skills, err := h.skillUseCase.ExecuteTop(c.Request.Context(), skillUC.TopSkillsInput{
		Limit:    limit,
		Category: c.Query("category"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(skills),
		"data":    skills,
	})
}

func (h *SkillHandler) SkillCategories(c *gin.Context) {
	categories, err := h.skillUseCase.ExecuteCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(categories),
		"data":    categories,
	})
}

func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	s, err := h.skillUseCase.ExecuteGet(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    s,
	})
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req SaveSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	s, err := h.skillUseCase.ExecuteCreate(c.Request.Context(), skillUC.SaveSkillInput{
		Name:        req.Name,
		Proficiency: req.Proficiency,
		Category:    req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Skill created successfully",
		"data":    s,
	})
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req SaveSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	s, err := h.skillUseCase.ExecuteUpdate(c.Request.Context(), id, skillUC.SaveSkillInput{
		Name:        req.Name,
		Proficiency: req.Proficiency,
		Category:    req.Category,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Skill updated successfully",
		"data":    s,
	})
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.skillUseCase.ExecuteDelete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Skill deleted successfully",
	})
}
