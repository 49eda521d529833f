package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/johndoe/me-api/internal/application/usecase/experience"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		experienceUseCase: uc,
		logger:            log,
	}
}

func (h *ExperienceHandler) ListExperience(c *gin.Context) {
	entries, err := h.experienceUseCase.ExecuteList(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(entries),
		"data":    entries,
	})
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	w, err := h.experienceUseCase.ExecuteGet(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    w,
	})
}

func (h *ExperienceHandler) bindInput(c *gin.Context) (*experienceUC.SaveExperienceInput, error) {
	var req SaveExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperror.NewInvalidInput("invalid JSON body", err)
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	return &experienceUC.SaveExperienceInput{
		Company:     req.Company,
		Position:    req.Position,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Current:     req.Current,
	}, nil
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	input, err := h.bindInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	w, err := h.experienceUseCase.ExecuteCreate(c.Request.Context(), *input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Work experience created successfully",
		"data":    w,
	})
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	input, err := h.bindInput(c)
	if err != nil {
		c.Error(err)
		return
	}

	w, err := h.experienceUseCase.ExecuteUpdate(c.Request.Context(), id, *input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Work experience updated successfully",
		"data":    w,
	})
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.experienceUseCase.ExecuteDelete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Work experience deleted successfully",
	})
}
