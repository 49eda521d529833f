package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/johndoe/me-api/internal/application/usecase/profile"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    output.Profile,
	})
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	output, err := h.profileUseCase.ExecuteCreateProfile(c.Request.Context(), profileUC.CreateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Education: req.Education,
		Github:    req.Github,
		Linkedin:  req.Linkedin,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Profile created successfully",
		"data":    output.Profile,
	})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	output, err := h.profileUseCase.ExecuteUpdateProfile(c.Request.Context(), profileUC.UpdateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Education: req.Education,
		Github:    req.Github,
		Linkedin:  req.Linkedin,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    output.Profile,
	})
}
