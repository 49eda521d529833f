package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/johndoe/me-api/internal/application/usecase/project"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type ProjectHandler struct {
	createUseCase *projectUC.CreateProjectUseCase
	listUseCase   *projectUC.ListProjectsUseCase
	getUseCase    *projectUC.GetProjectUseCase
	updateUseCase *projectUC.UpdateProjectUseCase
	deleteUseCase *projectUC.DeleteProjectUseCase
	logger        logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		getUseCase:    getUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.listUseCase.Execute(c.Request.Context(), projectUC.ListProjectsInput{
		SkillFilter: c.Query("skill"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(projects),
		"data":    projects,
	})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    p,
	})
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	input := projectUC.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		GithubLink:  req.GithubLink,
		LiveLink:    req.LiveLink,
	}
	if req.Skills != nil {
		input.Skills = *req.Skills
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"data":    output.Project,
	})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID:   id,
		Title:       req.Title,
		Description: req.Description,
		GithubLink:  req.GithubLink,
		LiveLink:    req.LiveLink,
	}
	if req.Skills != nil {
		input.Skills = *req.Skills
		input.ReplaceSkills = true
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project updated successfully",
		"data":    output.Project,
	})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted successfully",
	})
}
