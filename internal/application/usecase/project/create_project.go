package project

import (
	"context"
	"strings"

	"github.com/johndoe/me-api/internal/domain/event"
	"github.com/johndoe/me-api/internal/domain/project"
	"github.com/johndoe/me-api/internal/domain/skill"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	skillRepo   skill.Repository
	events      event.Publisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(pRepo project.Repository, sRepo skill.Repository, events event.Publisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: pRepo,
		skillRepo:   sRepo,
		events:      events,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title       string
	Description string
	GithubLink  *string
	LiveLink    *string
	// Skills holds skill names to associate. Unknown names are dropped
	// without error.
	Skills []string
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperror.NewInvalidInput("Title and description are required fields", nil)
	}

	p := &project.Project{
		Title:       input.Title,
		Description: input.Description,
		GithubLink:  input.GithubLink,
		LiveLink:    input.LiveLink,
	}
	if err := uc.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	if len(input.Skills) > 0 {
		skillIDs, err := uc.skillRepo.FindIDsByNames(ctx, input.Skills)
		if err != nil {
			return nil, err
		}
		if err := uc.projectRepo.ReplaceSkills(ctx, p.ID, skillIDs); err != nil {
			return nil, err
		}
	}

	created, err := uc.projectRepo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	publishProjectEvent(ctx, uc.events, uc.logger, event.ActionCreated, created.ID)
	return &CreateProjectOutput{Project: created}, nil
}
