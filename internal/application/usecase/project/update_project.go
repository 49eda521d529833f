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

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	skillRepo   skill.Repository
	events      event.Publisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(pRepo project.Repository, sRepo skill.Repository, events event.Publisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: pRepo,
		skillRepo:   sRepo,
		events:      events,
		logger:      log,
	}
}

type UpdateProjectInput struct {
	ProjectID   int64
	Title       string
	Description string
	GithubLink  *string
	LiveLink    *string
	// Skills is the full replacement set of skill names. It is only applied
	// when ReplaceSkills is set, so an omitted field leaves associations
	// untouched while an empty list clears them.
	Skills        []string
	ReplaceSkills bool
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperror.NewInvalidInput("Title and description are required fields", nil)
	}

	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.Description = input.Description
	p.GithubLink = input.GithubLink
	p.LiveLink = input.LiveLink

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if input.ReplaceSkills {
		skillIDs, err := uc.skillRepo.FindIDsByNames(ctx, input.Skills)
		if err != nil {
			return nil, err
		}
		if err := uc.projectRepo.ReplaceSkills(ctx, p.ID, skillIDs); err != nil {
			return nil, err
		}
	}

	updated, err := uc.projectRepo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	publishProjectEvent(ctx, uc.events, uc.logger, event.ActionUpdated, updated.ID)
	return &UpdateProjectOutput{Project: updated}, nil
}
