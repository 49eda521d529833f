package project

import (
	"context"

	"github.com/johndoe/me-api/internal/domain/project"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectUseCase(pRepo project.Repository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: pRepo}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, projectID int64) (*project.Project, error) {
	return uc.projectRepo.FindByID(ctx, projectID)
}
