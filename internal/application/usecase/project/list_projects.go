package project

import (
	"context"

	"github.com/johndoe/me-api/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(pRepo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo}
}

type ListProjectsInput struct {
	// SkillFilter keeps only projects with an associated skill whose name
	// contains the substring. Empty means no filtering.
	SkillFilter string
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) ([]project.Project, error) {
	return uc.projectRepo.List(ctx, input.SkillFilter)
}
