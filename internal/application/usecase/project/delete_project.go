package project

import (
	"context"

	"github.com/johndoe/me-api/internal/domain/event"
	"github.com/johndoe/me-api/internal/domain/project"
	"github.com/johndoe/me-api/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	events      event.Publisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(pRepo project.Repository, events event.Publisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: pRepo,
		events:      events,
		logger:      log,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, projectID int64) error {
	if _, err := uc.projectRepo.FindByID(ctx, projectID); err != nil {
		return err
	}

	// Association rows are removed by the storage-level cascade.
	if err := uc.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	publishProjectEvent(ctx, uc.events, uc.logger, event.ActionDeleted, projectID)
	return nil
}
