package experience

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johndoe/me-api/internal/domain/event"
	"github.com/johndoe/me-api/internal/domain/experience"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type ExperienceUseCase struct {
	experienceRepo experience.Repository
	events         event.Publisher
	logger         logger.Logger
}

func NewExperienceUseCase(repo experience.Repository, events event.Publisher, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{
		experienceRepo: repo,
		events:         events,
		logger:         log,
	}
}

func (uc *ExperienceUseCase) ExecuteList(ctx context.Context) ([]experience.WorkExperience, error) {
	return uc.experienceRepo.List(ctx)
}

func (uc *ExperienceUseCase) ExecuteGet(ctx context.Context, id int64) (*experience.WorkExperience, error) {
	return uc.experienceRepo.FindByID(ctx, id)
}

type SaveExperienceInput struct {
	Company     string
	Position    string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	// Current is stored as given; it is not validated against EndDate.
	Current bool
}

func validateExperienceInput(input SaveExperienceInput) error {
	if strings.TrimSpace(input.Company) == "" || strings.TrimSpace(input.Position) == "" {
		return apperror.NewInvalidInput("Company and position are required fields", nil)
	}
	return nil
}

func (uc *ExperienceUseCase) ExecuteCreate(ctx context.Context, input SaveExperienceInput) (*experience.WorkExperience, error) {
	if err := validateExperienceInput(input); err != nil {
		return nil, err
	}

	w := &experience.WorkExperience{
		Company:     input.Company,
		Position:    input.Position,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Current:     input.Current,
	}
	if err := uc.experienceRepo.Create(ctx, w); err != nil {
		return nil, err
	}

	uc.publish(ctx, event.ActionCreated, w.ID)
	return w, nil
}

func (uc *ExperienceUseCase) ExecuteUpdate(ctx context.Context, id int64, input SaveExperienceInput) (*experience.WorkExperience, error) {
	if err := validateExperienceInput(input); err != nil {
		return nil, err
	}

	w, err := uc.experienceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	w.Company = input.Company
	w.Position = input.Position
	w.Description = input.Description
	w.StartDate = input.StartDate
	w.EndDate = input.EndDate
	w.Current = input.Current

	if err := uc.experienceRepo.Update(ctx, w); err != nil {
		return nil, err
	}

	uc.publish(ctx, event.ActionUpdated, w.ID)
	return w, nil
}

func (uc *ExperienceUseCase) ExecuteDelete(ctx context.Context, id int64) error {
	if _, err := uc.experienceRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.experienceRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(ctx, event.ActionDeleted, id)
	return nil
}

func (uc *ExperienceUseCase) publish(ctx context.Context, action string, id int64) {
	if uc.events == nil {
		return
	}
	evt := event.Event{Entity: "work_experience", Action: action, ID: id, OccurredAt: time.Now().UTC()}
	if err := uc.events.Publish(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish work experience event",
			zap.String("action", action), zap.Int64("id", id), zap.Error(err))
	}
}
