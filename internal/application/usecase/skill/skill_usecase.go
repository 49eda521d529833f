package skill

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johndoe/me-api/internal/domain/event"
	"github.com/johndoe/me-api/internal/domain/skill"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

const defaultTopLimit = 5

type SkillUseCase struct {
	skillRepo skill.Repository
	events    event.Publisher
	logger    logger.Logger
}

func NewSkillUseCase(repo skill.Repository, events event.Publisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{
		skillRepo: repo,
		events:    events,
		logger:    log,
	}
}

func (uc *SkillUseCase) ExecuteList(ctx context.Context) ([]skill.Skill, error) {
	return uc.skillRepo.List(ctx)
}

type TopSkillsInput struct {
	Limit    int
	Category string
}

func (uc *SkillUseCase) ExecuteTop(ctx context.Context, input TopSkillsInput) ([]skill.Skill, error) {
	if input.Limit <= 0 {
		input.Limit = defaultTopLimit
	}
	return uc.skillRepo.Top(ctx, input.Limit, input.Category)
}

func (uc *SkillUseCase) ExecuteCategories(ctx context.Context) ([]skill.CategoryCount, error) {
	return uc.skillRepo.Categories(ctx)
}

func (uc *SkillUseCase) ExecuteGet(ctx context.Context, id int64) (*skill.Skill, error) {
	return uc.skillRepo.FindByID(ctx, id)
}

type SaveSkillInput struct {
	Name        string
	Proficiency int
	Category    *string
}

func validateSkillInput(input SaveSkillInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperror.NewInvalidInput("Name and proficiency are required fields", nil)
	}
	if input.Proficiency < skill.MinProficiency || input.Proficiency > skill.MaxProficiency {
		return apperror.NewInvalidInput(
			fmt.Sprintf("Proficiency must be between %d and %d", skill.MinProficiency, skill.MaxProficiency), nil)
	}
	return nil
}

func (uc *SkillUseCase) ExecuteCreate(ctx context.Context, input SaveSkillInput) (*skill.Skill, error) {
	if err := validateSkillInput(input); err != nil {
		return nil, err
	}

	if _, err := uc.skillRepo.FindByName(ctx, input.Name); err == nil {
		return nil, apperror.NewConflict("skill", "name", input.Name)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	s := &skill.Skill{
		Name:        input.Name,
		Proficiency: input.Proficiency,
		Category:    input.Category,
	}
	if err := uc.skillRepo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.publish(ctx, event.ActionCreated, s.ID)
	return s, nil
}

func (uc *SkillUseCase) ExecuteUpdate(ctx context.Context, id int64, input SaveSkillInput) (*skill.Skill, error) {
	if err := validateSkillInput(input); err != nil {
		return nil, err
	}

	s, err := uc.skillRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Name = input.Name
	s.Proficiency = input.Proficiency
	s.Category = input.Category

	if err := uc.skillRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.publish(ctx, event.ActionUpdated, s.ID)
	return s, nil
}

func (uc *SkillUseCase) ExecuteDelete(ctx context.Context, id int64) error {
	if _, err := uc.skillRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := uc.skillRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(ctx, event.ActionDeleted, id)
	return nil
}

func (uc *SkillUseCase) publish(ctx context.Context, action string, id int64) {
	if uc.events == nil {
		return
	}
	evt := event.Event{Entity: "skill", Action: action, ID: id, OccurredAt: time.Now().UTC()}
	if err := uc.events.Publish(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish skill event",
			zap.String("action", action), zap.Int64("id", id), zap.Error(err))
	}
}
