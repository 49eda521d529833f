package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johndoe/me-api/internal/domain/event"
	"github.com/johndoe/me-api/internal/domain/profile"
	"github.com/johndoe/me-api/pkg/apperror"
	"github.com/johndoe/me-api/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	events      event.Publisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, events event.Publisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		events:      events,
		logger:      log,
	}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type CreateProfileInput struct {
	Name      string
	Email     string
	Education *string
	Github    *string
	Linkedin  *string
	Portfolio *string
}

type CreateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteCreateProfile(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, apperror.NewInvalidInput("Name and email are required fields", nil)
	}

	// Singleton check: at most one profile row may ever exist.
	_, err := uc.profileRepo.Get(ctx)
	if err == nil {
		return nil, apperror.NewAppError(apperror.ErrConflict,
			"A profile already exists. Use PUT to update instead.", "profile", nil)
	}
	if !isNotFound(err) {
		return nil, err
	}

	p := &profile.Profile{
		Name:      input.Name,
		Email:     input.Email,
		Education: input.Education,
		Github:    input.Github,
		Linkedin:  input.Linkedin,
		Portfolio: input.Portfolio,
	}
	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.publish(ctx, event.ActionCreated, p.ID)
	return &CreateProfileOutput{Profile: p}, nil
}

type UpdateProfileInput = CreateProfileInput

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, apperror.NewInvalidInput("Name and email are required fields", nil)
	}

	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NewAppError(apperror.ErrNotFound,
				"No profile exists to update. Create one first with POST.", "profile", nil)
		}
		return nil, err
	}

	p.Name = input.Name
	p.Email = input.Email
	p.Education = input.Education
	p.Github = input.Github
	p.Linkedin = input.Linkedin
	p.Portfolio = input.Portfolio

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.publish(ctx, event.ActionUpdated, p.ID)
	return &UpdateProfileOutput{Profile: p}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperror.ErrNotFound)
}

func (uc *ProfileUseCase) publish(ctx context.Context, action string, id int64) {
	if uc.events == nil {
		return
	}
	evt := event.Event{Entity: "profile", Action: action, ID: id, OccurredAt: time.Now().UTC()}
	if err := uc.events.Publish(ctx, evt); err != nil {
		uc.logger.Warn("failed to publish profile event",
			zap.String("action", action), zap.Int64("id", id), zap.Error(err))
	}
}
