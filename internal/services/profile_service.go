package services

import (
	"context"

	"portfolio_backend/internal/forms"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
)

type ProfileService interface {
	GetProfile(ctx context.Context) models.Profile
	// UpdateProfile applies the scalar fields of the dashboard form.
	UpdateProfile(ctx context.Context, form *forms.ProfileForm) models.Profile
	// ReplaceProfile swaps the whole document, nested lists included.
	ReplaceProfile(ctx context.Context, profile models.Profile) models.Profile
}

type profileService struct {
	repo   repositories.ProfileRepository
	events EventPublisher
}

func NewProfileService(repo repositories.ProfileRepository, events EventPublisher) ProfileService {
	return &profileService{repo: repo, events: events}
}

func (s *profileService) GetProfile(ctx context.Context) models.Profile {
	return s.repo.Get()
}

func (s *profileService) UpdateProfile(ctx context.Context, form *forms.ProfileForm) models.Profile {
	profile := s.repo.Update(form.Patch())

	logger.CtxInfo(ctx, "profile updated", "name", profile.Name)
	publish(s.events, CollectionProfile, EventUpdated, "")
	return profile
}

func (s *profileService) ReplaceProfile(ctx context.Context, profile models.Profile) models.Profile {
	stored := s.repo.Replace(profile)

	logger.CtxInfo(ctx, "profile replaced", "name", stored.Name,
		"skills", len(stored.Skills), "experience", len(stored.Experience))
	publish(s.events, CollectionProfile, EventUpdated, "")
	return stored
}
