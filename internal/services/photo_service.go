package services

import (
	"context"
	"fmt"
	"time"

	"portfolio_backend/internal/forms"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"
)

type PhotoService interface {
	AddPhoto(ctx context.Context, form *forms.PhotoForm) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
	// SetProfilePhoto flags id as the only profile photo.
	SetProfilePhoto(ctx context.Context, id string) error
	GetPhoto(ctx context.Context, id string) (*models.Photo, error)
	ListPhotos(ctx context.Context) []models.Photo
	// ProfilePhoto returns nil when no photo is flagged.
	ProfilePhoto(ctx context.Context) *models.Photo
}

type photoService struct {
	repo   repositories.PhotoRepository
	events EventPublisher
	now    func() time.Time
}

func NewPhotoService(repo repositories.PhotoRepository, events EventPublisher) PhotoService {
	return &photoService{repo: repo, events: events, now: time.Now}
}

func (s *photoService) AddPhoto(ctx context.Context, form *forms.PhotoForm) (*models.Photo, error) {
	patch := form.Patch()
	if patch.Name == nil {
		name := fmt.Sprintf("photo-%d.jpg", s.now().UnixMilli())
		patch.Name = &name
	}

	photo := s.repo.Create(patch)

	logger.CtxInfo(ctx, "photo added", "photo_id", photo.ID, "name", photo.Name)
	publish(s.events, CollectionPhotos, EventCreated, photo.ID)
	return &photo, nil
}

func (s *photoService) DeletePhoto(ctx context.Context, id string) error {
	if s.repo.Delete(id) == repositories.NotFound {
		return apperrors.ErrPhotoNotFound
	}

	logger.CtxInfo(ctx, "photo deleted", "photo_id", id)
	publish(s.events, CollectionPhotos, EventDeleted, id)
	return nil
}

func (s *photoService) SetProfilePhoto(ctx context.Context, id string) error {
	if s.repo.SetProfilePhoto(id) == repositories.NotFound {
		return apperrors.ErrPhotoNotFound
	}

	logger.CtxInfo(ctx, "profile photo set", "photo_id", id)
	publish(s.events, CollectionPhotos, EventProfilePhoto, id)
	return nil
}

func (s *photoService) GetPhoto(ctx context.Context, id string) (*models.Photo, error) {
	photo, res := s.repo.FindByID(id)
	if res == repositories.NotFound {
		return nil, apperrors.ErrPhotoNotFound
	}
	return &photo, nil
}

func (s *photoService) ListPhotos(ctx context.Context) []models.Photo {
	return s.repo.FindAll()
}

func (s *photoService) ProfilePhoto(ctx context.Context) *models.Photo {
	photo, res := s.repo.FindProfilePhoto()
	if res == repositories.NotFound {
		return nil
	}
	return &photo
}
