package services

import (
	"context"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/pkg/apperrors"
)

type ProjectService interface {
	CreateProject(ctx context.Context, patch *models.ProjectPatch) (*models.Project, error)
	// UpdateProject merges only the non-nil fields of patch.
	UpdateProject(ctx context.Context, id string, patch *models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context) []models.Project
}

type projectService struct {
	repo   repositories.ProjectRepository
	events EventPublisher
}

func NewProjectService(repo repositories.ProjectRepository, events EventPublisher) ProjectService {
	return &projectService{repo: repo, events: events}
}

func (s *projectService) CreateProject(ctx context.Context, patch *models.ProjectPatch) (*models.Project, error) {
	project := s.repo.Create(*patch)

	logger.CtxInfo(ctx, "project created", "project_id", project.ID, "title", project.Title)
	publish(s.events, CollectionProjects, EventCreated, project.ID)
	return &project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, patch *models.ProjectPatch) (*models.Project, error) {
	project, res := s.repo.Update(id, *patch)
	if res == repositories.NotFound {
		return nil, apperrors.ErrProjectNotFound
	}

	logger.CtxInfo(ctx, "project updated", "project_id", id)
	publish(s.events, CollectionProjects, EventUpdated, id)
	return &project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if s.repo.Delete(id) == repositories.NotFound {
		return apperrors.ErrProjectNotFound
	}

	logger.CtxInfo(ctx, "project deleted", "project_id", id)
	publish(s.events, CollectionProjects, EventDeleted, id)
	return nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	project, res := s.repo.FindByID(id)
	if res == repositories.NotFound {
		return nil, apperrors.ErrProjectNotFound
	}
	return &project, nil
}

func (s *projectService) ListProjects(ctx context.Context) []models.Project {
	return s.repo.FindAll()
}
