package repositories

import (
	"portfolio_backend/internal/models"
)

type ProjectRepository interface {
	Create(patch models.ProjectPatch) models.Project
	Update(id string, patch models.ProjectPatch) (models.Project, Result)
	Delete(id string) Result
	FindByID(id string) (models.Project, Result)
	FindAll() []models.Project
	Count() int
	Seed(projects []models.Project)
}

type ProjectRepositoryImpl struct {
	projects *Collection[models.Project]
}

func NewProjectRepository(ids IDGenerator) ProjectRepository {
	return &ProjectRepositoryImpl{
		projects: NewCollection(ids, func(int) models.Project { return models.NewProject() }),
	}
}

func (r *ProjectRepositoryImpl) Create(patch models.ProjectPatch) models.Project {
	return r.projects.Create(patch)
}

func (r *ProjectRepositoryImpl) Update(id string, patch models.ProjectPatch) (models.Project, Result) {
	return r.projects.Update(id, patch)
}

func (r *ProjectRepositoryImpl) Delete(id string) Result {
	return r.projects.Delete(id)
}

func (r *ProjectRepositoryImpl) FindByID(id string) (models.Project, Result) {
	return r.projects.Get(id)
}

func (r *ProjectRepositoryImpl) FindAll() []models.Project {
	return r.projects.List()
}

func (r *ProjectRepositoryImpl) Count() int {
	return r.projects.Len()
}

func (r *ProjectRepositoryImpl) Seed(projects []models.Project) {
	r.projects.Reset(projects)
}
