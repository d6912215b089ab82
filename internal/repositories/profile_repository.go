package repositories

import (
	"sync"

	"portfolio_backend/internal/models"
)

// ProfileRepository holds the single profile being edited.
type ProfileRepository interface {
	Get() models.Profile
	Update(patch models.ProfilePatch) models.Profile
	Replace(profile models.Profile) models.Profile
}

type ProfileRepositoryImpl struct {
	mu      sync.RWMutex
	profile models.Profile
	ids     IDGenerator
}

func NewProfileRepository(ids IDGenerator, initial models.Profile) ProfileRepository {
	r := &ProfileRepositoryImpl{ids: ids}
	r.profile = r.withIDs(initial.Clone())
	return r
}

func (r *ProfileRepositoryImpl) Get() models.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile.Clone()
}

func (r *ProfileRepositoryImpl) Update(patch models.ProfilePatch) models.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = r.withIDs(patch.Apply(r.profile.Clone()))
	return r.profile.Clone()
}

func (r *ProfileRepositoryImpl) Replace(profile models.Profile) models.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = r.withIDs(profile.Clone())
	return r.profile.Clone()
}

// withIDs gives nested list entries without an ID a generated one.
func (r *ProfileRepositoryImpl) withIDs(p models.Profile) models.Profile {
	for i := range p.Skills {
		if p.Skills[i].ID == "" {
			p.Skills[i].ID = r.ids.NewID()
		}
	}
	for i := range p.Experience {
		if p.Experience[i].ID == "" {
			p.Experience[i].ID = r.ids.NewID()
		}
	}
	for i := range p.Education {
		if p.Education[i].ID == "" {
			p.Education[i].ID = r.ids.NewID()
		}
	}
	for i := range p.Languages {
		if p.Languages[i].ID == "" {
			p.Languages[i].ID = r.ids.NewID()
		}
	}
	return p
}
