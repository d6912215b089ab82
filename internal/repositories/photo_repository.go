package repositories

import (
	"portfolio_backend/internal/models"
)

type PhotoRepository interface {
	Create(patch models.PhotoPatch) models.Photo
	Update(id string, patch models.PhotoPatch) (models.Photo, Result)
	Delete(id string) Result
	// SetProfilePhoto flags id as the profile photo and clears the flag
	// everywhere else.
	SetProfilePhoto(id string) Result
	FindByID(id string) (models.Photo, Result)
	FindAll() []models.Photo
	FindProfilePhoto() (models.Photo, Result)
	Count() int
	Seed(photos []models.Photo)
}

type PhotoRepositoryImpl struct {
	photos *Collection[models.Photo]
}

func NewPhotoRepository(ids IDGenerator) PhotoRepository {
	return &PhotoRepositoryImpl{
		photos: NewCollection(ids, func(int) models.Photo { return models.Photo{} }),
	}
}

func (r *PhotoRepositoryImpl) Create(patch models.PhotoPatch) models.Photo {
	return r.photos.Create(patch)
}

func (r *PhotoRepositoryImpl) Update(id string, patch models.PhotoPatch) (models.Photo, Result) {
	return r.photos.Update(id, patch)
}

func (r *PhotoRepositoryImpl) Delete(id string) Result {
	return r.photos.Delete(id)
}

func (r *PhotoRepositoryImpl) SetProfilePhoto(id string) Result {
	return r.photos.SetExclusive(id, models.Photo.WithProfileFlag)
}

func (r *PhotoRepositoryImpl) FindByID(id string) (models.Photo, Result) {
	return r.photos.Get(id)
}

func (r *PhotoRepositoryImpl) FindAll() []models.Photo {
	return r.photos.List()
}

func (r *PhotoRepositoryImpl) FindProfilePhoto() (models.Photo, Result) {
	for _, p := range r.photos.List() {
		if p.IsProfilePhoto {
			return p, Found
		}
	}
	return models.Photo{}, NotFound
}

func (r *PhotoRepositoryImpl) Count() int {
	return r.photos.Len()
}

// Seed keeps at most one profile photo: the first flagged entry wins.
func (r *PhotoRepositoryImpl) Seed(photos []models.Photo) {
	seen := false
	cleaned := make([]models.Photo, len(photos))
	for i, p := range photos {
		if p.IsProfilePhoto {
			p.IsProfilePhoto = !seen
			seen = true
		}
		cleaned[i] = p
	}
	r.photos.Reset(cleaned)
}
