package models

// Photo is a gallery entry. At most one photo in a gallery is the profile photo.
type Photo struct {
	ID             string `json:"id" yaml:"id"`
	URL            string `json:"url" yaml:"url" validate:"required"`
	Name           string `json:"name" yaml:"name"`
	IsProfilePhoto bool   `json:"is_profile_photo" yaml:"is_profile_photo"`
}

type PhotoPatch struct {
	URL  *string `json:"url,omitempty"`
	Name *string `json:"name,omitempty"`
}

func (p Photo) Key() string { return p.ID }

func (p Photo) WithKey(id string) Photo {
	p.ID = id
	return p
}

func (p Photo) Clone() Photo { return p }

func (p Photo) WithProfileFlag(on bool) Photo {
	p.IsProfilePhoto = on
	return p
}

func (pp PhotoPatch) Apply(p Photo) Photo {
	if pp.URL != nil {
		p.URL = *pp.URL
	}
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	return p
}
