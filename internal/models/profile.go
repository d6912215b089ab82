package models

// Profile is the single profile being edited. It has no identity of its own.
type Profile struct {
	Name         string       `json:"name" yaml:"name" validate:"required"`
	Title        string       `json:"title" yaml:"title"`
	Bio          string       `json:"bio" yaml:"bio"`
	Location     string       `json:"location" yaml:"location"`
	Email        string       `json:"email" yaml:"email" validate:"omitempty,email"`
	Phone        string       `json:"phone" yaml:"phone"`
	Website      string       `json:"website" yaml:"website"`
	Github       string       `json:"github" yaml:"github"`
	Linkedin     string       `json:"linkedin" yaml:"linkedin"`
	Twitter      string       `json:"twitter" yaml:"twitter"`
	Instagram    string       `json:"instagram" yaml:"instagram"`
	ProfileImage string       `json:"profile_image" yaml:"profile_image"`
	Skills       []Skill      `json:"skills" yaml:"skills" validate:"dive"`
	Experience   []Experience `json:"experience" yaml:"experience" validate:"dive"`
	Education    []Education  `json:"education" yaml:"education" validate:"dive"`
	Languages    []Language   `json:"languages" yaml:"languages" validate:"dive"`
}

type Skill struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name" validate:"required"`
	Level    SkillLevel `json:"level" yaml:"level" validate:"is-skill-level"`
	Category string     `json:"category" yaml:"category"`
}

type Experience struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Company      string   `json:"company" yaml:"company"`
	Location     string   `json:"location" yaml:"location"`
	StartDate    string   `json:"start_date" yaml:"start_date"`
	EndDate      string   `json:"end_date" yaml:"end_date"`
	Current      bool     `json:"current" yaml:"current"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

type Education struct {
	ID          string `json:"id" yaml:"id"`
	Degree      string `json:"degree" yaml:"degree" validate:"required"`
	School      string `json:"school" yaml:"school"`
	Location    string `json:"location" yaml:"location"`
	StartDate   string `json:"start_date" yaml:"start_date"`
	EndDate     string `json:"end_date" yaml:"end_date"`
	Description string `json:"description" yaml:"description"`
	Grade       string `json:"grade,omitempty" yaml:"grade"`
}

type Language struct {
	ID    string        `json:"id" yaml:"id"`
	Name  string        `json:"name" yaml:"name" validate:"required"`
	Level LanguageLevel `json:"level" yaml:"level" validate:"is-language-level"`
	Flag  string        `json:"flag" yaml:"flag"`
}

// ProfilePatch updates the scalar profile fields edited on the dashboard.
// Nested lists are replaced only when the matching field is non-nil.
type ProfilePatch struct {
	Name         *string      `json:"name,omitempty"`
	Title        *string      `json:"title,omitempty"`
	Bio          *string      `json:"bio,omitempty"`
	Location     *string      `json:"location,omitempty"`
	Email        *string      `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string      `json:"phone,omitempty"`
	Website      *string      `json:"website,omitempty"`
	Github       *string      `json:"github,omitempty"`
	Linkedin     *string      `json:"linkedin,omitempty"`
	Twitter      *string      `json:"twitter,omitempty"`
	Instagram    *string      `json:"instagram,omitempty"`
	ProfileImage *string      `json:"profile_image,omitempty"`
	Skills       []Skill      `json:"skills,omitempty" validate:"omitempty,dive"`
	Experience   []Experience `json:"experience,omitempty" validate:"omitempty,dive"`
	Education    []Education  `json:"education,omitempty" validate:"omitempty,dive"`
	Languages    []Language   `json:"languages,omitempty" validate:"omitempty,dive"`
}

func (pp ProfilePatch) Apply(p Profile) Profile {
	setString(&p.Name, pp.Name)
	setString(&p.Title, pp.Title)
	setString(&p.Bio, pp.Bio)
	setString(&p.Location, pp.Location)
	setString(&p.Email, pp.Email)
	setString(&p.Phone, pp.Phone)
	setString(&p.Website, pp.Website)
	setString(&p.Github, pp.Github)
	setString(&p.Linkedin, pp.Linkedin)
	setString(&p.Twitter, pp.Twitter)
	setString(&p.Instagram, pp.Instagram)
	setString(&p.ProfileImage, pp.ProfileImage)
	if pp.Skills != nil {
		p.Skills = append([]Skill{}, pp.Skills...)
	}
	if pp.Experience != nil {
		p.Experience = append([]Experience{}, pp.Experience...)
	}
	if pp.Education != nil {
		p.Education = append([]Education{}, pp.Education...)
	}
	if pp.Languages != nil {
		p.Languages = append([]Language{}, pp.Languages...)
	}
	return p
}

// Clone returns a deep copy so callers never share slices with the store.
func (p Profile) Clone() Profile {
	p.Skills = append([]Skill{}, p.Skills...)
	p.Experience = cloneExperience(p.Experience)
	p.Education = append([]Education{}, p.Education...)
	p.Languages = append([]Language{}, p.Languages...)
	return p
}

// SocialLink is a rendered profile link.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SocialLinks returns the profile's non-empty social links in display order.
func (p Profile) SocialLinks() []SocialLink {
	all := []SocialLink{
		{"GitHub", p.Github},
		{"LinkedIn", p.Linkedin},
		{"Twitter", p.Twitter},
		{"Instagram", p.Instagram},
		{"Website", p.Website},
	}
	links := make([]SocialLink, 0, len(all))
	for _, l := range all {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}

func cloneExperience(in []Experience) []Experience {
	out := make([]Experience, len(in))
	for i, e := range in {
		e.Technologies = append([]string{}, e.Technologies...)
		out[i] = e
	}
	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
