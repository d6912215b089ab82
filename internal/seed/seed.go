// Package seed provides the fixtures a fresh process starts with: the
// built-in demo portfolio, or a YAML file with the same shape.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/validator"
)

type Data struct {
	Profile  *models.Profile        `yaml:"profile"`
	Projects []models.Project       `yaml:"projects"`
	Links    []models.PortfolioLink `yaml:"portfolio_links"`
	Photos   []models.Photo         `yaml:"photos"`
}

// Load reads a seed file. Sections missing from the file are taken from the
// built-in fixtures. Every record must pass the same rules as the API, and IDs
// must be unique within a section.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var data Data
	if err := yaml.UnmarshalStrict(raw, &data); err != nil {
		return Data{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	builtin := Builtin()
	if data.Profile == nil {
		data.Profile = builtin.Profile
	}
	if data.Projects == nil {
		data.Projects = builtin.Projects
	}
	if data.Links == nil {
		data.Links = builtin.Links
	}
	if data.Photos == nil {
		data.Photos = builtin.Photos
	}
	for i := range data.Projects {
		if data.Projects[i].Technologies == nil {
			data.Projects[i].Technologies = []string{}
		}
		if data.Projects[i].Category == "" {
			data.Projects[i].Category = models.ProjectCategoryDevWeb
		}
	}

	if err := data.validate(validator.New()); err != nil {
		return Data{}, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return data, nil
}

func (d Data) validate(v *validator.Validator) error {
	if err := v.Validate(d.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := validateSection(v, "projects", d.Projects); err != nil {
		return err
	}
	if err := validateSection(v, "portfolio_links", d.Links); err != nil {
		return err
	}
	return validateSection(v, "photos", d.Photos)
}

func validateSection[T interface{ Key() string }](v *validator.Validator, section string, items []T) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if err := v.Validate(item); err != nil {
			return fmt.Errorf("%s[%d]: %w", section, i, err)
		}
		id := item.Key()
		if id == "" {
			continue
		}
		if first, dup := seen[id]; dup {
			return fmt.Errorf("%s[%d]: id %q already used by %s[%d]", section, i, id, section, first)
		}
		seen[id] = i
	}
	return nil
}

// Apply replaces the content of every repository with data.
func Apply(repos services.Repositories, data Data) {
	if data.Profile != nil {
		repos.Profile.Replace(*data.Profile)
	}
	repos.Projects.Seed(data.Projects)
	repos.Links.Seed(data.Links)
	repos.Photos.Seed(data.Photos)
}
