package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/utils"
)

func TestNewProjectForm_Defaults(t *testing.T) {
	f := NewProjectForm(nil)

	assert.Equal(t, models.ProjectCategoryDevWeb, f.Category)
	assert.Empty(t, f.Title)
	assert.Empty(t, f.Technologies)
	assert.Nil(t, f.Featured)
}

func TestNewProjectForm_SeedsFromRecord(t *testing.T) {
	p := models.Project{
		ID:           "1",
		Title:        "E-commerce",
		Category:     models.ProjectCategoryGameDev,
		Technologies: []string{"React", "Node.js", "MongoDB"},
		Featured:     true,
	}

	f := NewProjectForm(&p)

	assert.Equal(t, "E-commerce", f.Title)
	assert.Equal(t, models.ProjectCategoryGameDev, f.Category)
	assert.Equal(t, "React, Node.js, MongoDB", f.Technologies)
	require.NotNil(t, f.Featured)
	assert.True(t, *f.Featured)
}

func TestProjectForm_Patch(t *testing.T) {
	f := ProjectForm{Title: "Jeu", Technologies: " Unity, C#,, "}

	patch := f.Patch()
	p := patch.Apply(models.Project{Featured: true})

	assert.Equal(t, "Jeu", p.Title)
	assert.Equal(t, models.ProjectCategoryDevWeb, p.Category)
	assert.Equal(t, []string{"Unity", "C#"}, p.Technologies)
	assert.True(t, p.Featured, "absent featured keeps the stored value")
}

func TestLinkForm_Defaults(t *testing.T) {
	f := NewLinkForm(nil)

	assert.Equal(t, DefaultFormLinkColor, f.Color)
	assert.Equal(t, models.DefaultLinkIcon, f.Icon)
	assert.Nil(t, f.Order)
}

func TestLinkForm_PatchDerivesSlug(t *testing.T) {
	tests := []struct {
		name     string
		form     LinkForm
		slugger  utils.Slugger
		wantSlug string
	}{
		{"derived", LinkForm{Title: "Développement Web!!"}, utils.Slugger{}, "d-veloppement-web"},
		{"transliterated", LinkForm{Title: "Développement Web!!"}, utils.Slugger{Transliterate: true}, "developpement-web"},
		{"explicit slug kept", LinkForm{Title: "Anything", Slug: "custom"}, utils.Slugger{}, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch := tt.form.Patch(tt.slugger)
			require.NotNil(t, patch.Slug)
			assert.Equal(t, tt.wantSlug, *patch.Slug)
		})
	}
}

func TestLinkForm_PatchKeepsColorWhenBlank(t *testing.T) {
	link := models.PortfolioLink{Color: "from-red-400 to-red-600", Icon: "Shield", Order: 3}

	got := LinkForm{Title: "Cyber"}.Patch(utils.Slugger{}).Apply(link)

	assert.Equal(t, "from-red-400 to-red-600", got.Color)
	assert.Equal(t, "Shield", got.Icon)
	assert.Equal(t, 3, got.Order)
}

func TestPhotoForm_Patch(t *testing.T) {
	patch := PhotoForm{URL: "https://example.com/a.jpg"}.Patch()

	require.NotNil(t, patch.URL)
	assert.Nil(t, patch.Name)
}

func TestProfileForm_RoundTrip(t *testing.T) {
	profile := models.Profile{Name: "John Doe", Email: "john@example.com", Skills: []models.Skill{{Name: "Go"}}}

	updated := NewProfileForm(profile).Patch().Apply(profile)

	assert.Equal(t, profile, updated)
}
