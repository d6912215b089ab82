package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/validator"
)

func newRepos() services.Repositories {
	ids := repositories.NewCounterGenerator()
	return services.Repositories{
		Projects: repositories.NewProjectRepository(ids),
		Links:    repositories.NewPortfolioLinkRepository(ids),
		Photos:   repositories.NewPhotoRepository(ids),
		Profile:  repositories.NewProfileRepository(ids, models.Profile{}),
	}
}

func TestBuiltin_IsValid(t *testing.T) {
	data := Builtin()

	require.NotNil(t, data.Profile)
	assert.NoError(t, validator.New().Validate(*data.Profile))
	for _, p := range data.Projects {
		assert.True(t, p.Category.IsValid(), p.Title)
	}
	flagged := 0
	for _, p := range data.Photos {
		if p.IsProfilePhoto {
			flagged++
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestBuiltin_ReturnsFreshCopies(t *testing.T) {
	a := Builtin()
	a.Projects[0].Technologies[0] = "changed"
	a.Profile.Name = "changed"

	b := Builtin()
	assert.Equal(t, "React", b.Projects[0].Technologies[0])
	assert.Equal(t, "John Doe", b.Profile.Name)
}

func TestApply(t *testing.T) {
	repos := newRepos()

	Apply(repos, Builtin())

	assert.Equal(t, 2, repos.Projects.Count())
	assert.Equal(t, 3, repos.Links.Count())
	assert.Equal(t, 2, repos.Photos.Count())
	assert.Equal(t, "John Doe", repos.Profile.Get().Name)
	link, res := repos.Links.FindBySlug("game-dev")
	require.Equal(t, repositories.Found, res)
	assert.Equal(t, "2", link.ID)
}

func TestLoad_FileOverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
portfolio_links:
  - id: "a"
    title: "Data"
    slug: "data"
    is_active: true
    order: 1
projects:
  - id: "p"
    title: "Notebook"
    category: "dev_web"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data, err := Load(path)

	require.NoError(t, err)
	require.Len(t, data.Links, 1)
	assert.Equal(t, "data", data.Links[0].Slug)
	require.Len(t, data.Projects, 1)
	assert.Equal(t, []string{}, data.Projects[0].Technologies)
	assert.Len(t, data.Photos, 2, "photos fall back to the built-in set")
	assert.Equal(t, "John Doe", data.Profile.Name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unknown_section: 1\n"), 0o600))
	_, err = Load(path)
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoad_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "unknown category",
			content: `
projects:
  - id: "p"
    title: "Notebook"
    category: "cooking"
`,
			want: "projects[0]",
		},
		{
			name: "link without slug",
			content: `
portfolio_links:
  - id: "a"
    title: "Data"
`,
			want: "portfolio_links[0]",
		},
		{
			name: "photo without url",
			content: `
photos:
  - id: "1"
    name: "empty.jpg"
`,
			want: "photos[0]",
		},
		{
			name: "duplicate ids",
			content: `
portfolio_links:
  - id: "a"
    title: "Data"
    slug: "data"
  - id: "a"
    title: "Games"
    slug: "games"
`,
			want: `id "a" already used`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_BlankCategoryDefaultsToWeb(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
projects:
  - title: "Notebook"
`), 0o600))

	data, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, models.ProjectCategoryDevWeb, data.Projects[0].Category)
}
