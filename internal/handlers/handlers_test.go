package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"portfolio_backend/internal/email"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/seed"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/utils"
	"portfolio_backend/internal/validator"
	"portfolio_backend/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMail struct {
	to      []string
	subject string
	data    email.TemplateData
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []capturedMail
	err  error
}

func (f *fakeMailer) Send(*email.Email) error { return f.err }
func (f *fakeMailer) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, capturedMail{to: to, subject: subject, data: data})
	return nil
}
func (f *fakeMailer) Validate() error { return nil }
func (f *fakeMailer) Close() error    { return nil }

type testEnv struct {
	router   *gin.Engine
	services *services.ServiceContainer
	mail     *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ids := repositories.NewCounterGenerator()
	repos := services.Repositories{
		Projects: repositories.NewProjectRepository(ids),
		Links:    repositories.NewPortfolioLinkRepository(ids),
		Photos:   repositories.NewPhotoRepository(ids),
		Profile:  repositories.NewProfileRepository(ids, models.Profile{}),
	}
	seed.Apply(repos, seed.Builtin())

	mail := &fakeMailer{}
	container := services.NewServiceContainer(repos, utils.Slugger{}, mail, nil)
	appHandlers := NewAppHandlers(NewBaseHandler(validator.New()), container)

	router := gin.New()
	router.SetHTMLTemplate(views.MustLoad())
	api := router.Group("/api/v1")
	appHandlers.ProjectHandler.RegisterRoutes(api)
	appHandlers.PortfolioLinkHandler.RegisterRoutes(api)
	appHandlers.PhotoHandler.RegisterRoutes(api)
	appHandlers.ProfileHandler.RegisterRoutes(api)
	appHandlers.PortfolioHandler.RegisterRoutes(api)
	appHandlers.DashboardHandler.RegisterRoutes(api)
	appHandlers.PortfolioHandler.RegisterPages(router)
	appHandlers.DashboardHandler.RegisterPages(router)

	return &testEnv{router: router, services: container, mail: mail}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// ============================================================================
// JSON API
// ============================================================================

func TestProjectAPI_CRUD(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Project](t, w), 2)

	w = env.do(http.MethodPost, "/api/v1/projects", map[string]any{"description": "no title"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errResp := decode[errorBody](t, w)
	assert.Equal(t, "VALIDATION_FAILED", errResp.Error.Code)
	assert.Contains(t, errResp.Error.Details, "title")

	w = env.do(http.MethodPost, "/api/v1/projects", map[string]any{
		"title":        "CLI Tool",
		"technologies": []string{" Go ", "Cobra"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Project](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.ProjectCategoryDevWeb, created.Category)
	assert.Equal(t, []string{"Go", "Cobra"}, created.Technologies)
	assert.False(t, created.Featured)

	w = env.do(http.MethodPatch, "/api/v1/projects/"+created.ID, map[string]any{"featured": true})
	require.Equal(t, http.StatusOK, w.Code)
	patched := decode[models.Project](t, w)
	assert.True(t, patched.Featured)
	assert.Equal(t, "CLI Tool", patched.Title)

	w = env.do(http.MethodDelete, "/api/v1/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/api/v1/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, w).Error.Code)
}

func TestProjectAPI_RejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/api/v1/projects/1", map[string]any{"title": "X", "category": "cooking"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorBody](t, w).Error.Details, "category")
}

func TestPortfolioLinkAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/portfolio-links", map[string]any{"title": "Data Science"})
	require.Equal(t, http.StatusCreated, w.Code)
	link := decode[models.PortfolioLink](t, w)
	assert.Equal(t, "data-science", link.Slug)
	assert.Equal(t, 4, link.Order)
	assert.True(t, link.IsActive)

	w = env.do(http.MethodPost, "/api/v1/portfolio-links/"+link.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.PortfolioLink](t, w).IsActive)

	w = env.do(http.MethodPatch, "/api/v1/portfolio-links/"+link.ID, map[string]any{"order": 0})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/portfolio-links", nil)
	links := decode[[]models.PortfolioLink](t, w)
	require.Len(t, links, 4)
	assert.Equal(t, link.ID, links[0].ID)

	w = env.do(http.MethodPost, "/api/v1/portfolio-links/missing/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchRejectsBlankTitle(t *testing.T) {
	env := newTestEnv(t)

	projects := decode[[]models.Project](t, env.do(http.MethodGet, "/api/v1/projects", nil))
	require.NotEmpty(t, projects)
	w := env.do(http.MethodPatch, "/api/v1/projects/"+projects[0].ID, map[string]any{"title": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorBody](t, w).Error.Details, "title")

	links := decode[[]models.PortfolioLink](t, env.do(http.MethodGet, "/api/v1/portfolio-links", nil))
	require.NotEmpty(t, links)
	w = env.do(http.MethodPatch, "/api/v1/portfolio-links/"+links[0].ID, map[string]any{"title": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorBody](t, w).Error.Details, "title")

	project, err := env.services.ProjectService.GetProject(context.Background(), projects[0].ID)
	require.NoError(t, err)
	assert.Equal(t, projects[0].Title, project.Title)
	link, err := env.services.PortfolioLinkService.GetLink(context.Background(), links[0].ID)
	require.NoError(t, err)
	assert.Equal(t, links[0].Title, link.Title)
}

func TestPhotoAPI_ProfilePhotoIsExclusive(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/photos/2/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	photos := decode[[]models.Photo](t, w)
	for _, p := range photos {
		assert.Equal(t, p.ID == "2", p.IsProfilePhoto, p.ID)
	}

	w = env.do(http.MethodPost, "/api/v1/photos/missing/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodPost, "/api/v1/photos", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "John Doe", decode[models.Profile](t, w).Name)

	w = env.do(http.MethodPut, "/api/v1/profile", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/api/v1/profile", map[string]any{
		"name":   "Jane Roe",
		"skills": []map[string]any{{"name": "Go", "level": "Expert", "category": "Backend"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[models.Profile](t, w)
	assert.Equal(t, "Jane Roe", profile.Name)
	require.Len(t, profile.Skills, 1)
	assert.NotEmpty(t, profile.Skills[0].ID)
}

func TestPortfolioAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/portfolio/dev-web", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio E-commerce")

	w = env.do(http.MethodGet, "/api/v1/portfolio/unknown-slug", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.do(http.MethodPost, "/api/v1/portfolio-links/1/toggle", nil)
	w = env.do(http.MethodGet, "/api/v1/portfolio/dev-web", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodGet, "/api/v1/portfolios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "dev-web")
}

func TestContactAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/portfolio/dev-web/contact", map[string]any{
		"name": "Alice", "email": "not-an-email", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[errorBody](t, w).Error.Details, "email")

	w = env.do(http.MethodPost, "/api/v1/portfolio/dev-web/contact", map[string]any{
		"name": "Alice", "email": "alice@example.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, env.mail.sent, 1)
	assert.Equal(t, []string{"john.doe@example.com"}, env.mail.sent[0].to)
	assert.Equal(t, "[dev-web] Hi", env.mail.sent[0].subject)

	w = env.do(http.MethodPost, "/api/v1/portfolio/nope/contact", map[string]any{
		"name": "Alice", "email": "alice@example.com", "subject": "Hi", "message": "Hello",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardOverviewAPI(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/dashboard/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[map[string]any](t, w)
	assert.EqualValues(t, 2, overview["project_count"])
	assert.EqualValues(t, 3, overview["active_link_count"])
	assert.EqualValues(t, 2, overview["photo_count"])
}

// ============================================================================
// HTML pages
// ============================================================================

func TestLandingPage_ListsActivePortfolios(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodPost, "/api/v1/portfolio-links/2/toggle", nil)

	w := env.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/portfolio/dev-web")
	assert.NotContains(t, w.Body.String(), "/portfolio/game-dev")
}

func TestPortfolioPage_NotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/portfolio/unknown-slug", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio non trouvé")
}

func TestPortfolioPage_ContactForm(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/portfolio/cybersec/contact", url.Values{"name": {"Bob"}, "email": {"bob"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `data-role="errors"`)
	assert.Contains(t, w.Body.String(), `value="Bob"`)
	assert.Empty(t, env.mail.sent)

	w = env.postForm("/portfolio/cybersec/contact", url.Values{
		"name": {"Bob"}, "email": {"bob@example.com"}, "subject": {"Audit"}, "message": {"Can we talk?"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/portfolio/cybersec?sent=1#contact", w.Header().Get("Location"))
	require.Len(t, env.mail.sent, 1)

	w = env.do(http.MethodGet, "/portfolio/cybersec?sent=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-role="contact-sent"`)
}

func TestPortfolioPage_ContactDeliveryFailure(t *testing.T) {
	env := newTestEnv(t)
	env.mail.err = assert.AnError

	w := env.postForm("/portfolio/dev-web/contact", url.Values{
		"name": {"Bob"}, "email": {"bob@example.com"}, "subject": {"Hi"}, "message": {"Hello"},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Le message n&#39;a pas pu être envoyé")
}

func TestDashboard_SectionsRender(t *testing.T) {
	env := newTestEnv(t)

	for _, section := range models.DashboardSections {
		w := env.do(http.MethodGet, "/dashboard?section="+string(section), nil)
		assert.Equal(t, http.StatusOK, w.Code, section)
		assert.Contains(t, w.Body.String(), `data-section="`+string(section)+`"`)
	}
}

func TestDashboard_UnknownEditTargetShowsList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/dashboard?section=projects&edit=999", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "/dashboard/projects/999")
}

func TestDashboard_ProjectForm(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/dashboard/projects?theme=dark", url.Values{"title": {""}, "description": {"draft"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "draft")
	assert.Len(t, env.services.ProjectService.ListProjects(context.Background()), 2)

	w = env.postForm("/dashboard/projects?theme=dark", url.Values{
		"title":        {"Roguelike"},
		"category":     {"game_dev"},
		"technologies": {"Go, Ebiten"},
		"featured":     {"false"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard?section=projects&theme=dark", w.Header().Get("Location"))

	projects := env.services.ProjectService.ListProjects(context.Background())
	require.Len(t, projects, 3)
	assert.Equal(t, []string{"Go", "Ebiten"}, projects[2].Technologies)

	w = env.postForm("/dashboard/projects/999", url.Values{"title": {"Ghost"}, "category": {"dev_web"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.postForm("/dashboard/projects/"+projects[2].ID+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Len(t, env.services.ProjectService.ListProjects(context.Background()), 2)
}

func TestDashboard_LinkFormBlankOrderAppends(t *testing.T) {
	env := newTestEnv(t)

	w := env.postForm("/dashboard/links", url.Values{"title": {"Mobile Apps"}, "slug": {""}, "order": {""}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard?section=portfolio-links", w.Header().Get("Location"))

	links := env.services.PortfolioLinkService.ListLinks(context.Background())
	require.Len(t, links, 4)
	assert.Equal(t, "mobile-apps", links[3].Slug)
	assert.Equal(t, 4, links[3].Order)

	w = env.postForm("/dashboard/links/"+links[3].ID+"/toggle", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	link, err := env.services.PortfolioLinkService.GetLink(context.Background(), links[3].ID)
	require.NoError(t, err)
	assert.False(t, link.IsActive)
}

func TestDashboard_PhotosAndProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w := env.postForm("/dashboard/photos", url.Values{"url": {"https://example.com/me.jpg"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	photos := env.services.PhotoService.ListPhotos(ctx)
	require.Len(t, photos, 3)

	w = env.postForm("/dashboard/photos/"+photos[2].ID+"/profile", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, photos[2].ID, env.services.PhotoService.ProfilePhoto(ctx).ID)

	w = env.postForm("/dashboard/profile", url.Values{"name": {""}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.postForm("/dashboard/profile", url.Values{"name": {"John Smith"}, "email": {"john@example.com"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard?section=profile", w.Header().Get("Location"))
	profile := env.services.ProfileService.GetProfile(ctx)
	assert.Equal(t, "John Smith", profile.Name)
	assert.NotEmpty(t, profile.Skills)
}
