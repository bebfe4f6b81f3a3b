package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/internal/controllers"
	"portfolio/internal/middleware"
	"portfolio/internal/mocks"
	"portfolio/internal/models"
	"portfolio/internal/query"
	"portfolio/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCacheControl = "public, s-maxage=60"

type testRepos struct {
	articles *mocks.MockArticleRepository
	projects *mocks.MockProjectRepository
	messages *mocks.MockMessageRepository
	settings *mocks.MockSiteSettingRepository
	skills   *mocks.MockCollectionRepository[models.Skill]
}

func setupRouter(t *testing.T) (*gin.Engine, testRepos) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth, err := middleware.NewAuthenticator("routes-test-secret", time.Hour)
	require.NoError(t, err)

	repos := testRepos{
		articles: new(mocks.MockArticleRepository),
		projects: new(mocks.MockProjectRepository),
		messages: new(mocks.MockMessageRepository),
		settings: new(mocks.MockSiteSettingRepository),
		skills:   new(mocks.MockCollectionRepository[models.Skill]),
	}

	router := gin.New()
	RegisterArticleRoutes(router, controllers.NewArticleController(repos.articles, nil), auth, testCacheControl)
	RegisterProjectRoutes(router, controllers.NewProjectController(repos.projects), auth, testCacheControl)
	RegisterMessageRoutes(router, controllers.NewMessageController(repos.messages), auth)
	RegisterSiteConfigRoutes(router, controllers.NewSiteConfigController(repos.settings), auth, testCacheControl)
	RegisterAuthRoutes(router, controllers.NewAuthController(auth, controllers.AdminCredentials{Username: "admin"}, false))
	RegisterCollectionRoutes(router, "skills", controllers.NewCollectionController[models.Skill]("skill", repos.skills, "category"), auth, testCacheControl)
	RegisterSwaggerRoutes(router)
	return router, repos
}

func TestAdminRoutesRejectAnonymousWrites(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/articles"},
		{http.MethodPut, "/api/articles/1"},
		{http.MethodDelete, "/api/articles/1"},
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/projects/1"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodGet, "/api/messages"},
		{http.MethodPatch, "/api/messages/1/read"},
		{http.MethodDelete, "/api/messages/1"},
		{http.MethodPut, "/api/site-config"},
		{http.MethodPost, "/api/skills"},
		{http.MethodPut, "/api/skills/1"},
		{http.MethodDelete, "/api/skills/1"},
	}

	router, repos := setupRouter(t)
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	assert.Empty(t, repos.articles.Calls)
	assert.Empty(t, repos.projects.Calls)
	assert.Empty(t, repos.messages.Calls)
	assert.Empty(t, repos.settings.Calls)
	assert.Empty(t, repos.skills.Calls)
}

func TestPublicReadsAreCacheable(t *testing.T) {
	router, repos := setupRouter(t)
	repos.articles.On("List", mock.Anything, repository.ArticleFilter{}, query.Page{Page: 1, Limit: 10}).
		Return([]models.Article{}, int64(0), nil)
	repos.projects.On("List", mock.Anything, repository.ProjectFilter{}, query.Page{Page: 1, Limit: 9}).
		Return([]models.Project{}, int64(0), nil)
	repos.skills.On("List", mock.Anything, map[string]string{"category": ""}).
		Return([]models.Skill{}, nil)

	for _, path := range []string{"/api/articles", "/api/projects", "/api/skills"} {
		t.Run(path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, testCacheControl, w.Header().Get("Cache-Control"))
		})
	}
}

func TestContactFormIsPublic(t *testing.T) {
	router, repos := setupRouter(t)
	repos.messages.On("Create", mock.Anything, mock.AnythingOfType("*models.Message")).Return(nil)

	req, _ := http.NewRequest(http.MethodPost, "/api/messages",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	repos.messages.AssertExpectations(t)
}
