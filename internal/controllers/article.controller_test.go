package controllers_test

import (
	"errors"
	"net/http"
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

func setupArticleRouter(t *testing.T) (*gin.Engine, *mocks.MockArticleRepository, *mocks.MockViewDeduper, string) {
	t.Helper()
	mockRepo := new(mocks.MockArticleRepository)
	mockViews := new(mocks.MockViewDeduper)
	controller := controllers.NewArticleController(mockRepo, mockViews)
	auth := newTestAuthenticator(t)

	router := setupTestRouter()
	articles := router.Group("/api/articles")
	articles.GET("", middleware.CacheControl("public, s-maxage=600"), controller.ListArticles)
	articles.GET("/:slug", controller.GetArticle)
	articles.POST("/:slug/view", controller.RecordView)

	admin := articles.Group("", auth.RequireAdmin())
	admin.POST("", controller.CreateArticle)
	admin.PUT("/:id", controller.UpdateArticle)
	admin.DELETE("/:id", controller.DeleteArticle)

	return router, mockRepo, mockViews, adminToken(t, auth)
}

func TestNewArticleController(t *testing.T) {
	controller := controllers.NewArticleController(new(mocks.MockArticleRepository), nil)
	assert.NotNil(t, controller)
}

func TestListArticles(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedFilter repository.ArticleFilter
		expectedPage   query.Page
		articles       []models.Article
		total          int64
		repoErr        error
		expectedStatus int
		expectedPages  float64
	}{
		{
			name:           "defaults",
			url:            "/api/articles",
			expectedPage:   query.Page{Page: 1, Limit: 10},
			articles:       []models.Article{},
			total:          0,
			expectedStatus: http.StatusOK,
			expectedPages:  0,
		},
		{
			name: "all filters",
			url:  "/api/articles?category=go&status=published&search=gin&page=2&limit=5",
			expectedFilter: repository.ArticleFilter{
				Category: "go",
				Status:   "published",
				Search:   "gin",
			},
			expectedPage:   query.Page{Page: 2, Limit: 5},
			articles:       []models.Article{{ID: 6, TitleZh: "Gin", Slug: "gin"}},
			total:          12,
			expectedStatus: http.StatusOK,
			expectedPages:  3,
		},
		{
			name:           "unparseable paging falls back",
			url:            "/api/articles?page=abc&limit=-3",
			expectedPage:   query.Page{Page: 1, Limit: 10},
			articles:       []models.Article{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "oversized limit is capped",
			url:            "/api/articles?limit=1000",
			expectedPage:   query.Page{Page: 1, Limit: query.MaxLimit},
			articles:       []models.Article{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "repository error",
			url:            "/api/articles",
			expectedPage:   query.Page{Page: 1, Limit: 10},
			repoErr:        errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRepo, _, _ := setupArticleRouter(t)
			mockRepo.On("List", mock.Anything, tt.expectedFilter, tt.expectedPage).
				Return(tt.articles, tt.total, tt.repoErr)

			w := performRequest(router, http.MethodGet, tt.url, nil, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decode(t, w)
			if tt.repoErr != nil {
				assert.Equal(t, "error", response["status"])
				assert.Equal(t, "Failed to fetch articles", response["error"])
				assert.Equal(t, "connection refused", response["details"])
				assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			} else {
				assert.Equal(t, "success", response["status"])
				assert.Equal(t, "public, s-maxage=600", w.Header().Get("Cache-Control"))
				pagination := response["pagination"].(map[string]interface{})
				assert.Equal(t, float64(tt.expectedPage.Page), pagination["page"])
				assert.Equal(t, float64(tt.expectedPage.Limit), pagination["limit"])
				assert.Equal(t, float64(tt.total), pagination["total"])
				assert.Equal(t, tt.expectedPages, pagination["totalPages"])
				assert.Len(t, response["data"], len(tt.articles))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetArticle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mockRepo, _, _ := setupArticleRouter(t)
		mockRepo.On("FindBySlug", mock.Anything, "hello-world").
			Return(&models.Article{ID: 1, Slug: "hello-world", Tags: []string{}}, nil)

		w := performRequest(router, http.MethodGet, "/api/articles/hello-world", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "hello-world", data["slug"])
	})

	t.Run("missing", func(t *testing.T) {
		router, mockRepo, _, _ := setupArticleRouter(t)
		mockRepo.On("FindBySlug", mock.Anything, "nope").Return(nil, repository.ErrNotFound)

		w := performRequest(router, http.MethodGet, "/api/articles/nope", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Article not found", decode(t, w)["error"])
	})
}

func TestCreateArticle(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockArticleRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "published article gets published_at and empty tags",
			requestBody: map[string]interface{}{
				"title_zh": "你好",
				"slug":     "hello",
				"status":   "published",
			},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "hello", uint(0)).Return(false, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
					return a.PublishedAt != nil && a.Tags != nil && len(a.Tags) == 0
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Article created successfully",
		},
		{
			name: "draft by default without published_at",
			requestBody: map[string]interface{}{
				"title_zh": "草稿",
				"slug":     "draft-one",
				"tags":     []string{"go"},
			},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "draft-one", uint(0)).Return(false, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
					return a.Status == models.StatusDraft && a.PublishedAt == nil && len(a.Tags) == 1
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Article created successfully",
		},
		{
			name:           "missing title and slug",
			requestBody:    map[string]interface{}{"title_en": "Only English"},
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "title_zh and slug are required",
		},
		{
			name:           "blank slug",
			requestBody:    map[string]interface{}{"title_zh": "标题", "slug": "   "},
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "unknown status",
			requestBody:    map[string]interface{}{"title_zh": "标题", "slug": "s", "status": "live"},
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "status must be one of draft, published, archived",
		},
		{
			name:           "invalid JSON",
			requestBody:    []byte("invalid json"),
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:        "slug taken",
			requestBody: map[string]interface{}{"title_zh": "标题", "slug": "taken"},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "taken", uint(0)).Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Slug already exists",
		},
		{
			name:        "slug taken between check and insert",
			requestBody: map[string]interface{}{"title_zh": "标题", "slug": "race"},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "race", uint(0)).Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*models.Article")).Return(repository.ErrDuplicateSlug)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Slug already exists",
		},
		{
			name:        "repository error",
			requestBody: map[string]interface{}{"title_zh": "标题", "slug": "boom"},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "boom", uint(0)).Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*models.Article")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create article",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRepo, _, token := setupArticleRouter(t)
			tt.setupMock(mockRepo)

			w := performRequest(router, http.MethodPost, "/api/articles", tt.requestBody,
				map[string]string{"Authorization": token})

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decode(t, w)
			if w.Code < 300 {
				assert.Equal(t, tt.expectedMsg, response["message"])
			} else {
				assert.Equal(t, tt.expectedMsg, response["error"])
			}
			if w.Code == http.StatusInternalServerError {
				assert.Equal(t, "database error", response["details"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestArticleMutationsRequireAdmin(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/articles"},
		{http.MethodPut, "/api/articles/1"},
		{http.MethodDelete, "/api/articles/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			router, mockRepo, _, _ := setupArticleRouter(t)

			w := performRequest(router, tt.method, tt.path,
				map[string]interface{}{"title_zh": "标题", "slug": "s"}, nil)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Unauthorized", decode(t, w)["error"])
			assert.Empty(t, mockRepo.Calls)
		})
	}
}

func TestUpdateArticle(t *testing.T) {
	firstPublished := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("keeps the original published_at", func(t *testing.T) {
		router, mockRepo, _, token := setupArticleRouter(t)
		existing := &models.Article{ID: 4, TitleZh: "旧", Slug: "same", Status: models.StatusPublished, PublishedAt: &firstPublished}
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.TitleZh == "新" && a.PublishedAt.Equal(firstPublished)
		})).Return(nil)

		w := performRequest(router, http.MethodPut, "/api/articles/4",
			map[string]interface{}{"title_zh": "新", "slug": "same", "status": "published"},
			map[string]string{"Authorization": token})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Article updated successfully", decode(t, w)["message"])
		mockRepo.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("first publish stamps published_at", func(t *testing.T) {
		router, mockRepo, _, token := setupArticleRouter(t)
		existing := &models.Article{ID: 5, TitleZh: "稿", Slug: "draft", Status: models.StatusDraft}
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
			return a.PublishedAt != nil
		})).Return(nil)

		w := performRequest(router, http.MethodPut, "/api/articles/5",
			map[string]interface{}{"title_zh": "稿", "slug": "draft", "status": "published"},
			map[string]string{"Authorization": token})

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("renaming onto another slug", func(t *testing.T) {
		router, mockRepo, _, token := setupArticleRouter(t)
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(&models.Article{ID: 4, Slug: "mine"}, nil)
		mockRepo.On("SlugExists", mock.Anything, "theirs", uint(4)).Return(true, nil)

		w := performRequest(router, http.MethodPut, "/api/articles/4",
			map[string]interface{}{"title_zh": "标题", "slug": "theirs"},
			map[string]string{"Authorization": token})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Slug already exists", decode(t, w)["error"])
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		router, mockRepo, _, token := setupArticleRouter(t)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

		w := performRequest(router, http.MethodPut, "/api/articles/99",
			map[string]interface{}{"title_zh": "标题", "slug": "s"},
			map[string]string{"Authorization": token})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		router, _, _, token := setupArticleRouter(t)

		w := performRequest(router, http.MethodPut, "/api/articles/abc",
			map[string]interface{}{"title_zh": "标题", "slug": "s"},
			map[string]string{"Authorization": token})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid article ID", decode(t, w)["error"])
	})
}

func TestDeleteArticle(t *testing.T) {
	tests := []struct {
		name           string
		repoErr        error
		expectedStatus int
	}{
		{"deleted", nil, http.StatusOK},
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"database error", errors.New("database error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRepo, _, token := setupArticleRouter(t)
			mockRepo.On("Delete", mock.Anything, uint(7)).Return(tt.repoErr)

			w := performRequest(router, http.MethodDelete, "/api/articles/7", nil,
				map[string]string{"Authorization": token})

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRecordView(t *testing.T) {
	t.Run("first view is counted", func(t *testing.T) {
		router, mockRepo, mockViews, _ := setupArticleRouter(t)
		mockViews.On("FirstView", mock.Anything, "article:hello", mock.AnythingOfType("string")).Return(true, nil)
		mockRepo.On("IncrementViews", mock.Anything, "hello").Return(int64(42), nil)

		w := performRequest(router, http.MethodPost, "/api/articles/hello/view", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, true, data["counted"])
		assert.Equal(t, float64(42), data["view_count"])
	})

	t.Run("repeat view is not counted", func(t *testing.T) {
		router, mockRepo, mockViews, _ := setupArticleRouter(t)
		mockViews.On("FirstView", mock.Anything, "article:hello", mock.AnythingOfType("string")).Return(false, nil)

		w := performRequest(router, http.MethodPost, "/api/articles/hello/view", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, false, data["counted"])
		mockRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})

	t.Run("dedupe outage still counts", func(t *testing.T) {
		router, mockRepo, mockViews, _ := setupArticleRouter(t)
		mockViews.On("FirstView", mock.Anything, "article:hello", mock.AnythingOfType("string")).Return(false, errors.New("redis down"))
		mockRepo.On("IncrementViews", mock.Anything, "hello").Return(int64(1), nil)

		w := performRequest(router, http.MethodPost, "/api/articles/hello/view", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown article", func(t *testing.T) {
		router, mockRepo, mockViews, _ := setupArticleRouter(t)
		mockViews.On("FirstView", mock.Anything, "article:gone", mock.AnythingOfType("string")).Return(true, nil)
		mockRepo.On("IncrementViews", mock.Anything, "gone").Return(int64(0), repository.ErrNotFound)

		w := performRequest(router, http.MethodPost, "/api/articles/gone/view", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
