package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"portfolio/internal/controllers"
	"portfolio/internal/mocks"
	"portfolio/internal/models"
	"portfolio/internal/query"
	"portfolio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmitMessage(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockMessageRepository)
		expectedStatus int
	}{
		{
			name: "valid message",
			requestBody: map[string]interface{}{
				"name":    " Ada ",
				"email":   "ada@example.com",
				"subject": "Hello",
				"content": "Nice site",
			},
			setupMock: func(m *mocks.MockMessageRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(msg *models.Message) bool {
					return msg.Name == "Ada" && !msg.Read
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*models.Message).ID = 11
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			requestBody:    map[string]interface{}{"name": "Ada", "email": "nope", "content": "hi"},
			setupMock:      func(m *mocks.MockMessageRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "content too long",
			requestBody:    map[string]interface{}{"name": "Ada", "email": "ada@example.com", "content": strings.Repeat("x", 5001)},
			setupMock:      func(m *mocks.MockMessageRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace name",
			requestBody:    map[string]interface{}{"name": "   ", "email": "ada@example.com", "content": "hi"},
			setupMock:      func(m *mocks.MockMessageRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "repository error",
			requestBody: map[string]interface{}{"name": "Ada", "email": "ada@example.com", "content": "hi"},
			setupMock: func(m *mocks.MockMessageRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*models.Message")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockMessageRepository)
			tt.setupMock(mockRepo)
			controller := controllers.NewMessageController(mockRepo)

			router := setupTestRouter()
			router.POST("/api/messages", controller.SubmitMessage)

			w := performRequest(router, http.MethodPost, "/api/messages", tt.requestBody, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if w.Code == http.StatusCreated {
				data := decode(t, w)["data"].(map[string]interface{})
				assert.Equal(t, float64(11), data["id"])
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAdminMessages(t *testing.T) {
	mockRepo := new(mocks.MockMessageRepository)
	controller := controllers.NewMessageController(mockRepo)
	auth := newTestAuthenticator(t)
	token := map[string]string{"Authorization": adminToken(t, auth)}

	router := setupTestRouter()
	admin := router.Group("/api/messages", auth.RequireAdmin())
	admin.GET("", controller.ListMessages)
	admin.PATCH("/:id/read", controller.MarkMessageRead)
	admin.DELETE("/:id", controller.DeleteMessage)

	t.Run("list unread", func(t *testing.T) {
		unread := false
		mockRepo.On("List", mock.Anything, repository.MessageFilter{Read: &unread}, query.Page{Page: 1, Limit: 20}).
			Return([]models.Message{{ID: 1}}, int64(1), nil).Once()

		w := performRequest(router, http.MethodGet, "/api/messages?read=false", nil, token)

		assert.Equal(t, http.StatusOK, w.Code)
		pagination := decode(t, w)["pagination"].(map[string]interface{})
		assert.Equal(t, float64(1), pagination["totalPages"])
	})

	t.Run("mark read without a body", func(t *testing.T) {
		mockRepo.On("MarkRead", mock.Anything, uint(1), true).Return(nil).Once()

		w := performRequest(router, http.MethodPatch, "/api/messages/1/read", nil, token)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mark unread", func(t *testing.T) {
		mockRepo.On("MarkRead", mock.Anything, uint(2), false).Return(nil).Once()

		w := performRequest(router, http.MethodPatch, "/api/messages/2/read", map[string]interface{}{"read": false}, token)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, false, data["read"])
	})

	t.Run("delete missing", func(t *testing.T) {
		mockRepo.On("Delete", mock.Anything, uint(9)).Return(repository.ErrNotFound).Once()

		w := performRequest(router, http.MethodDelete, "/api/messages/9", nil, token)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Message not found", decode(t, w)["error"])
	})

	t.Run("listing needs a session", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/messages", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	mockRepo.AssertExpectations(t)
}

func TestSiteConfig(t *testing.T) {
	stored := map[string]json.RawMessage{
		"site_title": json.RawMessage(`"My Portfolio"`),
		"socials":    json.RawMessage(`{"github":"example"}`),
	}

	t.Run("get", func(t *testing.T) {
		mockRepo := new(mocks.MockSiteSettingRepository)
		mockRepo.On("All", mock.Anything).Return(stored, nil)
		router := setupTestRouter()
		router.GET("/api/site-config", controllers.NewSiteConfigController(mockRepo).GetSiteConfig)

		w := performRequest(router, http.MethodGet, "/api/site-config", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "My Portfolio", data["site_title"])
		assert.Equal(t, map[string]interface{}{"github": "example"}, data["socials"])
	})

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockSiteSettingRepository)
		expectedStatus int
	}{
		{
			name: "upsert",
			body: map[string]interface{}{"site_title": "My Portfolio"},
			setupMock: func(m *mocks.MockSiteSettingRepository) {
				m.On("Upsert", mock.Anything, mock.MatchedBy(func(v map[string]json.RawMessage) bool {
					return string(v["site_title"]) == `"My Portfolio"`
				})).Return(nil)
				m.On("All", mock.Anything).Return(stored, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty object",
			body:           map[string]interface{}{},
			setupMock:      func(m *mocks.MockSiteSettingRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not an object",
			body:           []byte(`["a"]`),
			setupMock:      func(m *mocks.MockSiteSettingRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: map[string]interface{}{"site_title": "x"},
			setupMock: func(m *mocks.MockSiteSettingRepository) {
				m.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockSiteSettingRepository)
			tt.setupMock(mockRepo)
			router := setupTestRouter()
			router.PUT("/api/site-config", controllers.NewSiteConfigController(mockRepo).UpdateSiteConfig)

			w := performRequest(router, http.MethodPut, "/api/site-config", tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}
