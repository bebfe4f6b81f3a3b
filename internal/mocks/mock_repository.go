package mocks

import (
	"context"
	"encoding/json"

	"portfolio/internal/models"
	"portfolio/internal/query"
	"portfolio/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared MockArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func (m *MockArticleRepository) List(ctx context.Context, filter repository.ArticleFilter, page query.Page) ([]models.Article, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, slug string) (int64, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

var _ repository.ProjectRepository = (*MockProjectRepository)(nil)

func (m *MockProjectRepository) List(ctx context.Context, filter repository.ProjectFilter, page query.Page) ([]models.Project, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Shared MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

var _ repository.MessageRepository = (*MockMessageRepository)(nil)

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) List(ctx context.Context, filter repository.MessageFilter, page query.Page) ([]models.Message, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Message), args.Get(1).(int64), args.Error(2)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id uint, read bool) error {
	args := m.Called(ctx, id, read)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Shared MockSiteSettingRepository
type MockSiteSettingRepository struct {
	mock.Mock
}

var _ repository.SiteSettingRepository = (*MockSiteSettingRepository)(nil)

func (m *MockSiteSettingRepository) All(ctx context.Context) (map[string]json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]json.RawMessage), args.Error(1)
}

func (m *MockSiteSettingRepository) Upsert(ctx context.Context, values map[string]json.RawMessage) error {
	args := m.Called(ctx, values)
	return args.Error(0)
}

// MockCollectionRepository works for any collection model.
type MockCollectionRepository[T any] struct {
	mock.Mock
}

func (m *MockCollectionRepository[T]) List(ctx context.Context, filters map[string]string) ([]T, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCollectionRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCollectionRepository[T]) Create(ctx context.Context, item *T) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCollectionRepository[T]) Update(ctx context.Context, item *T) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCollectionRepository[T]) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockViewDeduper
type MockViewDeduper struct {
	mock.Mock
}

func (m *MockViewDeduper) FirstView(ctx context.Context, resource, visitor string) (bool, error) {
	args := m.Called(ctx, resource, visitor)
	return args.Bool(0), args.Error(1)
}
