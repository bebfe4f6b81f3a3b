package repository

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/query"

	"gorm.io/gorm"
)

// Featured projects float to the top, newest first within each group.
const projectOrder = "featured DESC, created_at DESC"

type ProjectFilter struct {
	Status   string
	Featured *bool
	Search   string
}

func (f ProjectFilter) Predicate() query.Predicate {
	return query.Predicate{}.
		Eq("status", f.Status).
		Bool("featured", f.Featured).
		Search(f.Search, "title_zh", "title_en")
}

type ProjectRepository interface {
	List(ctx context.Context, filter ProjectFilter, page query.Page) ([]models.Project, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context, filter ProjectFilter, page query.Page) ([]models.Project, int64, error) {
	return listPage[models.Project](ctx, r.db, filter.Predicate(), projectOrder, page)
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &project, nil
}

func (r *projectRepository) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, translateError(err)
	}
	return &project, nil
}

func (r *projectRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return slugExists(ctx, r.db, &models.Project{}, slug, excludeID)
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	res := r.db.WithContext(ctx).
		Model(project).
		Select("title_zh", "title_en", "slug", "description_zh", "description_en",
			"cover_image", "tech_stack", "demo_url", "github_url", "featured",
			"status", "updated_at").
		Updates(project)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
