package repository

import (
	"context"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/query"

	"gorm.io/gorm"
)

const articleOrder = "created_at DESC"

// ArticleFilter holds the optional list filters. Empty fields are ignored.
type ArticleFilter struct {
	Category string
	Status   string
	Search   string
}

// Predicate folds the supplied filters into one AND-ed predicate; search is
// a single OR clause over both title columns.
func (f ArticleFilter) Predicate() query.Predicate {
	return query.Predicate{}.
		Eq("category", f.Category).
		Eq("status", f.Status).
		Search(f.Search, "title_zh", "title_en")
}

type ArticleRepository interface {
	List(ctx context.Context, filter ArticleFilter, page query.Page) ([]models.Article, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Article, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, slug string) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) List(ctx context.Context, filter ArticleFilter, page query.Page) ([]models.Article, int64, error) {
	return listPage[models.Article](ctx, r.db, filter.Predicate(), articleOrder, page)
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, translateError(err)
	}
	return &article, nil
}

func (r *articleRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return slugExists(ctx, r.db, &models.Article{}, slug, excludeID)
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update writes every editable column. view_count and created_at belong to
// other code paths and are left alone.
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	res := r.db.WithContext(ctx).
		Model(article).
		Select("title_zh", "title_en", "slug", "content_zh", "content_en",
			"excerpt_zh", "excerpt_en", "cover_image", "category", "tags",
			"status", "author", "published_at", "updated_at").
		Updates(article)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Article{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews bumps view_count atomically in the database and returns the
// new value.
func (r *articleRepository) IncrementViews(ctx context.Context, slug string) (int64, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&models.Article{}).
		Where("slug = ?", slug).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return 0, fmt.Errorf("increment views: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	var count int64
	err := db.Model(&models.Article{}).
		Where("slug = ?", slug).
		Select("view_count").
		Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("read views: %w", err)
	}
	return count, nil
}

func slugExists(ctx context.Context, db *gorm.DB, model interface{}, slug string, excludeID uint) (bool, error) {
	q := db.WithContext(ctx).Model(model).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return count > 0, nil
}
