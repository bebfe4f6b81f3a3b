package repository

import (
	"context"

	"portfolio/internal/query"

	"gorm.io/gorm"
)

// CollectionRepository serves the small ordered lists (navigation, skills,
// experience, education, timeline) that have no slug and no pagination.
type CollectionRepository[T any] interface {
	List(ctx context.Context, filters map[string]string) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uint) error
}

type collectionRepository[T any] struct {
	db      *gorm.DB
	order   string
	filters []string
}

// NewCollectionRepository returns a repository listing rows in the given
// order. Only the named columns may be used as equality filters.
func NewCollectionRepository[T any](db *gorm.DB, order string, filterColumns ...string) CollectionRepository[T] {
	return &collectionRepository[T]{db: db, order: order, filters: filterColumns}
}

func (r *collectionRepository[T]) List(ctx context.Context, filters map[string]string) ([]T, error) {
	pred := query.Predicate{}
	for _, col := range r.filters {
		pred = pred.Eq(col, filters[col])
	}

	var model T
	items := []T{}
	err := pred.Apply(r.db.WithContext(ctx).Model(&model)).
		Order(r.order).
		Find(&items).Error
	return items, translateError(err)
}

func (r *collectionRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *collectionRepository[T]) Create(ctx context.Context, item *T) error {
	return translateError(r.db.WithContext(ctx).Create(item).Error)
}

// Update replaces every column of an existing row.
func (r *collectionRepository[T]) Update(ctx context.Context, item *T) error {
	res := r.db.WithContext(ctx).Model(item).Select("*").Omit("created_at").Updates(item)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *collectionRepository[T]) Delete(ctx context.Context, id uint) error {
	var model T
	res := r.db.WithContext(ctx).Delete(&model, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
