package repository

import (
	"context"
	"fmt"

	"portfolio/internal/query"

	"gorm.io/gorm"
)

// listPage runs the row query and the COUNT query over one shared predicate
// so that total always describes exactly the rows being paged through.
func listPage[T any](ctx context.Context, db *gorm.DB, pred query.Predicate, order string, page query.Page) ([]T, int64, error) {
	var model T
	filtered := pred.Apply(db.WithContext(ctx).Model(&model)).Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	rows := make([]T, 0, page.Limit)
	if total == 0 {
		return rows, 0, nil
	}

	err := filtered.
		Order(order).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list: %w", err)
	}
	return rows, total, nil
}
