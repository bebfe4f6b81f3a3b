package repository

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/query"

	"gorm.io/gorm"
)

type MessageFilter struct {
	Read *bool
}

func (f MessageFilter) Predicate() query.Predicate {
	return query.Predicate{}.Bool("read", f.Read)
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	List(ctx context.Context, filter MessageFilter, page query.Page) ([]models.Message, int64, error)
	MarkRead(ctx context.Context, id uint, read bool) error
	Delete(ctx context.Context, id uint) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return translateError(r.db.WithContext(ctx).Create(message).Error)
}

func (r *messageRepository) List(ctx context.Context, filter MessageFilter, page query.Page) ([]models.Message, int64, error) {
	return listPage[models.Message](ctx, r.db, filter.Predicate(), "created_at DESC", page)
}

func (r *messageRepository) MarkRead(ctx context.Context, id uint, read bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		UpdateColumn("read", read)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Message{}, id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
