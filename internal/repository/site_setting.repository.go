package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteSettingRepository interface {
	All(ctx context.Context) (map[string]json.RawMessage, error)
	Upsert(ctx context.Context, values map[string]json.RawMessage) error
}

type siteSettingRepository struct {
	db *gorm.DB
}

func NewSiteSettingRepository(db *gorm.DB) SiteSettingRepository {
	return &siteSettingRepository{db}
}

func (r *siteSettingRepository) All(ctx context.Context) (map[string]json.RawMessage, error) {
	var settings []models.SiteSetting
	if err := r.db.WithContext(ctx).Order("key").Find(&settings).Error; err != nil {
		return nil, translateError(err)
	}

	out := make(map[string]json.RawMessage, len(settings))
	for _, s := range settings {
		out[s.Key] = json.RawMessage(s.Value)
	}
	return out, nil
}

// Upsert writes every key in one statement; existing keys are overwritten.
func (r *siteSettingRepository) Upsert(ctx context.Context, values map[string]json.RawMessage) error {
	if len(values) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.SiteSetting, 0, len(values))
	for k, v := range values {
		if !json.Valid(v) {
			return fmt.Errorf("setting %q: invalid JSON value", k)
		}
		rows = append(rows, models.SiteSetting{Key: k, Value: datatypes.JSON(v), UpdatedAt: now})
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rows).Error
	return translateError(err)
}
