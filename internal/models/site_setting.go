package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSetting is one key of the site configuration (hero text, social links,
// SEO defaults...). Value holds arbitrary JSON.
type SiteSetting struct {
	Key       string         `gorm:"primaryKey;size:100" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value" swaggertype:"object"`
	UpdatedAt time.Time      `json:"updated_at"`
}
