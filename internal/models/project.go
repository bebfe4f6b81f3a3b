package models

import (
	"time"

	"gorm.io/gorm"
)

// ValidProjectStatus reports whether s is an allowed Project.Status.
// Projects are never archived.
func ValidProjectStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

type Project struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	TitleZh       string    `gorm:"not null" json:"title_zh" example:"作品集"`
	TitleEn       string    `json:"title_en" example:"Portfolio"`
	Slug          string    `gorm:"uniqueIndex;not null" json:"slug" example:"portfolio"`
	DescriptionZh string    `gorm:"type:text" json:"description_zh"`
	DescriptionEn string    `gorm:"type:text" json:"description_en"`
	CoverImage    string    `json:"cover_image"`
	TechStack     []string  `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"tech_stack"`
	DemoURL       string    `json:"demo_url"`
	GithubURL     string    `json:"github_url"`
	Featured      bool      `gorm:"index;not null;default:false" json:"featured"`
	Status        string    `gorm:"index;not null;default:draft;check:chk_projects_status,status IN ('draft','published')" json:"status" example:"published"`
	CreatedAt     time.Time `gorm:"index" json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
}

// BeforeSave keeps the serialized tech stack a JSON array, never null.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	return nil
}
