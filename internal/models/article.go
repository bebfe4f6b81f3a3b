package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var articleStatuses = map[string]bool{
	StatusDraft:     true,
	StatusPublished: true,
	StatusArchived:  true,
}

// ValidArticleStatus reports whether s is an allowed Article.Status.
func ValidArticleStatus(s string) bool {
	return articleStatuses[s]
}

type Article struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	TitleZh     string     `gorm:"not null" json:"title_zh" example:"你好，世界"`
	TitleEn     string     `json:"title_en" example:"Hello, world"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug" example:"hello-world"`
	ContentZh   string     `gorm:"type:text" json:"content_zh"`
	ContentEn   string     `gorm:"type:text" json:"content_en"`
	ExcerptZh   string     `gorm:"type:text" json:"excerpt_zh"`
	ExcerptEn   string     `gorm:"type:text" json:"excerpt_en"`
	CoverImage  string     `json:"cover_image"`
	Category    string     `gorm:"index" json:"category" example:"engineering"`
	Tags        []string   `gorm:"serializer:json;type:jsonb;not null;default:'[]'" json:"tags"`
	Status      string     `gorm:"index;not null;default:draft;check:chk_articles_status,status IN ('draft','published','archived')" json:"status" example:"draft"`
	Author      string     `json:"author"`
	ViewCount   int64      `gorm:"not null;default:0;check:chk_articles_view_count,view_count >= 0" json:"view_count"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt   time.Time  `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	PublishedAt *time.Time `json:"published_at"`
}

// BeforeSave keeps the serialized tags a JSON array, never null.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return nil
}

// MarkPublished stamps PublishedAt on the first transition to published.
// Later edits never move it.
func (a *Article) MarkPublished(now time.Time) {
	if a.Status == StatusPublished && a.PublishedAt == nil {
		t := now
		a.PublishedAt = &t
	}
}
