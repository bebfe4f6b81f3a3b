package models

import "time"

// The types below are small admin-maintained lists shown on the public
// pages. They share one repository and controller shape: ordered by
// sort_order, replaced wholesale on update.

type NavItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LabelZh   string    `gorm:"not null" json:"label_zh" binding:"required"`
	LabelEn   string    `json:"label_en"`
	Href      string    `gorm:"not null" json:"href" binding:"required"`
	SortOrder int       `gorm:"index;not null;default:0" json:"sort_order"`
	Visible   bool      `gorm:"not null" json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *NavItem) SetID(id uint) { n.ID = id }

type Skill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name" binding:"required"`
	Category  string    `gorm:"index" json:"category"`
	Level     int       `gorm:"not null;default:0;check:chk_skills_level,level BETWEEN 0 AND 100" json:"level" binding:"min=0,max=100"`
	SortOrder int       `gorm:"index;not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Skill) SetID(id uint) { s.ID = id }

type Experience struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Company       string     `gorm:"not null" json:"company" binding:"required"`
	RoleZh        string     `json:"role_zh"`
	RoleEn        string     `json:"role_en"`
	DescriptionZh string     `gorm:"type:text" json:"description_zh"`
	DescriptionEn string     `gorm:"type:text" json:"description_en"`
	StartDate     time.Time  `json:"start_date" binding:"required"`
	EndDate       *time.Time `json:"end_date"`
	SortOrder     int        `gorm:"index;not null;default:0" json:"sort_order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (e *Experience) SetID(id uint) { e.ID = id }

type Education struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	School    string     `gorm:"not null" json:"school" binding:"required"`
	DegreeZh  string     `json:"degree_zh"`
	DegreeEn  string     `json:"degree_en"`
	Field     string     `json:"field"`
	StartDate time.Time  `json:"start_date" binding:"required"`
	EndDate   *time.Time `json:"end_date"`
	SortOrder int        `gorm:"index;not null;default:0" json:"sort_order"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName overrides gorm's pluralized "educations".
func (Education) TableName() string { return "education" }

func (e *Education) SetID(id uint) { e.ID = id }

type TimelineEvent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TitleZh       string    `gorm:"not null" json:"title_zh" binding:"required"`
	TitleEn       string    `json:"title_en"`
	DescriptionZh string    `gorm:"type:text" json:"description_zh"`
	DescriptionEn string    `gorm:"type:text" json:"description_en"`
	EventDate     time.Time `gorm:"index" json:"event_date" binding:"required"`
	Category      string    `gorm:"index" json:"category"`
	SortOrder     int       `gorm:"index;not null;default:0" json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (t *TimelineEvent) SetID(id uint) { t.ID = id }
