package models

import "time"

// Message is a contact-form submission.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name" example:"Ada"`
	Email     string    `gorm:"not null" json:"email" example:"ada@example.com"`
	Subject   string    `json:"subject"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Read      bool      `gorm:"index;not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
