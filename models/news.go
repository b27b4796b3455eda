package models

import "time"

// News represents the news table
type News struct {
	NewsID        int       `gorm:"primaryKey;column:news_id" json:"news_id"`
	Title         string    `gorm:"column:title;size:255" json:"title"`
	Content       string    `gorm:"column:content;type:text" json:"content"`
	ImagePath     *string   `gorm:"column:image_path" json:"image_path"`
	PublishedDate time.Time `gorm:"column:published_date" json:"published_date"`
	IsPublished   bool      `gorm:"column:is_published;default:true" json:"is_published"`
	ViewsCount    uint      `gorm:"column:views_count;default:0" json:"views_count"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}

// ===== Request DTOs =====

type NewsCreateRequest struct {
	Title         string     `json:"title" form:"title" binding:"required,max=255"`
	Content       string     `json:"content" form:"content" binding:"required"`
	PublishedDate *time.Time `json:"published_date" form:"published_date"`
	IsPublished   *bool      `json:"is_published" form:"is_published"`
}

type NewsUpdateRequest struct {
	Title         *string    `json:"title" form:"title" binding:"omitempty,max=255"`
	Content       *string    `json:"content" form:"content"`
	PublishedDate *time.Time `json:"published_date" form:"published_date"`
	IsPublished   *bool      `json:"is_published" form:"is_published"`
}
