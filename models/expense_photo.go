package models

import "time"

// ExpensePhoto represents the expense_photos table. Photos may be attached
// to any number of reports and survive when a report is deleted.
type ExpensePhoto struct {
	PhotoID     int       `gorm:"primaryKey;column:photo_id" json:"photo_id"`
	Title       string    `gorm:"column:title;size:255" json:"title"`
	ImagePath   string    `gorm:"column:image_path" json:"image_path"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ExpensePhoto) TableName() string {
	return "expense_photos"
}

// ===== Request DTOs =====

type ExpensePhotoCreateRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=255"`
	Description string `json:"description" form:"description"`
}

type ExpensePhotoUpdateRequest struct {
	Title       *string `json:"title" form:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
}
