// models/expense_report.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report types for money spent against a goal.
const (
	ReportTypePurchase     = "purchase"
	ReportTypeLogistics    = "logistics"
	ReportTypeHumanitarian = "humanitarian"
	ReportTypeOther        = "other"
)

// ExpenseReport represents the expense_reports table. The goal reference is
// mandatory; deleting a goal deletes its reports.
type ExpenseReport struct {
	ReportID    int             `gorm:"primaryKey;column:report_id" json:"report_id"`
	Title       string          `gorm:"column:title;size:255" json:"title"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	ReportType  string          `gorm:"column:report_type;type:enum('purchase','logistics','humanitarian','other')" json:"report_type"`
	AmountSpent decimal.Decimal `gorm:"column:amount_spent;type:decimal(10,2)" json:"amount_spent"`
	GoalID      int             `gorm:"column:goal_id;not null" json:"goal_id"`

	DocumentName *string `gorm:"column:document_name" json:"document_name"`
	DocumentPath *string `gorm:"column:document_path" json:"document_path"`

	ReportDate  time.Time `gorm:"column:report_date;type:date" json:"report_date"`
	IsPublished bool      `gorm:"column:is_published;default:true" json:"is_published"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Goal   *FundraisingGoal `gorm:"foreignKey:GoalID" json:"goal,omitempty"`
	Photos []ExpensePhoto   `gorm:"many2many:expense_report_photos;joinForeignKey:ReportID;joinReferences:PhotoID" json:"photos,omitempty"`
}

func (ExpenseReport) TableName() string {
	return "expense_reports"
}

// ===== Request DTOs =====

type ExpenseReportCreateRequest struct {
	Title       string          `json:"title" form:"title" binding:"required,max=255"`
	Description string          `json:"description" form:"description" binding:"required"`
	ReportType  string          `json:"report_type" form:"report_type" binding:"required,oneof=purchase logistics humanitarian other"`
	AmountSpent decimal.Decimal `json:"amount_spent" form:"amount_spent" binding:"required"`
	GoalID      int             `json:"goal_id" form:"goal_id" binding:"required"`
	ReportDate  *time.Time      `json:"report_date" form:"report_date"`
	IsPublished *bool           `json:"is_published" form:"is_published"`
	PhotoIDs    []int           `json:"photo_ids" form:"photo_ids"`
}

type ExpenseReportUpdateRequest struct {
	Title       *string          `json:"title" form:"title" binding:"omitempty,max=255"`
	Description *string          `json:"description" form:"description"`
	ReportType  *string          `json:"report_type" form:"report_type" binding:"omitempty,oneof=purchase logistics humanitarian other"`
	AmountSpent *decimal.Decimal `json:"amount_spent" form:"amount_spent"`
	GoalID      *int             `json:"goal_id" form:"goal_id"`
	ReportDate  *time.Time       `json:"report_date" form:"report_date"`
	IsPublished *bool            `json:"is_published" form:"is_published"`
}

// ExpenseReportPhotosRequest replaces the photo set attached to a report.
type ExpenseReportPhotosRequest struct {
	PhotoIDs []int `json:"photo_ids" binding:"required"`
}
