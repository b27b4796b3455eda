// models/fundraising_goal.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal statuses. Transitions happen only through explicit admin edits;
// reaching the target amount does not complete a goal by itself.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusSuspended = "suspended"
)

// FundraisingGoal represents the fundraising_goals table
type FundraisingGoal struct {
	GoalID        int             `gorm:"primaryKey;column:goal_id" json:"goal_id"`
	Title         string          `gorm:"column:title;size:255" json:"title"`
	Description   string          `gorm:"column:description;type:text" json:"description"`
	TargetAmount  decimal.Decimal `gorm:"column:target_amount;type:decimal(12,2)" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"column:current_amount;type:decimal(12,2);default:0" json:"current_amount"`
	ImagePath     *string         `gorm:"column:image_path" json:"image_path"`
	Status        string          `gorm:"column:status;type:enum('active','completed','suspended');default:'active'" json:"status"`
	Deadline      *time.Time      `gorm:"column:deadline;type:date" json:"deadline"`
	Priority      uint            `gorm:"column:priority;default:1" json:"priority"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (FundraisingGoal) TableName() string {
	return "fundraising_goals"
}

func (g *FundraisingGoal) IsActive() bool {
	return g.Status == GoalStatusActive
}

// ProgressPercentage returns current_amount / target_amount * 100, rounded
// to two decimal places. Zero targets yield zero rather than a division
// error.
func (g *FundraisingGoal) ProgressPercentage() decimal.Decimal {
	if g.TargetAmount.IsPositive() {
		return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return decimal.Zero
}

// DaysLeft returns the whole days remaining until the deadline, clamped at
// zero once the deadline has passed. Goals without a deadline return nil.
func (g *FundraisingGoal) DaysLeft() *int {
	if g.Deadline == nil {
		return nil
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due := time.Date(g.Deadline.Year(), g.Deadline.Month(), g.Deadline.Day(), 0, 0, 0, 0, now.Location())
	days := int(due.Sub(today).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

// ===== Request/Response DTOs =====

type FundraisingGoalCreateRequest struct {
	Title         string           `json:"title" form:"title" binding:"required,max=255"`
	Description   string           `json:"description" form:"description" binding:"required"`
	TargetAmount  decimal.Decimal  `json:"target_amount" form:"target_amount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"current_amount" form:"current_amount"`
	Status        string           `json:"status" form:"status" binding:"omitempty,oneof=active completed suspended"`
	Deadline      *time.Time       `json:"deadline" form:"deadline"`
	Priority      *uint            `json:"priority" form:"priority"`
}

// ClearDeadline removes the deadline; an omitted Deadline field alone
// leaves it untouched.
type FundraisingGoalUpdateRequest struct {
	Title         *string          `json:"title" form:"title" binding:"omitempty,max=255"`
	Description   *string          `json:"description" form:"description"`
	TargetAmount  *decimal.Decimal `json:"target_amount" form:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount" form:"current_amount"`
	Status        *string          `json:"status" form:"status" binding:"omitempty,oneof=active completed suspended"`
	Deadline      *time.Time       `json:"deadline" form:"deadline"`
	ClearDeadline *bool            `json:"clear_deadline" form:"clear_deadline"`
	Priority      *uint            `json:"priority" form:"priority"`
}

// FundraisingGoalResponse carries the two derived read-only values next to
// the persisted fields.
type FundraisingGoalResponse struct {
	GoalID             int             `json:"goal_id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	TargetAmount       decimal.Decimal `json:"target_amount"`
	CurrentAmount      decimal.Decimal `json:"current_amount"`
	ImagePath          *string         `json:"image_path"`
	Status             string          `json:"status"`
	Deadline           *time.Time      `json:"deadline"`
	Priority           uint            `json:"priority"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
	DaysLeft           *int            `json:"days_left"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToResponse computes the derived values on every read; they are never
// persisted.
func (g *FundraisingGoal) ToResponse() FundraisingGoalResponse {
	return FundraisingGoalResponse{
		GoalID:             g.GoalID,
		Title:              g.Title,
		Description:        g.Description,
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		ImagePath:          g.ImagePath,
		Status:             g.Status,
		Deadline:           g.Deadline,
		Priority:           g.Priority,
		ProgressPercentage: g.ProgressPercentage(),
		DaysLeft:           g.DaysLeft(),
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}
