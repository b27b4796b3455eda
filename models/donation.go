package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted by the foundation.
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodQRCode       = "qr_code"
	PaymentMethodCard         = "card"
	PaymentMethodCash         = "cash"
)

// Payment statuses. Set only by explicit admin edit; there is no payment
// gateway behind this API.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Donation represents the donations table
type Donation struct {
	DonationID int    `gorm:"primaryKey;column:donation_id" json:"donation_id"`
	DonorName  string `gorm:"column:donor_name;size:255" json:"donor_name"`
	DonorEmail string `gorm:"column:donor_email" json:"donor_email"`
	DonorPhone string `gorm:"column:donor_phone;size:20" json:"donor_phone"`

	Amount  decimal.Decimal `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	GoalID  *int            `gorm:"column:goal_id" json:"goal_id"`
	Message string          `gorm:"column:message;type:text" json:"message"`

	PaymentMethod string `gorm:"column:payment_method;type:enum('bank_transfer','qr_code','card','cash')" json:"payment_method"`
	PaymentStatus string `gorm:"column:payment_status;type:enum('pending','completed','failed','refunded');default:'pending'" json:"payment_status"`

	IsAnonymous bool `gorm:"column:is_anonymous;default:false" json:"is_anonymous"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Goal *FundraisingGoal `gorm:"foreignKey:GoalID" json:"goal,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}

// DisplayName hides the donor behind "Anonymous" when requested or when no
// name was left.
func (d *Donation) DisplayName() string {
	if d.IsAnonymous || d.DonorName == "" {
		return "Anonymous"
	}
	return d.DonorName
}

// ===== Request DTOs =====

type DonationCreateRequest struct {
	DonorName     string          `json:"donor_name" form:"donor_name" binding:"omitempty,max=255"`
	DonorEmail    string          `json:"donor_email" form:"donor_email" binding:"omitempty,email"`
	DonorPhone    string          `json:"donor_phone" form:"donor_phone" binding:"omitempty,max=20"`
	Amount        decimal.Decimal `json:"amount" form:"amount" binding:"required"`
	GoalID        *int            `json:"goal_id" form:"goal_id"`
	Message       string          `json:"message" form:"message"`
	PaymentMethod string          `json:"payment_method" form:"payment_method" binding:"required,oneof=bank_transfer qr_code card cash"`
	PaymentStatus string          `json:"payment_status" form:"payment_status" binding:"omitempty,oneof=pending completed failed refunded"`
	IsAnonymous   *bool           `json:"is_anonymous" form:"is_anonymous"`
}

// ClearGoal detaches the donation from its goal; an omitted GoalID field
// alone leaves the reference untouched.
type DonationUpdateRequest struct {
	DonorName     *string          `json:"donor_name" form:"donor_name" binding:"omitempty,max=255"`
	DonorEmail    *string          `json:"donor_email" form:"donor_email" binding:"omitempty,email"`
	DonorPhone    *string          `json:"donor_phone" form:"donor_phone" binding:"omitempty,max=20"`
	Amount        *decimal.Decimal `json:"amount" form:"amount"`
	GoalID        *int             `json:"goal_id" form:"goal_id"`
	ClearGoal     *bool            `json:"clear_goal" form:"clear_goal"`
	Message       *string          `json:"message" form:"message"`
	PaymentMethod *string          `json:"payment_method" form:"payment_method" binding:"omitempty,oneof=bank_transfer qr_code card cash"`
	PaymentStatus *string          `json:"payment_status" form:"payment_status" binding:"omitempty,oneof=pending completed failed refunded"`
	IsAnonymous   *bool            `json:"is_anonymous" form:"is_anonymous"`
}
