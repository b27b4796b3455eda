// models/foundation_info.go
package models

import "time"

// FoundationInfoID is the fixed primary key of the singleton profile row.
// The API exposes read/upsert only, so a second row can never appear.
const FoundationInfoID = 1

// FoundationInfo represents the foundation_info table (single row).
type FoundationInfo struct {
	ID          int    `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"column:name;size:255" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Mission     string `gorm:"column:mission;type:text" json:"mission"`

	Phone   string `gorm:"column:phone;size:20" json:"phone"`
	Email   string `gorm:"column:email" json:"email"`
	Address string `gorm:"column:address;type:text" json:"address"`

	// Requisites shown on the public donation page
	INN         string `gorm:"column:inn;size:12" json:"inn"`
	BankAccount string `gorm:"column:bank_account;size:20" json:"bank_account"`
	BankName    string `gorm:"column:bank_name;size:255" json:"bank_name"`
	BIK         string `gorm:"column:bik;size:9" json:"bik"`
	CorrAccount string `gorm:"column:corr_account;size:20" json:"corr_account"`

	LogoPath   string `gorm:"column:logo_path" json:"logo_path"`
	QRCodePath string `gorm:"column:qr_code_path" json:"qr_code_path"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (FoundationInfo) TableName() string {
	return "foundation_info"
}

// FoundationInfoUpdateRequest is bound from the PUT /foundation form.
// Files (logo, qr_code) arrive as separate multipart parts.
type FoundationInfoUpdateRequest struct {
	Name        *string `json:"name" form:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" form:"description"`
	Mission     *string `json:"mission" form:"mission"`
	Phone       *string `json:"phone" form:"phone" binding:"omitempty,max=20"`
	Email       *string `json:"email" form:"email" binding:"omitempty,email"`
	Address     *string `json:"address" form:"address"`
	INN         *string `json:"inn" form:"inn" binding:"omitempty,max=12"`
	BankAccount *string `json:"bank_account" form:"bank_account" binding:"omitempty,max=20"`
	BankName    *string `json:"bank_name" form:"bank_name" binding:"omitempty,max=255"`
	BIK         *string `json:"bik" form:"bik" binding:"omitempty,max=9"`
	CorrAccount *string `json:"corr_account" form:"corr_account" binding:"omitempty,max=20"`
}
