package models

import "time"

// AdminUser represents the admin_users table. Every account behind the
// protected surface is an administrator; there are no other roles.
type AdminUser struct {
	UserID   int    `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name     string `gorm:"column:name;size:255" json:"name"`
	Email    string `gorm:"column:email;unique" json:"email"`
	Password string `gorm:"column:password" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
