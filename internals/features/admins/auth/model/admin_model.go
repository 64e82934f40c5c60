package model

import "time"

// AdminModel: akun admin tunggal panel CMS. Dibuat lewat seeder, tidak lewat API.
type AdminModel struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"column:username;size:100;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"` // bcrypt hash
	Email     string    `gorm:"column:email;size:255" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminModel) TableName() string {
	return "admin"
}
