package models

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"` // Password hash is never exposed in JSON
	Name        string    `json:"name" gorm:"default:null"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	IsStaff     bool      `json:"-" gorm:"default:false"`
	IsSuperuser bool      `json:"-" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
