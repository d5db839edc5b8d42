package models

import (
	"time"
)

// Recipe represents a recipe owned by a single user
type Recipe struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	TimeMinutes int       `json:"time_minutes" gorm:"not null"`
	Price       string    `json:"price" gorm:"type:numeric(5,2);not null"`
	Description string    `json:"description" gorm:"default:null"`
	Link        string    `json:"link" gorm:"default:null"`
	Image       string    `json:"image" gorm:"default:null"`
	UserID      uint      `json:"-" gorm:"not null;index"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// Relations
	User        User         `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tags        []Tag        `json:"tags" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []Ingredient `json:"ingredients" gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE"`
}
