package models

// Ingredient is a user-scoped label naming something a recipe is made of.
// Same uniqueness rule as Tag: (user_id, name) unique per owner.
type Ingredient struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null;uniqueIndex:idx_ingredients_user_name"`
	UserID uint   `json:"-" gorm:"not null;uniqueIndex:idx_ingredients_user_name"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
