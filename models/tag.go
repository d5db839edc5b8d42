package models

// Tag is a user-scoped label for organizing recipes.
// Different users may own tags with the same name; within one
// user the (user_id, name) pair is unique.
type Tag struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null;uniqueIndex:idx_tags_user_name"`
	UserID uint   `json:"-" gorm:"not null;uniqueIndex:idx_tags_user_name"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
