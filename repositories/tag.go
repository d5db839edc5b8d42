package repositories

import (
	"errors"

	"github.com/recipebox-api/database"
	"github.com/recipebox-api/models"
	"gorm.io/gorm"
)

// TagRepository handles database operations for tags
type TagRepository struct{}

// NewTagRepository creates a new tag repository instance
func NewTagRepository() *TagRepository {
	return &TagRepository{}
}

// FindAllByUser retrieves the user's tags ordered by descending name.
// With assignedOnly set, only tags attached to at least one recipe are
// returned, each once no matter how many recipes carry it.
func (r *TagRepository) FindAllByUser(userID uint, assignedOnly bool) ([]models.Tag, error) {
	var tags []models.Tag
	query := database.DB.Where("tags.user_id = ?", userID).Order("tags.name DESC")
	if assignedOnly {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Distinct("tags.*")
	}
	result := query.Find(&tags)
	return tags, result.Error
}

// FindOwnedByID retrieves a tag by ID, scoped to its owner
func (r *TagRepository) FindOwnedByID(id uint, userID uint) (models.Tag, error) {
	var tag models.Tag
	result := database.DB.Where("user_id = ?", userID).First(&tag, "id = ?", id)
	return tag, result.Error
}

// GetOrCreate returns the user's tag with the given name, creating it if
// absent. The unique index on (user_id, name) backs the check: if two
// callers race, the loser gets gorm.ErrDuplicatedKey and re-fetches the
// winner's row. Takes a db handle so it can run inside a caller's
// transaction.
func (r *TagRepository) GetOrCreate(db *gorm.DB, userID uint, name string) (models.Tag, error) {
	tag := models.Tag{UserID: userID, Name: name}
	err := db.Where("user_id = ? AND name = ?", userID, name).FirstOrCreate(&tag).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = db.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	}
	return tag, err
}

// Update modifies an existing tag
func (r *TagRepository) Update(tag models.Tag) error {
	result := database.DB.Save(&tag)
	return result.Error
}

// Delete removes the user's tag and its recipe associations
func (r *TagRepository) Delete(id uint, userID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ?", userID).Delete(&models.Tag{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Exec("DELETE FROM recipe_tags WHERE tag_id = ?", id).Error
	})
}
