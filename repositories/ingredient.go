package repositories

import (
	"errors"

	"github.com/recipebox-api/database"
	"github.com/recipebox-api/models"
	"gorm.io/gorm"
)

// IngredientRepository handles database operations for ingredients
type IngredientRepository struct{}

// NewIngredientRepository creates a new ingredient repository instance
func NewIngredientRepository() *IngredientRepository {
	return &IngredientRepository{}
}

// FindAllByUser retrieves the user's ingredients ordered by descending
// name, optionally restricted to those assigned to at least one recipe
func (r *IngredientRepository) FindAllByUser(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := database.DB.Where("ingredients.user_id = ?", userID).Order("ingredients.name DESC")
	if assignedOnly {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Distinct("ingredients.*")
	}
	result := query.Find(&ingredients)
	return ingredients, result.Error
}

// FindOwnedByID retrieves an ingredient by ID, scoped to its owner
func (r *IngredientRepository) FindOwnedByID(id uint, userID uint) (models.Ingredient, error) {
	var ingredient models.Ingredient
	result := database.DB.Where("user_id = ?", userID).First(&ingredient, "id = ?", id)
	return ingredient, result.Error
}

// GetOrCreate returns the user's ingredient with the given name,
// creating it if absent. Same duplicated-key refetch as tags.
func (r *IngredientRepository) GetOrCreate(db *gorm.DB, userID uint, name string) (models.Ingredient, error) {
	ingredient := models.Ingredient{UserID: userID, Name: name}
	err := db.Where("user_id = ? AND name = ?", userID, name).FirstOrCreate(&ingredient).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = db.Where("user_id = ? AND name = ?", userID, name).First(&ingredient).Error
	}
	return ingredient, err
}

// Update modifies an existing ingredient
func (r *IngredientRepository) Update(ingredient models.Ingredient) error {
	result := database.DB.Save(&ingredient)
	return result.Error
}

// Delete removes the user's ingredient and its recipe associations
func (r *IngredientRepository) Delete(id uint, userID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ?", userID).Delete(&models.Ingredient{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Exec("DELETE FROM recipe_ingredients WHERE ingredient_id = ?", id).Error
	})
}
