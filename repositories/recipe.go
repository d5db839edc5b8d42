package repositories

import (
	"github.com/recipebox-api/database"
	"github.com/recipebox-api/models"
	"gorm.io/gorm"
)

// RecipeRepository handles database operations for recipes
type RecipeRepository struct{}

// NewRecipeRepository creates a new recipe repository instance
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{}
}

// FindAllByUser retrieves the user's recipes, newest first, with their
// tag and ingredient sets loaded
func (r *RecipeRepository) FindAllByUser(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	result := database.DB.
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&recipes)
	return recipes, result.Error
}

// FindOwnedByID retrieves a recipe by ID, scoped to its owner. A recipe
// belonging to another user comes back as gorm.ErrRecordNotFound, the
// same as one that does not exist.
func (r *RecipeRepository) FindOwnedByID(db *gorm.DB, id uint, userID uint) (models.Recipe, error) {
	var recipe models.Recipe
	result := db.
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		First(&recipe, "id = ?", id)
	return recipe, result.Error
}

// Delete removes the user's recipe. Returns gorm.ErrRecordNotFound when
// no owned row matched.
func (r *RecipeRepository) Delete(id uint, userID uint) error {
	result := database.DB.Where("user_id = ?", userID).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DB returns the database instance
func (r *RecipeRepository) DB() *gorm.DB {
	return database.DB
}
