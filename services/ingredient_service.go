package services

import (
	"errors"

	"github.com/recipebox-api/models"
	"github.com/recipebox-api/repositories"
	"gorm.io/gorm"
)

// IngredientService handles business logic for the user's ingredients
type IngredientService struct {
	ingredientRepo *repositories.IngredientRepository
}

// NewIngredientService creates a new ingredient service instance
func NewIngredientService() *IngredientService {
	return &IngredientService{
		ingredientRepo: repositories.NewIngredientRepository(),
	}
}

// ListIngredients retrieves the user's ingredients, optionally only
// those assigned to at least one recipe
func (s *IngredientService) ListIngredients(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	return s.ingredientRepo.FindAllByUser(userID, assignedOnly)
}

// UpdateIngredient renames one of the user's ingredients
func (s *IngredientService) UpdateIngredient(id uint, userID uint, name string) (models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindOwnedByID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ingredient{}, ErrNotFound
	}
	if err != nil {
		return models.Ingredient{}, err
	}

	ingredient.Name = name
	if err := s.ingredientRepo.Update(ingredient); err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

// DeleteIngredient removes one of the user's ingredients
func (s *IngredientService) DeleteIngredient(id uint, userID uint) error {
	err := s.ingredientRepo.Delete(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
