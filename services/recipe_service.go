package services

import (
	"errors"

	"github.com/recipebox-api/dto"
	"github.com/recipebox-api/models"
	"github.com/recipebox-api/repositories"
	"github.com/recipebox-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeService handles business logic for recipes, including the
// reconciliation of embedded tag and ingredient names against the user's
// existing labels on every write.
type RecipeService struct {
	recipeRepo     *repositories.RecipeRepository
	tagRepo        *repositories.TagRepository
	ingredientRepo *repositories.IngredientRepository
}

// NewRecipeService creates a new recipe service instance
func NewRecipeService() *RecipeService {
	return &RecipeService{
		recipeRepo:     repositories.NewRecipeRepository(),
		tagRepo:        repositories.NewTagRepository(),
		ingredientRepo: repositories.NewIngredientRepository(),
	}
}

// ListRecipes retrieves all of the user's recipes, newest first
func (s *RecipeService) ListRecipes(userID uint) ([]models.Recipe, error) {
	return s.recipeRepo.FindAllByUser(userID)
}

// GetRecipe retrieves one of the user's recipes by ID
func (s *RecipeService) GetRecipe(id uint, userID uint) (models.Recipe, error) {
	recipe, err := s.recipeRepo.FindOwnedByID(s.recipeRepo.DB(), id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Recipe{}, ErrNotFound
	}
	return recipe, err
}

// CreateRecipe persists a new recipe for the user. Embedded tag and
// ingredient names are resolved against the user's labels, creating any
// that do not exist yet. The recipe row, the labels and the membership
// rows all land in one transaction.
func (s *RecipeService) CreateRecipe(userID uint, req dto.CreateRecipeRequest) (models.Recipe, error) {
	if err := utils.ValidatePrice(req.Price); err != nil {
		return models.Recipe{}, ErrInvalidPrice
	}

	recipe := models.Recipe{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Description: req.Description,
		Link:        req.Link,
		UserID:      userID,
	}

	err := s.recipeRepo.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
			return err
		}
		if err := s.reconcileTags(tx, &recipe, req.Tags); err != nil {
			return err
		}
		return s.reconcileIngredients(tx, &recipe, req.Ingredients)
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return s.GetRecipe(recipe.ID, userID)
}

// UpdateRecipe applies a full or partial update to the user's recipe.
// A tags or ingredients key present in the payload, even as an empty
// list, replaces the whole membership set; an absent key leaves it
// alone. The recipe's owner never changes.
func (s *RecipeService) UpdateRecipe(id uint, userID uint, req dto.UpdateRecipeRequest) (models.Recipe, error) {
	if req.Price != nil {
		if err := utils.ValidatePrice(*req.Price); err != nil {
			return models.Recipe{}, ErrInvalidPrice
		}
	}

	err := s.recipeRepo.DB().Transaction(func(tx *gorm.DB) error {
		recipe, err := s.recipeRepo.FindOwnedByID(tx, id, userID)
		if err != nil {
			return err
		}

		if req.Title != nil {
			recipe.Title = *req.Title
		}
		if req.TimeMinutes != nil {
			recipe.TimeMinutes = *req.TimeMinutes
		}
		if req.Price != nil {
			recipe.Price = *req.Price
		}
		if req.Description != nil {
			recipe.Description = *req.Description
		}
		if req.Link != nil {
			recipe.Link = *req.Link
		}

		if err := tx.Omit(clause.Associations).Save(&recipe).Error; err != nil {
			return err
		}

		if req.Tags != nil {
			if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
				return err
			}
			if err := s.reconcileTags(tx, &recipe, *req.Tags); err != nil {
				return err
			}
		}
		if req.Ingredients != nil {
			if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
				return err
			}
			if err := s.reconcileIngredients(tx, &recipe, *req.Ingredients); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Recipe{}, ErrNotFound
	}
	if err != nil {
		return models.Recipe{}, err
	}

	return s.GetRecipe(id, userID)
}

// DeleteRecipe removes the user's recipe and its label associations
func (s *RecipeService) DeleteRecipe(id uint, userID uint) error {
	err := s.recipeRepo.DB().Transaction(func(tx *gorm.DB) error {
		recipe, err := s.recipeRepo.FindOwnedByID(tx, id, userID)
		if err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// AttachImage records an uploaded image path on the user's recipe
func (s *RecipeService) AttachImage(id uint, userID uint, path string) (models.Recipe, error) {
	recipe, err := s.GetRecipe(id, userID)
	if err != nil {
		return models.Recipe{}, err
	}
	recipe.Image = path
	if err := s.recipeRepo.DB().Omit(clause.Associations).Save(&recipe).Error; err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// reconcileTags resolves each submitted tag name to the user's tag row,
// creating missing ones, and adds it to the recipe's tag set. Duplicate
// names in one payload collapse to a single membership.
func (s *RecipeService) reconcileTags(tx *gorm.DB, recipe *models.Recipe, inputs []dto.LabelInput) error {
	seen := make(map[string]bool, len(inputs))
	for _, input := range inputs {
		if seen[input.Name] {
			continue
		}
		seen[input.Name] = true

		tag, err := s.tagRepo.GetOrCreate(tx, recipe.UserID, input.Name)
		if err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Append(&tag); err != nil {
			return err
		}
	}
	return nil
}

// reconcileIngredients does for ingredients what reconcileTags does for tags
func (s *RecipeService) reconcileIngredients(tx *gorm.DB, recipe *models.Recipe, inputs []dto.LabelInput) error {
	seen := make(map[string]bool, len(inputs))
	for _, input := range inputs {
		if seen[input.Name] {
			continue
		}
		seen[input.Name] = true

		ingredient, err := s.ingredientRepo.GetOrCreate(tx, recipe.UserID, input.Name)
		if err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Ingredients").Append(&ingredient); err != nil {
			return err
		}
	}
	return nil
}
