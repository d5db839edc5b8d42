package dto

import (
	"github.com/recipebox-api/models"
)

// LabelInput is an embedded tag or ingredient reference in a recipe
// payload, identified by name only.
type LabelInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateRecipeRequest represents the payload for creating a recipe
type CreateRecipeRequest struct {
	Title       string       `json:"title" binding:"required"`
	TimeMinutes int          `json:"time_minutes" binding:"required"`
	Price       string       `json:"price" binding:"required"`
	Description string       `json:"description"`
	Link        string       `json:"link"`
	Tags        []LabelInput `json:"tags"`
	Ingredients []LabelInput `json:"ingredients"`
}

// UpdateRecipeRequest represents a full or partial recipe update.
// Pointer fields distinguish "absent" from "present but empty": a nil
// Tags slice leaves the current tag set alone, an empty one clears it.
type UpdateRecipeRequest struct {
	Title       *string       `json:"title"`
	TimeMinutes *int          `json:"time_minutes"`
	Price       *string       `json:"price"`
	Description *string       `json:"description"`
	Link        *string       `json:"link"`
	Tags        *[]LabelInput `json:"tags"`
	Ingredients *[]LabelInput `json:"ingredients"`
}

// RecipeListItem is the lightweight projection used by the list endpoint
type RecipeListItem struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       string              `json:"price"`
	Link        string              `json:"link"`
	Image       string              `json:"image"`
	Tags        []models.Tag        `json:"tags"`
	Ingredients []models.Ingredient `json:"ingredients"`
}

// RecipeDetail is the extended projection used by detail, create and
// update responses. Superset of RecipeListItem fields plus description.
type RecipeDetail struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       string              `json:"price"`
	Description string              `json:"description"`
	Link        string              `json:"link"`
	Image       string              `json:"image"`
	Tags        []models.Tag        `json:"tags"`
	Ingredients []models.Ingredient `json:"ingredients"`
}

// ToRecipeListItem projects a recipe onto its list representation
func ToRecipeListItem(recipe models.Recipe) RecipeListItem {
	return RecipeListItem{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Image:       recipe.Image,
		Tags:        labelSlice(recipe.Tags),
		Ingredients: ingredientSlice(recipe.Ingredients),
	}
}

// ToRecipeDetail projects a recipe onto its detail representation
func ToRecipeDetail(recipe models.Recipe) RecipeDetail {
	return RecipeDetail{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Description: recipe.Description,
		Link:        recipe.Link,
		Image:       recipe.Image,
		Tags:        labelSlice(recipe.Tags),
		Ingredients: ingredientSlice(recipe.Ingredients),
	}
}

// labelSlice normalizes a nil association to an empty JSON array
func labelSlice(tags []models.Tag) []models.Tag {
	if tags == nil {
		return []models.Tag{}
	}
	return tags
}

func ingredientSlice(ingredients []models.Ingredient) []models.Ingredient {
	if ingredients == nil {
		return []models.Ingredient{}
	}
	return ingredients
}
