package services

import (
	"testing"

	"github.com/recipebox-api/database"
	"github.com/recipebox-api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIngredientsAssignedOnly(t *testing.T) {
	database.SetupTest(t)
	user := createTestUser(t, "cook@example.com")
	recipes := NewRecipeService()
	ingredients := NewIngredientService()

	recipe, err := recipes.CreateRecipe(user.ID, dto.CreateRecipeRequest{
		Title: "Soup", TimeMinutes: 20, Price: "3.50",
		Ingredients: []dto.LabelInput{{Name: "Carrot"}, {Name: "Onion"}},
	})
	require.NoError(t, err)

	// Detach one ingredient, keep the other
	keep := []dto.LabelInput{{Name: "Carrot"}}
	_, err = recipes.UpdateRecipe(recipe.ID, user.ID, dto.UpdateRecipeRequest{Ingredients: &keep})
	require.NoError(t, err)

	all, err := ingredients.ListIngredients(user.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assigned, err := ingredients.ListIngredients(user.ID, true)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, "Carrot", assigned[0].Name)
}

func TestIngredientCrossOwnerAndRename(t *testing.T) {
	database.SetupTest(t)
	owner := createTestUser(t, "owner@example.com")
	intruder := createTestUser(t, "intruder@example.com")
	recipes := NewRecipeService()
	ingredients := NewIngredientService()

	recipe, err := recipes.CreateRecipe(owner.ID, dto.CreateRecipeRequest{
		Title: "T", TimeMinutes: 5, Price: "1.00",
		Ingredients: []dto.LabelInput{{Name: "Salt"}},
	})
	require.NoError(t, err)
	ingredientID := recipe.Ingredients[0].ID

	_, err = ingredients.UpdateIngredient(ingredientID, intruder.ID, "Pepper")
	assert.ErrorIs(t, err, ErrNotFound)
	err = ingredients.DeleteIngredient(ingredientID, intruder.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	renamed, err := ingredients.UpdateIngredient(ingredientID, owner.ID, "Sea salt")
	require.NoError(t, err)
	assert.Equal(t, "Sea salt", renamed.Name)

	require.NoError(t, ingredients.DeleteIngredient(ingredientID, owner.ID))
	listed, err := ingredients.ListIngredients(owner.ID, false)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
