package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/recipebox-api/dto"
	"github.com/recipebox-api/services"
	"github.com/recipebox-api/utils"
)

var recipeService = services.NewRecipeService()

// ListRecipes godoc
// @Summary List the caller's recipes
// @Description Get all recipes owned by the authenticated user, newest first, in the lightweight representation
// @Tags recipes
// @Accept json
// @Produce json
// @Success 200 {array} dto.RecipeListItem
// @Router /recipes [get]
func ListRecipes(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	recipes, err := recipeService.ListRecipes(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recipes",
		})
		return
	}

	items := make([]dto.RecipeListItem, 0, len(recipes))
	for _, recipe := range recipes {
		items = append(items, dto.ToRecipeListItem(recipe))
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   items,
	})
}

// GetRecipe godoc
// @Summary Get a recipe by ID
// @Description Get the detail representation of one of the caller's recipes
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.RecipeDetail
// @Router /recipes/{id} [get]
func GetRecipe(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	recipeID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid recipe ID"})
		return
	}

	recipe, err := recipeService.GetRecipe(recipeID, userID.(uint))
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.ToRecipeDetail(recipe),
	})
}

// CreateRecipe godoc
// @Summary Create a new recipe
// @Description Create a recipe for the authenticated user. Embedded tag and ingredient names are created on the fly when they do not exist yet.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body dto.CreateRecipeRequest true "Recipe Data"
// @Success 201 {object} dto.RecipeDetail
// @Router /recipes [post]
func CreateRecipe(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	recipe, err := recipeService.CreateRecipe(userID.(uint), req)
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   dto.ToRecipeDetail(recipe),
	})
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Apply a full or partial update to one of the caller's recipes. A tags or ingredients list in the payload replaces the whole set; leaving the key out keeps the current set.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body dto.UpdateRecipeRequest true "Recipe Data"
// @Success 200 {object} dto.RecipeDetail
// @Router /recipes/{id} [patch]
func UpdateRecipe(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	recipeID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid recipe ID"})
		return
	}

	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	recipe, err := recipeService.UpdateRecipe(recipeID, userID.(uint), req)
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.ToRecipeDetail(recipe),
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Remove one of the caller's recipes
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 204
// @Router /recipes/{id} [delete]
func DeleteRecipe(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	recipeID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid recipe ID"})
		return
	}

	if err := recipeService.DeleteRecipe(recipeID, userID.(uint)); err != nil {
		respondRecipeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadRecipeImage godoc
// @Summary Upload a recipe image
// @Description Attach an image to one of the caller's recipes. The file is stored under the upload prefix with a random filename stem; the original extension is kept.
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Recipe ID"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.RecipeDetail
// @Router /recipes/{id}/image [post]
func UploadRecipeImage(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	recipeID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid recipe ID"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Image file is required"})
		return
	}

	// Ownership check happens before anything touches the disk
	if _, err := recipeService.GetRecipe(recipeID, userID.(uint)); err != nil {
		respondRecipeError(c, err)
		return
	}

	path := utils.RecipeImagePath(file.Filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store image",
		})
		return
	}

	recipe, err := recipeService.AttachImage(recipeID, userID.(uint), path)
	if err != nil {
		respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dto.ToRecipeDetail(recipe),
	})
}

// parseIDParam reads the numeric :id path parameter
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

// respondRecipeError maps service errors onto HTTP statuses
func respondRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Recipe not found"})
	case errors.Is(err, services.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Recipe operation failed"})
	}
}
