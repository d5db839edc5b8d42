package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebox-api/dto"
	"github.com/recipebox-api/services"
)

var ingredientService = services.NewIngredientService()

// ListIngredients godoc
// @Summary List the caller's ingredients
// @Description Get all ingredients owned by the authenticated user, ordered by descending name. With assigned_only=1 only ingredients attached to at least one recipe are returned.
// @Tags ingredients
// @Accept json
// @Produce json
// @Param assigned_only query int false "Only ingredients assigned to a recipe"
// @Success 200 {array} models.Ingredient
// @Router /ingredients [get]
func ListIngredients(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	assignedOnly := c.Query("assigned_only") == "1"

	ingredients, err := ingredientService.ListIngredients(userID.(uint), assignedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve ingredients",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   ingredients,
	})
}

// UpdateIngredient godoc
// @Summary Rename an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body dto.UpdateLabelRequest true "Ingredient Data"
// @Success 200 {object} models.Ingredient
// @Router /ingredients/{id} [patch]
func UpdateIngredient(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	ingredientID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid ingredient ID"})
		return
	}

	var req dto.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	ingredient, err := ingredientService.UpdateIngredient(ingredientID, userID.(uint), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update ingredient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   ingredient,
	})
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 204
// @Router /ingredients/{id} [delete]
func DeleteIngredient(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	ingredientID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid ingredient ID"})
		return
	}

	if err := ingredientService.DeleteIngredient(ingredientID, userID.(uint)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete ingredient"})
		return
	}

	c.Status(http.StatusNoContent)
}
