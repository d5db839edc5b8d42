package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/recipebox-api/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// User endpoints
	userGroup := router.Group("/users")
	{
		userGroup.POST("", RegisterUser)
		userGroup.POST("/token", CreateToken)
		// Use auth middleware here only for the /me endpoints
		userGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
		userGroup.PATCH("/me", middleware.AuthMiddleware(), UpdateCurrentUser)
	}

	// Recipe endpoints - protected by AuthMiddleware
	recipeGroup := router.Group("/recipes")
	recipeGroup.Use(middleware.AuthMiddleware())
	{
		recipeGroup.GET("", ListRecipes)
		recipeGroup.POST("", CreateRecipe)
		recipeGroup.GET("/:id", GetRecipe)
		recipeGroup.PUT("/:id", UpdateRecipe)
		recipeGroup.PATCH("/:id", UpdateRecipe)
		recipeGroup.DELETE("/:id", DeleteRecipe)
		recipeGroup.POST("/:id/image", UploadRecipeImage)
	}

	// Tag endpoints - protected by AuthMiddleware. Tags have no create
	// endpoint: they come into existence through recipe writes.
	tagGroup := router.Group("/tags")
	tagGroup.Use(middleware.AuthMiddleware())
	{
		tagGroup.GET("", ListTags)
		tagGroup.PUT("/:id", UpdateTag)
		tagGroup.PATCH("/:id", UpdateTag)
		tagGroup.DELETE("/:id", DeleteTag)
	}

	// Ingredient endpoints - same rules as tags
	ingredientGroup := router.Group("/ingredients")
	ingredientGroup.Use(middleware.AuthMiddleware())
	{
		ingredientGroup.GET("", ListIngredients)
		ingredientGroup.PUT("/:id", UpdateIngredient)
		ingredientGroup.PATCH("/:id", UpdateIngredient)
		ingredientGroup.DELETE("/:id", DeleteIngredient)
	}

	// Admin endpoints - staff accounts only
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/users", ListUsers)
	}
}
