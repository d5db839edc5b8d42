package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebox-api/dto"
	"github.com/recipebox-api/services"
)

var tagService = services.NewTagService()

// ListTags godoc
// @Summary List the caller's tags
// @Description Get all tags owned by the authenticated user, ordered by descending name. With assigned_only=1 only tags attached to at least one recipe are returned.
// @Tags tags
// @Accept json
// @Produce json
// @Param assigned_only query int false "Only tags assigned to a recipe"
// @Success 200 {array} models.Tag
// @Router /tags [get]
func ListTags(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	assignedOnly := c.Query("assigned_only") == "1"

	tags, err := tagService.ListTags(userID.(uint), assignedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tags",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tags,
	})
}

// UpdateTag godoc
// @Summary Rename a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body dto.UpdateLabelRequest true "Tag Data"
// @Success 200 {object} models.Tag
// @Router /tags/{id} [patch]
func UpdateTag(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	tagID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid tag ID"})
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

	tag, err := tagService.UpdateTag(tagID, userID.(uint), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Tag not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update tag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   tag,
	})
}

// DeleteTag godoc
// @Summary Delete a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Success 204
// @Router /tags/{id} [delete]
func DeleteTag(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	tagID, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid tag ID"})
		return
	}

	if err := tagService.DeleteTag(tagID, userID.(uint)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Tag not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete tag"})
		return
	}

	c.Status(http.StatusNoContent)
}
