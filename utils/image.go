package utils

import (
	"path/filepath"

	"github.com/google/uuid"
)

// RecipeImageDir is the upload prefix under which all recipe images are
// stored.
const RecipeImageDir = "uploads/recipe"

// RecipeImagePath builds the storage path for an uploaded recipe image:
// a random UUID stem keeps uploads from colliding, the original file's
// extension is preserved.
func RecipeImagePath(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return filepath.Join(RecipeImageDir, uuid.NewString()+ext)
}
