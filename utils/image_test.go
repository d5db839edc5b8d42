package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeImagePath(t *testing.T) {
	path := RecipeImagePath("dinner photo.JPG")

	assert.True(t, strings.HasPrefix(path, RecipeImageDir+string(filepath.Separator)))
	assert.True(t, strings.HasSuffix(path, ".JPG"), "original extension must be preserved")

	// The stem is a freshly generated UUID, not the original name
	stem := strings.TrimSuffix(filepath.Base(path), ".JPG")
	_, err := uuid.Parse(stem)
	require.NoError(t, err)

	// Two uploads of the same filename never collide
	assert.NotEqual(t, path, RecipeImagePath("dinner photo.JPG"))
}

func TestRecipeImagePathNoExtension(t *testing.T) {
	path := RecipeImagePath("rawfile")
	stem := filepath.Base(path)
	_, err := uuid.Parse(stem)
	assert.NoError(t, err)
}
