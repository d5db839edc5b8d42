package services

import (
	"errors"

	"github.com/recipebox-api/models"
	"github.com/recipebox-api/repositories"
	"gorm.io/gorm"
)

// TagService handles business logic for the user's tags
type TagService struct {
	tagRepo *repositories.TagRepository
}

// NewTagService creates a new tag service instance
func NewTagService() *TagService {
	return &TagService{
		tagRepo: repositories.NewTagRepository(),
	}
}

// ListTags retrieves the user's tags, optionally only those assigned to
// at least one recipe
func (s *TagService) ListTags(userID uint, assignedOnly bool) ([]models.Tag, error) {
	return s.tagRepo.FindAllByUser(userID, assignedOnly)
}

// UpdateTag renames one of the user's tags
func (s *TagService) UpdateTag(id uint, userID uint, name string) (models.Tag, error) {
	tag, err := s.tagRepo.FindOwnedByID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Tag{}, ErrNotFound
	}
	if err != nil {
		return models.Tag{}, err
	}

	tag.Name = name
	if err := s.tagRepo.Update(tag); err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

// DeleteTag removes one of the user's tags
func (s *TagService) DeleteTag(id uint, userID uint) error {
	err := s.tagRepo.Delete(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
