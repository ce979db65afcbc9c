package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/store"
)

// TagService manages custom tags. A tag name must be unique, compared
// case-insensitively, within the scope a user can see: every pre-built tag
// plus their own custom tags.
type TagService struct {
	tags store.TagRepository
}

func NewTagService(tags store.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// ListVisible returns pre-built tags plus the user's custom tags.
func (s *TagService) ListVisible(ctx context.Context, userID int) ([]models.Tag, error) {
	if userID <= 0 {
		return nil, nil
	}
	return s.tags.ListVisible(ctx, userID)
}

// CreateCustom adds a user-owned tag after checking scope uniqueness.
func (s *TagService) CreateCustom(ctx context.Context, userID int, name string) (*models.Tag, error) {
	if userID <= 0 {
		return nil, ErrAuthentication
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name required", ErrValidation)
	}

	visible, err := s.tags.ListVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	for _, t := range visible {
		if strings.EqualFold(t.Name, name) {
			return nil, fmt.Errorf("%w: tag %q", ErrConflict, name)
		}
	}

	return s.tags.Create(ctx, &models.Tag{Name: name, IsCustom: true, OwnerID: &userID})
}

// DeleteCustom removes one of the user's own tags. Pre-built tags and other
// users' tags are off limits.
func (s *TagService) DeleteCustom(ctx context.Context, userID, tagID int) error {
	if userID <= 0 {
		return ErrAuthentication
	}
	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		return fmt.Errorf("load tag: %w", err)
	}
	if tag == nil {
		return fmt.Errorf("%w: tag", ErrNotFound)
	}
	if !tag.IsCustom || tag.OwnerID == nil || *tag.OwnerID != userID {
		return fmt.Errorf("%w: tag is not yours to delete", ErrAuthorization)
	}
	return s.tags.Delete(ctx, tagID)
}
