package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/repository"
	"github.com/spotlighthub/spotlight-api/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrLinkNotFound    = errors.New("social link not found")
	ErrInvalidPlatform = errors.New("platform is required")
	ErrInvalidLinkURL  = errors.New("a valid http or https URL is required")
	ErrReorderIDs      = errors.New("reorder must list each of the user's links exactly once")
)

// SocialLinkService manages a user's ordered list of social links.
type SocialLinkService struct {
	linkRepo repository.SocialLinkRepository
}

// NewSocialLinkService creates a new SocialLinkService.
func NewSocialLinkService(linkRepo repository.SocialLinkRepository) *SocialLinkService {
	return &SocialLinkService{linkRepo: linkRepo}
}

// List returns the user's links ordered by position.
func (s *SocialLinkService) List(userID uint) ([]models.SocialLink, error) {
	links, err := s.linkRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	return links, nil
}

// CreateLinkInput carries the fields for a new social link.
type CreateLinkInput struct {
	Platform    string
	URL         string
	DisplayText string
}

// Create appends a link at the end of the user's list.
func (s *SocialLinkService) Create(userID uint, input CreateLinkInput) (*models.SocialLink, error) {
	platform := strings.TrimSpace(input.Platform)
	if platform == "" {
		return nil, ErrInvalidPlatform
	}
	if !validation.ValidURL(input.URL) {
		return nil, ErrInvalidLinkURL
	}

	maxPos, err := s.linkRepo.MaxPosition(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine position: %w", err)
	}

	link := &models.SocialLink{
		UserID:      userID,
		Platform:    platform,
		URL:         input.URL,
		DisplayText: strings.TrimSpace(input.DisplayText),
		Position:    maxPos + 1,
	}
	if err := s.linkRepo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create social link: %w", err)
	}
	return link, nil
}

// UpdateLinkInput carries a partial link update. Nil fields are left
// untouched.
type UpdateLinkInput struct {
	Platform    *string
	URL         *string
	DisplayText *string
}

// Update applies a partial update to an owned link.
func (s *SocialLinkService) Update(id, userID uint, input UpdateLinkInput) (*models.SocialLink, error) {
	link, err := s.linkRepo.FindForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to load social link: %w", err)
	}

	if input.Platform != nil {
		platform := strings.TrimSpace(*input.Platform)
		if platform == "" {
			return nil, ErrInvalidPlatform
		}
		link.Platform = platform
	}
	if input.URL != nil {
		if !validation.ValidURL(*input.URL) {
			return nil, ErrInvalidLinkURL
		}
		link.URL = *input.URL
	}
	if input.DisplayText != nil {
		link.DisplayText = strings.TrimSpace(*input.DisplayText)
	}

	if err := s.linkRepo.Update(link); err != nil {
		return nil, fmt.Errorf("failed to update social link: %w", err)
	}
	return link, nil
}

// Delete removes an owned link and closes the position gap it leaves.
func (s *SocialLinkService) Delete(id, userID uint) error {
	if _, err := s.linkRepo.FindForUser(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to load social link: %w", err)
	}

	if err := s.linkRepo.Delete(id, userID); err != nil {
		return fmt.Errorf("failed to delete social link: %w", err)
	}
	return s.compact(userID)
}

// Reorder moves the user's links into the given ID order.
func (s *SocialLinkService) Reorder(userID uint, ids []uint) ([]models.SocialLink, error) {
	if err := s.linkRepo.Reorder(userID, ids); err != nil {
		if errors.Is(err, repository.ErrReorderMismatch) {
			return nil, ErrReorderIDs
		}
		return nil, fmt.Errorf("failed to reorder social links: %w", err)
	}
	return s.List(userID)
}

// compact reassigns dense positions after a deletion.
func (s *SocialLinkService) compact(userID uint) error {
	links, err := s.linkRepo.ListByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to list social links: %w", err)
	}
	ids := make([]uint, len(links))
	for i, link := range links {
		ids[i] = link.ID
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.linkRepo.Reorder(userID, ids); err != nil {
		return fmt.Errorf("failed to compact positions: %w", err)
	}
	return nil
}
