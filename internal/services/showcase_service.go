package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/spotlighthub/spotlight-api/internal/constants"
	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/repository"
	"github.com/spotlighthub/spotlight-api/internal/spotify"
	"gorm.io/gorm"
)

var (
	ErrShowcaseLimit    = errors.New("showcase is full")
	ErrDuplicateItem    = errors.New("item is already in the showcase")
	ErrItemNotFound     = errors.New("showcase item not found")
	ErrShowcaseReorder  = errors.New("reorder must list each showcase item exactly once")
	ErrInvalidItemInput = errors.New("spotify item ID is required")
)

// ShowcaseService manages the bounded, ordered music showcase.
type ShowcaseService struct {
	showRepo       repository.ShowcaseRepository
	spotifyService *SpotifyService
}

// NewShowcaseService creates a new ShowcaseService.
func NewShowcaseService(showRepo repository.ShowcaseRepository, spotifyService *SpotifyService) *ShowcaseService {
	return &ShowcaseService{
		showRepo:       showRepo,
		spotifyService: spotifyService,
	}
}

// List returns the user's showcase ordered by position.
func (s *ShowcaseService) List(userID uint) ([]models.MusicShowcase, error) {
	items, err := s.showRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list showcase: %w", err)
	}
	return items, nil
}

// Add fetches the item from the provider and appends it to the showcase.
// The capacity and duplicate checks run before any outbound call so a
// full or duplicate showcase never costs a provider round trip.
func (s *ShowcaseService) Add(ctx context.Context, userID uint, spotifyItemID string) (*models.MusicShowcase, error) {
	if spotifyItemID == "" {
		return nil, ErrInvalidItemInput
	}

	if !s.spotifyService.Connected(userID) {
		return nil, ErrSpotifyNotConnected
	}

	count, err := s.showRepo.CountByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count showcase items: %w", err)
	}
	if count >= int64(constants.MaxShowcaseItems) {
		return nil, ErrShowcaseLimit
	}

	exists, err := s.showRepo.ExistsForUser(userID, spotifyItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to check showcase: %w", err)
	}
	if exists {
		return nil, ErrDuplicateItem
	}

	album, err := s.spotifyService.AlbumDetails(ctx, userID, spotifyItemID)
	if err != nil {
		return nil, err
	}
	normalized := spotify.NormalizeAlbum(*album)

	maxPos, err := s.showRepo.MaxPosition(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine position: %w", err)
	}

	item := &models.MusicShowcase{
		UserID:        userID,
		SpotifyItemID: normalized.SpotifyID,
		ItemType:      models.ShowcaseItemType(normalized.ItemType),
		ItemName:      normalized.ItemName,
		ArtistNames:   normalized.ArtistNames,
		ImageURL:      normalized.ImageURL,
		SpotifyURL:    normalized.SpotifyURL,
		Position:      maxPos + 1,
	}
	if err := s.showRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to add showcase item: %w", err)
	}
	return item, nil
}

// Remove deletes an owned item and closes the position gap it leaves.
func (s *ShowcaseService) Remove(id, userID uint) error {
	if _, err := s.showRepo.FindForUser(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to load showcase item: %w", err)
	}

	if err := s.showRepo.Delete(id, userID); err != nil {
		return fmt.Errorf("failed to delete showcase item: %w", err)
	}
	return s.compact(userID)
}

// Reorder moves the showcase into the given ID order.
func (s *ShowcaseService) Reorder(userID uint, ids []uint) ([]models.MusicShowcase, error) {
	if err := s.showRepo.Reorder(userID, ids); err != nil {
		if errors.Is(err, repository.ErrReorderMismatch) {
			return nil, ErrShowcaseReorder
		}
		return nil, fmt.Errorf("failed to reorder showcase: %w", err)
	}
	return s.List(userID)
}

func (s *ShowcaseService) compact(userID uint) error {
	items, err := s.showRepo.ListByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to list showcase: %w", err)
	}
	ids := make([]uint, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.showRepo.Reorder(userID, ids); err != nil {
		return fmt.Errorf("failed to compact positions: %w", err)
	}
	return nil
}
