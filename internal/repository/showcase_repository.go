package repository

import (
	"errors"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"gorm.io/gorm"
)

// GormShowcaseRepository is a GORM implementation of ShowcaseRepository
type GormShowcaseRepository struct {
	db *gorm.DB
}

// NewShowcaseRepository creates a new ShowcaseRepository
func NewShowcaseRepository(db *gorm.DB) ShowcaseRepository {
	return &GormShowcaseRepository{db: db}
}

// ListByUserID lists a user's showcase items ordered by position
func (r *GormShowcaseRepository) ListByUserID(userID uint) ([]models.MusicShowcase, error) {
	var items []models.MusicShowcase
	if err := r.db.Where("user_id = ?", userID).Order("position ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindForUser finds an item by ID scoped to its owner
func (r *GormShowcaseRepository) FindForUser(id, userID uint) (*models.MusicShowcase, error) {
	var item models.MusicShowcase
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CountByUserID returns the number of items in the user's showcase
func (r *GormShowcaseRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.MusicShowcase{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ExistsForUser reports whether the user already showcases the item
func (r *GormShowcaseRepository) ExistsForUser(userID uint, spotifyItemID string) (bool, error) {
	var item models.MusicShowcase
	err := r.db.Where("user_id = ? AND spotify_item_id = ?", userID, spotifyItemID).
		First(&item).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// MaxPosition returns the highest position for the user, -1 when none
func (r *GormShowcaseRepository) MaxPosition(userID uint) (int, error) {
	var max *int
	err := r.db.Model(&models.MusicShowcase{}).
		Where("user_id = ?", userID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

// Create creates a new showcase item
func (r *GormShowcaseRepository) Create(item *models.MusicShowcase) error {
	return r.db.Create(item).Error
}

// Delete removes an item scoped to its owner
func (r *GormShowcaseRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MusicShowcase{}).Error
}

// Reorder assigns positions 0..n-1 in the given ID order atomically
func (r *GormShowcaseRepository) Reorder(userID uint, ids []uint) error {
	return reorderPositions(r.db, &models.MusicShowcase{}, userID, ids)
}
