package repository

import (
	"github.com/spotlighthub/spotlight-api/internal/models"
	"gorm.io/gorm"
)

// GormSocialLinkRepository is a GORM implementation of SocialLinkRepository
type GormSocialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository creates a new SocialLinkRepository
func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &GormSocialLinkRepository{db: db}
}

// ListByUserID lists a user's links ordered by position
func (r *GormSocialLinkRepository) ListByUserID(userID uint) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := r.db.Where("user_id = ?", userID).Order("position ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// FindForUser finds a link by ID scoped to its owner
func (r *GormSocialLinkRepository) FindForUser(id, userID uint) (*models.SocialLink, error) {
	var link models.SocialLink
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// MaxPosition returns the highest position for the user, -1 when none
func (r *GormSocialLinkRepository) MaxPosition(userID uint) (int, error) {
	var max *int
	err := r.db.Model(&models.SocialLink{}).
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

// Create creates a new link
func (r *GormSocialLinkRepository) Create(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

// Update updates a link
func (r *GormSocialLinkRepository) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

// Delete removes a link scoped to its owner
func (r *GormSocialLinkRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SocialLink{}).Error
}

// Reorder assigns positions 0..n-1 in the given ID order atomically
func (r *GormSocialLinkRepository) Reorder(userID uint, ids []uint) error {
	return reorderPositions(r.db, &models.SocialLink{}, userID, ids)
}
