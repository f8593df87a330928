package repository

import (
	"errors"
	"time"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"gorm.io/gorm"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByUserID finds a profile by owning user ID
func (r *GormProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// EnsureForUser returns the user's profile, creating a default one when
// none exists. Creation runs in a transaction so two concurrent first
// accesses cannot both insert.
func (r *GormProfileRepository) EnsureForUser(userID uint, displayName string) (*models.UserProfile, error) {
	var profile models.UserProfile

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		profile = models.UserProfile{
			UserID:        userID,
			DisplayName:   displayName,
			ThemeSettings: models.ThemeSettings{},
			IsPublic:      true,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Update updates a profile
func (r *GormProfileRepository) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}

// RecordClick stores a public profile view
func (r *GormProfileRepository) RecordClick(userID uint) error {
	click := models.ProfileClick{
		UserID:    userID,
		ClickedAt: time.Now().UTC(),
	}
	return r.db.Create(&click).Error
}

// CountClicks returns the total number of recorded profile views
func (r *GormProfileRepository) CountClicks() (int64, error) {
	var count int64
	err := r.db.Model(&models.ProfileClick{}).Count(&count).Error
	return count, err
}
