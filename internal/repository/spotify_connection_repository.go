package repository

import (
	"github.com/spotlighthub/spotlight-api/internal/models"
	"gorm.io/gorm"
)

// GormSpotifyConnectionRepository is a GORM implementation of
// SpotifyConnectionRepository
type GormSpotifyConnectionRepository struct {
	db *gorm.DB
}

// NewSpotifyConnectionRepository creates a new SpotifyConnectionRepository
func NewSpotifyConnectionRepository(db *gorm.DB) SpotifyConnectionRepository {
	return &GormSpotifyConnectionRepository{db: db}
}

// FindByUserID finds the user's connection
func (r *GormSpotifyConnectionRepository) FindByUserID(userID uint) (*models.SpotifyConnection, error) {
	var conn models.SpotifyConnection
	if err := r.db.Where("user_id = ?", userID).First(&conn).Error; err != nil {
		return nil, err
	}
	return &conn, nil
}

// Create creates a new connection
func (r *GormSpotifyConnectionRepository) Create(conn *models.SpotifyConnection) error {
	return r.db.Create(conn).Error
}

// Update updates a connection
func (r *GormSpotifyConnectionRepository) Update(conn *models.SpotifyConnection) error {
	return r.db.Save(conn).Error
}
