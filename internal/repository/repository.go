package repository

import (
	"github.com/spotlighthub/spotlight-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithProfile creates a user and their default profile within a
	// single transaction.
	CreateWithProfile(user *models.User, profile *models.UserProfile) error

	// FindByID finds a user by ID
	FindByID(id uint) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update updates a user
	Update(user *models.User) error

	// List retrieves users ordered by creation time with pagination
	List(offset, limit int) ([]models.User, int64, error)

	// Count returns the total number of users
	Count() (int64, error)

	// Delete removes a user and all owned rows in one transaction
	Delete(id uint) error
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByUserID finds a profile by owning user ID
	FindByUserID(userID uint) (*models.UserProfile, error)

	// EnsureForUser returns the user's profile, creating a default one
	// inside a transaction when none exists yet.
	EnsureForUser(userID uint, displayName string) (*models.UserProfile, error)

	// Update updates a profile
	Update(profile *models.UserProfile) error

	// RecordClick stores a public profile view
	RecordClick(userID uint) error

	// CountClicks returns the total number of recorded profile views
	CountClicks() (int64, error)
}

// SocialLinkRepository defines the interface for social link data access
type SocialLinkRepository interface {
	// ListByUserID lists a user's links ordered by position
	ListByUserID(userID uint) ([]models.SocialLink, error)

	// FindForUser finds a link by ID scoped to its owner
	FindForUser(id, userID uint) (*models.SocialLink, error)

	// MaxPosition returns the highest position for the user, -1 when none
	MaxPosition(userID uint) (int, error)

	// Create creates a new link
	Create(link *models.SocialLink) error

	// Update updates a link
	Update(link *models.SocialLink) error

	// Delete removes a link scoped to its owner
	Delete(id, userID uint) error

	// Reorder assigns positions 0..n-1 in the given ID order atomically
	Reorder(userID uint, ids []uint) error
}

// ShowcaseRepository defines the interface for music showcase data access
type ShowcaseRepository interface {
	// ListByUserID lists a user's showcase items ordered by position
	ListByUserID(userID uint) ([]models.MusicShowcase, error)

	// FindForUser finds an item by ID scoped to its owner
	FindForUser(id, userID uint) (*models.MusicShowcase, error)

	// CountByUserID returns the number of items in the user's showcase
	CountByUserID(userID uint) (int64, error)

	// ExistsForUser reports whether the user already showcases the item
	ExistsForUser(userID uint, spotifyItemID string) (bool, error)

	// MaxPosition returns the highest position for the user, -1 when none
	MaxPosition(userID uint) (int, error)

	// Create creates a new showcase item
	Create(item *models.MusicShowcase) error

	// Delete removes an item scoped to its owner
	Delete(id, userID uint) error

	// Reorder assigns positions 0..n-1 in the given ID order atomically
	Reorder(userID uint, ids []uint) error
}

// SpotifyConnectionRepository defines the interface for OAuth connection
// data access
type SpotifyConnectionRepository interface {
	// FindByUserID finds the user's connection
	FindByUserID(userID uint) (*models.SpotifyConnection, error)

	// Create creates a new connection
	Create(conn *models.SpotifyConnection) error

	// Update updates a connection
	Update(conn *models.SpotifyConnection) error
}
