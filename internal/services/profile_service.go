package services

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/repository"
	"github.com/spotlighthub/spotlight-api/internal/storage"
	"github.com/spotlighthub/spotlight-api/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfilePrivate   = errors.New("profile is private")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrInvalidAvatarURL = errors.New("avatar URL must be a valid http or https URL")
)

// PublicProfile bundles everything a visitor sees on a profile page.
type PublicProfile struct {
	User        *models.User
	Profile     *models.UserProfile
	SocialLinks []models.SocialLink
	Showcase    []models.MusicShowcase
	Connected   bool
}

// ProfileService manages profile reads and updates, including avatars.
type ProfileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	linkRepo    repository.SocialLinkRepository
	showRepo    repository.ShowcaseRepository
	connRepo    repository.SpotifyConnectionRepository
	avatars     *storage.AvatarStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	linkRepo repository.SocialLinkRepository,
	showRepo repository.ShowcaseRepository,
	connRepo repository.SpotifyConnectionRepository,
	avatars *storage.AvatarStore,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		linkRepo:    linkRepo,
		showRepo:    showRepo,
		connRepo:    connRepo,
		avatars:     avatars,
	}
}

// MyProfile returns the owner's profile, creating the default one when a
// legacy account predates automatic profile creation.
func (s *ProfileService) MyProfile(userID uint) (*models.UserProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	profile, err := s.profileRepo.EnsureForUser(userID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

// UpdateProfileInput carries a partial profile update. Nil fields are
// left untouched. An empty AvatarURL clears the avatar; a non-empty one
// points the profile at an externally hosted image.
type UpdateProfileInput struct {
	DisplayName   *string
	Bio           *string
	AvatarURL     *string
	ThemeSettings *models.ThemeSettings
	IsPublic      *bool
}

// UpdateProfile applies a partial update to the owner's profile.
func (s *ProfileService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.UserProfile, error) {
	profile, err := s.MyProfile(userID)
	if err != nil {
		return nil, err
	}

	previousAvatar := profile.AvatarURL

	if input.DisplayName != nil {
		profile.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		if *input.AvatarURL != "" && !validation.ValidURL(*input.AvatarURL) {
			return nil, ErrInvalidAvatarURL
		}
		profile.AvatarURL = *input.AvatarURL
	}
	if input.ThemeSettings != nil {
		profile.ThemeSettings = *input.ThemeSettings
	}
	if input.IsPublic != nil {
		profile.IsPublic = *input.IsPublic
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if input.AvatarURL != nil && previousAvatar != profile.AvatarURL {
		s.avatars.DeleteIfLocal(previousAvatar)
	}
	return profile, nil
}

// SetAvatar stores the uploaded image and points the profile at it. The
// previous locally stored avatar is removed after the switch.
func (s *ProfileService) SetAvatar(userID uint, file *multipart.FileHeader) (*models.UserProfile, error) {
	profile, err := s.MyProfile(userID)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.Save(userID, file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return nil, ErrUnsupportedImage
		}
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}

	previous := profile.AvatarURL
	profile.AvatarURL = url
	if err := s.profileRepo.Update(profile); err != nil {
		s.avatars.DeleteIfLocal(url)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.avatars.DeleteIfLocal(previous)
	return profile, nil
}

// ClearAvatar removes the profile's avatar.
func (s *ProfileService) ClearAvatar(userID uint) (*models.UserProfile, error) {
	profile, err := s.MyProfile(userID)
	if err != nil {
		return nil, err
	}

	previous := profile.AvatarURL
	profile.AvatarURL = ""
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.avatars.DeleteIfLocal(previous)
	return profile, nil
}

// OwnerOverview assembles the owner's dashboard view: user, profile,
// links, showcase, and connection state. No click is recorded.
func (s *ProfileService) OwnerOverview(userID uint) (*PublicProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	profile, err := s.profileRepo.EnsureForUser(userID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	links, err := s.linkRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load social links: %w", err)
	}

	showcase, err := s.showRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load showcase: %w", err)
	}

	connected := true
	if _, err := s.connRepo.FindByUserID(userID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load connection: %w", err)
		}
		connected = false
	}

	return &PublicProfile{
		User:        user,
		Profile:     profile,
		SocialLinks: links,
		Showcase:    showcase,
		Connected:   connected,
	}, nil
}

// ViewPublicProfile resolves a public profile by username and records the
// visit. An unknown username and a private profile are distinct outcomes
// so the page can render the right message.
func (s *ProfileService) ViewPublicProfile(username string) (*PublicProfile, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	profile, err := s.profileRepo.FindByUserID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfilePrivate
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !profile.IsPublic {
		return nil, ErrProfilePrivate
	}

	links, err := s.linkRepo.ListByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load social links: %w", err)
	}

	showcase, err := s.showRepo.ListByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load showcase: %w", err)
	}

	connected := true
	if _, err := s.connRepo.FindByUserID(user.ID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load connection: %w", err)
		}
		connected = false
	}

	// The visit counter must never take down the page itself.
	if err := s.profileRepo.RecordClick(user.ID); err != nil {
		log.Printf("failed to record profile click for user %d: %v", user.ID, err)
	}

	return &PublicProfile{
		User:        user,
		Profile:     profile,
		SocialLinks: links,
		Showcase:    showcase,
		Connected:   connected,
	}, nil
}
