package services

import (
	"errors"
	"fmt"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/repository"
	"gorm.io/gorm"
)

// ErrSelfToggle is returned when an admin attempts to change their own
// admin flag.
var ErrSelfToggle = errors.New("cannot change your own admin status")

// Stats is the aggregate counters shown on the admin dashboard.
type Stats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalProfileClicks int64 `json:"total_profile_clicks"`
}

// AdminService implements administrative operations.
type AdminService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Stats returns platform-wide counters.
func (s *AdminService) Stats() (*Stats, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	clicks, err := s.profileRepo.CountClicks()
	if err != nil {
		return nil, fmt.Errorf("failed to count profile views: %w", err)
	}
	return &Stats{TotalUsers: users, TotalProfileClicks: clicks}, nil
}

// ListUsers returns a page of users ordered by creation time.
func (s *AdminService) ListUsers(page, pageSize int) ([]models.User, int64, error) {
	offset := (page - 1) * pageSize
	users, total, err := s.userRepo.List(offset, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// ToggleAdmin flips a user's admin flag. Admins cannot toggle themselves,
// which keeps at least the acting admin in place.
func (s *AdminService) ToggleAdmin(actorID, targetID uint) (*models.User, error) {
	if actorID == targetID {
		return nil, ErrSelfToggle
	}

	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.IsAdmin = !user.IsAdmin
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user and everything they own. Admins cannot
// delete themselves.
func (s *AdminService) DeleteUser(actorID, targetID uint) error {
	if actorID == targetID {
		return ErrSelfToggle
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
