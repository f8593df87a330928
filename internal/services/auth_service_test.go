package services

import (
	"testing"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/spotlighthub/spotlight-api/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	return NewAuthService(repository.NewUserRepository(db)), db
}

func TestAuthService_Register(t *testing.T) {
	service, db := setupAuthService(t)

	user, err := service.Register(RegisterInput{
		Email:    "Artist@Example.com",
		Username: "artist123",
		Password: "securepass1",
	})
	require.NoError(t, err)
	require.Equal(t, "artist@example.com", user.Email)
	require.Equal(t, "artist123", user.Username)
	require.False(t, user.IsAdmin)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("securepass1")))

	// Registration creates the default profile in the same transaction.
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	require.Equal(t, "artist123", profile.DisplayName)
	require.True(t, profile.IsPublic)
}

func TestAuthService_Register_Validation(t *testing.T) {
	service, _ := setupAuthService(t)

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:    "bad email",
			input:   RegisterInput{Email: "not-an-email", Username: "artist123", Password: "securepass1"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "username too short",
			input:   RegisterInput{Email: "a@example.com", Username: "ab", Password: "securepass1"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "username with invalid characters",
			input:   RegisterInput{Email: "a@example.com", Username: "artist 123", Password: "securepass1"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "reserved username",
			input:   RegisterInput{Email: "a@example.com", Username: "admin", Password: "securepass1"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "password too short",
			input:   RegisterInput{Email: "a@example.com", Username: "artist123", Password: "short"},
			wantErr: ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, _ := setupAuthService(t)

	_, err := service.Register(RegisterInput{Email: "a@example.com", Username: "artist123", Password: "securepass1"})
	require.NoError(t, err)

	_, err = service.Register(RegisterInput{Email: "A@Example.com", Username: "artist456", Password: "securepass1"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = service.Register(RegisterInput{Email: "b@example.com", Username: "artist123", Password: "securepass1"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Login(t *testing.T) {
	service, _ := setupAuthService(t)

	registered, err := service.Register(RegisterInput{Email: "a@example.com", Username: "artist123", Password: "securepass1"})
	require.NoError(t, err)

	user, err := service.Login(LoginInput{Email: "A@Example.com", Password: "securepass1"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	_, err = service.Login(LoginInput{Email: "a@example.com", Password: "wrongpass1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(LoginInput{Email: "missing@example.com", Password: "securepass1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
