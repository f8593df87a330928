package services

import (
	"testing"

	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.SocialLink{},
		&models.SpotifyConnection{},
		&models.MusicShowcase{},
		&models.ProfileClick{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
