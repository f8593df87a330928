package repository

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

func createUser(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserRepository_CreateWithProfile(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Email: "a@example.com", Username: "artist123", PasswordHash: "x"}
	profile := &models.UserProfile{DisplayName: "artist123", ThemeSettings: models.ThemeSettings{}, IsPublic: true}

	require.NoError(t, repo.CreateWithProfile(user, profile))
	require.NotZero(t, user.ID)
	require.Equal(t, user.ID, profile.UserID)

	var stored models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&stored).Error)
	require.Equal(t, "artist123", stored.DisplayName)
}

func TestUserRepository_CreateWithProfile_RollsBackOnConflict(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	existing := createUser(t, db, "a@example.com", "artist123")
	_ = existing

	user := &models.User{Email: "a@example.com", Username: "artist456", PasswordHash: "x"}
	profile := &models.UserProfile{DisplayName: "artist456"}

	err := repo.CreateWithProfile(user, profile)
	require.ErrorIs(t, err, ErrCreateUser)

	var profiles int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&profiles).Error)
	require.Zero(t, profiles)
}

func TestUserRepository_Delete_RemovesOwnedRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	user := createUser(t, db, "a@example.com", "artist123")
	keep := createUser(t, db, "b@example.com", "artist456")

	require.NoError(t, db.Create(&models.UserProfile{UserID: user.ID, DisplayName: "artist123"}).Error)
	require.NoError(t, db.Create(&models.SocialLink{UserID: user.ID, Platform: "instagram", URL: "https://instagram.com/a"}).Error)
	require.NoError(t, db.Create(&models.SocialLink{UserID: keep.ID, Platform: "instagram", URL: "https://instagram.com/b"}).Error)
	require.NoError(t, db.Create(&models.MusicShowcase{
		UserID: user.ID, SpotifyItemID: "alb-1", ItemType: models.ItemTypeAlbum,
		ItemName: "A", ArtistNames: "A", SpotifyURL: "https://open.spotify.com/album/alb-1",
	}).Error)
	require.NoError(t, db.Create(&models.ProfileClick{UserID: user.ID}).Error)

	require.NoError(t, repo.Delete(user.ID))

	var users, profiles, links, items, clicks int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.UserProfile{}).Count(&profiles)
	db.Model(&models.SocialLink{}).Count(&links)
	db.Model(&models.MusicShowcase{}).Count(&items)
	db.Model(&models.ProfileClick{}).Count(&clicks)

	require.EqualValues(t, 1, users)
	require.Zero(t, profiles)
	require.EqualValues(t, 1, links)
	require.Zero(t, items)
	require.Zero(t, clicks)
}

func TestProfileRepository_EnsureForUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)

	user := createUser(t, db, "a@example.com", "artist123")

	profile, err := repo.EnsureForUser(user.ID, "artist123")
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.UserID)
	require.True(t, profile.IsPublic)

	again, err := repo.EnsureForUser(user.ID, "ignored")
	require.NoError(t, err)
	require.Equal(t, profile.ID, again.ID)
	require.Equal(t, "artist123", again.DisplayName)
}

func TestSocialLinkRepository_MaxPosition(t *testing.T) {
	db := openTestDB(t)
	repo := NewSocialLinkRepository(db)

	user := createUser(t, db, "a@example.com", "artist123")

	max, err := repo.MaxPosition(user.ID)
	require.NoError(t, err)
	require.Equal(t, -1, max)

	require.NoError(t, repo.Create(&models.SocialLink{
		UserID: user.ID, Platform: "instagram", URL: "https://instagram.com/a", Position: 0,
	}))
	require.NoError(t, repo.Create(&models.SocialLink{
		UserID: user.ID, Platform: "youtube", URL: "https://youtube.com/a", Position: 1,
	}))

	max, err = repo.MaxPosition(user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, max)
}

func TestReorderPositions(t *testing.T) {
	db := openTestDB(t)
	repo := NewSocialLinkRepository(db)

	user := createUser(t, db, "a@example.com", "artist123")
	other := createUser(t, db, "b@example.com", "artist456")

	links := make([]models.SocialLink, 3)
	for i, platform := range []string{"instagram", "youtube", "tiktok"} {
		links[i] = models.SocialLink{
			UserID: user.ID, Platform: platform,
			URL: "https://" + platform + ".com/a", Position: i,
		}
		require.NoError(t, repo.Create(&links[i]))
	}
	foreign := models.SocialLink{UserID: other.ID, Platform: "instagram", URL: "https://instagram.com/b"}
	require.NoError(t, db.Create(&foreign).Error)

	t.Run("assigns dense positions in the given order", func(t *testing.T) {
		require.NoError(t, repo.Reorder(user.ID, []uint{links[2].ID, links[0].ID, links[1].ID}))

		reordered, err := repo.ListByUserID(user.ID)
		require.NoError(t, err)
		require.Equal(t, "tiktok", reordered[0].Platform)
		require.Equal(t, "instagram", reordered[1].Platform)
		require.Equal(t, "youtube", reordered[2].Platform)
		for i, link := range reordered {
			require.Equal(t, i, link.Position)
		}
	})

	t.Run("rejects foreign IDs without writing", func(t *testing.T) {
		before, err := repo.ListByUserID(user.ID)
		require.NoError(t, err)

		err = repo.Reorder(user.ID, []uint{links[0].ID, links[1].ID, foreign.ID})
		require.ErrorIs(t, err, ErrReorderMismatch)

		after, err := repo.ListByUserID(user.ID)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("rejects a strict subset without writing", func(t *testing.T) {
		before, err := repo.ListByUserID(user.ID)
		require.NoError(t, err)

		err = repo.Reorder(user.ID, []uint{links[2].ID})
		require.ErrorIs(t, err, ErrReorderMismatch)

		after, err := repo.ListByUserID(user.ID)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("rejects unknown IDs", func(t *testing.T) {
		err := repo.Reorder(user.ID, []uint{links[0].ID, links[1].ID, 9999})
		require.ErrorIs(t, err, ErrReorderMismatch)
	})

	t.Run("rejects duplicated IDs", func(t *testing.T) {
		err := repo.Reorder(user.ID, []uint{links[0].ID, links[0].ID, links[1].ID})
		require.ErrorIs(t, err, ErrReorderMismatch)
	})
}

func TestShowcaseRepository_ExistsForUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewShowcaseRepository(db)

	user := createUser(t, db, "a@example.com", "artist123")
	require.NoError(t, repo.Create(&models.MusicShowcase{
		UserID: user.ID, SpotifyItemID: "alb-1", ItemType: models.ItemTypeAlbum,
		ItemName: "A", ArtistNames: "A", SpotifyURL: "https://open.spotify.com/album/alb-1",
	}))

	exists, err := repo.ExistsForUser(user.ID, "alb-1")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsForUser(user.ID, "alb-2")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestShowcaseRepository_UniqueUserItem(t *testing.T) {
	db := openTestDB(t)
	repo := NewShowcaseRepository(db)

	user := createUser(t, db, "a@example.com", "artist123")
	item := models.MusicShowcase{
		UserID: user.ID, SpotifyItemID: "alb-1", ItemType: models.ItemTypeAlbum,
		ItemName: "A", ArtistNames: "A", SpotifyURL: "https://open.spotify.com/album/alb-1",
	}
	require.NoError(t, repo.Create(&item))

	dup := item
	dup.ID = 0
	require.Error(t, repo.Create(&dup))
}
