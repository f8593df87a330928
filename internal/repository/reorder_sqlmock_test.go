package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spotlighthub/spotlight-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestReorderPositions_RunsInOneTransaction(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `social_links`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `social_links`").
		WithArgs(uint(1), uint(10), uint(11)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
	mock.ExpectExec("UPDATE `social_links` SET `position`").
		WithArgs(0, uint(10), uint(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `social_links` SET `position`").
		WithArgs(1, uint(11), uint(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := reorderPositions(db, &models.SocialLink{}, 1, []uint{10, 11})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReorderPositions_RollsBackOnMismatch(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `social_links`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `social_links`").
		WithArgs(uint(1), uint(10), uint(11)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectRollback()

	err := reorderPositions(db, &models.SocialLink{}, 1, []uint{10, 11})
	require.ErrorIs(t, err, ErrReorderMismatch)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReorderPositions_RollsBackOnPartialList(t *testing.T) {
	db, mock := openMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `social_links`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))
	mock.ExpectRollback()

	err := reorderPositions(db, &models.SocialLink{}, 1, []uint{10, 11})
	require.ErrorIs(t, err, ErrReorderMismatch)
	require.NoError(t, mock.ExpectationsWereMet())
}
