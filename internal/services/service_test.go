package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/showcaseapp/showcase-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection keeps the in-memory database alive and serializes
// writes the way a single Postgres row lock would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Project{},
		&models.Vote{},
		&models.Feedback{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	telegramID := uuid.NewString()
	user := models.User{
		ID:         uuid.NewString(),
		Name:       name,
		TelegramID: &telegramID,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestProject(t *testing.T, db *gorm.DB, name string) *models.Project {
	t.Helper()

	project := models.Project{
		ID:   uuid.NewString(),
		Name: name,
	}
	require.NoError(t, db.Create(&project).Error)
	return &project
}
