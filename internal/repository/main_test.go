package repository

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	user := &models.User{ID: id, Password: "Password123", Role: models.RoleMember}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, authorID, title string) *models.Post {
	t.Helper()

	post := &models.Post{Title: title, AuthorID: authorID}
	require.NoError(t, db.Create(post).Error)
	return post
}
