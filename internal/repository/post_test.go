package repository

import (
	"context"
	"fmt"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_CreateAssignsID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedUser(t, db, "alice")

	content := "hello world"
	post := &models.Post{Title: "First", Content: &content, AuthorID: "alice"}
	require.NoError(t, repo.Create(ctx, post))
	assert.NotZero(t, post.ID)

	fetched, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", fetched.Title)
	require.NotNil(t, fetched.Content)
	assert.Equal(t, "hello world", *fetched.Content)
}

func TestPostRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostRepository_ListPaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	for i := 0; i < 5; i++ {
		seedPost(t, db, "alice", fmt.Sprintf("post %d", i))
	}

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "post 0", page[0].Title)
	assert.Equal(t, "post 1", page[1].Title)

	page, err = repo.List(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "post 4", page[0].Title)
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	seedUser(t, db, "bob")
	seedPost(t, db, "alice", "a1")
	seedPost(t, db, "bob", "b1")
	seedPost(t, db, "alice", "a2")

	posts, err := repo.ListByAuthor(ctx, "alice", 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "a1", posts[0].Title)
	assert.Equal(t, "a2", posts[1].Title)
}

func TestPostRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	post := seedPost(t, db, "alice", "draft")

	post.Title = "published"
	require.NoError(t, repo.Update(ctx, post))

	fetched, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "published", fetched.Title)

	require.NoError(t, repo.Delete(ctx, post.ID))
	_, err = repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
