package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// PostService orchestrates post CRUD against the store.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the fields for post creation.
type CreatePostInput struct {
	Title    string
	Content  *string
	AuthorID string
}

// UpdatePostInput is the partial-update payload for a post. AuthorID is the
// credential; nil pointer fields are left untouched.
type UpdatePostInput struct {
	Title    *string
	Content  *string
	AuthorID string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost inserts a new post. The author must exist at creation time;
// there is no transactional guard against the author disappearing afterwards.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("title is required")
	}
	if in.AuthorID == "" {
		return nil, models.NewValidationError("author_id is required")
	}
	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, storeLookupError(err, "User", in.AuthorID)
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewCreationFailedError("post", err)
	}
	return post, nil
}

// ListPosts returns a page of posts in insertion order.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListPostsByAuthor returns the given user's posts in insertion order.
func (s *PostService) ListPostsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// GetPost returns a single post by identifier.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeLookupError(err, "Post", id)
	}
	return post, nil
}

// UpdatePost applies a partial update after the author identity check.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeLookupError(err, "Post", id)
	}
	if err := authorizePost(post, in.AuthorID); err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("title must not be empty")
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// DeletePost removes the post after the author identity check. Comments under
// the post are left behind; deletion does not cascade.
func (s *PostService) DeletePost(ctx context.Context, id uint, authorID string) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return storeLookupError(err, "Post", id)
	}
	if err := authorizePost(post, authorID); err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
