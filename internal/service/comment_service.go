package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// CommentService orchestrates comment CRUD against the store.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// CreateCommentInput carries the fields for comment creation. PostID comes
// from the route, not the body.
type CreateCommentInput struct {
	PostID   uint
	AuthorID string
	Content  *string
}

// UpdateCommentInput is the partial-update payload for a comment. AuthorID
// and Password together form the credential; PostID is the parent post from
// the route and must match the comment's stored parent.
type UpdateCommentInput struct {
	PostID   uint
	AuthorID string
	Password string
	Content  *string
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment inserts a new comment. Both the parent post and the author
// must exist at creation time; the two lookups and the insert are not one
// transaction, so a concurrent post deletion can still race the insert.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.AuthorID == "" {
		return nil, models.NewValidationError("author_id is required")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, storeLookupError(err, "Post", in.PostID)
	}
	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, storeLookupError(err, "User", in.AuthorID)
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		Content:  in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewCreationFailedError("comment", err)
	}
	return comment, nil
}

// ListCommentsByPost returns a page of the post's comments in insertion order.
func (s *CommentService) ListCommentsByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// ListCommentsByAuthor returns a page of the user's comments in insertion order.
func (s *CommentService) ListCommentsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// UpdateComment applies a partial update. The caller must present the
// comment author's identity AND that author's account password, and the route
// post must be the comment's actual parent; a parent mismatch reads as
// NOT_FOUND rather than a permission error.
func (s *CommentService) UpdateComment(ctx context.Context, id uint, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeLookupError(err, "Comment", id)
	}
	if comment.PostID != in.PostID {
		return nil, models.NewNotFoundError("Comment", id)
	}

	owner, err := s.userRepo.GetByID(ctx, comment.AuthorID)
	if err != nil {
		return nil, storeLookupError(err, "User", comment.AuthorID)
	}
	if err := authorizeCommentUpdate(comment, owner, in.AuthorID, in.Password); err != nil {
		return nil, err
	}

	if in.Content != nil {
		comment.Content = in.Content
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

// DeleteComment removes the comment after the author identity check. No
// password is required on this path, unlike update.
func (s *CommentService) DeleteComment(ctx context.Context, id, postID uint, authorID string) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return storeLookupError(err, "Comment", id)
	}
	if comment.PostID != postID {
		return models.NewNotFoundError("Comment", id)
	}
	if err := authorizeCommentDelete(comment, authorID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
