package service

import (
	"context"

	"quill/internal/models"

	"gorm.io/gorm"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn  func(context.Context, *models.User) error
	getByIDFn func(context.Context, string) (*models.User, error)
	listFn    func(context.Context, int, int) ([]models.User, error)
	updateFn  func(context.Context, *models.User) error
	deleteFn  func(context.Context, string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:  func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id string) (*models.User, error) { return &models.User{ID: id}, nil },
		listFn:    func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		updateFn:  func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:  func(_ context.Context, _ string) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	listFn         func(context.Context, int, int) ([]*models.Post, error)
	listByAuthorFn func(context.Context, string, int, int) ([]*models.Post, error)
	updateFn       func(context.Context, *models.Post) error
	deleteFn       func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:       func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:      func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:         func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		listByAuthorFn: func(_ context.Context, _ string, _, _ int) ([]*models.Post, error) { return nil, nil },
		updateFn:       func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	getByIDFn      func(context.Context, uint) (*models.Comment, error)
	listByPostFn   func(context.Context, uint, int, int) ([]*models.Comment, error)
	listByAuthorFn func(context.Context, string, int, int) ([]*models.Comment, error)
	updateFn       func(context.Context, *models.Comment) error
	deleteFn       func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*models.Comment, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:      func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn:   func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		listByAuthorFn: func(_ context.Context, _ string, _, _ int) ([]*models.Comment, error) { return nil, nil },
		updateFn:       func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
	}
}

// notFoundUserRepo always reports a missing row.
func notFoundUserRepo() *userRepoStub {
	r := noopUserRepo()
	r.getByIDFn = func(_ context.Context, _ string) (*models.User, error) {
		return nil, gorm.ErrRecordNotFound
	}
	return r
}
