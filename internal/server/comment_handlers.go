package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /posts/:id/comments/
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		AuthorID string  `json:"author_id"`
		Content  *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		PostID:   postID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListPostComments handles GET /posts/:id/comments/
func (s *Server) ListPostComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePageLimit(c, 10)

	comments, err := s.commentService.ListCommentsByPost(c.Context(), postID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// UpdateComment handles PUT /posts/:id/comments/:cid
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "cid")
	if err != nil {
		return nil
	}

	var req struct {
		AuthorID string  `json:"author_id"`
		Password string  `json:"password"`
		Content  *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), commentID, service.UpdateCommentInput{
		PostID:   postID,
		AuthorID: req.AuthorID,
		Password: req.Password,
		Content:  req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /posts/:id/comments/:cid?author=
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "cid")
	if err != nil {
		return nil
	}
	author := c.Query("author")

	if err := s.commentService.DeleteComment(c.Context(), commentID, postID, author); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
