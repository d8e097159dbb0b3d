package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts/
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title    string  `json:"title"`
		Content  *string `json:"content"`
		AuthorID string  `json:"author_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ListPosts handles GET /posts/
func (s *Server) ListPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 100)

	posts, err := s.postService.ListPosts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		AuthorID string  `json:"author_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), id, service.UpdatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id?author=
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	author := c.Query("author")

	if err := s.postService.DeletePost(c.Context(), id, author); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
