package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /users/
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		ID       string  `json:"id"`
		Password string  `json:"password"`
		Nickname *string `json:"nickname"`
		Role     string  `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		ID:       req.ID,
		Password: req.Password,
		Nickname: req.Nickname,
		Role:     req.Role,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListUsers handles GET /users/
func (s *Server) ListUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 100)

	users, err := s.userService.ListUsers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

// GetUser handles GET /users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// ListUserPosts handles GET /users/:id/posts
func (s *Server) ListUserPosts(c *fiber.Ctx) error {
	id := c.Params("id")
	page := parsePageLimit(c, 10)

	posts, err := s.postService.ListPostsByAuthor(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// ListUserComments handles GET /users/:id/comments
func (s *Server) ListUserComments(c *fiber.Ctx) error {
	id := c.Params("id")
	page := parsePageLimit(c, 10)

	comments, err := s.commentService.ListCommentsByAuthor(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// UpdateUser handles PUT /users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var req struct {
		Password string  `json:"password"`
		Nickname *string `json:"nickname"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Password == "" {
		return respondError(c, models.NewValidationError("password is required"))
	}

	user, err := s.userService.UpdateUser(c.Context(), id, service.UpdateUserInput{
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id?password=
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	password := c.Query("password")

	if err := s.userService.DeleteUser(c.Context(), id, password); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
